package handler

import (
	"net/http"

	"github.com/Gabriel-barbos/SistemaDeVendas/internal/apierror"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/dto"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/service"

	"github.com/gin-gonic/gin"
)

type CaixaHandler struct{ svc service.CaixaService }

func NewCaixaHandler(svc service.CaixaService) *CaixaHandler { return &CaixaHandler{svc: svc} }

// Abrir godoc
// @Summary Abre uma nova sessão de caixa
// @Tags caixa
// @Accept json
// @Produce json
// @Param body body dto.AbrirCaixaRequest true "Valor de abertura"
// @Success 201 {object} dto.CaixaResponse
// @Failure 400 {object} apierror.APIError
// @Router /caixa/abrir [post]
func (h *CaixaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Abrir(c.Request.Context(), req)
	if err != nil {
		// Published contract: "already open" answers 400, not 409.
		if apierror.StatusOf(err) == http.StatusConflict {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Fechar godoc
// @Summary Fecha o caixa aberto e calcula a reconciliação
// @Tags caixa
// @Accept json
// @Produce json
// @Param body body dto.FecharCaixaRequest true "Valor contado na gaveta"
// @Success 200 {object} dto.CaixaResponse
// @Failure 404 {object} apierror.APIError
// @Router /caixa/fechar [post]
func (h *CaixaHandler) Fechar(c *gin.Context) {
	var req dto.FecharCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Fechar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Aberto godoc
// @Summary Retorna o caixa aberto no momento
// @Tags caixa
// @Produce json
// @Success 200 {object} dto.CaixaResponse
// @Failure 404 {object} apierror.APIError
// @Router /caixa/aberto [get]
func (h *CaixaHandler) Aberto(c *gin.Context) {
	resp, err := h.svc.Aberto(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary Lista o histórico de sessões de caixa
// @Tags caixa
// @Produce json
// @Success 200 {array} dto.CaixaResponse
// @Router /caixa [get]
func (h *CaixaHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
