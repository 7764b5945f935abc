package handler

import (
	"net/http"

	"github.com/Gabriel-barbos/SistemaDeVendas/internal/apierror"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/dto"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoriasHandler struct{ svc service.CategoriaService }

func NewCategoriasHandler(svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// Criar godoc
// @Summary Cria uma nova categoria
// @Tags categorias
// @Accept json
// @Produce json
// @Param body body dto.CategoriaRequest true "Nome da categoria"
// @Success 201 {object} dto.CategoriaResponse
// @Failure 409 {object} apierror.APIError
// @Router /categories [post]
func (h *CategoriasHandler) Criar(c *gin.Context) {
	var req dto.CategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Lista as categorias em ordem alfabética
// @Tags categorias
// @Produce json
// @Success 200 {array} dto.CategoriaResponse
// @Router /categories [get]
func (h *CategoriasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary Renomeia uma categoria
// @Tags categorias
// @Accept json
// @Produce json
// @Param id path string true "ID da categoria"
// @Param body body dto.CategoriaRequest true "Novo nome"
// @Success 200 {object} dto.CategoriaResponse
// @Failure 404 {object} apierror.APIError
// @Router /categories/{id} [put]
func (h *CategoriasHandler) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.CategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir godoc
// @Summary Remove uma categoria
// @Tags categorias
// @Param id path string true "ID da categoria"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /categories/{id} [delete]
func (h *CategoriasHandler) Excluir(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
