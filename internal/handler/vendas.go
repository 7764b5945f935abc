package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Gabriel-barbos/SistemaDeVendas/internal/dto"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const resumoCacheTTL = 30 * time.Second

const resumoCacheKey = "relatorio:resumo"

type VendasHandler struct {
	svc       service.VendaService
	relatorio service.RelatorioService
	rdb       *redis.Client
}

func NewVendasHandler(svc service.VendaService, relatorio service.RelatorioService, rdb *redis.Client) *VendasHandler {
	return &VendasHandler{svc: svc, relatorio: relatorio, rdb: rdb}
}

// Registrar godoc
// @Summary Registra uma venda, baixando o estoque atomicamente
// @Tags vendas
// @Accept json
// @Produce json
// @Param body body dto.RegistrarVendaRequest true "Itens e pagamento"
// @Success 201 {object} dto.VendaResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /sales [post]
func (h *VendasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	// A new sale changes the dashboard numbers; drop the cached summary.
	if h.rdb != nil {
		_ = h.rdb.Del(context.Background(), resumoCacheKey).Err()
	}

	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Lista as vendas, mais recentes primeiro
// @Tags vendas
// @Produce json
// @Success 200 {array} dto.VendaResponse
// @Router /sales [get]
func (h *VendasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TopProdutos godoc
// @Summary Produtos mais vendidos (por quantidade)
// @Tags relatorios
// @Produce json
// @Success 200 {array} dto.TopProdutoResponse
// @Router /sales/top-products [get]
func (h *VendasHandler) TopProdutos(c *gin.Context) {
	resp, err := h.relatorio.TopProdutos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VendasPorPeriodo godoc
// @Summary Vendas agregadas por período
// @Tags relatorios
// @Produce json
// @Param period query string false "day | week | month | year" default(month)
// @Success 200 {array} dto.VendasPorPeriodoResponse
// @Router /sales/sales-by-period [get]
func (h *VendasHandler) VendasPorPeriodo(c *gin.Context) {
	periodo := c.DefaultQuery("period", "month")
	resp, err := h.relatorio.VendasPorPeriodo(c.Request.Context(), periodo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MetodosPagamento godoc
// @Summary Vendas agregadas por método de pagamento
// @Tags relatorios
// @Produce json
// @Success 200 {array} dto.MetodoPagamentoResponse
// @Router /sales/payment-methods [get]
func (h *VendasHandler) MetodosPagamento(c *gin.Context) {
	resp, err := h.relatorio.MetodosPagamento(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resumo godoc
// @Summary Resumo de receita e pedidos (hoje, mês, total)
// @Tags relatorios
// @Produce json
// @Success 200 {object} dto.ResumoDashboardResponse
// @Router /sales/dashboard-summary [get]
func (h *VendasHandler) Resumo(c *gin.Context) {
	ctx := c.Request.Context()

	// Dashboards tolerate slightly stale data; a short TTL keeps repeated
	// polling off the database.
	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, resumoCacheKey).Bytes(); err == nil {
			var resp dto.ResumoDashboardResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := h.relatorio.Resumo(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), resumoCacheKey, b, resumoCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}
