package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Gabriel-barbos/SistemaDeVendas/internal/apierror"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/dto"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const precoCacheTTL = 4 * time.Hour

// ConsultaPrecoHandler serves the barcode price check used by the checkout
// screen's product scanner. Read-only, no side effects.
type ConsultaPrecoHandler struct {
	repo repository.ProdutoRepository
	rdb  *redis.Client
}

func NewConsultaPrecoHandler(repo repository.ProdutoRepository, rdb *redis.Client) *ConsultaPrecoHandler {
	return &ConsultaPrecoHandler{repo: repo, rdb: rdb}
}

// PorBarcode godoc
// @Summary Consulta de preço por código de barras
// @Tags produtos
// @Produce json
// @Param barcode path string true "Código de barras"
// @Success 200 {object} dto.ConsultaPrecoResponse
// @Failure 404 {object} apierror.APIError
// @Router /price/{barcode} [get]
func (h *ConsultaPrecoHandler) PorBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	ctx := c.Request.Context()
	cacheKey := "preco:" + barcode

	// 1. Try Redis cache
	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.ConsultaPrecoResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	// 2. Cache miss — query DB
	produto, err := h.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Produto não encontrado"))
		return
	}

	resp := dto.ConsultaPrecoResponse{
		Nome:       produto.Nome,
		Preco:      produto.Preco,
		Quantidade: produto.Quantidade,
		Categoria:  produto.Categoria,
	}

	// 3. Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, precoCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}
