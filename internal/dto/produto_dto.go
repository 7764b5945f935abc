package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome         string          `json:"name"     validate:"required,min=2,max=120"`
	Imagens      []string        `json:"image"    validate:"required,min=1"`
	Preco        decimal.Decimal `json:"price"    validate:"min=0"`
	Custo        decimal.Decimal `json:"cost"     validate:"min=0"`
	Quantidade   int             `json:"quantity" validate:"min=0"`
	Codigo       string          `json:"code"     validate:"required"`
	CodigoBarras string          `json:"BarCode"  validate:"required"`
	Categoria    string          `json:"category" validate:"required"`
}

// AtualizarProdutoRequest supports partial merge: only non-nil fields are
// applied. A quantity-only stock edit and a full edit go through the same path.
type AtualizarProdutoRequest struct {
	Nome         *string          `json:"name"     validate:"omitempty,min=2,max=120"`
	Imagens      *[]string        `json:"image"    validate:"omitempty,min=1"`
	Preco        *decimal.Decimal `json:"price"`
	Custo        *decimal.Decimal `json:"cost"`
	Quantidade   *int             `json:"quantity" validate:"omitempty,min=0"`
	Codigo       *string          `json:"code"`
	CodigoBarras *string          `json:"BarCode"`
	Categoria    *string          `json:"category"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// ProdutoFilter is bound from the query string of GET /products.
// Busca matches name, code and barcode.
type ProdutoFilter struct {
	Categoria string `form:"category"`
	Busca     string `form:"q"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID           string          `json:"id"`
	Nome         string          `json:"name"`
	Imagens      []string        `json:"image"`
	Preco        decimal.Decimal `json:"price"`
	Custo        decimal.Decimal `json:"cost"`
	Quantidade   int             `json:"quantity"`
	Codigo       string          `json:"code"`
	CodigoBarras string          `json:"BarCode"`
	Categoria    string          `json:"category"`
}

// ConsultaPrecoResponse is returned by the public barcode price check.
type ConsultaPrecoResponse struct {
	Nome       string          `json:"name"`
	Preco      decimal.Decimal `json:"price"`
	Quantidade int             `json:"quantity"`
	Categoria  string          `json:"category"`
}
