package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVendaRequest struct {
	ProdutoID  string `json:"productId" validate:"required,uuid"`
	Quantidade int    `json:"quantity"  validate:"required,min=1"`
}

type PagamentoRequest struct {
	// Metodo: dinheiro | cartao | fiado
	Metodo string `json:"method" validate:"required,oneof=dinheiro cartao fiado"`
	// Detalhes: free text — customer name for fiado, amount tendered for dinheiro
	Detalhes string `json:"details"`
}

type RegistrarVendaRequest struct {
	Itens     []ItemVendaRequest `json:"items"   validate:"required,min=1,dive"`
	Pagamento PagamentoRequest   `json:"payment" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ItemVendaResponse embeds the denormalized product data for display.
// Preco is the snapshot taken at sale time, never the live product price.
type ItemVendaResponse struct {
	ProdutoID  string          `json:"productId"`
	Nome       string          `json:"name"`
	Categoria  string          `json:"category"`
	Quantidade int             `json:"quantity"`
	Preco      decimal.Decimal `json:"price"`
}

type PagamentoResponse struct {
	Metodo   string `json:"method"`
	Detalhes string `json:"details"`
}

type VendaResponse struct {
	ID        string              `json:"id"`
	Itens     []ItemVendaResponse `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	Pagamento PagamentoResponse   `json:"payment"`
	Data      string              `json:"date"`
}
