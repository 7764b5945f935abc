package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirCaixaRequest struct {
	ValorAbertura decimal.Decimal `json:"valorAbertura" validate:"min=0"`
}

type FecharCaixaRequest struct {
	ValorFechamento decimal.Decimal `json:"valorFechamento" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// CaixaResponse mirrors a session record. Closing fields stay null while the
// session is open.
type CaixaResponse struct {
	ID                  string           `json:"id"`
	DataAbertura        string           `json:"dataAbertura"`
	ValorAbertura       decimal.Decimal  `json:"valorAbertura"`
	DataFechamento      *string          `json:"dataFechamento"`
	ValorFechamento     *decimal.Decimal `json:"valorFechamento"`
	TotalVendasDinheiro *decimal.Decimal `json:"totalVendasDinheiro"`
	Diferenca           *decimal.Decimal `json:"diferenca"`
	Status              string           `json:"status"`
}
