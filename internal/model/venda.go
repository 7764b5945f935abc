package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venda is an immutable sale record. Total always equals the sum of its
// items' Quantidade × PrecoUnitario at creation time; there is no update
// or delete path.
type Venda struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Total decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// MetodoPagamento: "dinheiro" | "cartao" | "fiado"
	MetodoPagamento string `gorm:"type:varchar(20);not null;index"`
	// DetalhesPagamento carries free text: customer name for fiado,
	// amount tendered for dinheiro.
	DetalhesPagamento *string
	CreatedAt         time.Time `gorm:"index"`

	Itens []VendaItem `gorm:"foreignKey:VendaID"`
}

func (Venda) TableName() string { return "vendas" }

// VendaItem is a line item. PrecoUnitario snapshots the product price at
// sale time — historical totals are never recomputed from the live
// product price. Produto is a weak reference joined for display only.
type VendaItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VendaID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProdutoID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantidade    int             `gorm:"not null"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (VendaItem) TableName() string { return "venda_itens" }
