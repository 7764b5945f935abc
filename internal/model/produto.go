package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Produto is the catalog record owned by the inventory store.
// Quantidade is mutated by sales (decrement) and by direct stock edits;
// a DB CHECK constraint keeps it from ever going negative.
type Produto struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome         string          `gorm:"index;not null"`
	Imagens      pq.StringArray  `gorm:"type:text[];not null"`
	Preco        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Custo        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantidade   int             `gorm:"not null;default:0"`
	Codigo       string          `gorm:"index;not null"`
	CodigoBarras string          `gorm:"uniqueIndex;not null"`
	Categoria    string          `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Produto) TableName() string { return "produtos" }
