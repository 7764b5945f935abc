package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Caixa represents one cash register session.
// Status: "aberto" | "fechado"
//
// At most one session may be open at any time — enforced by a partial
// unique index on (status) WHERE status = 'aberto', not by an
// application-level check (see infra.NewDatabase). A closed session is
// an immutable historical record.
type Caixa struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DataAbertura  time.Time       `gorm:"not null;index"`
	ValorAbertura decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// Closing fields are filled exactly once, by FecharCaixa.
	DataFechamento      *time.Time
	ValorFechamento     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalVendasDinheiro *decimal.Decimal `gorm:"type:decimal(12,2)"`
	// Diferenca = ValorFechamento - (ValorAbertura + TotalVendasDinheiro)
	Diferenca *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status    string           `gorm:"type:varchar(20);not null;default:'aberto'"`
}

func (Caixa) TableName() string { return "caixas" }
