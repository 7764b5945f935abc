package repository

import (
	"context"
	"time"

	"github.com/Gabriel-barbos/SistemaDeVendas/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendaRepository interface {
	// Create inserts the sale and its items. It must run inside the same
	// transaction as the stock decrements — callers pass the tx instance.
	Create(ctx context.Context, tx *gorm.DB, v *model.Venda) error
	// ListAll returns every sale, newest first, with product data joined
	// onto the items for display.
	ListAll(ctx context.Context) ([]model.Venda, error)
	// SumDinheiroBetween totals cash-method sales inside a time window.
	// Used by the caixa close reconciliation; auditable at any time from
	// raw sale records.
	SumDinheiroBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// ResumoDesde returns revenue and order count since the given instant;
	// nil means all time. Empty store yields zero, never an error.
	ResumoDesde(ctx context.Context, since *time.Time) (decimal.Decimal, int64, error)

	// DB exposes the DB for transaction creation in the service layer.
	DB() *gorm.DB
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) DB() *gorm.DB { return r.db }

func (r *vendaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venda) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *vendaRepo) ListAll(ctx context.Context) ([]model.Venda, error) {
	var vendas []model.Venda
	err := r.db.WithContext(ctx).
		Preload("Itens.Produto").
		Order("created_at DESC").
		Find(&vendas).Error
	return vendas, err
}

func (r *vendaRepo) SumDinheiroBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Venda{}).
		Select("COALESCE(SUM(total), 0)").
		Where("metodo_pagamento = ? AND created_at BETWEEN ? AND ?", "dinheiro", from, to).
		Scan(&total).Error
	return total, err
}

func (r *vendaRepo) ResumoDesde(ctx context.Context, since *time.Time) (decimal.Decimal, int64, error) {
	var row struct {
		Total   decimal.Decimal
		Pedidos int64
	}
	q := r.db.WithContext(ctx).Model(&model.Venda{}).
		Select("COALESCE(SUM(total), 0) AS total, COUNT(*) AS pedidos")
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	if err := q.Scan(&row).Error; err != nil {
		return decimal.Zero, 0, err
	}
	return row.Total, row.Pedidos, nil
}
