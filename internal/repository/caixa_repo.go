package repository

import (
	"context"

	"github.com/Gabriel-barbos/SistemaDeVendas/internal/model"

	"gorm.io/gorm"
)

type CaixaRepository interface {
	// Create inserts a new session. When a session with status=aberto
	// already exists the partial unique index rejects the insert and the
	// error surfaces as gorm.ErrDuplicatedKey.
	Create(ctx context.Context, c *model.Caixa) error
	// FindAberto returns the single open session, or gorm.ErrRecordNotFound.
	FindAberto(ctx context.Context) (*model.Caixa, error)
	// Fechar writes the closing fields with a status guard: the UPDATE only
	// fires while the session is still aberto, so a concurrent close cannot
	// rewrite an already-closed record. Zero rows affected surfaces as
	// gorm.ErrRecordNotFound.
	Fechar(ctx context.Context, c *model.Caixa) error
	// List returns all sessions, newest opening first.
	List(ctx context.Context) ([]model.Caixa, error)
}

type caixaRepo struct{ db *gorm.DB }

func NewCaixaRepository(db *gorm.DB) CaixaRepository { return &caixaRepo{db: db} }

func (r *caixaRepo) Create(ctx context.Context, c *model.Caixa) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *caixaRepo) FindAberto(ctx context.Context) (*model.Caixa, error) {
	var c model.Caixa
	err := r.db.WithContext(ctx).Where("status = 'aberto'").First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caixaRepo) Fechar(ctx context.Context, c *model.Caixa) error {
	res := r.db.WithContext(ctx).Model(&model.Caixa{}).
		Where("id = ? AND status = 'aberto'", c.ID).
		Updates(map[string]interface{}{
			"data_fechamento":       c.DataFechamento,
			"valor_fechamento":      c.ValorFechamento,
			"total_vendas_dinheiro": c.TotalVendasDinheiro,
			"diferenca":             c.Diferenca,
			"status":                c.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *caixaRepo) List(ctx context.Context) ([]model.Caixa, error) {
	var caixas []model.Caixa
	err := r.db.WithContext(ctx).Order("data_abertura DESC").Find(&caixas).Error
	return caixas, err
}
