package service_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Gabriel-barbos/SistemaDeVendas/internal/dto"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/model"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory CaixaRepository ────────────────────────────────────────────────

type fakeCaixaRepo struct {
	caixas []*model.Caixa
}

func newFakeCaixaRepo() *fakeCaixaRepo { return &fakeCaixaRepo{} }

func (r *fakeCaixaRepo) Create(_ context.Context, c *model.Caixa) error {
	// Mirrors the partial unique index: a second open session is a
	// duplicate key, regardless of request interleaving.
	for _, existing := range r.caixas {
		if existing.Status == "aberto" {
			return gorm.ErrDuplicatedKey
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.caixas = append(r.caixas, c)
	return nil
}

func (r *fakeCaixaRepo) FindAberto(_ context.Context) (*model.Caixa, error) {
	for _, c := range r.caixas {
		if c.Status == "aberto" {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCaixaRepo) Fechar(_ context.Context, c *model.Caixa) error {
	// Mirrors the guarded UPDATE: only a still-open row accepts the write.
	for _, existing := range r.caixas {
		if existing.ID == c.ID && existing.Status == "aberto" {
			existing.DataFechamento = c.DataFechamento
			existing.ValorFechamento = c.ValorFechamento
			existing.TotalVendasDinheiro = c.TotalVendasDinheiro
			existing.Diferenca = c.Diferenca
			existing.Status = c.Status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeCaixaRepo) List(_ context.Context) ([]model.Caixa, error) {
	out := make([]model.Caixa, 0, len(r.caixas))
	for _, c := range r.caixas {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DataAbertura.After(out[j].DataAbertura)
	})
	return out, nil
}

var _ repository.CaixaRepository = (*fakeCaixaRepo)(nil)

// ── In-memory VendaRepository ────────────────────────────────────────────────

type fakeVendaRepo struct {
	vendas []model.Venda
}

func newFakeVendaRepo() *fakeVendaRepo { return &fakeVendaRepo{} }

func (r *fakeVendaRepo) DB() *gorm.DB { return nil }

func (r *fakeVendaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venda) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	for i := range v.Itens {
		if v.Itens[i].ID == uuid.Nil {
			v.Itens[i].ID = uuid.New()
		}
		v.Itens[i].VendaID = v.ID
	}
	r.vendas = append(r.vendas, *v)
	return nil
}

func (r *fakeVendaRepo) ListAll(_ context.Context) ([]model.Venda, error) {
	out := make([]model.Venda, len(r.vendas))
	copy(out, r.vendas)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeVendaRepo) SumDinheiroBetween(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, v := range r.vendas {
		if v.MetodoPagamento != "dinheiro" {
			continue
		}
		if v.CreatedAt.Before(from) || v.CreatedAt.After(to) {
			continue
		}
		total = total.Add(v.Total)
	}
	return total, nil
}

func (r *fakeVendaRepo) ResumoDesde(_ context.Context, since *time.Time) (decimal.Decimal, int64, error) {
	total := decimal.Zero
	var count int64
	for _, v := range r.vendas {
		if since != nil && v.CreatedAt.Before(*since) {
			continue
		}
		total = total.Add(v.Total)
		count++
	}
	return total, count, nil
}

var _ repository.VendaRepository = (*fakeVendaRepo)(nil)

// ── In-memory ProdutoRepository ──────────────────────────────────────────────

type fakeProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
}

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
}

func (r *fakeProdutoRepo) DB() *gorm.DB { return nil }

func (r *fakeProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	for _, existing := range r.produtos {
		if existing.CodigoBarras == p.CodigoBarras {
			return gorm.ErrDuplicatedKey
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.produtos[p.ID] = p
	return nil
}

func (r *fakeProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProdutoRepo) FindByBarcode(_ context.Context, barcode string) (*model.Produto, error) {
	for _, p := range r.produtos {
		if p.CodigoBarras == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProdutoRepo) List(_ context.Context, filter dto.ProdutoFilter) ([]model.Produto, error) {
	var out []model.Produto
	busca := strings.ToLower(filter.Busca)
	for _, p := range r.produtos {
		if filter.Categoria != "" && p.Categoria != filter.Categoria {
			continue
		}
		if busca != "" &&
			!strings.Contains(strings.ToLower(p.Nome), busca) &&
			!strings.Contains(strings.ToLower(p.Codigo), busca) &&
			!strings.Contains(strings.ToLower(p.CodigoBarras), busca) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *fakeProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	if _, ok := r.produtos[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.produtos[p.ID] = &cp
	return nil
}

func (r *fakeProdutoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.produtos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.produtos, id)
	return nil
}

func (r *fakeProdutoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Produto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *fakeProdutoRepo) DescontarEstoqueTx(_ *gorm.DB, id uuid.UUID, quantidade int) error {
	p, ok := r.produtos[id]
	if !ok || p.Quantidade < quantidade {
		return repository.ErrEstoqueInsuficiente
	}
	p.Quantidade -= quantidade
	return nil
}

var _ repository.ProdutoRepository = (*fakeProdutoRepo)(nil)

// ── In-memory CategoriaRepository ────────────────────────────────────────────

type fakeCategoriaRepo struct {
	categorias map[uuid.UUID]*model.Categoria
}

func newFakeCategoriaRepo(nomes ...string) *fakeCategoriaRepo {
	r := &fakeCategoriaRepo{categorias: make(map[uuid.UUID]*model.Categoria)}
	for _, nome := range nomes {
		id := uuid.New()
		r.categorias[id] = &model.Categoria{ID: id, Nome: nome}
	}
	return r
}

func (r *fakeCategoriaRepo) Create(_ context.Context, c *model.Categoria) error {
	for _, existing := range r.categorias {
		if existing.Nome == c.Nome {
			return gorm.ErrDuplicatedKey
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categorias[c.ID] = c
	return nil
}

func (r *fakeCategoriaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoriaRepo) FindByNome(_ context.Context, nome string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if c.Nome == nome {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoriaRepo) List(_ context.Context) ([]model.Categoria, error) {
	out := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *fakeCategoriaRepo) Update(_ context.Context, c *model.Categoria) error {
	for id, existing := range r.categorias {
		if existing.Nome == c.Nome && id != c.ID {
			return gorm.ErrDuplicatedKey
		}
	}
	if _, ok := r.categorias[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *c
	r.categorias[c.ID] = &cp
	return nil
}

func (r *fakeCategoriaRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.categorias[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.categorias, id)
	return nil
}

var _ repository.CategoriaRepository = (*fakeCategoriaRepo)(nil)
