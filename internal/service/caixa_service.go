package service

import (
	"context"
	"errors"
	"time"

	"github.com/Gabriel-barbos/SistemaDeVendas/internal/apierror"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/dto"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/model"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/repository"

	"gorm.io/gorm"
)

// CaixaService governs the cash register session lifecycle: at most one
// session is open at any time, and a closed session is immutable.
type CaixaService interface {
	Abrir(ctx context.Context, req dto.AbrirCaixaRequest) (*dto.CaixaResponse, error)
	Fechar(ctx context.Context, req dto.FecharCaixaRequest) (*dto.CaixaResponse, error)
	Aberto(ctx context.Context) (*dto.CaixaResponse, error)
	Listar(ctx context.Context) ([]dto.CaixaResponse, error)
}

type caixaService struct {
	repo   repository.CaixaRepository
	vendas repository.VendaRepository
}

func NewCaixaService(repo repository.CaixaRepository, vendas repository.VendaRepository) CaixaService {
	return &caixaService{repo: repo, vendas: vendas}
}

// ── Abrir ─────────────────────────────────────────────────────────────────────

func (s *caixaService) Abrir(ctx context.Context, req dto.AbrirCaixaRequest) (*dto.CaixaResponse, error) {
	if req.ValorAbertura.IsNegative() {
		return nil, apierror.Validation("valorAbertura não pode ser negativo")
	}

	caixa := &model.Caixa{
		DataAbertura:  time.Now(),
		ValorAbertura: req.ValorAbertura,
		Status:        "aberto",
	}
	// No find-then-insert: the partial unique index makes the INSERT itself
	// the uniqueness check, so concurrent open requests cannot both win.
	if err := s.repo.Create(ctx, caixa); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Já existe um caixa aberto.")
		}
		return nil, err
	}

	resp := toCaixaResponse(caixa)
	return &resp, nil
}

// ── Fechar ────────────────────────────────────────────────────────────────────
// Point-in-time reconciliation: cash sales are summed over
// [dataAbertura, now] at the moment of closing; sales inserted afterwards
// can never retroactively alter a closed session.

func (s *caixaService) Fechar(ctx context.Context, req dto.FecharCaixaRequest) (*dto.CaixaResponse, error) {
	if req.ValorFechamento.IsNegative() {
		return nil, apierror.Validation("valorFechamento não pode ser negativo")
	}

	caixa, err := s.repo.FindAberto(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Nenhum caixa aberto encontrado.")
		}
		return nil, err
	}

	agora := time.Now()
	totalDinheiro, err := s.vendas.SumDinheiroBetween(ctx, caixa.DataAbertura, agora)
	if err != nil {
		return nil, err
	}

	esperado := caixa.ValorAbertura.Add(totalDinheiro)
	diferenca := req.ValorFechamento.Sub(esperado)

	valorFechamento := req.ValorFechamento
	caixa.DataFechamento = &agora
	caixa.ValorFechamento = &valorFechamento
	caixa.TotalVendasDinheiro = &totalDinheiro
	caixa.Diferenca = &diferenca
	caixa.Status = "fechado"

	// Guarded write: a concurrent close that committed between our read and
	// this point leaves zero rows affected instead of rewriting the record.
	if err := s.repo.Fechar(ctx, caixa); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Nenhum caixa aberto encontrado.")
		}
		return nil, err
	}

	resp := toCaixaResponse(caixa)
	return &resp, nil
}

// ── Aberto ────────────────────────────────────────────────────────────────────

func (s *caixaService) Aberto(ctx context.Context) (*dto.CaixaResponse, error) {
	caixa, err := s.repo.FindAberto(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Nenhum caixa aberto no momento.")
		}
		return nil, err
	}
	resp := toCaixaResponse(caixa)
	return &resp, nil
}

// ── Listar ────────────────────────────────────────────────────────────────────

func (s *caixaService) Listar(ctx context.Context) ([]dto.CaixaResponse, error) {
	caixas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CaixaResponse, 0, len(caixas))
	for i := range caixas {
		out = append(out, toCaixaResponse(&caixas[i]))
	}
	return out, nil
}

func toCaixaResponse(c *model.Caixa) dto.CaixaResponse {
	resp := dto.CaixaResponse{
		ID:            c.ID.String(),
		DataAbertura:  c.DataAbertura.Format(time.RFC3339),
		ValorAbertura: c.ValorAbertura,
		Status:        c.Status,
	}
	if c.DataFechamento != nil {
		t := c.DataFechamento.Format(time.RFC3339)
		resp.DataFechamento = &t
	}
	resp.ValorFechamento = c.ValorFechamento
	resp.TotalVendasDinheiro = c.TotalVendasDinheiro
	resp.Diferenca = c.Diferenca
	return resp
}
