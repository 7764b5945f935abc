package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Gabriel-barbos/SistemaDeVendas/internal/dto"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/repository"

	"github.com/shopspring/decimal"
)

const topProdutosLimite = 10

// RelatorioService derives read-only dashboard views from the sales store.
// Every aggregation tolerates an empty store: zeros and empty slices, never
// an error.
type RelatorioService interface {
	Resumo(ctx context.Context) (*dto.ResumoDashboardResponse, error)
	TopProdutos(ctx context.Context) ([]dto.TopProdutoResponse, error)
	VendasPorPeriodo(ctx context.Context, periodo string) ([]dto.VendasPorPeriodoResponse, error)
	MetodosPagamento(ctx context.Context) ([]dto.MetodoPagamentoResponse, error)
}

type relatorioService struct {
	vendas repository.VendaRepository
}

func NewRelatorioService(vendas repository.VendaRepository) RelatorioService {
	return &relatorioService{vendas: vendas}
}

// ── Resumo ────────────────────────────────────────────────────────────────────

func (s *relatorioService) Resumo(ctx context.Context) (*dto.ResumoDashboardResponse, error) {
	agora := time.Now()
	inicioDia := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
	inicioMes := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())

	receitaTotal, pedidosTotal, err := s.vendas.ResumoDesde(ctx, nil)
	if err != nil {
		return nil, err
	}
	receitaHoje, pedidosHoje, err := s.vendas.ResumoDesde(ctx, &inicioDia)
	if err != nil {
		return nil, err
	}
	receitaMes, pedidosMes, err := s.vendas.ResumoDesde(ctx, &inicioMes)
	if err != nil {
		return nil, err
	}

	return &dto.ResumoDashboardResponse{
		ReceitaTotal: receitaTotal,
		ReceitaHoje:  receitaHoje,
		ReceitaMes:   receitaMes,
		PedidosTotal: pedidosTotal,
		PedidosHoje:  pedidosHoje,
		PedidosMes:   pedidosMes,
	}, nil
}

// ── TopProdutos ───────────────────────────────────────────────────────────────
// Groups all line items by product, summing quantity and revenue from the
// snapshot price on each item — never the live product price.

func (s *relatorioService) TopProdutos(ctx context.Context) ([]dto.TopProdutoResponse, error) {
	vendas, err := s.vendas.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]*dto.TopProdutoResponse)
	for _, venda := range vendas {
		for _, item := range venda.Itens {
			id := item.ProdutoID.String()
			entry, ok := stats[id]
			if !ok {
				entry = &dto.TopProdutoResponse{ProdutoID: id, ReceitaTotal: decimal.Zero}
				if item.Produto != nil {
					entry.Nome = item.Produto.Nome
					entry.Categoria = item.Produto.Categoria
				}
				stats[id] = entry
			}
			entry.QuantidadeTotal += item.Quantidade
			receita := item.PrecoUnitario.Mul(decimal.NewFromInt(int64(item.Quantidade)))
			entry.ReceitaTotal = entry.ReceitaTotal.Add(receita)
		}
	}

	out := make([]dto.TopProdutoResponse, 0, len(stats))
	for _, entry := range stats {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].QuantidadeTotal != out[j].QuantidadeTotal {
			return out[i].QuantidadeTotal > out[j].QuantidadeTotal
		}
		return out[i].ReceitaTotal.GreaterThan(out[j].ReceitaTotal)
	})
	if len(out) > topProdutosLimite {
		out = out[:topProdutosLimite]
	}
	return out, nil
}

// ── VendasPorPeriodo ──────────────────────────────────────────────────────────

func (s *relatorioService) VendasPorPeriodo(ctx context.Context, periodo string) ([]dto.VendasPorPeriodoResponse, error) {
	vendas, err := s.vendas.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*dto.VendasPorPeriodoResponse)
	for _, venda := range vendas {
		chave := chaveDoPeriodo(venda.CreatedAt, periodo)
		b, ok := buckets[chave]
		if !ok {
			b = &dto.VendasPorPeriodoResponse{Periodo: chave, TotalVendas: decimal.Zero}
			buckets[chave] = b
		}
		b.TotalVendas = b.TotalVendas.Add(venda.Total)
		b.TotalPedidos++
	}

	out := make([]dto.VendasPorPeriodoResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Periodo < out[j].Periodo })
	return out, nil
}

// chaveDoPeriodo truncates a timestamp into a sortable period bucket key.
// Unknown periods fall back to month, matching the endpoint default.
func chaveDoPeriodo(t time.Time, periodo string) string {
	switch periodo {
	case "day":
		return t.Format("2006-01-02")
	case "week":
		ano, semana := t.ISOWeek()
		return fmt.Sprintf("%d-%02d", ano, semana)
	case "year":
		return t.Format("2006")
	default: // month
		return t.Format("2006-01")
	}
}

// ── MetodosPagamento ──────────────────────────────────────────────────────────

func (s *relatorioService) MetodosPagamento(ctx context.Context) ([]dto.MetodoPagamentoResponse, error) {
	vendas, err := s.vendas.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]*dto.MetodoPagamentoResponse)
	for _, venda := range vendas {
		entry, ok := stats[venda.MetodoPagamento]
		if !ok {
			entry = &dto.MetodoPagamentoResponse{Metodo: venda.MetodoPagamento, ValorTotal: decimal.Zero}
			stats[venda.MetodoPagamento] = entry
		}
		entry.Quantidade++
		entry.ValorTotal = entry.ValorTotal.Add(venda.Total)
	}

	out := make([]dto.MetodoPagamentoResponse, 0, len(stats))
	for _, entry := range stats {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantidade != out[j].Quantidade {
			return out[i].Quantidade > out[j].Quantidade
		}
		return out[i].Metodo < out[j].Metodo
	})
	return out, nil
}
