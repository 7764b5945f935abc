package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Gabriel-barbos/SistemaDeVendas/internal/apierror"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/dto"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/model"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbrirCaixa(t *testing.T) {
	repo := newFakeCaixaRepo()
	svc := service.NewCaixaService(repo, newFakeVendaRepo())

	resp, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{
		ValorAbertura: decimal.NewFromFloat(100),
	})

	require.NoError(t, err)
	assert.Equal(t, "aberto", resp.Status)
	assert.Equal(t, "100", resp.ValorAbertura.String())
	assert.Nil(t, resp.DataFechamento)
	assert.Nil(t, resp.ValorFechamento)
	assert.Nil(t, resp.Diferenca)
}

func TestAbrirCaixaValorNegativo(t *testing.T) {
	svc := service.NewCaixaService(newFakeCaixaRepo(), newFakeVendaRepo())

	_, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{
		ValorAbertura: decimal.NewFromFloat(-1),
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.StatusOf(err))
}

func TestAbrirCaixaDuplicado(t *testing.T) {
	repo := newFakeCaixaRepo()
	svc := service.NewCaixaService(repo, newFakeVendaRepo())

	_, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{
		ValorAbertura: decimal.NewFromFloat(50),
	})
	require.NoError(t, err)

	// Second open while the first session is still aberto
	_, err = svc.Abrir(context.Background(), dto.AbrirCaixaRequest{
		ValorAbertura: decimal.NewFromFloat(80),
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "Já existe um caixa aberto")
	assert.Equal(t, http.StatusConflict, apierror.StatusOf(err))
	assert.Len(t, repo.caixas, 1)
}

func TestFecharCaixaSemAberto(t *testing.T) {
	svc := service.NewCaixaService(newFakeCaixaRepo(), newFakeVendaRepo())

	_, err := svc.Fechar(context.Background(), dto.FecharCaixaRequest{
		ValorFechamento: decimal.NewFromFloat(100),
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "Nenhum caixa aberto encontrado")
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestFecharCaixaReconciliacao(t *testing.T) {
	caixas := newFakeCaixaRepo()
	vendas := newFakeVendaRepo()
	svc := service.NewCaixaService(caixas, vendas)

	_, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{
		ValorAbertura: decimal.NewFromFloat(100),
	})
	require.NoError(t, err)

	// Cash sales 30 + 45 and a card sale 20 during the session. Only the
	// cash sales enter the expected drawer total.
	agora := time.Now()
	vendas.vendas = append(vendas.vendas,
		model.Venda{ID: uuid.New(), Total: decimal.NewFromFloat(30), MetodoPagamento: "dinheiro", CreatedAt: agora},
		model.Venda{ID: uuid.New(), Total: decimal.NewFromFloat(45), MetodoPagamento: "dinheiro", CreatedAt: agora},
		model.Venda{ID: uuid.New(), Total: decimal.NewFromFloat(20), MetodoPagamento: "cartao", CreatedAt: agora},
	)

	// Declared 180 vs expected 100 + 75 = 175 → surplus of 5
	resp, err := svc.Fechar(context.Background(), dto.FecharCaixaRequest{
		ValorFechamento: decimal.NewFromFloat(180),
	})
	require.NoError(t, err)

	assert.Equal(t, "fechado", resp.Status)
	require.NotNil(t, resp.TotalVendasDinheiro)
	assert.Equal(t, "75", resp.TotalVendasDinheiro.String())
	require.NotNil(t, resp.Diferenca)
	assert.Equal(t, "5", resp.Diferenca.String())
	require.NotNil(t, resp.ValorFechamento)
	assert.Equal(t, "180", resp.ValorFechamento.String())
	require.NotNil(t, resp.DataFechamento)
}

func TestFecharCaixaValorNegativo(t *testing.T) {
	svc := service.NewCaixaService(newFakeCaixaRepo(), newFakeVendaRepo())

	_, err := svc.Fechar(context.Background(), dto.FecharCaixaRequest{
		ValorFechamento: decimal.NewFromFloat(-10),
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.StatusOf(err))
}

func TestVendaPosteriorNaoAlteraCaixaFechado(t *testing.T) {
	// Reconciliation is point-in-time: sales recorded after the close must
	// not change the stored totals of the closed session.
	caixas := newFakeCaixaRepo()
	vendas := newFakeVendaRepo()
	svc := service.NewCaixaService(caixas, vendas)

	_, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{
		ValorAbertura: decimal.NewFromFloat(100),
	})
	require.NoError(t, err)

	vendas.vendas = append(vendas.vendas, model.Venda{
		ID: uuid.New(), Total: decimal.NewFromFloat(75), MetodoPagamento: "dinheiro", CreatedAt: time.Now(),
	})

	resp, err := svc.Fechar(context.Background(), dto.FecharCaixaRequest{
		ValorFechamento: decimal.NewFromFloat(175),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.TotalVendasDinheiro)
	assert.Equal(t, "75", resp.TotalVendasDinheiro.String())

	// A later cash sale leaves the closed record untouched.
	vendas.vendas = append(vendas.vendas, model.Venda{
		ID: uuid.New(), Total: decimal.NewFromFloat(500), MetodoPagamento: "dinheiro", CreatedAt: time.Now().Add(time.Hour),
	})
	fechado := caixas.caixas[0]
	require.NotNil(t, fechado.TotalVendasDinheiro)
	assert.Equal(t, "75", fechado.TotalVendasDinheiro.String())
	assert.Equal(t, "0", fechado.Diferenca.String())
}

func TestCaixaAbertoConsulta(t *testing.T) {
	caixas := newFakeCaixaRepo()
	svc := service.NewCaixaService(caixas, newFakeVendaRepo())

	// No session yet
	_, err := svc.Aberto(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))

	aberto, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{
		ValorAbertura: decimal.NewFromFloat(42),
	})
	require.NoError(t, err)

	// Consulting twice returns the same session, without side effects.
	primeiro, err := svc.Aberto(context.Background())
	require.NoError(t, err)
	segundo, err := svc.Aberto(context.Background())
	require.NoError(t, err)
	assert.Equal(t, aberto.ID, primeiro.ID)
	assert.Equal(t, primeiro.ID, segundo.ID)
	assert.Len(t, caixas.caixas, 1)
}

func TestListarCaixasMaisRecentePrimeiro(t *testing.T) {
	caixas := newFakeCaixaRepo()
	vendas := newFakeVendaRepo()
	svc := service.NewCaixaService(caixas, vendas)

	_, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{ValorAbertura: decimal.NewFromFloat(10)})
	require.NoError(t, err)
	// Push the first opening into the past so ordering is deterministic.
	caixas.caixas[0].DataAbertura = time.Now().Add(-time.Hour)

	_, err = svc.Fechar(context.Background(), dto.FecharCaixaRequest{ValorFechamento: decimal.NewFromFloat(10)})
	require.NoError(t, err)

	segundo, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{ValorAbertura: decimal.NewFromFloat(20)})
	require.NoError(t, err)

	lista, err := svc.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, segundo.ID, lista[0].ID)
	assert.Equal(t, "aberto", lista[0].Status)
	assert.Equal(t, "fechado", lista[1].Status)
}

// staleCaixaRepo serves a snapshot taken before a concurrent close
// committed, so the second closer sees the session as still open.
type staleCaixaRepo struct {
	*fakeCaixaRepo
	leitura *model.Caixa
}

func (r *staleCaixaRepo) FindAberto(context.Context) (*model.Caixa, error) {
	cp := *r.leitura
	return &cp, nil
}

func TestFecharCaixaConcorrente(t *testing.T) {
	// Two close requests race: both read the open session, the first commit
	// wins, and the second must fail instead of rewriting the closed record.
	caixas := newFakeCaixaRepo()
	vendas := newFakeVendaRepo()
	svc := service.NewCaixaService(caixas, vendas)

	_, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{
		ValorAbertura: decimal.NewFromFloat(100),
	})
	require.NoError(t, err)

	aberto, err := caixas.FindAberto(context.Background())
	require.NoError(t, err)

	_, err = svc.Fechar(context.Background(), dto.FecharCaixaRequest{
		ValorFechamento: decimal.NewFromFloat(175),
	})
	require.NoError(t, err)

	tardio := service.NewCaixaService(
		&staleCaixaRepo{fakeCaixaRepo: caixas, leitura: aberto}, vendas)
	_, err = tardio.Fechar(context.Background(), dto.FecharCaixaRequest{
		ValorFechamento: decimal.NewFromFloat(999),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))

	// The first close's reconciliation stands untouched.
	fechado := caixas.caixas[0]
	assert.Equal(t, "fechado", fechado.Status)
	require.NotNil(t, fechado.ValorFechamento)
	assert.Equal(t, "175", fechado.ValorFechamento.String())
}

func TestReabrirAposFechar(t *testing.T) {
	caixas := newFakeCaixaRepo()
	svc := service.NewCaixaService(caixas, newFakeVendaRepo())

	_, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{ValorAbertura: decimal.NewFromFloat(10)})
	require.NoError(t, err)
	_, err = svc.Fechar(context.Background(), dto.FecharCaixaRequest{ValorFechamento: decimal.NewFromFloat(10)})
	require.NoError(t, err)

	// Closing frees the uniqueness slot for a new session.
	_, err = svc.Abrir(context.Background(), dto.AbrirCaixaRequest{ValorAbertura: decimal.NewFromFloat(30)})
	require.NoError(t, err)
}
