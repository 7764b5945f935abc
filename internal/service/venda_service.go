package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gabriel-barbos/SistemaDeVendas/internal/apierror"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/dto"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/model"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VendaService validates a sale against current inventory, atomically
// reserves stock and persists the sale record.
type VendaService interface {
	Registrar(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error)
	Listar(ctx context.Context) ([]dto.VendaResponse, error)
}

type vendaService struct {
	repo     repository.VendaRepository
	produtos repository.ProdutoRepository
	caixas   repository.CaixaRepository
}

func NewVendaService(
	repo repository.VendaRepository,
	produtos repository.ProdutoRepository,
	caixas repository.CaixaRepository,
) VendaService {
	return &vendaService{repo: repo, produtos: produtos, caixas: caixas}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Registrar ─────────────────────────────────────────────────────────────────
// Single all-or-nothing transaction:
//  1. Require an open caixa (checkout is blocked otherwise).
//  2. Per item, in request order: resolve the product, decrement stock with an
//     atomic conditional UPDATE, snapshot the current price into the line item.
//  3. Insert the sale with total = Σ quantidade × preço within the same tx.
// Any item failing rolls back every decrement — no partial sale survives,
// including when the client disconnects mid-request.

func (s *vendaService) Registrar(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error) {
	if _, err := s.caixas.FindAberto(ctx); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Conflict("Nenhum caixa aberto. Abra o caixa antes de registrar vendas.")
		}
		return nil, err
	}

	ids := make([]uuid.UUID, len(req.Itens))
	for i, item := range req.Itens {
		pid, err := uuid.Parse(item.ProdutoID)
		if err != nil {
			return nil, apierror.Validation(fmt.Sprintf("productId inválido: %s", item.ProdutoID))
		}
		ids[i] = pid
	}

	// Resolved per-item product data for the response — populated inside the tx.
	type linha struct {
		nome      string
		categoria string
	}
	linhas := make([]linha, len(req.Itens))

	var detalhes *string
	if req.Pagamento.Detalhes != "" {
		d := req.Pagamento.Detalhes
		detalhes = &d
	}

	venda := model.Venda{
		MetodoPagamento:   req.Pagamento.Metodo,
		DetalhesPagamento: detalhes,
		CreatedAt:         time.Now(),
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		total := decimal.Zero
		venda.Itens = venda.Itens[:0]

		for i, item := range req.Itens {
			produto, err := s.produtos.FindByIDTx(tx, ids[i])
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apierror.NotFound(fmt.Sprintf("Produto com ID %s não encontrado", item.ProdutoID))
				}
				return err
			}

			if err := s.produtos.DescontarEstoqueTx(tx, ids[i], item.Quantidade); err != nil {
				if errors.Is(err, repository.ErrEstoqueInsuficiente) {
					return apierror.InsufficientStock(fmt.Sprintf("Estoque insuficiente para o produto %s", produto.Nome))
				}
				return err
			}

			total = total.Add(produto.Preco.Mul(decimal.NewFromInt(int64(item.Quantidade))))
			venda.Itens = append(venda.Itens, model.VendaItem{
				ProdutoID:     ids[i],
				Quantidade:    item.Quantidade,
				PrecoUnitario: produto.Preco,
			})
			linhas[i] = linha{nome: produto.Nome, categoria: produto.Categoria}
		}

		venda.Total = total
		return s.repo.Create(ctx, tx, &venda)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := vendaToResponse(&venda)
	for i := range resp.Itens {
		resp.Itens[i].Nome = linhas[i].nome
		resp.Itens[i].Categoria = linhas[i].categoria
	}
	return resp, nil
}

// ── Listar ────────────────────────────────────────────────────────────────────

func (s *vendaService) Listar(ctx context.Context) ([]dto.VendaResponse, error) {
	vendas, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendaResponse, 0, len(vendas))
	for i := range vendas {
		out = append(out, *vendaToResponse(&vendas[i]))
	}
	return out, nil
}

func vendaToResponse(v *model.Venda) *dto.VendaResponse {
	itens := make([]dto.ItemVendaResponse, 0, len(v.Itens))
	for _, item := range v.Itens {
		it := dto.ItemVendaResponse{
			ProdutoID:  item.ProdutoID.String(),
			Quantidade: item.Quantidade,
			// Snapshot price: independent of later product price changes.
			Preco: item.PrecoUnitario,
		}
		if item.Produto != nil {
			it.Nome = item.Produto.Nome
			it.Categoria = item.Produto.Categoria
		}
		itens = append(itens, it)
	}

	detalhes := ""
	if v.DetalhesPagamento != nil {
		detalhes = *v.DetalhesPagamento
	}
	return &dto.VendaResponse{
		ID:    v.ID.String(),
		Itens: itens,
		Total: v.Total,
		Pagamento: dto.PagamentoResponse{
			Metodo:   v.MetodoPagamento,
			Detalhes: detalhes,
		},
		Data: v.CreatedAt.Format(time.RFC3339),
	}
}
