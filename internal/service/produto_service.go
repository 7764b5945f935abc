package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gabriel-barbos/SistemaDeVendas/internal/apierror"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/dto"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/model"
	"github.com/Gabriel-barbos/SistemaDeVendas/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoService defines the business logic contract for the product catalog.
type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, filter dto.ProdutoFilter) ([]dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type produtoService struct {
	repo       repository.ProdutoRepository
	categorias repository.CategoriaRepository
}

func NewProdutoService(repo repository.ProdutoRepository, categorias repository.CategoriaRepository) ProdutoService {
	return &produtoService{repo: repo, categorias: categorias}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	if req.Preco.IsNegative() || req.Custo.IsNegative() {
		return nil, apierror.Validation("price e cost não podem ser negativos")
	}
	if err := s.validarCategoria(ctx, req.Categoria); err != nil {
		return nil, err
	}

	produto := &model.Produto{
		Nome:         req.Nome,
		Imagens:      req.Imagens,
		Preco:        req.Preco,
		Custo:        req.Custo,
		Quantidade:   req.Quantidade,
		Codigo:       req.Codigo,
		CodigoBarras: req.CodigoBarras,
		Categoria:    req.Categoria,
	}
	if err := s.repo.Create(ctx, produto); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict(fmt.Sprintf("Já existe um produto com o código de barras %s", req.CodigoBarras))
		}
		return nil, err
	}

	resp := toProdutoResponse(produto)
	return &resp, nil
}

func (s *produtoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	produto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Produto não encontrado")
		}
		return nil, err
	}
	resp := toProdutoResponse(produto)
	return &resp, nil
}

func (s *produtoService) Listar(ctx context.Context, filter dto.ProdutoFilter) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		out = append(out, toProdutoResponse(&produtos[i]))
	}
	return out, nil
}

// Atualizar merges only the fields present in the request — a quantity-only
// stock edit and a full product edit share this path.
func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Produto não encontrado")
		}
		return nil, err
	}

	if req.Nome != nil {
		produto.Nome = *req.Nome
	}
	if req.Imagens != nil {
		produto.Imagens = *req.Imagens
	}
	if req.Preco != nil {
		if req.Preco.IsNegative() {
			return nil, apierror.Validation("price não pode ser negativo")
		}
		produto.Preco = *req.Preco
	}
	if req.Custo != nil {
		if req.Custo.IsNegative() {
			return nil, apierror.Validation("cost não pode ser negativo")
		}
		produto.Custo = *req.Custo
	}
	if req.Quantidade != nil {
		if *req.Quantidade < 0 {
			return nil, apierror.Validation("quantity não pode ser negativa")
		}
		produto.Quantidade = *req.Quantidade
	}
	if req.Codigo != nil {
		produto.Codigo = *req.Codigo
	}
	if req.CodigoBarras != nil {
		produto.CodigoBarras = *req.CodigoBarras
	}
	if req.Categoria != nil {
		if err := s.validarCategoria(ctx, *req.Categoria); err != nil {
			return nil, err
		}
		produto.Categoria = *req.Categoria
	}

	if err := s.repo.Update(ctx, produto); err != nil {
		return nil, err
	}
	resp := toProdutoResponse(produto)
	return &resp, nil
}

func (s *produtoService) Excluir(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound("Produto não encontrado")
	}
	return err
}

// validarCategoria checks the open category set; products may only reference
// a category that exists in the categorias table.
func (s *produtoService) validarCategoria(ctx context.Context, nome string) error {
	if _, err := s.categorias.FindByNome(ctx, nome); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound(fmt.Sprintf("Categoria %q não encontrada", nome))
		}
		return err
	}
	return nil
}

func toProdutoResponse(p *model.Produto) dto.ProdutoResponse {
	return dto.ProdutoResponse{
		ID:           p.ID.String(),
		Nome:         p.Nome,
		Imagens:      p.Imagens,
		Preco:        p.Preco,
		Custo:        p.Custo,
		Quantidade:   p.Quantidade,
		Codigo:       p.Codigo,
		CodigoBarras: p.CodigoBarras,
		Categoria:    p.Categoria,
	}
}
