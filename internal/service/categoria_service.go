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

// CategoriaService manages the open category set referenced by products.
type CategoriaService interface {
	Criar(ctx context.Context, req dto.CategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.CategoriaRequest) (*dto.CategoriaResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) Criar(ctx context.Context, req dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria := &model.Categoria{Nome: req.Nome}
	if err := s.repo.Create(ctx, categoria); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict(fmt.Sprintf("Categoria %q já existe", req.Nome))
		}
		return nil, err
	}
	return &dto.CategoriaResponse{ID: categoria.ID.String(), Nome: categoria.Nome}, nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, dto.CategoriaResponse{ID: c.ID.String(), Nome: c.Nome})
	}
	return out, nil
}

func (s *categoriaService) Atualizar(ctx context.Context, id uuid.UUID, req dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Categoria não encontrada")
		}
		return nil, err
	}

	categoria.Nome = req.Nome
	if err := s.repo.Update(ctx, categoria); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict(fmt.Sprintf("Categoria %q já existe", req.Nome))
		}
		return nil, err
	}
	return &dto.CategoriaResponse{ID: categoria.ID.String(), Nome: categoria.Nome}, nil
}

func (s *categoriaService) Excluir(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound("Categoria não encontrada")
	}
	return err
}
