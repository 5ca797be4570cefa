package product

import (
	"context"

	"tienda-be/internal/apperror"
	"tienda-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, req CreateRequest) (Product, error)
	UpdateStock(ctx context.Context, id, stock int) error
	UpdateName(ctx context.Context, id int, name string) error
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (Product, error) {
	if req.Stock < 0 {
		return Product{}, apperror.BadRequest("stock cannot be negative")
	}

	p, err := s.repo.Create(ctx, Product{
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		return Product{}, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.Int("product_id", p.ID),
		zap.String("product_name", p.Name),
	)

	return p, nil
}

// UpdateStock overwrites the stock value unconditionally; the last writer
// wins.
func (s *service) UpdateStock(ctx context.Context, id, stock int) error {
	if stock < 0 {
		return apperror.BadRequest("stock cannot be negative")
	}

	found, err := s.repo.UpdateStock(ctx, id, stock)
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound("product not found")
	}

	return nil
}

func (s *service) UpdateName(ctx context.Context, id int, name string) error {
	found, err := s.repo.UpdateName(ctx, id, name)
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound("product not found")
	}

	return nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound("product not found")
	}

	logger.FromCtx(ctx).Info("product deleted", zap.Int("product_id", id))
	return nil
}
