package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"tienda-be/internal/apperror"
	"tienda-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)
	List(ctx context.Context) ([]View, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// shortage is one understocked product discovered during the pre-check.
type shortage struct {
	ProductID int
	Name      string
}

// Create validates the requested items against current stock and then commits
// the order, its items and the decremented stock in one transaction.
//
// Validation runs in two passes: quantities fail fast on the first offending
// item, while insufficient stock is accumulated across all items so the
// caller sees every shortage at once. The commit phase reuses the stock
// values read during the pre-check; a concurrent order against the same
// product between the two phases can make both pass on stale stock.
func (s *service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	log := logger.FromCtx(ctx)

	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, apperror.BadRequest(
				"quantity for product [%d] must be greater than zero", item.ProductID)
		}
	}

	var (
		lines     []CommitLine
		shortages []shortage
	)

	for _, item := range req.Items {
		info, err := s.repo.GetProductInfo(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, apperror.NotFound("product with id [%d] not found", item.ProductID)
			}
			log.Error("failed to read product for order",
				zap.Int("product_id", item.ProductID),
				zap.Error(err),
			)
			return nil, err
		}

		if info.Stock < item.Quantity {
			shortages = append(shortages, shortage{ProductID: item.ProductID, Name: info.Name})
			continue
		}

		lines = append(lines, CommitLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			NewStock:  info.Stock - item.Quantity,
		})
	}

	if len(shortages) > 0 {
		return nil, apperror.BadRequest(
			"not enough stock to create the order: %s", formatShortages(shortages))
	}

	orderID, err := s.repo.CreateOrder(ctx, time.Now(), lines)
	if err != nil {
		return nil, err
	}

	log.Info("order created",
		zap.Int("order_id", orderID),
		zap.Int("item_count", len(req.Items)),
	)

	return &CreateResult{
		OrderID: orderID,
		Message: "order created successfully",
		Items:   req.Items,
	}, nil
}

func (s *service) List(ctx context.Context) ([]View, error) {
	return s.repo.ListOrders(ctx)
}

func formatShortages(shortages []shortage) string {
	parts := make([]string, len(shortages))
	for i, sh := range shortages {
		parts[i] = fmt.Sprintf("(%d, %s)", sh.ProductID, sh.Name)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
