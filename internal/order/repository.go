package order

import (
	"context"
	"database/sql"
	"time"

	"tienda-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetProductInfo(ctx context.Context, productID int) (ProductInfo, error)
	CreateOrder(ctx context.Context, createdAt time.Time, lines []CommitLine) (int, error)
	ListOrders(ctx context.Context) ([]View, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetProductInfo(ctx context.Context, productID int) (ProductInfo, error) {
	var info ProductInfo
	err := r.db.QueryRowContext(ctx,
		"SELECT product_name, product_stock FROM products WHERE product_id = $1",
		productID,
	).Scan(&info.Name, &info.Stock)

	return info, err
}

// CreateOrder writes the order header, its items and the decremented stock
// values inside one transaction. Either every row lands or none do.
func (r *repository) CreateOrder(ctx context.Context, createdAt time.Time, lines []CommitLine) (int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "CreateOrder"),
		zap.Int("item_count", len(lines)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return 0, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("transaction rolled back")
			}
		}
	}()

	var orderID int
	err = tx.QueryRowContext(ctx,
		"INSERT INTO orders (order_date) VALUES ($1) RETURNING order_id",
		createdAt,
	).Scan(&orderID)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return 0, err
	}

	for _, line := range lines {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, product_id, quantity) VALUES ($1, $2, $3)",
			orderID, line.ProductID, line.Quantity,
		)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int("product_id", line.ProductID),
				zap.Error(err),
			)
			return 0, err
		}

		_, err = tx.ExecContext(ctx,
			"UPDATE products SET product_stock = $1 WHERE product_id = $2",
			line.NewStock, line.ProductID,
		)
		if err != nil {
			log.Error("failed to update product stock",
				zap.Int("product_id", line.ProductID),
				zap.Error(err),
			)
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return 0, err
	}

	committed = true
	log.Info("order transaction committed", zap.Int("order_id", orderID))

	return orderID, nil
}

// ListOrders joins orders, items and products and groups rows into order
// views. The total is computed from the current product price.
func (r *repository) ListOrders(ctx context.Context) ([]View, error) {
	log := logger.FromCtx(ctx)

	rows, err := r.db.QueryContext(ctx, `
		SELECT o.order_id, o.order_date, oi.product_id, oi.quantity, p.product_name, p.product_price
		FROM orders o
		JOIN order_items oi ON o.order_id = oi.order_id
		JOIN products p ON oi.product_id = p.product_id
	`)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var views []View
	index := make(map[int]int)

	for rows.Next() {
		var (
			orderID   int
			orderDate time.Time
			item      ViewItem
		)
		if err := rows.Scan(&orderID, &orderDate, &item.ProductID, &item.Quantity, &item.ProductName, &item.Price); err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}

		i, seen := index[orderID]
		if !seen {
			views = append(views, View{OrderID: orderID, OrderDate: orderDate})
			i = len(views) - 1
			index[orderID] = i
		}

		views[i].Items = append(views[i].Items, item)
		views[i].TotalPrice += item.Price * float64(item.Quantity)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}

	return views, nil
}
