package product

import (
	"context"
	"database/sql"

	"tienda-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	UpdateStock(ctx context.Context, id, stock int) (bool, error)
	UpdateName(ctx context.Context, id int, name string) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx)

	rows, err := r.db.QueryContext(ctx,
		"SELECT product_id, product_name, product_price, product_stock FROM products",
	)
	if err != nil {
		log.Error("db: failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int) (Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx,
		"SELECT product_id, product_name, product_price, product_stock FROM products WHERE product_id = $1",
		id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Stock)

	return p, err
}

func (r *repository) Create(ctx context.Context, p Product) (Product, error) {
	log := logger.FromCtx(ctx)

	err := r.db.QueryRowContext(ctx,
		"INSERT INTO products (product_name, product_price, product_stock) VALUES ($1, $2, $3) RETURNING product_id",
		p.Name, p.Price, p.Stock,
	).Scan(&p.ID)

	if err != nil {
		log.Error("db: failed to insert product",
			zap.String("product_name", p.Name),
			zap.Error(err),
		)
	}

	return p, err
}

func (r *repository) UpdateStock(ctx context.Context, id, stock int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE products SET product_stock = $1 WHERE product_id = $2",
		stock, id,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *repository) UpdateName(ctx context.Context, id int, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE products SET product_name = $1 WHERE product_id = $2",
		name, id,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

// Delete removes the product row. Historical order items keep referencing the
// deleted id.
func (r *repository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE product_id = $1", id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}
