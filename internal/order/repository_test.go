package order

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetProductInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT product_name, product_stock FROM products WHERE product_id = \$1`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"product_name", "product_stock"}).AddRow("mango", 10))

		info, err := repo.GetProductInfo(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, ProductInfo{Name: "mango", Stock: 10}, info)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT product_name, product_stock`).
			WithArgs(99).
			WillReturnError(sql.ErrNoRows)

		_, err = repo.GetProductInfo(ctx, 99)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestRepository_CreateOrder(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	lines := []CommitLine{
		{ProductID: 1, Quantity: 3, NewStock: 7},
		{ProductID: 2, Quantity: 4, NewStock: 0},
	}

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders \(order_date\) VALUES \(\$1\) RETURNING order_id`).
			WithArgs(now).
			WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(11))

		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs(11, 1, 3).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`UPDATE products SET product_stock = \$1 WHERE product_id = \$2`).
			WithArgs(7, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs(11, 2, 4).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectExec(`UPDATE products SET product_stock = \$1 WHERE product_id = \$2`).
			WithArgs(0, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectCommit()

		orderID, err := repo.CreateOrder(ctx, now, lines)
		assert.NoError(t, err)
		assert.Equal(t, 11, orderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackOnItemInsertError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(now).
			WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(11))
		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs(11, 1, 3).
			WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		_, err = repo.CreateOrder(ctx, now, lines)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackOnStockUpdateError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(now).
			WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(11))
		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs(11, 1, 3).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`UPDATE products SET product_stock`).
			WithArgs(7, 1).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		_, err = repo.CreateOrder(ctx, now, lines)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BeginError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin().WillReturnError(errors.New("no connection"))

		_, err = repo.CreateOrder(ctx, now, lines)
		assert.Error(t, err)
	})

	t.Run("EmptyOrderCommits", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(now).
			WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(12))
		mock.ExpectCommit()

		orderID, err := repo.CreateOrder(ctx, now, nil)
		assert.NoError(t, err)
		assert.Equal(t, 12, orderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("GroupsRowsByOrder", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		date1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		date2 := time.Date(2025, 3, 2, 11, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{
			"order_id", "order_date", "product_id", "quantity", "product_name", "product_price",
		}).
			AddRow(1, date1, 1, 2, "mango", 2.5).
			AddRow(1, date1, 2, 1, "papaya", 3.0).
			AddRow(2, date2, 1, 4, "mango", 2.5)

		mock.ExpectQuery(`(?s)SELECT o.order_id, o.order_date, .* FROM orders o\s+JOIN order_items oi`).
			WillReturnRows(rows)

		views, err := repo.ListOrders(ctx)
		require.NoError(t, err)
		require.Len(t, views, 2)

		assert.Equal(t, 1, views[0].OrderID)
		assert.Len(t, views[0].Items, 2)
		assert.InDelta(t, 8.0, views[0].TotalPrice, 1e-9)

		assert.Equal(t, 2, views[1].OrderID)
		assert.Len(t, views[1].Items, 1)
		assert.InDelta(t, 10.0, views[1].TotalPrice, 1e-9)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT o.order_id`).WillReturnError(errors.New("db error"))

		_, err = repo.ListOrders(ctx)
		assert.Error(t, err)
	})
}
