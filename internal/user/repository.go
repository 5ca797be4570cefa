package user

import (
	"context"
	"database/sql"

	"tienda-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	FindByName(ctx context.Context, name string) (User, error)
	Create(ctx context.Context, name, passwordHash, role string) (User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByName(ctx context.Context, name string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		"SELECT user_id, user_name, user_password, user_role FROM users WHERE user_name = $1",
		name,
	).Scan(&u.ID, &u.Name, &u.Password, &u.Role)

	return u, err
}

func (r *repository) Create(ctx context.Context, name, passwordHash, role string) (User, error) {
	log := logger.FromCtx(ctx)

	var u User
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (user_name, user_password, user_role) VALUES ($1, $2, $3) RETURNING user_id, user_name, user_password, user_role",
		name, passwordHash, role,
	).Scan(&u.ID, &u.Name, &u.Password, &u.Role)

	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("user_name", name),
			zap.Error(err),
		)
	}

	return u, err
}
