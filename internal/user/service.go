package user

import (
	"context"
	"database/sql"
	"errors"

	"tienda-be/internal/apperror"
	"tienda-be/internal/auth"
	"tienda-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, name, password, role string) (string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Login matches name, password and the requested role against the stored
// record. Each factor fails as its own 401.
func (s *service) Login(ctx context.Context, name, password, role string) (string, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("login: user not found", zap.String("user_name", name))
			return "", apperror.Unauthorized("user not found")
		}
		log.Error("login: failed to query user", zap.String("user_name", name), zap.Error(err))
		return "", err
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Warn("login: wrong password", zap.String("user_name", name))
		return "", apperror.Unauthorized("wrong password")
	}

	if role != u.Role {
		log.Warn("login: wrong role",
			zap.String("user_name", name),
			zap.String("requested_role", role),
		)
		return "", apperror.Unauthorized("wrong role")
	}

	token, err := auth.GenerateToken(u.Name, u.Role)
	if err != nil {
		log.Error("login: failed to generate token", zap.Error(err))
		return "", err
	}

	log.Info("login succeeded", zap.String("user_name", name))
	return token, nil
}
