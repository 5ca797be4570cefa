package main

import (
	"net/http"
	"os"

	"tienda-be/internal/config"
	"tienda-be/internal/db"
	"tienda-be/internal/httpx"
	"tienda-be/internal/logger"
	"tienda-be/internal/middleware"
	"tienda-be/internal/order"
	"tienda-be/internal/product"
	"tienda-be/internal/user"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if cfg.JWTSecret != "" {
		os.Setenv("JWT_SECRET", cfg.JWTSecret)
	}

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	router := chi.NewRouter()
	router.Use(logger.RequestIDMiddleware)
	router.Use(logger.LoggingMiddleware)
	router.Use(middleware.RateLimit)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Welcome to the product and order management API",
		})
	})

	router.Route("/internal/api/v1", func(r chi.Router) {
		user.NewHandler(userSvc).RegisterRoutes(r)
		product.NewHandler(productSvc).RegisterRoutes(r)
		order.NewHandler(orderSvc).RegisterRoutes(r)
	})

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
