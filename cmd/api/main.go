package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/eternalrights/ssmp-go/internal/config"
	"github.com/eternalrights/ssmp-go/internal/handler"
	"github.com/eternalrights/ssmp-go/internal/middleware"
	"github.com/eternalrights/ssmp-go/internal/repository"
	"github.com/eternalrights/ssmp-go/internal/service"
	"github.com/eternalrights/ssmp-go/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Initialize DB and application routes if the database is available.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — application routes disabled", "error", err)
	} else {
		if err := repository.Migrate(db); err != nil {
			slog.Error("schema migration failed", "error", err)
			os.Exit(1)
		}

		userRepo := repository.NewUserRepository(db)
		drugRepo := repository.NewDrugRepository(db)

		authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)

		drugService := service.NewDrugService(drugRepo, userRepo)
		drugHandler := handler.NewDrugHandler(drugService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/auth/user/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret, cfg.TokenHeader))

			r.Get("/drugs", drugHandler.HandleList)
			r.Get("/drugs/{id}", drugHandler.HandleGetByID)
			r.Get("/drugs/{id}/inventory-records", drugHandler.HandleInventoryRecords)

			if cfg.S3AccessKey == "" {
				slog.Warn("no object storage credentials — upload route disabled")
			} else {
				uploader, err := storage.NewS3Uploader(context.Background(), cfg)
				if err != nil {
					slog.Error("object storage init failed", "error", err)
					os.Exit(1)
				}
				uploadHandler := handler.NewUploadHandler(uploader)
				r.Post("/upload", uploadHandler.HandleUpload)
			}
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
