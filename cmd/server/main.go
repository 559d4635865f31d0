package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MaxFerr/hair-cut-api/internal/config"
	"github.com/MaxFerr/hair-cut-api/internal/db"
	transport "github.com/MaxFerr/hair-cut-api/internal/http"
	"github.com/MaxFerr/hair-cut-api/internal/http/middleware"
	"github.com/MaxFerr/hair-cut-api/internal/mail"
	"github.com/MaxFerr/hair-cut-api/internal/repo"
	"github.com/MaxFerr/hair-cut-api/internal/services"
	"github.com/MaxFerr/hair-cut-api/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbConn, err := db.Connect(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.Migrate(ctx, cfg.DBURL); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	uploads, err := storage.NewStore(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		logger.Error("failed to prepare upload dir", "error", err)
		os.Exit(1)
	}

	userRepo := repo.NewUserRepo(dbConn.Pool, cfg.RequestTimeout)
	articleRepo := repo.NewArticleRepo(dbConn.Pool, cfg.RequestTimeout)
	commentRepo := repo.NewCommentRepo(dbConn.Pool, cfg.RequestTimeout)

	mailer := mail.NewSMTPSender(cfg.SMTP)
	if !cfg.SMTP.Enabled() {
		logger.Warn("SMTP is not configured; outgoing mail will fail")
	}

	authService := services.NewAuthService(userRepo, cfg.AdminID)
	resetService := services.NewResetService(userRepo, mailer, logger, cfg.ResetBaseURL, cfg.ResetTokenTTL)
	articleService := services.NewArticleService(articleRepo, uploads, authService, logger)
	commentService := services.NewCommentService(commentRepo, authService)
	contactService := services.NewContactService(mailer, cfg.ContactTo, logger)

	router := transport.NewRouter(transport.Dependencies{
		Config:      cfg,
		Auth:        authService,
		Reset:       resetService,
		Articles:    articleService,
		Comments:    commentService,
		Contact:     contactService,
		Uploads:     uploads,
		Logger:      logger,
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimitPerMinute),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErrors:
		logger.Error("http server stopped unexpectedly", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env != "prod" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
