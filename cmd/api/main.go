package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frankit/internal/auth"
	"frankit/internal/catalog"
	"frankit/internal/config"
	"frankit/internal/database"
	"frankit/internal/handler"
	"frankit/internal/repository"
	"frankit/internal/router"
	"frankit/internal/service"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting frankit API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(logger)
	productRepo := repository.NewProductRepository(logger)
	optionRepo := repository.NewProductOptionRepository(logger)
	detailRepo := repository.NewOptionDetailRepository(logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	tx := database.NewTransactor(pool, logger)
	tokens := auth.NewTokenProvider(cfg.Auth.JWTKey(), cfg.Auth.JWTExpiration)
	hasher := auth.NewPasswordHasher(bcrypt.DefaultCost)

	// Initialize services
	productService := service.NewProductService(tx, productRepo, orderRepo, logger)
	optionService := service.NewProductOptionService(tx, productRepo, optionRepo, detailRepo, orderRepo, logger)
	detailService := service.NewOptionDetailService(tx, optionRepo, detailRepo, orderRepo, logger)
	userService := service.NewUserService(tx, userRepo, hasher, logger)
	authService := service.NewAuthService(tx, userRepo, hasher, tokens, logger)

	if len(cfg.Catalog.SeedFiles) > 0 {
		if err := seedCatalog(ctx, cfg, productService, logger); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	productHandler := handler.NewProductHandler(productService, logger)
	optionHandler := handler.NewOptionHandler(optionService, logger)
	detailHandler := handler.NewDetailHandler(detailService, logger)

	// Initialize router
	mux := router.New(authHandler, userHandler, productHandler, optionHandler, detailHandler, tokens, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// seedCatalog imports the configured seed files into an empty catalogue.
func seedCatalog(ctx context.Context, cfg *config.Config, products service.ProductService, logger zerolog.Logger) error {
	existing, err := products.GetAll(ctx, 0, 1)
	if err != nil {
		return err
	}
	if existing.TotalElements > 0 {
		logger.Info().
			Int64("products", existing.TotalElements).
			Msg("catalog already populated, skipping seed files")
		return nil
	}

	// Initialize catalog loader with S3 and local fallback
	var s3Loader catalog.Loader
	if cfg.S3.Enabled {
		s3Loader, err = catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			s3Loader = nil
		}
	} else {
		logger.Info().Msg("using local file system for catalog files (S3 disabled)")
	}

	loader := catalog.NewFallbackLoader(s3Loader, catalog.NewFileLoader(logger), cfg.S3.Prefix, logger)

	_, err = catalog.NewImporter(loader, products, logger).Import(ctx, cfg.Catalog.SeedFiles...)
	return err
}
