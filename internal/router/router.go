package router

import (
	"net/http"

	"frankit/internal/handler"
	"frankit/internal/middleware"

	"github.com/rs/zerolog"
)

// PublicRoutes are the API routes reachable without a bearer token.
var PublicRoutes = []middleware.PublicRoute{
	{Method: http.MethodPost, Path: "/api/auth/login"},
	{Method: http.MethodPost, Path: "/api/users/register"},
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	optionHandler *handler.OptionHandler,
	detailHandler *handler.DetailHandler,
	tokens middleware.TokenParser,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", handler.Health)

	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/users/register", userHandler.Register)

	mux.HandleFunc("POST /api/products", productHandler.Create)
	mux.HandleFunc("GET /api/products", productHandler.GetAll)
	mux.HandleFunc("GET /api/products/{id}", productHandler.GetByID)
	mux.HandleFunc("PUT /api/products/{id}", productHandler.Update)
	mux.HandleFunc("DELETE /api/products/{id}", productHandler.Delete)
	mux.HandleFunc("PUT /api/products/{id}/activate", productHandler.Activate)
	mux.HandleFunc("PUT /api/products/{id}/deactivate", productHandler.Deactivate)

	mux.HandleFunc("POST /api/product-options/products/{productId}", optionHandler.Create)
	mux.HandleFunc("GET /api/product-options/products/{productId}", optionHandler.ListByProduct)
	mux.HandleFunc("GET /api/product-options/products/{productId}/active", optionHandler.ListActiveByProduct)
	mux.HandleFunc("PUT /api/product-options/{optionId}", optionHandler.Update)
	mux.HandleFunc("DELETE /api/product-options/{optionId}", optionHandler.Delete)
	mux.HandleFunc("PUT /api/product-options/{optionId}/activate", optionHandler.Activate)
	mux.HandleFunc("PUT /api/product-options/{optionId}/deactivate", optionHandler.Deactivate)

	mux.HandleFunc("POST /api/option-details/options/{optionId}", detailHandler.Create)
	mux.HandleFunc("GET /api/option-details/options/{optionId}", detailHandler.ListByOption)
	mux.HandleFunc("GET /api/option-details/options/{optionId}/active", detailHandler.ListActiveByOption)
	mux.HandleFunc("PUT /api/option-details/{detailId}", detailHandler.Update)
	mux.HandleFunc("DELETE /api/option-details/{detailId}", detailHandler.Delete)
	mux.HandleFunc("PUT /api/option-details/{detailId}/activate", detailHandler.Activate)
	mux.HandleFunc("PUT /api/option-details/{detailId}/deactivate", detailHandler.Deactivate)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> JWTAuth
	var handler http.Handler = mux
	handler = middleware.JWTAuth(tokens, PublicRoutes, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
