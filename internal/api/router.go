package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gamestorehq/gamestore/internal/api/handler"
	"github.com/gamestorehq/gamestore/internal/api/middleware"
	"github.com/gamestorehq/gamestore/internal/services/auth"
	"github.com/gamestorehq/gamestore/internal/services/catalog"
	"github.com/gamestorehq/gamestore/internal/services/order"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	CatalogService *catalog.Service
	OrderService   *order.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	gameHandler := handler.NewGameHandler(cfg.CatalogService)
	orderHandler := handler.NewOrderHandler(cfg.OrderService)

	// Create middleware
	authMW := middleware.Auth(cfg.AuthService)
	optionalAuthMW := middleware.OptionalAuth(cfg.AuthService)
	adminMW := middleware.RequireAdmin(cfg.AuthService)

	// Common middleware for every route
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(cfg.Logger))

	// Auth routes (public)
	r.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	r.Handle("/me", authMW(http.HandlerFunc(authHandler.Me))).Methods(http.MethodGet)

	// Catalog routes (public reads)
	r.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)

	// Order routes; placement works for anonymous callers too
	r.Handle("/orders", optionalAuthMW(http.HandlerFunc(orderHandler.Create))).Methods(http.MethodPost)
	r.Handle("/orders/mine", authMW(http.HandlerFunc(orderHandler.Mine))).Methods(http.MethodGet)

	// Admin routes: authentication first, then the role gate, so missing
	// credentials yield 401 and a valid non-admin token yields 403
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(authMW)
	admin.Use(adminMW)
	admin.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/games/{id}", gameHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/orders", orderHandler.AdminList).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}/status", orderHandler.UpdateStatus).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
