package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gamestorehq/gamestore/internal/middleware"
)

// Logging re-exports the shared request-logging middleware
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// RequestID re-exports the shared request-ID middleware
func RequestID() func(http.Handler) http.Handler {
	return middleware.RequestID()
}
