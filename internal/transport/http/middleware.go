package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/kahvecikaan/product-registry/internal/domain"
)

type contextKey string

// ContextKeyAddProductRequest holds the validated domain.AddProductRequest.
const ContextKeyAddProductRequest contextKey = "add-product-request"

// Middleware struct holds dependencies for middleware functions
type Middleware struct {
	Logger    hclog.Logger
	Validator *domain.Validation
}

// NewMiddleware creates a new Middleware instance
func NewMiddleware(logger hclog.Logger, validator *domain.Validation) *Middleware {
	return &Middleware{
		Logger:    logger,
		Validator: validator,
	}
}

// LoggingMiddleware logs the incoming requests and responses
func (m *Middleware) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		m.Logger.Info("Incoming request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
		)

		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		m.Logger.Info("Completed request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
			"duration", time.Since(start),
		)
	})
}

// ValidationMiddleware decodes and validates an AddProductRequest and adds it to the context
func (m *Middleware) ValidationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.AddProductRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			var iae *domain.InvalidArgumentError
			if errors.As(err, &iae) {
				writeValidationError(w, []string{iae.Message})
				return
			}
			m.Logger.Error("Error decoding product", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid product data")
			return
		}

		if errs := m.Validator.Validate(&request); len(errs) > 0 {
			m.Logger.Debug("Validation errors", "errors", errs.Messages())
			writeValidationError(w, errs.Messages())
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyAddProductRequest, request)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
