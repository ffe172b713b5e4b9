package http

import (
	_ "embed"
	"net/http"

	"github.com/go-openapi/runtime/middleware"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/kahvecikaan/product-registry/internal/domain"
	websocketTransport "github.com/kahvecikaan/product-registry/internal/transport/websocket"
)

//go:embed swagger.yaml
var swaggerSpec []byte

// CORSConfig holds configuration for the CORS handler
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		AllowedOrigins: []string{"http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Requested-With", "X-Request-ID"},
		MaxAge:         86400,
	}
}

// NewRouter wires the product routes. wsh and cors may be nil.
func NewRouter(
	ph *ProductHandler,
	validator *domain.Validation,
	logger hclog.Logger,
	wsh *websocketTransport.Handler,
	cors *CORSConfig,
) http.Handler {
	if cors == nil {
		cors = DefaultCORSConfig()
	}

	router := mux.NewRouter()
	mw := NewMiddleware(logger, validator)

	router.Use(handlers.RecoveryHandler(
		handlers.RecoveryLogger(logger.StandardLogger(&hclog.StandardLoggerOptions{ForceLevel: hclog.Error})),
	))
	router.Use(mw.LoggingMiddleware)

	router.HandleFunc("/products/{id:[0-9]+}", ph.GetProductByID).Methods(http.MethodGet)

	postRouter := router.Methods(http.MethodPost).Subrouter()
	postRouter.HandleFunc("/products", ph.AddProduct)
	postRouter.Use(mw.ValidationMiddleware)

	if wsh != nil {
		router.HandleFunc("/ws", wsh.HandleWebSocket).Methods(http.MethodGet)
	}

	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(swaggerSpec)
	}).Methods(http.MethodGet)

	docs := middleware.Redoc(middleware.RedocOpts{SpecURL: "/swagger.yaml"}, nil)
	router.Handle("/docs", docs).Methods(http.MethodGet)

	return handlers.CORS(
		handlers.AllowedOrigins(cors.AllowedOrigins),
		handlers.AllowedMethods(cors.AllowedMethods),
		handlers.AllowedHeaders(cors.AllowedHeaders),
		handlers.MaxAge(cors.MaxAge),
	)(router)
}
