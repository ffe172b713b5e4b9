package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/nicholasjackson/env"

	"github.com/kahvecikaan/product-registry/internal/adapter"
	"github.com/kahvecikaan/product-registry/internal/domain"
	"github.com/kahvecikaan/product-registry/internal/events"
	"github.com/kahvecikaan/product-registry/internal/repository"
	"github.com/kahvecikaan/product-registry/internal/service"
	httpTransport "github.com/kahvecikaan/product-registry/internal/transport/http"
	websocketTransport "github.com/kahvecikaan/product-registry/internal/transport/websocket"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
	corsOrigins = env.String("CORS_ORIGINS", false,
		"http://localhost:3000", "Comma separated list of allowed CORS origins")
)

func main() {
	if err := env.Parse(); err != nil {
		hclog.Default().Error("Unable to parse environment", "error", err)
		os.Exit(1)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "product-registry",
		Level: hclog.LevelFromString(*logLevel),
	})

	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	eventBus := events.NewEventBus[any]()

	prodRepo := repository.NewMemoryProductRepository()
	productPort := adapter.NewProductAdapter(prodRepo)
	ps := service.NewProductService(productPort, eventBus, logger.Named("product-service"))

	validator := domain.NewValidation()

	ph := httpTransport.NewProductHandler(ps, logger.Named("http-handler"))
	wh := websocketTransport.NewHandler(logger.Named("websocket-handler"), eventBus)

	cors := httpTransport.DefaultCORSConfig()
	cors.AllowedOrigins = strings.Split(*corsOrigins, ",")

	router := httpTransport.NewRouter(ph, validator, logger, wh, cors)

	server := &http.Server{
		Addr:         *bindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting server", "bind_address", *bindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Shutting down server", "signal", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", "error", err)
	}
}
