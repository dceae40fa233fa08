package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/cart"
	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/catalog"
	h "github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/http"
	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/ledger"
	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/session"
	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/tools"
)

type Config struct {
	HTTPPort        string
	OrdersFile      string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		OrdersFile:      getEnv("ORDERS_FILE", "orders.json"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	_ = godotenv.Load()

	cfg := loadConfig()

	store, err := catalog.NewStore(catalog.DefaultCatalog())
	if err != nil {
		log.Fatalf("failed to build catalog: %v", err)
	}

	orders, err := ledger.NewFileLedger(cfg.OrdersFile)
	if err != nil {
		log.Fatalf("failed to open order ledger: %v", err)
	}

	toolset := tools.New(catalog.NewResolver(store), cart.NewService(store), orders)
	sessions := session.NewManager()
	handler := h.NewToolsHandler(toolset, sessions)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	handler.Register(r)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("The Agentic Store backend listening on :%s (%d products)", cfg.HTTPPort, store.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
