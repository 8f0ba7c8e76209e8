package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/signup/internal/api"
	"example.com/signup/internal/catalog"
	"example.com/signup/internal/config"
	"example.com/signup/internal/domain"
	"example.com/signup/internal/platform/requestid"
	httptransport "example.com/signup/internal/transport/http"
)

func main() {
	cfg := config.Load()

	logger := slog.New(requestid.NewHandler(slog.NewJSONHandler(os.Stdout, nil)))
	slog.SetDefault(logger)

	store := catalog.NewInMemoryCatalog()
	service := domain.NewService(store)

	handler := api.NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	mux.Handle("/metrics", promhttp.Handler())

	chain := api.RequestID(api.Logging(logger)(api.CORS(mux)))

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, chain)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("signup service listening", slog.String("address", cfg.HTTPAddress))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	<-shutdownCh

	if err := httptransport.Shutdown(server, cfg.ShutdownTimeout); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
}
