package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecowatch/econews/app/api"
	"github.com/ecowatch/econews/app/cache"
	"github.com/ecowatch/econews/app/cfg"
	"github.com/ecowatch/econews/app/news"
	"github.com/ecowatch/econews/app/reports"
	"github.com/ecowatch/econews/app/store"
	"github.com/ecowatch/econews/app/tasks"
	"github.com/ecowatch/econews/app/trends"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting EcoNews server", "version", appCfg.Version)

	st, err := store.NewClient(appCfg.StoreURL)
	if err != nil {
		slog.Error("Failed to configure store client", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// An unreachable store is not fatal: the service starts degraded and
	// recovers once the store comes back.
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := st.Ping(pingCtx); err != nil {
		slog.Warn("Store unreachable at startup, continuing degraded", "error", err)
	} else {
		slog.Info("Connected to store")
	}
	cancelPing()

	rules := news.DefaultRules()
	if appCfg.RulesFile != "" {
		rules, err = news.LoadRules(appCfg.RulesFile)
		if err != nil {
			slog.Error("Failed to load classification rules", "file", appCfg.RulesFile, "error", err)
			os.Exit(1)
		}
		slog.Info("Loaded classification rules", "file", appCfg.RulesFile)
	}

	classifier := news.NewClassifier(rules)
	loader := news.NewLoader(st, classifier, rules)
	aggregator := trends.NewAggregator(rules, appCfg.SampleNewsLimit)
	publisher := cache.NewPublisher(st, loader, aggregator, rules)
	reader := cache.NewReader(st)
	reportReader := reports.NewReader(st)

	scheduler := tasks.NewScheduler(publisher, time.Duration(appCfg.RefreshInterval)*time.Minute)
	if err := scheduler.Start(); err != nil {
		slog.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer scheduler.Stop()

	apiHandler := api.NewHandler(reader, reportReader, st, st, scheduler, rules)
	server := api.NewServer(apiHandler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}
