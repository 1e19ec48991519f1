// Package main - Entry point for the plate-quote API server
package main

import (
	"flag"
	"net/http"
	"os"

	"go.uber.org/zap"

	"plate-quote/api"
	"plate-quote/core/pricing"
	"plate-quote/internal/config"
	"plate-quote/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgFile := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		logging.Error("loading config", zap.Error(err))
		os.Exit(1)
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Error("initializing logging", zap.Error(err))
		os.Exit(1)
	}
	defer logging.Sync()

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	provider := pricing.NewFileProvider(pricing.Default(), cfg.Knobs.Path)
	server := api.NewServer(version, provider)

	logging.Info("plate-quote server starting",
		zap.String("version", version),
		zap.String("addr", listen),
		zap.String("knobs", cfg.Knobs.Path),
	)

	if err := http.ListenAndServe(listen, server); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
