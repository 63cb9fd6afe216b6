// Package main - Entry point for the sundae-pricing API server
package main

import (
	"flag"
	"net/http"

	"go.uber.org/zap"

	"sundae-pricing/api"
	"sundae-pricing/core/catalog"
	"sundae-pricing/internal/config"
	"sundae-pricing/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgFile := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			logging.Fatal("failed to load config", zap.Error(err))
		}
		config.Set(loaded)
		cfg = loaded
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("failed to initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	cat := catalog.Default()
	if cfg.Catalog.EpochFile != "" {
		loaded, err := catalog.LoadEpochFile(cfg.Catalog.EpochFile)
		if err != nil {
			logging.Fatal("failed to load catalog epoch", zap.Error(err))
		}
		cat = loaded
	} else if err := cat.Validate(); err != nil {
		logging.Fatal("built-in catalog failed validation", zap.Error(err))
	}

	server := api.NewServer(cat, version)

	logging.Info("sundae-pricing server listening",
		zap.String("addr", cfg.Server.Addr),
		zap.String("epoch", cat.Epoch),
		zap.String("version", version),
	)

	if err := http.ListenAndServe(cfg.Server.Addr, server); err != nil {
		logging.Fatal("server exited", zap.Error(err))
	}
}
