package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/zappabad/sentimentdash/internal/config"
	dashservice "github.com/zappabad/sentimentdash/internal/dashboard/service"
	"github.com/zappabad/sentimentdash/internal/logging"
	"github.com/zappabad/sentimentdash/internal/stock/client"
	"github.com/zappabad/sentimentdash/tui"
	"github.com/zappabad/sentimentdash/tui/format"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	api, err := client.New(cfg.API, logger)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	// The API may still be starting; an unreachable root is only a warning.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
		defer cancel()
		if err := api.Ping(ctx); err != nil {
			logger.Warn("stock api unreachable", zap.String("base_url", cfg.API.BaseURL), zap.Error(err))
			return
		}
		logger.Info("stock api reachable", zap.String("base_url", cfg.API.BaseURL))
	}()

	svc, err := dashservice.NewService(cfg.Dashboard, api, logger)
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	defer svc.Close()

	model := tui.NewModel(svc, tui.Options{
		RefreshInterval: cfg.RefreshInterval,
		Formatter:       format.New(cfg.Locale),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
