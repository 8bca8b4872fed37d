package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zulandar/clerk/internal/api"
	"github.com/zulandar/clerk/internal/assistant"
	"github.com/zulandar/clerk/internal/config"
	"github.com/zulandar/clerk/internal/db"
	"gorm.io/gorm"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Clerk HTTP API",
		Long:  "Serves the chat and tool endpoints until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "clerk.yaml", "path to Clerk config file")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	gormDB, engine, err := buildEngine(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return api.Start(ctx, api.StartOpts{
		DB:     gormDB,
		Config: cfg,
		Engine: engine,
		Port:   cfg.HTTP.Port,
		Out:    cmd.OutOrStdout(),
	})
}

// buildEngine connects the database, migrates, and assembles the assistant
// engine with all tools registered.
func buildEngine(cmd *cobra.Command, cfg *config.Config) (*gorm.DB, *assistant.Engine, error) {
	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		return nil, nil, err
	}

	registry := assistant.NewRegistry()
	if err := assistant.RegisterAll(registry, gormDB); err != nil {
		return nil, nil, err
	}

	engine, err := assistant.NewEngine(assistant.EngineOpts{
		DB:       gormDB,
		Registry: registry,
		Out:      cmd.OutOrStdout(),
	})
	if err != nil {
		return nil, nil, err
	}
	return gormDB, engine, nil
}
