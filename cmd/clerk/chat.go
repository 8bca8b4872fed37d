package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zulandar/clerk/internal/chat"
	"github.com/zulandar/clerk/internal/chat/discord"
	"github.com/zulandar/clerk/internal/chat/slack"
	"github.com/zulandar/clerk/internal/config"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Run a chat platform bridge",
	}

	cmd.AddCommand(newChatDiscordCmd())
	cmd.AddCommand(newChatSlackCmd())
	return cmd
}

func newChatDiscordCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "discord",
		Short: "Bridge Clerk to Discord",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChatDiscord(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "clerk.yaml", "path to Clerk config file")
	return cmd
}

func runChatDiscord(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Discord.Token == "" {
		return fmt.Errorf("discord.token is not configured")
	}

	adapter, err := discord.New(discord.AdapterOpts{
		BotToken:  cfg.Discord.Token,
		ChannelID: cfg.Discord.ChannelID,
	})
	if err != nil {
		return err
	}

	return runBridge(cmd, cfg, adapter, cfg.Discord.ChannelID)
}

func newChatSlackCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "slack",
		Short: "Bridge Clerk to Slack (Socket Mode)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChatSlack(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "clerk.yaml", "path to Clerk config file")
	return cmd
}

func runChatSlack(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Slack.BotToken == "" {
		return fmt.Errorf("slack.bot_token is not configured")
	}

	adapter, err := slack.New(slack.AdapterOpts{
		AppToken:  cfg.Slack.AppToken,
		BotToken:  cfg.Slack.BotToken,
		ChannelID: cfg.Slack.ChannelID,
	})
	if err != nil {
		return err
	}

	return runBridge(cmd, cfg, adapter, cfg.Slack.ChannelID)
}

// runBridge assembles the engine and runs a bridge over the given adapter
// until interrupted.
func runBridge(cmd *cobra.Command, cfg *config.Config, adapter chat.Adapter, digestChannelID string) error {
	gormDB, engine, err := buildEngine(cmd, cfg)
	if err != nil {
		return err
	}

	bridge, err := chat.NewBridge(chat.BridgeOpts{
		DB:              gormDB,
		Config:          cfg,
		Adapter:         adapter,
		Engine:          engine,
		DigestChannelID: digestChannelID,
		Out:             cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return bridge.Run(ctx)
}
