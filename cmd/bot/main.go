package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fitna/internal/app"
	"github.com/KirkDiggler/fitna/internal/config"
	"github.com/KirkDiggler/fitna/internal/handlers/discord"
	"github.com/KirkDiggler/fitna/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cobra.CheckErr(newCmd(&config.Config{}).ExecuteContext(ctx))
}

func newCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fitna-bot",
		Short: "Discord bot for the fitna party game.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			if err := config.ApplyEnv(cmd.Flags()); err != nil {
				return err
			}
			if err := cfg.ValidateBot(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	config.RegisterFlags(cmd.Flags(), cfg)
	config.RegisterBotFlags(cmd.Flags(), cfg)

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.NewLogger(cfg.Debug).Named("bot")
	defer func() { _ = logger.Sync() }()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warnw("failed to close store", "error", err)
		}
	}()

	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.DiscordApplicationID,
		GuildID:          cfg.DiscordGuildID,
		RequestTimeout:   cfg.RequestTimeout,
		GameService:      a.Game,
		MessagingService: a.Messaging,
		Logger:           logger,
	})
	if err != nil {
		return err
	}

	if err := bot.Start(); err != nil {
		return err
	}

	<-ctx.Done()

	logger.Info("shutting down")
	return bot.Stop()
}
