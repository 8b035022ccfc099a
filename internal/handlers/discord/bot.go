package discord

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/fitna/internal/services/game"
	"github.com/KirkDiggler/fitna/internal/services/messaging"
)

// Bot owns the gateway session and the registered slash commands
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // name -> Discord ID, for cleanup on Stop
	fitna      *FitnaCommand
	config     *Config
	logger     *zap.SugaredLogger
}

// Config configures the gateway connection and the services behind it
type Config struct {
	Token string

	// ApplicationID defaults to the logged in user when empty
	ApplicationID string

	// GuildID scopes the commands to one server; empty registers globally
	GuildID string

	// RequestTimeout bounds each interaction. Zero disables it.
	RequestTimeout time.Duration

	// SessionCapacity bounds the remembered channel/user sessions
	SessionCapacity int

	GameService      game.Service
	MessagingService messaging.Service
	Logger           *zap.SugaredLogger
}

// New validates the config and prepares an unopened gateway session
func New(cfg *Config) (*Bot, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	// Sessions are kept per channel and user
	capacity := cfg.SessionCapacity
	if capacity <= 0 {
		capacity = DefaultSessionCapacity
	}
	sessions, err := NewSessionStore(capacity)
	if err != nil {
		return nil, err
	}

	// Create the gateway session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	logger := cfg.Logger.Named("discord")
	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		fitna:      NewFitnaCommand(cfg.GameService, cfg.MessagingService, sessions, logger, cfg.RequestTimeout),
		config:     cfg,
		logger:     logger,
	}

	// Route every interaction through one handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the gateway and registers /fitna
func (b *Bot) Start() error {
	// Open the websocket
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Register the slash command
	if err := b.RegisterCommand(b.fitna); err != nil {
		return fmt.Errorf("failed to register fitna command: %w", err)
	}

	b.logger.Info("bot is running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.applicationID()

	// Remove the commands we created so stale ones do not linger
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warnw("failed to delete command", "command", cmdName, "id", cmdID, "error", err)
		} else {
			b.logger.Debugw("deleted command", "command", cmdName, "id", cmdID)
		}
	}

	// Close the websocket
	return b.session.Close()
}

func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to the logged in user
	return b.session.State.User.ID
}

// RegisterCommand creates the command on Discord and routes it locally
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.applicationID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Track the command for routing and cleanup
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Infow("registered command", "command", cmd.GetName(), "id", createdCmd.ID, "guild_id", b.config.GuildID)

	return nil
}

// handleInteraction routes slash commands, buttons and modal submissions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var err error
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			err = h.Handle(s, i)
		}
	// Buttons and the question form belong to /fitna
	case discordgo.InteractionMessageComponent:
		err = b.fitna.HandleComponent(s, i)
	case discordgo.InteractionModalSubmit:
		err = b.fitna.HandleModal(s, i)
	}

	if err != nil {
		b.logger.Errorw("failed to handle interaction", "type", i.Type, "error", err)
	}
}
