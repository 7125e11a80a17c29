package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/gamenight/internal/services/gamenight"
	"github.com/KirkDiggler/gamenight/internal/services/guestsync"
	"github.com/KirkDiggler/gamenight/internal/services/messaging"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	logger     zerolog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Services
	GamenightService gamenight.Service
	GuestSync        guestsync.Service
	MessagingService messaging.Service

	Logger zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GamenightService == nil {
		return nil, errors.New("gamenight service cannot be nil")
	}

	if cfg.GuestSync == nil {
		return nil, errors.New("guest sync cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		logger:     cfg.Logger.With().Str("component", "discord").Logger(),
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers commands.
// ctx bounds the guest polling of game nights started through the bot.
func (b *Bot) Start(ctx context.Context) error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	gamenightCmd, err := NewGamenightCommand(&GamenightCommandConfig{
		GamenightService: b.config.GamenightService,
		GuestSync:        b.config.GuestSync,
		MessagingService: b.config.MessagingService,
		Logger:           b.config.Logger,
		PollContext:      ctx,
	})
	if err != nil {
		return fmt.Errorf("failed to create gamenight command: %w", err)
	}

	if err := b.RegisterCommand(gamenightCmd); err != nil {
		return fmt.Errorf("failed to register gamenight command: %w", err)
	}

	b.logger.Info().Msg("bot is now running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn().Err(err).Str("command", cmdName).Str("command_id", cmdID).Msg("failed to delete command")
		} else {
			b.logger.Info().Str("command", cmdName).Str("command_id", cmdID).Msg("deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord.
// Commands are registered for the configured guild, or globally when none is set.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	b.logger.Info().
		Str("command", cmd.GetName()).
		Str("command_id", createdCmd.ID).
		Str("guild_id", b.config.GuildID).
		Msg("registered command")

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.dispatch(s, i)
}

// dispatch routes an interaction to the command or component handler that owns it
func (b *Bot) dispatch(r Responder, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		h, ok := b.commands[name]
		if !ok {
			b.logger.Warn().Str("command", name).Msg("unknown command")
			return
		}
		if err := h.Handle(r, i); err != nil {
			b.logger.Error().Err(err).Str("command", name).Msg("error handling command")
		}

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		for _, h := range b.commands {
			ch, ok := h.(ComponentHandler)
			if !ok || !ch.HandlesComponent(customID) {
				continue
			}
			if err := ch.HandleComponent(r, i); err != nil {
				b.logger.Error().Err(err).Str("custom_id", customID).Msg("error handling component")
			}
			return
		}

		if err := RespondWithEphemeralMessage(r, i, fmt.Sprintf("Unknown button: %s", customID)); err != nil {
			b.logger.Error().Err(err).Str("custom_id", customID).Msg("error responding to unknown component")
		}
	}
}
