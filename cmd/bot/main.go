package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/gamenight/internal/common/clock"
	"github.com/KirkDiggler/gamenight/internal/common/logger"
	"github.com/KirkDiggler/gamenight/internal/common/uuid"
	"github.com/KirkDiggler/gamenight/internal/config"
	"github.com/KirkDiggler/gamenight/internal/handlers/discord"
	"github.com/KirkDiggler/gamenight/internal/repositories/catalog"
	"github.com/KirkDiggler/gamenight/internal/repositories/guest"
	"github.com/KirkDiggler/gamenight/internal/repositories/history"
	"github.com/KirkDiggler/gamenight/internal/repositories/participant"
	"github.com/KirkDiggler/gamenight/internal/repositories/preference"
	"github.com/KirkDiggler/gamenight/internal/repositories/session"
	"github.com/KirkDiggler/gamenight/internal/services/gamenight"
	"github.com/KirkDiggler/gamenight/internal/services/guestsync"
	"github.com/KirkDiggler/gamenight/internal/services/messaging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to create logger")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect to Redis")
	}

	// Initialize repositories
	sessionRepo, err := session.NewRedis(&session.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session repository")
	}

	participantRepo, err := participant.NewRedis(&participant.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create participant repository")
	}

	preferenceRepo, err := preference.NewRedis(&preference.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create preference repository")
	}

	catalogRepo, err := catalog.NewRedis(&catalog.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create catalog repository")
	}

	guestRepo, err := guest.NewRedis(&guest.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create guest repository")
	}

	historyRepo, err := history.NewRedis(&history.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create history repository")
	}

	// Initialize services
	realClock := &clock.DefaultClock{}

	guestSyncSvc, err := guestsync.New(&guestsync.Config{
		Source:   guestRepo,
		Clock:    realClock,
		Interval: cfg.GuestPollInterval,
		Logger:   log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create guest sync service")
	}

	gamenightSvc, err := gamenight.New(&gamenight.Config{
		MaxParticipants: cfg.MaxParticipants,
		SessionRepo:     sessionRepo,
		ParticipantRepo: participantRepo,
		PreferenceRepo:  preferenceRepo,
		CatalogRepo:     catalogRepo,
		GuestRepo:       guestRepo,
		HistoryRepo:     historyRepo,
		GuestSync:       guestSyncSvc,
		Clock:           realClock,
		UUIDGenerator:   uuid.New(),
		Logger:          log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game night service")
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create messaging service")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		GamenightService: gamenightSvc,
		GuestSync:        guestSyncSvc,
		MessagingService: messagingSvc,
		Logger:           log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	// Guest polling stops when the bot shuts down
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	log.Info().Msg("bot is running, press CTRL-C to exit")

	// Wait for interrupt signal to gracefully shutdown
	<-ctx.Done()

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping bot")
	}

	log.Info().Msg("bot has been shut down")
}
