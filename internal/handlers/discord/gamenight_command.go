package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/bwmarrin/discordgo"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/gamenight/internal/models"
	"github.com/KirkDiggler/gamenight/internal/services/gamenight"
	"github.com/KirkDiggler/gamenight/internal/services/guestsync"
	"github.com/KirkDiggler/gamenight/internal/services/messaging"
)

// Subcommand names
const (
	subStart     = "start"
	subJoin      = "join"
	subPlayers   = "players"
	subGames     = "games"
	subFilters   = "filters"
	subRank      = "rank"
	subTopPick   = "toppick"
	subDislike   = "dislike"
	subRate      = "rate"
	subSlot      = "slot"
	subRecommend = "recommend"
	subPromote   = "promote"
	subUnpromote = "unpromote"
	subCommit    = "commit"
	subHistory   = "history"
	subEnd       = "end"
)

const (
	commandTimeout = 10 * time.Second
	historyLimit   = 10
)

// GamenightCommandConfig holds the dependencies of the /gamenight command
type GamenightCommandConfig struct {
	GamenightService gamenight.Service
	GuestSync        guestsync.Service
	MessagingService messaging.Service
	Logger           zerolog.Logger

	// PollContext bounds the background guest polling started by /gamenight start
	PollContext context.Context
}

// GamenightCommand handles the /gamenight command
type GamenightCommand struct {
	BaseCommand
	gamenightService gamenight.Service
	guestSync        guestsync.Service
	messagingService messaging.Service
	logger           zerolog.Logger
	pollCtx          context.Context
}

// NewGamenightCommand creates a new /gamenight command handler
func NewGamenightCommand(cfg *GamenightCommandConfig) (*GamenightCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
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

	pollCtx := cfg.PollContext
	if pollCtx == nil {
		pollCtx = context.Background()
	}

	gameOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "game",
		Description: "Game name or ID",
		Required:    true,
	}
	minPlayers := 1.0
	minZero := 0.0

	return &GamenightCommand{
		BaseCommand: BaseCommand{
			Name:        "gamenight",
			Description: "Decide what to play tonight",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subStart,
					Description: "Start a game night in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "players",
							Description: "How many people are playing",
							MinValue:    &minPlayers,
							MaxValue:    99,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subJoin,
					Description: "Join the game night",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subPlayers,
					Description: "Show who's at the table",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subGames,
					Description: "Set the candidate games",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "list",
							Description: "Comma separated names, or a JSON array of games",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subFilters,
					Description: "Change the filters",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "players",
							Description: "Player count",
							MinValue:    &minPlayers,
							MaxValue:    99,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "min_time",
							Description: "Minimum play time in minutes",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "max_time",
							Description: "Maximum play time in minutes, 0 for no limit",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "mode",
							Description: "Co-op or competitive",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Any", Value: string(models.GameModeAny)},
								{Name: "Co-op", Value: string(models.GameModeCoop)},
								{Name: "Competitive", Value: string(models.GameModeCompetitive)},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "best_with",
							Description: "Only games that are best with this player count",
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "max_complexity",
							Description: "Maximum complexity weight, 0 for no limit",
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "min_rating",
							Description: "Minimum community rating",
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "low_rated",
							Description: "Drop games anyone rated below this",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subRank,
					Description: "Rank a game, 1 is your favourite",
					Options: []*discordgo.ApplicationCommandOption{
						gameOption,
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "rank",
							Description: "Your rank for the game, 0 clears it",
							Required:    true,
							MinValue:    &minZero,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subTopPick,
					Description: "Mark a game as a top pick",
					Options: []*discordgo.ApplicationCommandOption{
						gameOption,
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "off",
							Description: "Remove the top pick instead",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subDislike,
					Description: "Veto a game",
					Options: []*discordgo.ApplicationCommandOption{
						gameOption,
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "off",
							Description: "Lift the veto instead",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subRate,
					Description: "Rate a game from 0 to 10",
					Options: []*discordgo.ApplicationCommandOption{
						gameOption,
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "rating",
							Description: "Your rating",
							Required:    true,
							MinValue:    &minZero,
							MaxValue:    10,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subSlot,
					Description: "Reserve a seat for a remote guest",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "The name the guest will join with",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subRecommend,
					Description: "Recommend a game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subPromote,
					Description: "Pin a game to the top",
					Options:     []*discordgo.ApplicationCommandOption{gameOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subUnpromote,
					Description: "Remove the pinned game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subCommit,
					Description: "Lock in the current recommendation",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subHistory,
					Description: "Show what this game night locked in",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subEnd,
					Description: "End the game night",
				},
			},
		},
		gamenightService: cfg.GamenightService,
		guestSync:        cfg.GuestSync,
		messagingService: cfg.MessagingService,
		logger:           cfg.Logger.With().Str("component", "gamenight_command").Logger(),
		pollCtx:          pollCtx,
	}, nil
}

// Handle processes the /gamenight command
func (c *GamenightCommand) Handle(r Responder, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithEphemeralMessage(r, i, "Pick a subcommand, e.g. `/gamenight start`.")
	}

	sub := data.Options[0]
	opts := optionMap(sub.Options)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	c.logger.Debug().
		Str("subcommand", sub.Name).
		Str("channel_id", i.ChannelID).
		Msg("handling command")

	var err error
	switch sub.Name {
	case subStart:
		err = c.handleStart(ctx, r, i, opts)
	case subJoin:
		err = c.handleJoin(ctx, r, i)
	case subPlayers:
		err = c.handlePlayers(ctx, r, i)
	case subGames:
		err = c.handleGames(ctx, r, i, opts)
	case subFilters:
		err = c.handleFilters(ctx, r, i, opts)
	case subRank:
		rank := int(opts["rank"].IntValue())
		edit := models.PreferenceEdit{Rank: &rank}
		if rank == 0 {
			edit = models.PreferenceEdit{ClearRank: true}
		}
		err = c.handlePreference(ctx, r, i, opts["game"].StringValue(), edit)
	case subTopPick:
		on := !boolOption(opts, "off")
		err = c.handlePreference(ctx, r, i, opts["game"].StringValue(), models.PreferenceEdit{TopPick: &on})
	case subDislike:
		on := !boolOption(opts, "off")
		err = c.handlePreference(ctx, r, i, opts["game"].StringValue(), models.PreferenceEdit{Disliked: &on})
	case subRate:
		err = c.handleRate(ctx, r, i, opts)
	case subSlot:
		err = c.handleSlot(ctx, r, i, opts)
	case subRecommend:
		err = c.handleRecommend(ctx, r, i)
	case subPromote:
		err = c.handlePromote(ctx, r, i, opts)
	case subUnpromote:
		err = c.handleUnpromote(ctx, r, i)
	case subCommit:
		err = c.handleCommit(ctx, r, i)
	case subHistory:
		err = c.handleHistory(ctx, r, i)
	case subEnd:
		err = c.handleEnd(ctx, r, i)
	default:
		return RespondWithEphemeralMessage(r, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}

	if err != nil {
		return c.respondWithServiceError(ctx, r, i, err)
	}

	return nil
}

// HandlesComponent reports whether the button belongs to the /gamenight command
func (c *GamenightCommand) HandlesComponent(customID string) bool {
	switch customID {
	case ButtonJoin, ButtonRecommend, ButtonCommit:
		return true
	}
	return false
}

// HandleComponent processes the /gamenight buttons
func (c *GamenightCommand) HandleComponent(r Responder, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var err error
	switch customID := i.MessageComponentData().CustomID; customID {
	case ButtonJoin:
		err = c.handleJoin(ctx, r, i)
	case ButtonRecommend:
		err = c.handleRecommend(ctx, r, i)
	case ButtonCommit:
		err = c.handleCommit(ctx, r, i)
	default:
		return fmt.Errorf("unknown component: %s", customID)
	}

	if err != nil {
		return c.respondWithServiceError(ctx, r, i, err)
	}

	return nil
}

func (c *GamenightCommand) handleStart(ctx context.Context, r Responder, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	userID, displayName, username := interactionUser(i)

	players := 0
	if opt, ok := opts["players"]; ok {
		players = int(opt.IntValue())
	}

	output, err := c.gamenightService.CreateSession(ctx, &gamenight.CreateSessionInput{
		ChannelID:         i.ChannelID,
		OrganizerID:       userID,
		OrganizerName:     displayName,
		OrganizerUsername: username,
		PlayerCount:       players,
	})
	if err != nil {
		return err
	}

	c.guestSync.Start(c.pollCtx, output.Session.ID)

	embed := &discordgo.MessageEmbed{
		Title:       "🎲 Game night!",
		Description: fmt.Sprintf("%s is hosting. Join in, then rank, pick and veto the candidates.", displayName),
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Players",
				Value:  fmt.Sprintf("%d", output.Session.Filters.PlayerCount),
				Inline: true,
			},
		},
	}

	return RespondWithEmbed(r, i, embed, joinButton(), recommendButton())
}

func (c *GamenightCommand) handleJoin(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	session, err := c.channelSession(ctx, i)
	if err != nil {
		return err
	}

	userID, displayName, username := interactionUser(i)

	output, err := c.gamenightService.JoinSession(ctx, &gamenight.JoinSessionInput{
		SessionID:     session.ID,
		ParticipantID: userID,
		DisplayName:   displayName,
		Username:      username,
	})
	if err != nil {
		return err
	}

	msg, err := c.messagingService.GetJoinMessage(ctx, &messaging.GetJoinMessageInput{
		DisplayName:   displayName,
		AlreadyJoined: output.AlreadyJoined,
	})
	if err != nil {
		return err
	}

	if output.AlreadyJoined {
		return RespondWithEphemeralMessage(r, i, msg.Message)
	}

	return RespondWithEmbed(r, i, &discordgo.MessageEmbed{
		Description: msg.Message,
		Color:       colorSuccess,
	})
}

func (c *GamenightCommand) handlePlayers(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	session, err := c.channelSession(ctx, i)
	if err != nil {
		return err
	}

	output, err := c.gamenightService.ListParticipants(ctx, &gamenight.ListParticipantsInput{
		SessionID: session.ID,
	})
	if err != nil {
		return err
	}

	return RespondWithEmbed(r, i, renderParticipants(output))
}

func (c *GamenightCommand) handleGames(ctx context.Context, r Responder, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	session, err := c.channelSession(ctx, i)
	if err != nil {
		return err
	}

	items, err := parseItems(opts["list"].StringValue())
	if err != nil {
		return RespondWithError(r, i, "Couldn't read that list", err.Error())
	}

	output, err := c.gamenightService.SetCandidates(ctx, &gamenight.SetCandidatesInput{
		SessionID: session.ID,
		Items:     items,
	})
	if err != nil {
		return err
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, fmt.Sprintf("%s `%s`", item.Name, item.ID))
	}

	return RespondWithEmbed(r, i, &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%d games on the table", output.Count),
		Description: strings.Join(names, "\n"),
		Color:       colorInfo,
	}, recommendButton())
}

func (c *GamenightCommand) handleFilters(ctx context.Context, r Responder, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	session, err := c.channelSession(ctx, i)
	if err != nil {
		return err
	}

	filters := session.Filters
	if opt, ok := opts["players"]; ok {
		filters.PlayerCount = int(opt.IntValue())
	}
	if opt, ok := opts["min_time"]; ok {
		filters.TimeRange.Min = int(opt.IntValue())
	}
	if opt, ok := opts["max_time"]; ok {
		filters.TimeRange.Max = int(opt.IntValue())
	}
	if opt, ok := opts["mode"]; ok {
		filters.Mode = models.GameMode(opt.StringValue())
	}
	if opt, ok := opts["best_with"]; ok {
		filters.RequireBestWithPlayerCount = opt.BoolValue()
	}
	if opt, ok := opts["max_complexity"]; ok {
		filters.ComplexityRange.Max = opt.FloatValue()
	}
	if opt, ok := opts["min_rating"]; ok {
		filters.RatingRange.Min = opt.FloatValue()
	}
	if opt, ok := opts["low_rated"]; ok {
		threshold := opt.FloatValue()
		filters.ExcludeLowRatedThreshold = &threshold
	}

	output, err := c.gamenightService.UpdateFilters(ctx, &gamenight.UpdateFiltersInput{
		SessionID: session.ID,
		Filters:   filters,
	})
	if err != nil {
		return err
	}

	return RespondWithEmbed(r, i, renderFilters(output.Session.Filters), recommendButton())
}

func (c *GamenightCommand) handlePreference(ctx context.Context, r Responder, i *discordgo.InteractionCreate, game string, edit models.PreferenceEdit) error {
	session, err := c.channelSession(ctx, i)
	if err != nil {
		return err
	}

	userID, _, _ := interactionUser(i)

	output, err := c.gamenightService.UpdatePreference(ctx, &gamenight.UpdatePreferenceInput{
		SessionID:     session.ID,
		ParticipantID: userID,
		ItemID:        slugify(game),
		Edit:          edit,
	})
	if err != nil {
		return err
	}

	return RespondWithEphemeralMessage(r, i, describePreference(output.Record))
}

func (c *GamenightCommand) handleRate(ctx context.Context, r Responder, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	session, err := c.channelSession(ctx, i)
	if err != nil {
		return err
	}

	userID, _, _ := interactionUser(i)
	rating := opts["rating"].FloatValue()

	if _, err := c.gamenightService.RateItem(ctx, &gamenight.RateItemInput{
		SessionID:     session.ID,
		ParticipantID: userID,
		ItemID:        slugify(opts["game"].StringValue()),
		Rating:        rating,
	}); err != nil {
		return err
	}

	return RespondWithEphemeralMessage(r, i, fmt.Sprintf("Rated %s a %.1f.", opts["game"].StringValue(), rating))
}

func (c *GamenightCommand) handleSlot(ctx context.Context, r Responder, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	session, err := c.channelSession(ctx, i)
	if err != nil {
		return err
	}

	output, err := c.gamenightService.ReserveSlot(ctx, &gamenight.ReserveSlotInput{
		SessionID:   session.ID,
		DisplayName: opts["name"].StringValue(),
	})
	if err != nil {
		return err
	}

	return RespondWithEmbed(r, i, &discordgo.MessageEmbed{
		Title:       "Seat reserved",
		Description: fmt.Sprintf("A seat is saved for **%s**. Share the seat code `%s` with them.", output.Slot.ReservedDisplayName, output.Slot.SlotID),
		Color:       colorInfo,
	})
}

func (c *GamenightCommand) handleRecommend(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	session, err := c.channelSession(ctx, i)
	if err != nil {
		return err
	}

	rec, err := c.gamenightService.GetRecommendation(ctx, &gamenight.GetRecommendationInput{
		SessionID: session.ID,
	})
	if err != nil {
		return err
	}

	input := &messaging.GetRecommendationMessageInput{
		VetoedCount:    len(rec.Result.Vetoed),
		CandidateCount: rec.CandidateCount,
	}
	if top := rec.Result.TopPick; top != nil {
		input.TopPickName = top.Item.Name
		input.Promoted = rec.Session.PromotedItemID == top.Item.ID
	}

	headline, err := c.messagingService.GetRecommendationMessage(ctx, input)
	if err != nil {
		return err
	}

	return RespondWithEmbed(r, i, renderRecommendation(rec, headline), recommendButton(), commitButton(rec.Result.TopPick == nil))
}

func (c *GamenightCommand) handlePromote(ctx context.Context, r Responder, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	session, err := c.channelSession(ctx, i)
	if err != nil {
		return err
	}

	output, err := c.gamenightService.PromoteItem(ctx, &gamenight.PromoteItemInput{
		SessionID: session.ID,
		ItemID:    slugify(opts["game"].StringValue()),
	})
	if err != nil {
		return err
	}

	return RespondWithEmbed(r, i, &discordgo.MessageEmbed{
		Description: fmt.Sprintf("📌 `%s` is pinned to the top.", output.Session.PromotedItemID),
		Color:       colorInfo,
	}, recommendButton())
}

func (c *GamenightCommand) handleUnpromote(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	session, err := c.channelSession(ctx, i)
	if err != nil {
		return err
	}

	if _, err := c.gamenightService.ClearPromotion(ctx, &gamenight.ClearPromotionInput{
		SessionID: session.ID,
	}); err != nil {
		return err
	}

	return RespondWithEmbed(r, i, &discordgo.MessageEmbed{
		Description: "The pin is gone. Back to the votes.",
		Color:       colorInfo,
	}, recommendButton())
}

func (c *GamenightCommand) handleCommit(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	session, err := c.channelSession(ctx, i)
	if err != nil {
		return err
	}

	output, err := c.gamenightService.CommitRecommendation(ctx, &gamenight.CommitRecommendationInput{
		SessionID: session.ID,
	})
	if err != nil {
		return err
	}

	msg, err := c.messagingService.GetCommitMessage(ctx, &messaging.GetCommitMessageInput{
		ItemName:      output.Commit.TopPick.Name,
		PreviousCount: len(output.PreviousCommits),
	})
	if err != nil {
		return err
	}

	return RespondWithEmbed(r, i, &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       colorSuccess,
	})
}

func (c *GamenightCommand) handleHistory(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	session, err := c.channelSession(ctx, i)
	if err != nil {
		return err
	}

	output, err := c.gamenightService.GetHistory(ctx, &gamenight.GetHistoryInput{
		SessionID: session.ID,
		Limit:     historyLimit,
	})
	if err != nil {
		return err
	}

	return RespondWithEmbed(r, i, renderHistory(output))
}

func (c *GamenightCommand) handleEnd(ctx context.Context, r Responder, i *discordgo.InteractionCreate) error {
	session, err := c.channelSession(ctx, i)
	if err != nil {
		return err
	}

	if _, err := c.gamenightService.EndSession(ctx, &gamenight.EndSessionInput{
		SessionID: session.ID,
	}); err != nil {
		return err
	}

	return RespondWithEmbed(r, i, &discordgo.MessageEmbed{
		Title:       "Game night over",
		Description: "Thanks for playing! Pack up the meeples.",
		Color:       colorInfo,
	})
}

func (c *GamenightCommand) channelSession(ctx context.Context, i *discordgo.InteractionCreate) (*models.Session, error) {
	output, err := c.gamenightService.GetSessionByChannel(ctx, &gamenight.GetSessionByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return nil, err
	}
	return output.Session, nil
}

// respondWithServiceError turns a service error into a friendly ephemeral reply
func (c *GamenightCommand) respondWithServiceError(ctx context.Context, r Responder, i *discordgo.InteractionCreate, err error) error {
	errorType := errorTypeFor(err)
	if errorType == "" {
		c.logger.Error().Err(err).Str("channel_id", i.ChannelID).Msg("command failed")
	}

	msg, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType,
	})
	if msgErr != nil {
		return RespondWithError(r, i, "Error", err.Error())
	}

	return RespondWithError(r, i, msg.Title, msg.Message)
}

func errorTypeFor(err error) messaging.ErrorType {
	switch {
	case errors.Is(err, gamenight.ErrSessionNotFound):
		return messaging.ErrorTypeNoSession
	case errors.Is(err, gamenight.ErrSessionAlreadyExists):
		return messaging.ErrorTypeSessionExists
	case errors.Is(err, gamenight.ErrParticipantNotFound):
		return messaging.ErrorTypeNotJoined
	case errors.Is(err, gamenight.ErrSessionFull):
		return messaging.ErrorTypeSessionFull
	case errors.Is(err, gamenight.ErrItemNotFound), errors.Is(err, gamenight.ErrDuplicateItem):
		return messaging.ErrorTypeUnknownGame
	case errors.Is(err, gamenight.ErrInvalidFilters):
		return messaging.ErrorTypeInvalidFilters
	case errors.Is(err, gamenight.ErrNoTopPick):
		return messaging.ErrorTypeNothingToLock
	case errors.Is(err, gamenight.ErrSlotAlreadyClaimed), errors.Is(err, gamenight.ErrSlotNotFound):
		return messaging.ErrorTypeSlotTaken
	}
	return ""
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func boolOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) bool {
	opt, ok := opts[name]
	return ok && opt.BoolValue()
}

// slugify turns a game name into its catalog ID, e.g. "Ticket to Ride" becomes "ticket-to-ride"
func slugify(name string) string {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, "-")
}

// parseItems reads a candidate list: either a JSON array of items or comma separated names
func parseItems(list string) ([]*models.Item, error) {
	list = strings.TrimSpace(list)

	var items []*models.Item
	if strings.HasPrefix(list, "[") {
		if err := json.Unmarshal([]byte(list), &items); err != nil {
			return nil, fmt.Errorf("invalid game list: %w", err)
		}
	} else {
		for _, name := range strings.Split(list, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			items = append(items, &models.Item{Name: name})
		}
	}

	for _, item := range items {
		if item.ID == "" {
			item.ID = slugify(item.Name)
		}
		if item.ID == "" {
			return nil, errors.New("every game needs a name")
		}
	}

	if len(items) == 0 {
		return nil, errors.New("no games in the list")
	}

	return items, nil
}

func describePreference(record *models.PreferenceRecord) string {
	switch {
	case record.IsDisliked:
		return fmt.Sprintf("🚫 Vetoed `%s`.", record.ItemID)
	case record.IsTopPick && record.Rank != nil:
		return fmt.Sprintf("⭐ `%s` is a top pick, ranked #%d.", record.ItemID, *record.Rank)
	case record.IsTopPick:
		return fmt.Sprintf("⭐ `%s` is a top pick.", record.ItemID)
	case record.Rank != nil:
		return fmt.Sprintf("Ranked `%s` #%d.", record.ItemID, *record.Rank)
	}
	return fmt.Sprintf("Cleared your preference for `%s`.", record.ItemID)
}
