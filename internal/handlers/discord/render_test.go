package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/gamenight/internal/models"
	"github.com/KirkDiggler/gamenight/internal/services/gamenight"
	"github.com/KirkDiggler/gamenight/internal/services/messaging"
)

func TestRenderRecommendation(t *testing.T) {
	pandemic := &models.Item{ID: "pandemic", Name: "Pandemic"}
	azul := &models.Item{ID: "azul", Name: "Azul"}
	codenames := &models.Item{ID: "codenames", Name: "Codenames"}

	rec := &gamenight.GetRecommendationOutput{
		Session: &models.Session{ID: "s1", PromotedItemID: "pandemic"},
		Result: &models.RecommendationResult{
			TopPick:      &models.ScoredItem{Item: pandemic, Score: 2, MatchReasons: []models.MatchReason{models.MatchReasonCoop}},
			Alternatives: []*models.ScoredItem{{Item: azul, Score: 1}},
			Vetoed:       []*models.VetoedItem{{Item: codenames, VetoedBy: []string{"bob", "ghost"}}},
		},
		CandidateCount: 4,
		Filtered:       []*models.Item{pandemic, azul, codenames},
		Participants: []*models.Participant{
			{ID: "alice", DisplayName: "Alice"},
			{ID: "bob", Username: "bobby"},
		},
		Merged:         true,
		GuestSyncError: "connection refused",
	}

	embed := renderRecommendation(rec, &messaging.GetRecommendationMessageOutput{Title: "Host's pick", Message: "Pandemic it is"})

	assert.Equal(t, "Host's pick", embed.Title)
	assert.Equal(t, colorWarning, embed.Color)
	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "Pandemic (2 pts) 📌 · co-op", embed.Fields[0].Value)
	assert.Equal(t, "2. Azul (1 pts)\n", embed.Fields[1].Value)
	assert.Equal(t, "~~Codenames~~ (bobby, ghost)\n", embed.Fields[2].Value)
	assert.Equal(t, "⚠️ Guest sync", embed.Fields[3].Name)
	assert.Equal(t, "3 of 4 games pass the filters · 2 players · remote guests included", embed.Footer.Text)
}

func TestRenderRecommendation_NothingEligible(t *testing.T) {
	rec := &gamenight.GetRecommendationOutput{
		Session:        &models.Session{ID: "s1"},
		Result:         &models.RecommendationResult{},
		CandidateCount: 2,
	}

	embed := renderRecommendation(rec, &messaging.GetRecommendationMessageOutput{Title: "No eligible games"})

	assert.Equal(t, colorInfo, embed.Color)
	assert.Empty(t, embed.Fields)
	assert.Equal(t, "0 of 2 games pass the filters · 0 players", embed.Footer.Text)
}

func TestRenderParticipants(t *testing.T) {
	embed := renderParticipants(&gamenight.ListParticipantsOutput{
		Participants: []*models.Participant{
			{ID: "alice", DisplayName: "Alice", IsOrganizer: true},
			{ID: "bob", Username: "bob"},
		},
		Slots: []*models.NamedSlot{
			{SlotID: "slot-1", ReservedDisplayName: "Dana", ClaimedBy: "guest-1"},
			{SlotID: "slot-2", ReservedDisplayName: "Eve"},
		},
	})

	assert.Equal(t, "• Alice 👑\n• bob\n", embed.Description)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "• Dana (joined) `slot-1`\n• Eve (waiting) `slot-2`\n", embed.Fields[0].Value)

	empty := renderParticipants(&gamenight.ListParticipantsOutput{})
	assert.Contains(t, empty.Description, "Nobody yet")
	assert.Empty(t, empty.Fields)
}

func TestRenderHistory_Empty(t *testing.T) {
	embed := renderHistory(&gamenight.GetHistoryOutput{})
	assert.Equal(t, "Nothing locked in yet.", embed.Description)
}

func TestRenderFilters(t *testing.T) {
	threshold := 5.0
	embed := renderFilters(models.FilterConfig{
		PlayerCount:              4,
		TimeRange:                models.Range[int]{Min: 30, Max: 90},
		RatingRange:              models.Range[float64]{Min: 7},
		ExcludeLowRatedThreshold: &threshold,
	})

	values := map[string]string{}
	for _, f := range embed.Fields {
		values[f.Name] = f.Value
	}
	assert.Equal(t, "4", values["Players"])
	assert.Equal(t, "any", values["Mode"])
	assert.Equal(t, "30-90 min", values["Play time"])
	assert.Equal(t, "7+", values["Rating"])
	assert.Equal(t, "5", values["Drop if anyone rated below"])
	assert.NotContains(t, values, "Complexity")
}

type stubCommand struct {
	BaseCommand
	handled    int
	components int
}

func (c *stubCommand) Handle(Responder, *discordgo.InteractionCreate) error {
	c.handled++
	return nil
}

func (c *stubCommand) HandlesComponent(customID string) bool {
	return customID == "stub_button"
}

func (c *stubCommand) HandleComponent(Responder, *discordgo.InteractionCreate) error {
	c.components++
	return nil
}

func TestBotDispatch(t *testing.T) {
	cmd := &stubCommand{BaseCommand: BaseCommand{Name: "stub"}}
	bot := &Bot{
		commands: map[string]CommandHandler{"stub": cmd},
		logger:   zerolog.Nop(),
	}
	responder := &fakeResponder{}

	bot.dispatch(responder, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: "stub"},
	}})
	assert.Equal(t, 1, cmd.handled)

	bot.dispatch(responder, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{CustomID: "stub_button"},
	}})
	assert.Equal(t, 1, cmd.components)
	assert.Empty(t, responder.responses)

	bot.dispatch(responder, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{CustomID: "mystery"},
	}})
	require.Len(t, responder.responses, 1)
	assert.Contains(t, responder.responses[0].Data.Content, "mystery")
}
