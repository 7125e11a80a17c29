package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/gamenight/internal/models"
	"github.com/KirkDiggler/gamenight/internal/services/gamenight"
	"github.com/KirkDiggler/gamenight/internal/services/messaging"
)

// Button custom IDs
const (
	ButtonJoin      = "gamenight_join"
	ButtonRecommend = "gamenight_recommend"
	ButtonCommit    = "gamenight_commit"
)

var reasonLabels = map[models.MatchReason]string{
	models.MatchReasonPlayerCount: "fits the group",
	models.MatchReasonBestWith:    "best at this count",
	models.MatchReasonQuick:       "quick",
	models.MatchReasonMedium:      "medium length",
	models.MatchReasonLong:        "long haul",
	models.MatchReasonCoop:        "co-op",
	models.MatchReasonCompetitive: "competitive",
}

func joinButton() discordgo.Button {
	return discordgo.Button{
		Label:    "Join",
		Style:    discordgo.SuccessButton,
		CustomID: ButtonJoin,
		Emoji:    &discordgo.ComponentEmoji{Name: "🙋"},
	}
}

func recommendButton() discordgo.Button {
	return discordgo.Button{
		Label:    "Recommend",
		Style:    discordgo.PrimaryButton,
		CustomID: ButtonRecommend,
		Emoji:    &discordgo.ComponentEmoji{Name: "🎲"},
	}
}

func commitButton(disabled bool) discordgo.Button {
	return discordgo.Button{
		Label:    "Lock it in",
		Style:    discordgo.SecondaryButton,
		CustomID: ButtonCommit,
		Disabled: disabled,
		Emoji:    &discordgo.ComponentEmoji{Name: "🔒"},
	}
}

// renderRecommendation builds the recommendation embed
func renderRecommendation(rec *gamenight.GetRecommendationOutput, headline *messaging.GetRecommendationMessageOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       headline.Title,
		Description: headline.Message,
		Color:       colorInfo,
	}

	names := participantNames(rec.Participants)

	if top := rec.Result.TopPick; top != nil {
		embed.Color = colorSuccess
		label := fmt.Sprintf("%s (%d pts)", top.Item.Name, top.Score)
		if rec.Session != nil && rec.Session.PromotedItemID == top.Item.ID {
			label += " 📌"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🏆 Top pick",
			Value: label + reasonSuffix(top.MatchReasons),
		})
	}

	if len(rec.Result.Alternatives) > 0 {
		var sb strings.Builder
		for idx, alt := range rec.Result.Alternatives {
			fmt.Fprintf(&sb, "%d. %s (%d pts)%s\n", idx+2, alt.Item.Name, alt.Score, reasonSuffix(alt.MatchReasons))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Also in the running",
			Value: sb.String(),
		})
	}

	if len(rec.Result.Vetoed) > 0 {
		var sb strings.Builder
		for _, vetoed := range rec.Result.Vetoed {
			by := make([]string, 0, len(vetoed.VetoedBy))
			for _, id := range vetoed.VetoedBy {
				by = append(by, nameOrID(names, id))
			}
			fmt.Fprintf(&sb, "~~%s~~ (%s)\n", vetoed.Item.Name, strings.Join(by, ", "))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🚫 Vetoed",
			Value: sb.String(),
		})
	}

	footer := fmt.Sprintf("%d of %d games pass the filters · %d players", len(rec.Filtered), rec.CandidateCount, len(rec.Participants))
	if rec.Merged {
		footer += " · remote guests included"
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}

	if rec.GuestSyncError != "" {
		embed.Color = colorWarning
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "⚠️ Guest sync",
			Value: "Couldn't reach remote guests, using their last known picks.",
		})
	}

	return embed
}

// renderParticipants builds the player list embed
func renderParticipants(list *gamenight.ListParticipantsOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "At the table",
		Color: colorInfo,
	}

	if len(list.Participants) == 0 {
		embed.Description = "Nobody yet. Use `/gamenight join`."
	} else {
		var sb strings.Builder
		for _, p := range list.Participants {
			sb.WriteString("• ")
			sb.WriteString(p.MatchName())
			if p.IsOrganizer {
				sb.WriteString(" 👑")
			}
			sb.WriteString("\n")
		}
		embed.Description = sb.String()
	}

	if len(list.Slots) > 0 {
		var sb strings.Builder
		for _, slot := range list.Slots {
			status := "waiting"
			if slot.IsActive() {
				status = "joined"
			}
			fmt.Fprintf(&sb, "• %s (%s) `%s`\n", slot.ReservedDisplayName, status, slot.SlotID)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Remote seats",
			Value: sb.String(),
		})
	}

	return embed
}

// renderHistory builds the committed recommendations embed
func renderHistory(history *gamenight.GetHistoryOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Past picks",
		Color: colorInfo,
	}

	if len(history.Commits) == 0 {
		embed.Description = "Nothing locked in yet."
		return embed
	}

	var sb strings.Builder
	for _, commit := range history.Commits {
		fmt.Fprintf(&sb, "<t:%d:R> **%s** (%d pts)\n", commit.CommittedAt.Unix(), commit.TopPick.Name, commit.TopPick.Score)
	}
	embed.Description = sb.String()

	return embed
}

func participantNames(participants []*models.Participant) map[string]string {
	names := make(map[string]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.MatchName()
	}
	return names
}

func nameOrID(names map[string]string, id string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return id
}

func reasonSuffix(reasons []models.MatchReason) string {
	if len(reasons) == 0 {
		return ""
	}
	labels := make([]string, 0, len(reasons))
	for _, r := range reasons {
		if label, ok := reasonLabels[r]; ok {
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		return ""
	}
	return " · " + strings.Join(labels, ", ")
}

// renderFilters builds the filter summary embed
func renderFilters(filters models.FilterConfig) *discordgo.MessageEmbed {
	mode := filters.Mode
	if mode == "" {
		mode = models.GameModeAny
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Players", Value: fmt.Sprintf("%d", filters.PlayerCount), Inline: true},
		{Name: "Mode", Value: string(mode), Inline: true},
		{Name: "Play time", Value: formatRange(filters.TimeRange.Min, filters.TimeRange.Max, " min"), Inline: true},
	}

	if filters.RequireBestWithPlayerCount {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Best with", Value: "required", Inline: true})
	}
	if filters.ComplexityRange != (models.Range[float64]{}) {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Complexity",
			Value:  formatRange(filters.ComplexityRange.Min, filters.ComplexityRange.Max, ""),
			Inline: true,
		})
	}
	if filters.RatingRange != (models.Range[float64]{}) {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Rating",
			Value:  formatRange(filters.RatingRange.Min, filters.RatingRange.Max, ""),
			Inline: true,
		})
	}
	if filters.ExcludeLowRatedThreshold != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Drop if anyone rated below",
			Value:  fmt.Sprintf("%g", *filters.ExcludeLowRatedThreshold),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  "Filters updated",
		Color:  colorInfo,
		Fields: fields,
	}
}

func formatRange[T int | float64](lo, hi T, unit string) string {
	if hi == 0 {
		if lo == 0 {
			return "any"
		}
		return fmt.Sprintf("%v%s+", lo, unit)
	}
	return fmt.Sprintf("%v-%v%s", lo, hi, unit)
}
