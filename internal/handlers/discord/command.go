package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorSuccess = 0x00ff00
	colorInfo    = 0x3498db
	colorWarning = 0xf1c40f
	colorError   = 0xff0000
)

// Responder answers interactions. *discordgo.Session implements it.
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(r Responder, i *discordgo.InteractionCreate) error
}

// ComponentHandler is implemented by commands that own message components
type ComponentHandler interface {
	// HandlesComponent reports whether the custom ID belongs to this handler
	HandlesComponent(customID string) bool

	// HandleComponent processes a component interaction
	HandleComponent(r Responder, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// RespondWithEmbed sends an embed response, optionally with a row of buttons
func RespondWithEmbed(r Responder, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, buttons ...discordgo.MessageComponent) error {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}

	if len(buttons) > 0 {
		data.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		}
	}

	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondWithError sends an ephemeral error embed
func RespondWithError(r Responder, i *discordgo.InteractionCreate, title, message string) error {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorError,
	}

	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithEphemeralMessage sends an ephemeral message response to an interaction
func RespondWithEphemeralMessage(r Responder, i *discordgo.InteractionCreate, message string) error {
	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// interactionUser returns the invoking user's ID, display name and username
func interactionUser(i *discordgo.InteractionCreate) (id, displayName, username string) {
	user := i.User
	nick := ""
	if i.Member != nil && i.Member.User != nil {
		user = i.Member.User
		nick = i.Member.Nick
	}

	if user == nil {
		return "", "", ""
	}

	displayName = nick
	if displayName == "" {
		displayName = user.GlobalName
	}
	if displayName == "" {
		displayName = user.Username
	}

	return user.ID, displayName, user.Username
}
