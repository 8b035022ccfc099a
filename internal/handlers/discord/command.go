package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorInfo    = 0x00ff00
	colorPlaying = 0xff8800
	colorError   = 0xff0000
)

// CommandHandler is a slash command the bot registers and routes to
type CommandHandler interface {
	GetName() string
	GetCommand() *discordgo.ApplicationCommand
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand carries the slash command definition shared by handlers
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

func (c *BaseCommand) GetName() string { return c.Name }

// GetCommand builds the definition sent to Discord on registration
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// messageResponse builds a plain channel message
func messageResponse(content string, ephemeral bool) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Content: content,
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// embedResponse builds a message with one embed and optional buttons
func embedResponse(embed *discordgo.MessageEmbed, ephemeral bool, buttons ...discordgo.MessageComponent) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if len(buttons) > 0 {
		data.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		}
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// errorResponse builds an ephemeral red embed
func errorResponse(title, message string) *discordgo.InteractionResponse {
	return embedResponse(&discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorError,
	}, true)
}

// RespondWithEphemeralMessage answers the interaction with text only the caller sees
func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, messageResponse(message, true))
}
