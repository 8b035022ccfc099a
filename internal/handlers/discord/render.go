package discord

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/enescakir/emoji"

	"github.com/KirkDiggler/fitna/internal/models"
)

const (
	// maxModalInputs is the number of text inputs Discord allows in a modal
	maxModalInputs = 5

	// maxLabelLength is the Discord limit for a text input label
	maxLabelLength = 45
)

func drawButton() discordgo.MessageComponent {
	return discordgo.Button{
		Label:    "Tirer une carte",
		Style:    discordgo.PrimaryButton,
		CustomID: ButtonDraw,
		Emoji: &discordgo.ComponentEmoji{
			Name: emoji.Joystick.String(),
		},
	}
}

func denounceButton() discordgo.MessageComponent {
	return discordgo.Button{
		Label:    "Dénoncer",
		Style:    discordgo.DangerButton,
		CustomID: ButtonDenounce,
		Emoji: &discordgo.ComponentEmoji{
			Name: emoji.Loudspeaker.String(),
		},
	}
}

func nextTurnButton() discordgo.MessageComponent {
	return discordgo.Button{
		Label:    "Tour suivant",
		Style:    discordgo.SecondaryButton,
		CustomID: ButtonNextTurn,
		Emoji: &discordgo.ComponentEmoji{
			Name: emoji.Stopwatch.String(),
		},
	}
}

// medal returns the badge shown in front of a rank
func medal(rank int) string {
	switch rank {
	case 1:
		return emoji.Trophy.String()
	case 2:
		return emoji.GemStone.String()
	case 3:
		return emoji.Fire.String()
	default:
		return fmt.Sprintf("%d.", rank)
	}
}

func renderRanking(title string, entries []models.RankingEntry) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s **%s** : %d pts\n", medal(e.Rank), e.Player.Pseudo, e.Player.Points)
	}
	if b.Len() == 0 {
		b.WriteString("Personne pour l'instant.")
	}

	return &discordgo.MessageEmbed{
		Title:       emoji.ChequeredFlag.String() + " " + title,
		Description: b.String(),
		Color:       colorInfo,
	}
}

func renderCreatedRoom(room *models.Room, phaseMessage string) *discordgo.MessageEmbed {
	names := "aucun"
	if len(room.AvailableNames) > 0 {
		names = strings.Join(room.AvailableNames, ", ")
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s Salle %s", emoji.PartyingFace.String(), room.Code),
		Description: phaseMessage,
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Code", Value: room.Code, Inline: true},
			{Name: "Hôte", Value: room.OwnerPseudo, Inline: true},
			{Name: "Prénoms disponibles", Value: names},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Pour rejoindre : /fitna join code:%s", room.Code),
		},
	}
}

func renderCard(q *models.Question, title, teaser string, remaining int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("**%s**\n\n%s", q.Text, teaser),
		Color:       colorPlaying,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Cartes restantes : %d", remaining),
		},
	}
}

// renderRoom shows pseudos only; the caller also sees their real name
func renderRoom(room *models.Room, playerID string) *discordgo.MessageEmbed {
	var players strings.Builder
	for _, p := range room.Players {
		mark := emoji.CrossMark.String()
		if p.HasSubmittedQuestions {
			mark = emoji.ThumbsUp.String()
		}
		fmt.Fprintf(&players, "%s %s (%d pts)", mark, p.Pseudo, p.Points)
		if room.IsOwner(p.ID) {
			players.WriteString(" " + emoji.Star.String())
		}
		if p.ID == playerID {
			fmt.Fprintf(&players, " : toi, %s", p.RealName)
		}
		players.WriteString("\n")
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Salle %s", room.Code),
		Color: colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Phase", Value: string(room.Phase), Inline: true},
			{Name: "Cartes restantes", Value: fmt.Sprintf("%d/%d", len(room.RemainingQuestions()), len(room.Questions)), Inline: true},
			{Name: "Chrono", Value: fmt.Sprintf("%ds", room.Timer), Inline: true},
			{Name: "Joueurs", Value: players.String()},
		},
	}
}

// questionsModal asks one question per other player, in join order
func questionsModal(others []*models.Player) *discordgo.InteractionResponse {
	rows := make([]discordgo.MessageComponent, 0, len(others))
	for i, p := range others {
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:  fmt.Sprintf("question_%d", i),
					Label:     truncate("Question sur "+p.RealName, maxLabelLength),
					Style:     discordgo.TextInputParagraph,
					Required:  true,
					MaxLength: models.MaxQuestionLength,
				},
			},
		})
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   ModalQuestions,
			Title:      "Tes questions",
			Components: rows,
		},
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
