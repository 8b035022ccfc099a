package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/fitna/internal/services/game"
)

func TestSessionStore(t *testing.T) {
	store, err := NewSessionStore(8)
	require.NoError(t, err)

	assert.False(t, store.Get("c1", "u1").Active())

	session := &game.Session{RoomID: "room-1", PlayerID: "p-1"}
	store.Set("c1", "u1", session)
	assert.Same(t, session, store.Get("c1", "u1"))
	assert.False(t, store.Get("c2", "u1").Active(), "sessions are per channel")
	assert.False(t, store.Get("c1", "u2").Active(), "sessions are per user")

	store.Delete("c1", "u1")
	assert.False(t, store.Get("c1", "u1").Active())
}

func TestSessionStoreEvictsOldest(t *testing.T) {
	store, err := NewSessionStore(1)
	require.NoError(t, err)

	store.Set("c1", "u1", &game.Session{RoomID: "r", PlayerID: "p1"})
	store.Set("c1", "u2", &game.Session{RoomID: "r", PlayerID: "p2"})

	assert.False(t, store.Get("c1", "u1").Active())
	assert.True(t, store.Get("c1", "u2").Active())
}

func TestModalTexts(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: ModalQuestions,
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "question_0", Value: "Qui ronfle ?"},
			}},
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "question_1", Value: "Qui triche ?"},
			}},
		},
	}

	assert.Equal(t, []string{"Qui ronfle ?", "Qui triche ?"}, modalTexts(data))
}

func TestNewInvocation(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ChannelID: "c1",
		Member: &discordgo.Member{
			Nick: "Queen",
			User: &discordgo.User{ID: "u1", Username: "sophie"},
		},
	}}
	inv := newInvocation(guild)
	assert.Equal(t, "u1", inv.UserID)
	assert.Equal(t, "Queen", inv.Username)

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ChannelID: "dm",
		User:      &discordgo.User{ID: "u2", Username: "hasan"},
	}}
	inv = newInvocation(dm)
	assert.Equal(t, "u2", inv.UserID)
	assert.Equal(t, "hasan", inv.Username)
}

func TestMedal(t *testing.T) {
	assert.NotEqual(t, medal(1), medal(2))
	assert.NotEqual(t, medal(2), medal(3))
	assert.Equal(t, "4.", medal(4))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "court", truncate("court", 10))

	long := truncate("Question sur Marie-Charlotte-Éléonore de la Tour du Pin", maxLabelLength)
	assert.Equal(t, maxLabelLength, len([]rune(long)))
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{})
	assert.Error(t, err)

	_, err = New(&Config{Token: "token"})
	assert.Error(t, err)
}
