package messaging

import (
	"github.com/KirkDiggler/fitna/internal/draw"
	"github.com/KirkDiggler/fitna/internal/models"
)

// MessageTone selects a family of lines
type MessageTone string

const (
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is the default when no tone is requested
	ToneFunny MessageTone = "funny"

	// ToneSpicy teases the players
	ToneSpicy MessageTone = "spicy"
)

// Error kinds understood by GetErrorMessage
const (
	ErrorKindNotFound    = "not_found"
	ErrorKindValidation  = "validation_failed"
	ErrorKindPersistence = "persistence_failed"
	ErrorKindNoSession   = "no_session"
)

// Config wires the messaging service
type Config struct {
	// Picker selects among the candidate lines
	Picker draw.Picker
}

// GetJoinRoomMessageInput contains parameters for a welcome line
type GetJoinRoomMessageInput struct {
	Pseudo string

	// PreferredTone is optional
	PreferredTone MessageTone
}

// GetJoinRoomMessageOutput contains the welcome line
type GetJoinRoomMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetPhaseMessageInput contains parameters for a phase announcement
type GetPhaseMessageInput struct {
	Phase       models.Phase
	PlayerCount int
}

// GetPhaseMessageOutput contains the phase announcement
type GetPhaseMessageOutput struct {
	Message string
}

// GetDrawMessageInput contains parameters for a drawn card
type GetDrawMessageInput struct {
	// TargetName is the real name the question is about
	TargetName string

	// Remaining counts the cards left after this draw
	Remaining int
}

// GetDrawMessageOutput contains the card title and teaser
type GetDrawMessageOutput struct {
	Title   string
	Message string
}

// GetDenounceMessageInput contains parameters for a denunciation line
type GetDenounceMessageInput struct {
	Pseudo string
	Points int
}

// GetDenounceMessageOutput contains the denunciation line
type GetDenounceMessageOutput struct {
	Message string
}

// GetRankingMessageInput contains parameters for a rank comment
type GetRankingMessageInput struct {
	Pseudo       string
	Rank         int
	Points       int
	TotalPlayers int
}

// GetRankingMessageOutput contains the rank comment
type GetRankingMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorKind is one of the ErrorKind constants
	ErrorKind string

	// PreferredTone is optional
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}
