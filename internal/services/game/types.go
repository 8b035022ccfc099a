package game

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/fitna/internal/cache"
	"github.com/KirkDiggler/fitna/internal/common/clock"
	"github.com/KirkDiggler/fitna/internal/common/roomcode"
	"github.com/KirkDiggler/fitna/internal/common/uuid"
	"github.com/KirkDiggler/fitna/internal/draw"
	"github.com/KirkDiggler/fitna/internal/models"
	playerRepo "github.com/KirkDiggler/fitna/internal/repositories/player"
	questionRepo "github.com/KirkDiggler/fitna/internal/repositories/question"
	roomRepo "github.com/KirkDiggler/fitna/internal/repositories/room"
)

const (
	// DefaultMaxPlayers bounds a room so every player fits in one question form
	DefaultMaxPlayers = 6

	// DefaultMinPlayers is the lobby size needed before starting
	DefaultMinPlayers = 3

	// DefaultTurnSeconds is the per-turn countdown
	DefaultTurnSeconds = 60

	// DefaultMaxCodeAttempts bounds room code regeneration on collisions
	DefaultMaxCodeAttempts = 5

	// DenouncePoints is awarded for each denunciation
	DenouncePoints = 10
)

// Config holds configuration for the game service
type Config struct {
	// MaxPlayers is the room capacity, owner included
	MaxPlayers int

	// MinPlayers is the lobby size reported by ReadyToStart
	MinPlayers int

	// TurnSeconds is the value NextTurn resets the timer to
	TurnSeconds int

	// MaxCodeAttempts bounds code regeneration when a code is taken
	MaxCodeAttempts int

	// Repository dependencies
	RoomRepo     roomRepo.Repository
	PlayerRepo   playerRepo.Repository
	QuestionRepo questionRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	CodeGenerator roomcode.Generator
	Picker        draw.Picker
	Cache         cache.RoomCache
	Logger        *zap.SugaredLogger
}

// CreateRoomInput contains parameters for creating a room
type CreateRoomInput struct {
	OwnerRealName string
	OwnerPseudo   string

	// AvailableNames are the real names joiners may claim
	AvailableNames []string
}

// CreateRoomOutput contains the result of creating a room
type CreateRoomOutput struct {
	Code    string
	Session *Session
	Room    *models.Room
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	Code     string
	RealName string
	Pseudo   string
}

// JoinRoomOutput contains the result of joining a room
type JoinRoomOutput struct {
	Session *Session
	Room    *models.Room
}

// LoadRoomInput contains parameters for loading a room snapshot
type LoadRoomInput struct {
	RoomID string

	// Fresh skips the snapshot cache
	Fresh bool
}

// LoadRoomOutput contains the room snapshot. It must not be modified.
type LoadRoomOutput struct {
	Room *models.Room
}

// SubmitQuestionsInput contains the caller's questions. Texts[i] is about
// the i-th other player in join order.
type SubmitQuestionsInput struct {
	Session *Session
	Texts   []string
}

// SubmitQuestionsOutput contains the room after submission
type SubmitQuestionsOutput struct {
	Room *models.Room
}

// StartGameInput contains parameters for starting the game
type StartGameInput struct {
	Session *Session
}

// StartGameOutput contains the room after starting
type StartGameOutput struct {
	Room *models.Room
}

// NextTurnInput contains parameters for resetting the timer
type NextTurnInput struct {
	Session *Session
}

// NextTurnOutput contains the room after the reset
type NextTurnOutput struct {
	Room *models.Room
}

// EndGameInput contains parameters for ending the game
type EndGameInput struct {
	Session *Session
}

// EndGameOutput contains the final room and its ranking
type EndGameOutput struct {
	Room    *models.Room
	Ranking []models.RankingEntry
}

// DrawCardInput contains parameters for drawing a card
type DrawCardInput struct {
	Session *Session
}

// DrawCardOutput contains the drawn question. Question is nil when every
// question has been drawn.
type DrawCardOutput struct {
	Question *models.Question
	Room     *models.Room
}

// DenounceInput contains parameters for a denunciation
type DenounceInput struct {
	Session *Session
}

// DenounceOutput contains the denouncer's new total
type DenounceOutput struct {
	Points int
	Room   *models.Room
}

// AddPointsInput contains parameters for awarding points
type AddPointsInput struct {
	Session  *Session
	PlayerID string
	Points   int
}

// AddPointsOutput contains the player's new total
type AddPointsOutput struct {
	Points int
	Room   *models.Room
}

// LeaveRoomInput contains the session to clear
type LeaveRoomInput struct {
	Session *Session
}

// LeaveRoomOutput contains the result of leaving
type LeaveRoomOutput struct {
	RoomID string
}

// GetRankingInput contains parameters for the standings
type GetRankingInput struct {
	Session *Session
}

// GetRankingOutput contains the standings
type GetRankingOutput struct {
	Ranking []models.RankingEntry
	Room    *models.Room
}
