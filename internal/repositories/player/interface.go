package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/fitna/internal/repositories/player Repository

import (
	"context"
	"errors"

	"github.com/KirkDiggler/fitna/internal/models"
)

// ErrPlayerNotFound means no player is stored under the ID
var ErrPlayerNotFound = errors.New("player not found")

// Repository stores players and their point totals
type Repository interface {
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) error

	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayersInRoom lists a room's players oldest first
	GetPlayersInRoom(ctx context.Context, input *GetPlayersInRoomInput) (*GetPlayersInRoomOutput, error)

	// MarkSubmitted records that the player handed in their questions
	MarkSubmitted(ctx context.Context, input *MarkSubmittedInput) error

	// AddPoints increments the total in one store round trip
	AddPoints(ctx context.Context, input *AddPointsInput) (*AddPointsOutput, error)
}
