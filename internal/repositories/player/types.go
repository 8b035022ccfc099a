package player

import "github.com/KirkDiggler/fitna/internal/models"

type CreatePlayerInput struct {
	Player *models.Player
}

type GetPlayerInput struct {
	PlayerID string
}

type GetPlayersInRoomInput struct {
	RoomID string
}

// GetPlayersInRoomOutput lists players in join order
type GetPlayersInRoomOutput struct {
	Players []*models.Player
}

type MarkSubmittedInput struct {
	PlayerID string
}

// AddPointsInput is applied as given; callers validate the amount
type AddPointsInput struct {
	PlayerID string
	Points   int
}

// AddPointsOutput is the total after the increment
type AddPointsOutput struct {
	Points int
}
