package room

import (
	"time"

	"github.com/KirkDiggler/fitna/internal/models"
)

// CreateRoomInput contains parameters for creating a room
type CreateRoomInput struct {
	Room *models.Room
}

// GetRoomInput contains parameters for retrieving a room
type GetRoomInput struct {
	RoomID string
}

// GetRoomByCodeInput contains parameters for retrieving a room by code
type GetRoomByCodeInput struct {
	Code string
}

// SetOwnerInput contains parameters for setting the room owner
type SetOwnerInput struct {
	RoomID  string
	OwnerID string
	Now     time.Time
}

// ClaimNameInput contains parameters for claiming a real name
type ClaimNameInput struct {
	RoomID   string
	RealName string
}

// ClaimNameOutput contains the result of claiming a real name
type ClaimNameOutput struct {
	// Claimed is false when the name was not in the pool
	Claimed bool
}

// ReleaseNameInput contains parameters for releasing a real name
type ReleaseNameInput struct {
	RoomID   string
	RealName string
}

// UpdatePhaseInput contains parameters for changing the phase
type UpdatePhaseInput struct {
	RoomID string
	Phase  models.Phase
	Now    time.Time
}

// UpdateTimerInput contains parameters for resetting the timer
type UpdateTimerInput struct {
	RoomID  string
	Seconds int
	Now     time.Time
}

// RecordDrawInput contains parameters for recording a card draw
type RecordDrawInput struct {
	RoomID     string
	QuestionID string

	// ExpectedCursor is the cursor value the caller based its pick on
	ExpectedCursor int

	Now time.Time
}

// RecordDrawOutput contains the result of recording a draw
type RecordDrawOutput struct {
	// Cursor is the cursor value after the draw
	Cursor int
}
