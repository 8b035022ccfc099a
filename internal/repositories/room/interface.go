package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/fitna/internal/repositories/room Repository

import (
	"context"
	"errors"

	"github.com/KirkDiggler/fitna/internal/models"
)

var (
	// ErrRoomNotFound is returned when a room is not found
	ErrRoomNotFound = errors.New("room not found")

	// ErrCodeTaken is returned when another room already uses the code
	ErrCodeTaken = errors.New("room code already taken")

	// ErrCursorMoved is returned when a draw was recorded by someone else first
	ErrCursorMoved = errors.New("question cursor moved")
)

// Repository defines the interface for room persistence. The returned rooms
// carry room-level fields only; players and questions live in their own
// repositories.
type Repository interface {
	// CreateRoom persists a new room and reserves its code
	CreateRoom(ctx context.Context, input *CreateRoomInput) error

	// GetRoom retrieves a room by ID
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// GetRoomByCode retrieves a room by its join code
	GetRoomByCode(ctx context.Context, input *GetRoomByCodeInput) (*models.Room, error)

	// SetOwner back-fills the owner of a room
	SetOwner(ctx context.Context, input *SetOwnerInput) error

	// ClaimName atomically removes a real name from the available pool
	ClaimName(ctx context.Context, input *ClaimNameInput) (*ClaimNameOutput, error)

	// ReleaseName puts a claimed real name back at the end of the pool
	ReleaseName(ctx context.Context, input *ReleaseNameInput) error

	// UpdatePhase sets the phase of a room
	UpdatePhase(ctx context.Context, input *UpdatePhaseInput) error

	// UpdateTimer sets the per-turn countdown of a room
	UpdateTimer(ctx context.Context, input *UpdateTimerInput) error

	// RecordDraw appends a drawn question and advances the cursor, provided
	// the cursor still has the expected value
	RecordDraw(ctx context.Context, input *RecordDrawInput) (*RecordDrawOutput, error)
}
