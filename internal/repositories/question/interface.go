package question

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/fitna/internal/repositories/question Repository

import (
	"context"
)

// Repository defines the interface for question persistence
type Repository interface {
	// CreateQuestions stores a batch of questions written by one player
	CreateQuestions(ctx context.Context, input *CreateQuestionsInput) error

	// GetQuestionsInRoom retrieves all questions of a room in insertion order
	GetQuestionsInRoom(ctx context.Context, input *GetQuestionsInRoomInput) (*GetQuestionsInRoomOutput, error)
}
