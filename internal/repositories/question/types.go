package question

import "github.com/KirkDiggler/fitna/internal/models"

// CreateQuestionsInput contains parameters for storing a batch of questions
type CreateQuestionsInput struct {
	Questions []*models.Question
}

// GetQuestionsInRoomInput contains parameters for listing a room's questions
type GetQuestionsInRoomInput struct {
	RoomID string
}

// GetQuestionsInRoomOutput contains the questions of a room
type GetQuestionsInRoomOutput struct {
	Questions []*models.Question
}
