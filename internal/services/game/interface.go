package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/fitna/internal/services/game Service

import "context"

// Service defines the room lifecycle operations
type Service interface {
	// CreateRoom opens a room owned by a new player and returns its code
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom claims a real name in an existing room
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// LoadRoom assembles the room snapshot with its players and questions
	LoadRoom(ctx context.Context, input *LoadRoomInput) (*LoadRoomOutput, error)

	// SubmitQuestions stores one question per other player
	SubmitQuestions(ctx context.Context, input *SubmitQuestionsInput) (*SubmitQuestionsOutput, error)

	// StartGame moves the room to the playing phase
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// NextTurn resets the turn countdown
	NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error)

	// EndGame moves the room to the finished phase
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// DrawCard picks a random question that has not been drawn yet
	DrawCard(ctx context.Context, input *DrawCardInput) (*DrawCardOutput, error)

	// Denounce awards the fixed denounce bonus to the session player
	Denounce(ctx context.Context, input *DenounceInput) (*DenounceOutput, error)

	// AddPoints awards points to a player of the session room
	AddPoints(ctx context.Context, input *AddPointsInput) (*AddPointsOutput, error)

	// LeaveRoom clears the session. Stored rows are kept.
	LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error)

	// GetRanking returns the standings of the session room
	GetRanking(ctx context.Context, input *GetRankingInput) (*GetRankingOutput, error)
}
