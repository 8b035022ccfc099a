package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/fitna/internal/services/messaging Service

import "context"

// Service picks the French flavour text shown around game events
type Service interface {
	// GetJoinRoomMessage returns a welcome line for a new player
	GetJoinRoomMessage(ctx context.Context, input *GetJoinRoomMessageInput) (*GetJoinRoomMessageOutput, error)

	// GetPhaseMessage returns a line announcing the room phase
	GetPhaseMessage(ctx context.Context, input *GetPhaseMessageInput) (*GetPhaseMessageOutput, error)

	// GetDrawMessage returns the title and teaser for a drawn card
	GetDrawMessage(ctx context.Context, input *GetDrawMessageInput) (*GetDrawMessageOutput, error)

	// GetDenounceMessage returns a line for a denunciation
	GetDenounceMessage(ctx context.Context, input *GetDenounceMessageInput) (*GetDenounceMessageOutput, error)

	// GetRankingMessage returns a comment for a player's final rank
	GetRankingMessage(ctx context.Context, input *GetRankingMessageInput) (*GetRankingMessageOutput, error)

	// GetErrorMessage maps an error category to a line safe to show players
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
