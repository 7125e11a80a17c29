package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetJoinMessage returns a message for when someone joins a game night
	GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error)

	// GetRecommendationMessage returns the headline for a recommendation
	GetRecommendationMessage(ctx context.Context, input *GetRecommendationMessageInput) (*GetRecommendationMessageOutput, error)

	// GetCommitMessage returns a message for when the group locks in a game
	GetCommitMessage(ctx context.Context, input *GetCommitMessageInput) (*GetCommitMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
