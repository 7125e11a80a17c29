package history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gamenight/internal/repositories/history Repository

import (
	"context"
)

// Repository defines the interface for committed recommendation history
type Repository interface {
	// AddCommit stores a committed recommendation
	AddCommit(ctx context.Context, input *AddCommitInput) error

	// GetCommitsForSession retrieves a session's commits, newest first
	GetCommitsForSession(ctx context.Context, input *GetCommitsForSessionInput) (*GetCommitsOutput, error)

	// GetCommitsByFingerprint retrieves commits made with the same participants, candidates and filters, newest first
	GetCommitsByFingerprint(ctx context.Context, input *GetCommitsByFingerprintInput) (*GetCommitsOutput, error)
}
