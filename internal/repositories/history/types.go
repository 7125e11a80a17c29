package history

import "github.com/KirkDiggler/gamenight/internal/models"

// AddCommitInput contains parameters for storing a committed recommendation
type AddCommitInput struct {
	Commit *models.CommittedRecommendation
}

// GetCommitsForSessionInput contains parameters for retrieving a session's commits
type GetCommitsForSessionInput struct {
	SessionID string

	// Limit caps the number of commits returned; zero returns all
	Limit int
}

// GetCommitsByFingerprintInput contains parameters for retrieving commits by fingerprint
type GetCommitsByFingerprintInput struct {
	Fingerprint string

	// Limit caps the number of commits returned; zero returns all
	Limit int
}

// GetCommitsOutput contains committed recommendations, newest first
type GetCommitsOutput struct {
	Commits []*models.CommittedRecommendation
}
