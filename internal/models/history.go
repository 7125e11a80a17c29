package models

import (
	"time"
)

// CommittedItem is an item as it stood when a recommendation was committed
type CommittedItem struct {
	ItemID string
	Name   string
	Score  int
}

// CommittedRecommendation is an immutable record of a committed recommendation
type CommittedRecommendation struct {
	// ID is the unique identifier for the record
	ID string

	// SessionID is the session the recommendation was committed in
	SessionID string

	// Fingerprint identifies the participant set, candidate set and filters at commit time
	Fingerprint string

	// ParticipantIDs are the counted participants, sorted
	ParticipantIDs []string

	// CandidateIDs are the filtered candidates, in candidate order
	CandidateIDs []string

	// Filters is the filter configuration at commit time
	Filters FilterConfig

	// TopPick is the committed recommendation
	TopPick CommittedItem

	// Alternatives are the runners-up at commit time
	Alternatives []CommittedItem

	// CommittedAt is when the record was written
	CommittedAt time.Time
}
