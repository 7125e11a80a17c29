package models

import (
	"time"
)

// Session is a game night in a Discord channel
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// ChannelID is the Discord channel the session runs in
	ChannelID string

	// OrganizerID is the participant ID of the host
	OrganizerID string

	// Filters is the current candidate filter configuration
	Filters FilterConfig

	// PromotedItemID is the caller-set promotion override, empty when cleared
	PromotedItemID string

	// MessageID is the Discord message showing the latest recommendation
	MessageID string

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session last changed
	UpdatedAt time.Time
}
