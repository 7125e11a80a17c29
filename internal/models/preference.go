package models

import (
	"time"
)

// PreferenceRecord is one participant's stance on one item.
// A record is either a dislike or a positive preference (rank and/or top pick), never both.
type PreferenceRecord struct {
	// ParticipantID is the participant who owns the record
	ParticipantID string

	// ItemID is the item the record refers to
	ItemID string

	// Rank is the participant's ordering, 1 being most preferred
	Rank *int

	// IsTopPick marks the participant's favourite items
	IsTopPick bool

	// IsDisliked vetoes the item for the whole group
	IsDisliked bool

	// UpdatedAt is when the record last changed
	UpdatedAt time.Time
}

// Preferences maps participant IDs to their preference records
type Preferences map[string][]*PreferenceRecord

// Ratings maps participant IDs to item IDs to numeric ratings
type Ratings map[string]map[string]float64

// PreferenceEdit is a partial update to a preference record.
// Nil fields are left untouched.
type PreferenceEdit struct {
	Rank      *int
	ClearRank bool
	TopPick   *bool
	Disliked  *bool
}

// Apply writes the edit to the record and keeps dislike and positive preference exclusive.
// Marking an item disliked clears its rank and top pick; ranking it or picking it clears the dislike.
func (p *PreferenceRecord) Apply(edit PreferenceEdit, now time.Time) {
	if edit.ClearRank {
		p.Rank = nil
	}
	if edit.Rank != nil {
		rank := *edit.Rank
		p.Rank = &rank
	}
	if edit.TopPick != nil {
		p.IsTopPick = *edit.TopPick
	}
	if edit.Disliked != nil {
		p.IsDisliked = *edit.Disliked
	}

	switch {
	case edit.Disliked != nil && *edit.Disliked:
		p.Rank = nil
		p.IsTopPick = false
	case p.Rank != nil || p.IsTopPick:
		p.IsDisliked = false
	}

	p.UpdatedAt = now
}

// IsEmpty reports whether the record carries no preference at all
func (p *PreferenceRecord) IsEmpty() bool {
	return p.Rank == nil && !p.IsTopPick && !p.IsDisliked
}
