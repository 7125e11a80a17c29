// Package recommend turns a session's candidate games and participant preferences into a
// recommendation. Everything here is a pure function of its inputs: no I/O, no clock and
// no package state, so callers recompute from scratch on every change.
package recommend

import (
	"github.com/KirkDiggler/gamenight/internal/models"
)

// SessionContext identifies the session a computation runs for
type SessionContext struct {
	// SessionID is the session being computed
	SessionID string

	// Merged is true when remote guests take part; otherwise guest snapshots are ignored
	Merged bool
}

// ComputeInput is a full snapshot of a session's inputs
type ComputeInput struct {
	// Candidates are the session's catalog items, in catalog order
	Candidates []*models.Item

	// Filters is the session's filter configuration
	Filters models.FilterConfig

	// Ratings are the numeric ratings used by the low-rated exclusion
	Ratings models.Ratings

	// Participants are the local participants
	Participants []*models.Participant

	// Preferences are the local preference records
	Preferences models.Preferences

	// Guests are the latest remote guest snapshots
	Guests []*models.GuestSnapshot

	// Slots are the host's named slots
	Slots []*models.NamedSlot

	// Promotion is the caller-held promotion override
	Promotion Promotion
}

// ComputeOutput is the engine's result plus the intermediate views callers display
type ComputeOutput struct {
	// Result is the recommendation
	Result *models.RecommendationResult

	// Filtered are the candidates that passed the filters
	Filtered []*models.Item

	// Participants are the merged, counted participants
	Participants []*models.Participant

	// Preferences are the merged preference records
	Preferences models.Preferences

	// Aliases maps guests folded into local participants
	Aliases map[string]string
}

// Compute filters the candidates, reconciles participants and scores the result
func Compute(sc SessionContext, in *ComputeInput) *ComputeOutput {
	filtered := Filter(in.Candidates, in.Filters, in.Ratings)

	merged := Reconcile(sc, &ReconcileInput{
		Participants: in.Participants,
		Preferences:  in.Preferences,
		Guests:       in.Guests,
		Slots:        in.Slots,
	})

	result := Score(&ScoreInput{
		Candidates:     filtered,
		Preferences:    merged.Preferences,
		PromotedItemID: in.Promotion.ItemID(),
		Filters:        in.Filters,
	})

	return &ComputeOutput{
		Result:       result,
		Filtered:     filtered,
		Participants: merged.Participants,
		Preferences:  merged.Preferences,
		Aliases:      merged.Aliases,
	}
}
