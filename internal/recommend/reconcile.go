package recommend

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/KirkDiggler/gamenight/internal/models"
)

// ReconcileInput holds the local and remote views of a session's participants
type ReconcileInput struct {
	// Participants are the participants recorded locally
	Participants []*models.Participant

	// Preferences are the local preference records
	Preferences models.Preferences

	// Guests are the remote guest snapshots, possibly several per guest
	Guests []*models.GuestSnapshot

	// Slots are the host's named slots
	Slots []*models.NamedSlot
}

// ReconcileOutput is the merged view used for scoring
type ReconcileOutput struct {
	// Participants are the counted participants, sorted by ID
	Participants []*models.Participant

	// Preferences are keyed by resolved participant ID, each list sorted by item ID
	Preferences models.Preferences

	// Aliases maps a guest participant ID to the local participant it was folded into
	Aliases map[string]string
}

// Reconcile merges local participants with remote guests without counting anyone twice.
//
// For every claimed named slot the guest's display name is trimmed and case folded and
// compared with the local participants' names. Exactly one match folds the guest into
// that local participant: the local entry is hidden and the guest's records move onto
// the local ID. No match, several matches, or a local targeted by more than one guest
// leaves both sides in the merged view. Where a local and a guest record cover the same
// item, the guest record wins only if it is strictly newer.
//
// Reconcile is idempotent: feeding its output back in as the local view yields the same output.
func Reconcile(sc SessionContext, in *ReconcileInput) *ReconcileOutput {
	var guests []*models.GuestSnapshot
	if sc.Merged {
		guests = latestSnapshots(in.Guests)
	}

	aliases := resolveSlots(in.Participants, guests, in.Slots)

	hidden := make(map[string]*models.Participant, len(aliases))
	for _, local := range in.Participants {
		for _, localID := range aliases {
			if local != nil && local.ID == localID {
				hidden[local.ID] = local
			}
		}
	}

	merged := make(map[string]*models.Participant)
	for _, local := range in.Participants {
		if local == nil {
			continue
		}
		if _, ok := hidden[local.ID]; ok {
			continue
		}
		copied := *local
		merged[local.ID] = &copied
	}

	for _, guest := range guests {
		participant := &models.Participant{
			ID:          guest.ParticipantID,
			SessionID:   sc.SessionID,
			DisplayName: guest.DisplayName,
			Origin:      models.ParticipantOriginRemoteGuest,
		}
		if localID, ok := aliases[guest.ParticipantID]; ok {
			local := hidden[localID]
			participant.ID = localID
			participant.Username = local.Username
			participant.IsOrganizer = local.IsOrganizer
			if participant.SessionID == "" {
				participant.SessionID = local.SessionID
			}
		}
		merged[participant.ID] = participant
	}

	records := newRecordSet()
	for _, participantID := range sortedKeys(in.Preferences) {
		for _, record := range in.Preferences[participantID] {
			records.put(participantID, record, record.UpdatedAt)
		}
	}
	for _, guest := range guests {
		resolvedID := guest.ParticipantID
		if localID, ok := aliases[guest.ParticipantID]; ok {
			resolvedID = localID
		}
		for _, record := range guest.Preferences {
			updatedAt := record.UpdatedAt
			if updatedAt.IsZero() {
				updatedAt = guest.UpdatedAt
			}
			records.put(resolvedID, record, updatedAt)
		}
	}

	participants := make([]*models.Participant, 0, len(merged))
	for _, id := range sortedKeys(merged) {
		participants = append(participants, merged[id])
	}

	return &ReconcileOutput{
		Participants: participants,
		Preferences:  records.preferences(merged),
		Aliases:      aliases,
	}
}

// latestSnapshots keeps the newest snapshot per guest, sorted by participant ID.
// A later entry wins a tie on UpdatedAt.
func latestSnapshots(snapshots []*models.GuestSnapshot) []*models.GuestSnapshot {
	latest := make(map[string]*models.GuestSnapshot)
	for _, snapshot := range snapshots {
		if snapshot == nil || snapshot.ParticipantID == "" {
			continue
		}
		if current, ok := latest[snapshot.ParticipantID]; ok && current.UpdatedAt.After(snapshot.UpdatedAt) {
			continue
		}
		latest[snapshot.ParticipantID] = snapshot
	}

	guests := make([]*models.GuestSnapshot, 0, len(latest))
	for _, id := range sortedKeys(latest) {
		guests = append(guests, latest[id])
	}
	return guests
}

// resolveSlots maps guest IDs to the single local participant each claimed slot matches
func resolveSlots(locals []*models.Participant, guests []*models.GuestSnapshot, slots []*models.NamedSlot) map[string]string {
	byID := make(map[string]*models.GuestSnapshot, len(guests))
	for _, guest := range guests {
		byID[guest.ParticipantID] = guest
	}

	candidates := make(map[string]string)
	for _, slot := range slots {
		if slot == nil || !slot.IsActive() {
			continue
		}
		guest, ok := byID[slot.ClaimedBy]
		if !ok {
			continue
		}

		name := normalize(guest.DisplayName)
		if name == "" {
			name = normalize(slot.ReservedDisplayName)
		}
		if name == "" {
			continue
		}

		var matches []string
		for _, local := range locals {
			if local == nil {
				continue
			}
			// Guests already in the local view never absorb another guest
			if _, isGuest := byID[local.ID]; isGuest {
				continue
			}
			if normalize(local.MatchName()) == name {
				matches = append(matches, local.ID)
			}
		}
		if len(matches) == 1 {
			candidates[guest.ParticipantID] = matches[0]
		}
	}

	claims := make(map[string]int, len(candidates))
	for _, localID := range candidates {
		claims[localID]++
	}

	aliases := make(map[string]string, len(candidates))
	for guestID, localID := range candidates {
		if claims[localID] == 1 {
			aliases[guestID] = localID
		}
	}
	return aliases
}

// normalize trims and case folds a name for exact comparison
func normalize(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

type recordKey struct {
	participantID string
	itemID        string
}

// recordSet keeps one record per participant and item, newest wins
type recordSet struct {
	records map[recordKey]*models.PreferenceRecord
}

func newRecordSet() *recordSet {
	return &recordSet{records: make(map[recordKey]*models.PreferenceRecord)}
}

func (s *recordSet) put(participantID string, record *models.PreferenceRecord, updatedAt time.Time) {
	if record == nil || record.ItemID == "" {
		return
	}
	key := recordKey{participantID: participantID, itemID: record.ItemID}
	if existing, ok := s.records[key]; ok && !updatedAt.After(existing.UpdatedAt) {
		return
	}

	copied := *record
	copied.ParticipantID = participantID
	copied.UpdatedAt = updatedAt
	if record.Rank != nil {
		rank := *record.Rank
		copied.Rank = &rank
	}
	s.records[key] = &copied
}

// preferences returns the records of the given participants, each list sorted by item ID
func (s *recordSet) preferences(participants map[string]*models.Participant) models.Preferences {
	prefs := make(models.Preferences)
	for key, record := range s.records {
		if _, ok := participants[key.participantID]; !ok {
			continue
		}
		prefs[key.participantID] = append(prefs[key.participantID], record)
	}
	for _, records := range prefs {
		sort.Slice(records, func(i, j int) bool {
			return records[i].ItemID < records[j].ItemID
		})
	}
	return prefs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
