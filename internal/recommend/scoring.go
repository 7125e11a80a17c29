package recommend

import (
	"sort"

	"github.com/KirkDiggler/gamenight/internal/models"
)

const (
	// topPickBonus is added on top of the positional points of every top pick
	topPickBonus = 2

	// maxAlternatives caps the runners-up returned after the top pick
	maxAlternatives = 5
)

// ScoreInput holds what the scoring engine ranks
type ScoreInput struct {
	// Candidates are the filtered items, in catalog order
	Candidates []*models.Item

	// Preferences are the merged preference records
	Preferences models.Preferences

	// PromotedItemID forces an eligible item to the top, empty for none
	PromotedItemID string

	// Filters are used for match reasons only
	Filters models.FilterConfig
}

// Score vetoes, Borda-scores and orders the candidates.
//
// Any dislike removes an item from the pool. Each participant ranks the remaining items
// they have a rank or top pick for: top picks first, then ascending rank. With m such
// items the first earns m-1 points down to 0 for the last, and every top pick earns a
// further bonus of 2. Items are ordered by total descending; ties keep candidate order.
func Score(in *ScoreInput) *models.RecommendationResult {
	position := make(map[string]int, len(in.Candidates))
	candidates := make([]*models.Item, 0, len(in.Candidates))
	for _, item := range in.Candidates {
		if item == nil {
			continue
		}
		if _, dup := position[item.ID]; dup {
			continue
		}
		position[item.ID] = len(candidates)
		candidates = append(candidates, item)
	}

	participantIDs := sortedKeys(in.Preferences)

	ballots := make(map[string]map[string]*models.PreferenceRecord, len(participantIDs))
	vetoers := make(map[string][]string)
	for _, participantID := range participantIDs {
		latest := latestRecords(in.Preferences[participantID])
		ballots[participantID] = latest
		for itemID, record := range latest {
			if !record.IsDisliked {
				continue
			}
			if _, ok := position[itemID]; !ok {
				continue
			}
			vetoers[itemID] = append(vetoers[itemID], participantID)
		}
	}

	result := &models.RecommendationResult{
		Alternatives: []*models.ScoredItem{},
		Vetoed:       []*models.VetoedItem{},
	}

	eligible := make([]*models.Item, 0, len(candidates))
	eligiblePosition := make(map[string]int, len(candidates))
	for _, item := range candidates {
		if ids, ok := vetoers[item.ID]; ok {
			result.Vetoed = append(result.Vetoed, &models.VetoedItem{Item: item, VetoedBy: ids})
			continue
		}
		eligiblePosition[item.ID] = position[item.ID]
		eligible = append(eligible, item)
	}

	totals := make(map[string]int, len(eligible))
	for _, participantID := range participantIDs {
		for itemID, points := range bordaPoints(ballots[participantID], eligiblePosition) {
			totals[itemID] += points
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return totals[eligible[i].ID] > totals[eligible[j].ID]
	})

	eligible = promote(eligible, in.PromotedItemID)

	for i, item := range eligible {
		if i > maxAlternatives {
			break
		}
		scored := &models.ScoredItem{
			Item:         item,
			Score:        totals[item.ID],
			MatchReasons: matchReasons(item, in.Filters),
		}
		if i == 0 {
			result.TopPick = scored
			continue
		}
		result.Alternatives = append(result.Alternatives, scored)
	}

	return result
}

type ballotEntry struct {
	itemID   string
	rank     *int
	topPick  bool
	position int
}

// latestRecords keeps one record per item, the most recently updated.
// A later entry wins a tie on UpdatedAt.
func latestRecords(records []*models.PreferenceRecord) map[string]*models.PreferenceRecord {
	latest := make(map[string]*models.PreferenceRecord, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		if current, ok := latest[record.ItemID]; ok && current.UpdatedAt.After(record.UpdatedAt) {
			continue
		}
		latest[record.ItemID] = record
	}
	return latest
}

// bordaPoints scores one participant's ballot over the eligible items.
// A participant with nothing ranked contributes nothing.
func bordaPoints(latest map[string]*models.PreferenceRecord, eligible map[string]int) map[string]int {
	ballot := make([]ballotEntry, 0, len(latest))
	for itemID, record := range latest {
		position, ok := eligible[itemID]
		if !ok || record.IsDisliked {
			continue
		}
		if record.Rank == nil && !record.IsTopPick {
			continue
		}
		ballot = append(ballot, ballotEntry{
			itemID:   itemID,
			rank:     record.Rank,
			topPick:  record.IsTopPick,
			position: position,
		})
	}

	sort.Slice(ballot, func(i, j int) bool {
		a, b := ballot[i], ballot[j]
		if a.topPick != b.topPick {
			return a.topPick
		}
		if !a.topPick && *a.rank != *b.rank {
			return *a.rank < *b.rank
		}
		return a.position < b.position
	})

	points := make(map[string]int, len(ballot))
	m := len(ballot)
	for i, entry := range ballot {
		points[entry.itemID] = m - 1 - i
		if entry.topPick {
			points[entry.itemID] += topPickBonus
		}
	}
	return points
}
