package gamenight

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"

	"github.com/KirkDiggler/gamenight/internal/models"
)

// fingerprint identifies a participant set, a candidate set and a filter configuration.
// Participant order does not matter; candidate order does, since it breaks ties.
func fingerprint(participantIDs, candidateIDs []string, filters models.FilterConfig) (string, error) {
	participants := append([]string(nil), participantIDs...)
	sort.Strings(participants)

	filtersJSON, err := json.Marshal(filters)
	if err != nil {
		return "", fmt.Errorf("failed to marshal filters: %w", err)
	}

	digest := xxhash.New()
	for _, id := range participants {
		_, _ = digest.WriteString(id)
		_, _ = digest.Write([]byte{0})
	}
	_, _ = digest.Write([]byte{1})
	for _, id := range candidateIDs {
		_, _ = digest.WriteString(id)
		_, _ = digest.Write([]byte{0})
	}
	_, _ = digest.Write([]byte{1})
	_, _ = digest.Write(filtersJSON)

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}
