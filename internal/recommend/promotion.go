package recommend

import (
	"github.com/KirkDiggler/gamenight/internal/models"
)

// Promotion is a caller-held override forcing one item to the top of the result.
// It is never cleared automatically: while its item is filtered out or vetoed it simply
// has no effect, and it applies again once the item becomes eligible.
type Promotion struct {
	itemID string
}

// NewPromotion returns a promotion for itemID; an empty ID means no promotion
func NewPromotion(itemID string) Promotion {
	return Promotion{itemID: itemID}
}

// Promote sets the promoted item
func (p *Promotion) Promote(itemID string) {
	p.itemID = itemID
}

// Clear removes the promotion
func (p *Promotion) Clear() {
	p.itemID = ""
}

// ItemID returns the promoted item, empty when none
func (p Promotion) ItemID() string {
	return p.itemID
}

// IsSet reports whether an item is promoted
func (p Promotion) IsSet() bool {
	return p.itemID != ""
}

// promote moves itemID to the front if it is present, keeping the others in order
func promote(items []*models.Item, itemID string) []*models.Item {
	if itemID == "" {
		return items
	}
	for i, item := range items {
		if item.ID != itemID {
			continue
		}
		if i == 0 {
			return items
		}
		promoted := make([]*models.Item, 0, len(items))
		promoted = append(promoted, item)
		promoted = append(promoted, items[:i]...)
		return append(promoted, items[i+1:]...)
	}
	return items
}
