package feed

import "github.com/xyz-asif/temuin/internal/features/items"

// DefaultLimit caps the recent-activity feed.
const DefaultLimit = 6

// Feed is the merged recent-activity view over the lost and found streams.
type Feed struct {
	Items []items.Item `json:"items"`
	Limit int          `json:"limit"`
	// Partial is set when exactly one source fetch failed and the feed was
	// built from the surviving stream alone.
	Partial bool `json:"partial"`
}
