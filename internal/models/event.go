package models

// ItemEvent is published to Kafka on every item lifecycle change.
type ItemEvent struct {
	EventID    string `json:"event_id"`    // Unique event ID
	OccurredAt int64  `json:"occurred_at"` // Unix timestamp
	Action     string `json:"action"`      // created, updated, claimed, deleted
	ItemID     int64  `json:"item_id"`     // Affected item
	Name       string `json:"name"`        // Item name at event time
	Status     string `json:"status"`      // Item status after the change
}
