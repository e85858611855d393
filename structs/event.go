package structs

type EntryEventItem struct {
	ID         int64 `json:"id"`
	Portion    int   `json:"portion"`
	CategoryID int   `json:"category_id"`
}

// EntryEvent is published to the event queue after an entry commit.
type EntryEvent struct {
	Type       string           `json:"type"`
	EntryID    int64            `json:"entry_id"`
	Items      []EntryEventItem `json:"items"`
	OccurredAt string           `json:"occurred_at"`
}
