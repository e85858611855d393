package models

import (
	"fmt"
	"time"
)

// Entry is one tracked eating event.
type Entry struct {
	ID        int64       `gorm:"column:id;primary_key" json:"id"`
	CreatedOn *time.Time  `gorm:"column:created_on" json:"created_on"`
	Items     []EntryItem `gorm:"foreignkey:EntryID" json:"items"`
}

// TableName sets the insert table name for this struct type
func (e *Entry) TableName() string {
	return "entries"
}

func (e *Entry) BeforeCreate() error {
	if e.CreatedOn == nil {
		e.CreatedOn = utcNow()
	}
	return nil
}

func (e *Entry) ToMap() map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(e.Items))
	for i := range e.Items {
		items = append(items, e.Items[i].ToMap())
	}
	return map[string]interface{}{
		"id":         e.ID,
		"created_on": formatTime(e.CreatedOn),
		"items":      items,
	}
}

func (e *Entry) String() string {
	return fmt.Sprintf("entry:%d", e.ID)
}
