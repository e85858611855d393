package models

import (
	"fmt"
	"time"
)

// EntryItem is one food portion of an entry. CategoryID is deliberately not
// a foreign key: any integer is accepted.
type EntryItem struct {
	ID         int64      `gorm:"column:id;primary_key" json:"id"`
	Portion    int        `gorm:"column:portion" json:"portion"`
	CategoryID int        `gorm:"column:category_id" json:"category_id"`
	EntryID    int64      `gorm:"column:entry_id;type:integer REFERENCES entries(id)" json:"entry_id"`
	CreatedOn  *time.Time `gorm:"column:created_on" json:"created_on"`
	UpdatedOn  *time.Time `gorm:"column:updated_on" json:"updated_on"`
}

// TableName sets the insert table name for this struct type
func (e *EntryItem) TableName() string {
	return "entry_items"
}

func (e *EntryItem) BeforeCreate() error {
	now := utcNow()
	if e.CreatedOn == nil {
		e.CreatedOn = now
	}
	if e.UpdatedOn == nil {
		e.UpdatedOn = now
	}
	return nil
}

func (e *EntryItem) BeforeUpdate() error {
	e.UpdatedOn = utcNow()
	return nil
}

func (e *EntryItem) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":          e.ID,
		"portion":     e.Portion,
		"category_id": e.CategoryID,
		"entry_id":    e.EntryID,
		"created_on":  formatTime(e.CreatedOn),
		"updated_on":  formatTime(e.UpdatedOn),
	}
}

func (e *EntryItem) String() string {
	return fmt.Sprintf("entry_item:%d:%d:%d", e.ID, e.EntryID, e.Portion)
}
