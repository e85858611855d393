package models

import (
	"fmt"
	"time"
)

type Category struct {
	ID        int64      `gorm:"column:id;primary_key" json:"id"`
	Name      string     `gorm:"column:name;type:varchar(255);not null" json:"name"`
	CreatedOn *time.Time `gorm:"column:created_on" json:"created_on"`
}

// TableName sets the insert table name for this struct type
func (c *Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate() error {
	if c.CreatedOn == nil {
		c.CreatedOn = utcNow()
	}
	return nil
}

func (c *Category) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":         c.ID,
		"name":       c.Name,
		"created_on": formatTime(c.CreatedOn),
	}
}

func (c *Category) String() string {
	return fmt.Sprintf("category:%d:%s", c.ID, c.Name)
}
