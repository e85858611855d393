package models

import (
	"dishrank-food-tracker/enums"
	"time"
)

// Serializer is implemented by every record that can be emitted as JSON
// without further mapping.
type Serializer interface {
	ToMap() map[string]interface{}
}

// SerializeAll maps a list of records to their key-value form.
func SerializeAll(records []Serializer) []map[string]interface{} {
	result := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		result = append(result, record.ToMap())
	}
	return result
}

func formatTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(enums.TimeLayout)
}

func utcNow() *time.Time {
	now := time.Now().UTC()
	return &now
}
