package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntry_ToMapIncludesItems(t *testing.T) {
	created := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	entry := Entry{
		ID:        3,
		CreatedOn: &created,
		Items: []EntryItem{
			{ID: 7, Portion: 2, CategoryID: 1, EntryID: 3, CreatedOn: &created, UpdatedOn: &created},
		},
	}

	result := entry.ToMap()

	assert.Equal(t, int64(3), result["id"])
	assert.Equal(t, "2021-03-04 05:06:07", result["created_on"])
	items := result["items"].([]map[string]interface{})
	if assert.Len(t, items, 1) {
		assert.Equal(t, int64(7), items[0]["id"])
		assert.Equal(t, 2, items[0]["portion"])
		assert.Equal(t, 1, items[0]["category_id"])
		assert.Equal(t, int64(3), items[0]["entry_id"])
		assert.Equal(t, "2021-03-04 05:06:07", items[0]["updated_on"])
	}
}

func TestEntry_ToMapEmptyItems(t *testing.T) {
	entry := Entry{ID: 1}

	result := entry.ToMap()

	assert.Nil(t, result["created_on"])
	assert.NotNil(t, result["items"])
	assert.Len(t, result["items"], 0)
}

func TestSerializeAll(t *testing.T) {
	records := []Serializer{&Category{ID: 1, Name: "Wheat"}, &Category{ID: 2, Name: "Meat"}}

	result := SerializeAll(records)

	assert.Len(t, result, 2)
	assert.Equal(t, "Meat", result[1]["name"])
}

func TestBeforeCreateKeepsExplicitTimestamp(t *testing.T) {
	created := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	item := EntryItem{CreatedOn: &created}

	assert.NoError(t, item.BeforeCreate())

	assert.Equal(t, created, *item.CreatedOn)
	assert.NotNil(t, item.UpdatedOn)
	assert.Equal(t, "entry_item:0:0:0", item.String())
}
