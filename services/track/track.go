package track

import (
	"dishrank-food-tracker/enums"
	"dishrank-food-tracker/models"
	"dishrank-food-tracker/services/trackLog"
	"dishrank-food-tracker/structs"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

var ErrEntryNotFound = errors.New("entry not found")

// Publisher delivers entry events after a commit. rabbitmq.Connection
// satisfies it.
type Publisher interface {
	Publish(queue string, body interface{}) error
}

type TrackService struct {
	DB        *gorm.DB
	Publisher Publisher
	Queue     string
}

func NewTrackService(db *gorm.DB, publisher Publisher, queue string) *TrackService {
	return &TrackService{DB: db, Publisher: publisher, Queue: queue}
}

// Create stores a new entry holding one item per food.
func (t *TrackService) Create(param structs.TrackParam) (*models.Entry, error) {
	var entry *models.Entry
	err := t.DB.Transaction(func(tx *gorm.DB) error {
		record := models.Entry{Items: newItems(param, 0)}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("create entry: %w", err)
		}
		var err error
		entry, err = find(tx, record.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	t.publish(enums.EntryCreated, entry)
	return entry, nil
}

// Update replaces the entry's items category by category: every existing
// item whose category appears in param is deleted, then all foods of param
// are added. Categories absent from param are left alone.
func (t *TrackService) Update(id int64, param structs.TrackParam) (*models.Entry, error) {
	var entry *models.Entry
	err := t.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := find(tx, id); err != nil {
			return err
		}

		if _, err := DeleteItems(tx, id, param.CategoryIDs()); err != nil {
			return err
		}
		for _, item := range newItems(param, id) {
			item := item
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("create entry item: %w", err)
			}
		}

		var err error
		entry, err = find(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	t.publish(enums.EntryUpdated, entry)
	return entry, nil
}

func (t *TrackService) Get(id int64) (*models.Entry, error) {
	return find(t.DB, id)
}

func (t *TrackService) All() ([]models.Entry, error) {
	var entries []models.Entry
	if err := withItems(t.DB).Order("id asc").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	return entries, nil
}

// DeleteItems removes the items of an entry whose category is one of
// categoryIDs and returns how many rows went away.
func DeleteItems(db *gorm.DB, entryID int64, categoryIDs []int) (int64, error) {
	if len(categoryIDs) == 0 {
		return 0, nil
	}
	result := db.Where("entry_id = ? AND category_id IN (?)", entryID, categoryIDs).Delete(&models.EntryItem{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete entry items: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func find(db *gorm.DB, id int64) (*models.Entry, error) {
	var entry models.Entry
	if err := withItems(db).First(&entry, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("query entry %d: %w", id, err)
	}
	return &entry, nil
}

func withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("entry_items.id asc")
	})
}

func newItems(param structs.TrackParam, entryID int64) []models.EntryItem {
	items := make([]models.EntryItem, 0, len(param.Foods))
	for _, food := range param.Foods {
		item := models.EntryItem{EntryID: entryID}
		if food.Portion != nil {
			item.Portion = *food.Portion
		}
		if food.Category != nil {
			item.CategoryID = *food.Category
		}
		items = append(items, item)
	}
	return items
}

func (t *TrackService) publish(eventType string, entry *models.Entry) {
	if t.Publisher == nil {
		return
	}

	event := structs.EntryEvent{
		Type:       eventType,
		EntryID:    entry.ID,
		Items:      make([]structs.EntryEventItem, 0, len(entry.Items)),
		OccurredAt: time.Now().UTC().Format(enums.TimeLayout),
	}
	for _, item := range entry.Items {
		event.Items = append(event.Items, structs.EntryEventItem{
			ID:         item.ID,
			Portion:    item.Portion,
			CategoryID: item.CategoryID,
		})
	}

	if err := t.Publisher.Publish(t.Queue, event); err != nil {
		trackLog.WithFields(logrus.Fields{"event": eventType, "entry_id": entry.ID}).Error(err.Error())
	}
}
