package category

import (
	"dishrank-food-tracker/models"
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{DB: db}
}

func (c *CategoryService) All() ([]models.Category, error) {
	var categories []models.Category
	if err := c.DB.Order("id asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	return categories, nil
}

func (c *CategoryService) Get(id int64) (*models.Category, error) {
	var category models.Category
	if err := c.DB.First(&category, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("query category %d: %w", id, err)
	}
	return &category, nil
}
