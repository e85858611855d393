package category

import (
	"dishrank-food-tracker/models"
	categoryService "dishrank-food-tracker/services/category"
	"dishrank-food-tracker/services/trackLog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index lists every category. GET /api/categories/
func Index(service *categoryService.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := service.All()
		if err != nil {
			trackLog.Error(err.Error(), true)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		records := make([]models.Serializer, 0, len(categories))
		for i := range categories {
			records = append(records, &categories[i])
		}
		c.JSON(http.StatusOK, models.SerializeAll(records))
	}
}
