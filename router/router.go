package router

import (
	"dishrank-food-tracker/controllers/category"
	"dishrank-food-tracker/controllers/check"
	"dishrank-food-tracker/controllers/readProbe"
	"dishrank-food-tracker/controllers/track"
	categoryService "dishrank-food-tracker/services/category"
	trackService "dishrank-food-tracker/services/track"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

func Router(db *gorm.DB, publisher trackService.Publisher, queue string) *gin.Engine {
	route := gin.Default()

	categories := categoryService.NewCategoryService(db)
	entries := trackService.NewTrackService(db, publisher, queue)

	api := route.Group("/api")
	{
		api.GET("/categories/", category.Index(categories))
		api.GET("/track/", track.Index(entries))
		api.POST("/track/", track.Create(entries))
		api.GET("/track/:id/", track.Show(entries))
		api.PUT("/track/:id/", track.Update(entries))
	}

	route.GET("/read-probe", readProbe.Probe)
	route.GET("/check-live", check.CheckAlive(db))

	return route
}
