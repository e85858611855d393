package track

import (
	"dishrank-food-tracker/models"
	trackService "dishrank-food-tracker/services/track"
	"dishrank-food-tracker/services/trackLog"
	"dishrank-food-tracker/structs"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Create records a new entry. POST /api/track/
func Create(service *trackService.TrackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		param, ok := bindTrackParam(c)
		if !ok {
			return
		}

		entry, err := service.Create(param)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, entry.ToMap())
	}
}

// Update replaces the items of an entry per category. PUT /api/track/:id/
func Update(service *trackService.TrackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := entryID(c)
		if !ok {
			return
		}
		// unknown entries are a 404 whatever the body holds
		if _, err := service.Get(id); err != nil {
			abortWithError(c, err)
			return
		}
		param, ok := bindTrackParam(c)
		if !ok {
			return
		}

		entry, err := service.Update(id, param)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, entry.ToMap())
	}
}

// Show returns one entry with its items. GET /api/track/:id/
func Show(service *trackService.TrackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := entryID(c)
		if !ok {
			return
		}

		entry, err := service.Get(id)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, entry.ToMap())
	}
}

// Index lists every entry. GET /api/track/
func Index(service *trackService.TrackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := service.All()
		if err != nil {
			abortWithError(c, err)
			return
		}

		records := make([]models.Serializer, 0, len(entries))
		for i := range entries {
			records = append(records, &entries[i])
		}
		c.JSON(http.StatusOK, models.SerializeAll(records))
	}
}

// bindTrackParam reads the request body. An empty body or a missing
// "foods" key means no foods; a food without portion or category is a 400.
func bindTrackParam(c *gin.Context) (structs.TrackParam, bool) {
	var param structs.TrackParam
	if err := c.ShouldBindJSON(&param); err != nil && !errors.Is(err, io.EOF) {
		c.AbortWithStatusJSON(http.StatusBadRequest, structs.ErrorResponse{Error: err.Error()})
		return param, false
	}
	return param, true
}

// entryID parses the :id path segment. Anything that is not an integer
// cannot name an entry, so it is a 404.
func entryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func abortWithError(c *gin.Context, err error) {
	if errors.Is(err, trackService.ErrEntryNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	trackLog.Error(err.Error(), true)
	c.AbortWithStatus(http.StatusInternalServerError)
}
