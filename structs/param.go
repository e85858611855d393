package structs

// FoodParam is one element of the "foods" array. Pointers let "required"
// reject a missing key while still accepting an explicit zero.
type FoodParam struct {
	Portion  *int `json:"portion" form:"portion" binding:"required"`
	Category *int `json:"category" form:"category" binding:"required"`
}

type TrackParam struct {
	Foods []FoodParam `json:"foods" form:"foods" binding:"dive"`
}

// CategoryIDs returns the category of every food in request order,
// duplicates included.
func (t TrackParam) CategoryIDs() []int {
	ids := make([]int, 0, len(t.Foods))
	for _, food := range t.Foods {
		if food.Category != nil {
			ids = append(ids, *food.Category)
		}
	}
	return ids
}
