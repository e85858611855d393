package enums

const (
	TimeLayout         = "2006-01-02 15:04:05"
	EntryCreated       = "entry.created"
	EntryUpdated       = "entry.updated"
	DefaultQueue       = "entry-tracked"
	EventConnection    = "food-tracker"
	DefaultRouterPort  = 5000
	DefaultLogDir      = "logs"
	DefaultMaxIdle     = 2
	DefaultMaxOpenConn = 1
	DefaultMaxLifeTime = "1h"
)

// FoodCategories is the fixed category seed, inserted in this order.
var FoodCategories = []string{
	"Wheat",
	"Meat",
	"Veggie",
	"Fruit",
	"Alcohol",
	"Beverage",
	"Milk",
	"Cheese",
	"Beans",
	"Nuts",
}
