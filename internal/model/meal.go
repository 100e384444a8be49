package model

// Meal type tags used by the catalog.  The tag is rendered next to the
// price so passengers can tell vegetarian options apart at a glance.
const (
	MealTypeVeg    = "veg"
	MealTypeNonVeg = "non_veg"
	MealTypeSnack  = "snack"
)

// Meal is one immutable catalog entry.  The catalog is fetched once at
// startup and is not date-scoped.
//
// Fields:
//  ID    – catalog identifier.
//  Name  – dish name shown to the passenger.
//  Type  – category tag ("veg", "non_veg", "snack").
//  Price – price in rupees, added to the seat total when selected.
type Meal struct {
	ID    int     `json:"id"`    // catalog identifier
	Name  string  `json:"name"`  // dish name
	Type  string  `json:"type"`  // category tag
	Price float64 `json:"price"` // price per booking
}
