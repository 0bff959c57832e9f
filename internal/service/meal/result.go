package meal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bablog/bablog-backend/internal/domain"
)

// MealSummary is one dashboard slot: how many foods were logged, the name of
// the first food logged, and the slot's kcal reading.
type MealSummary struct {
	Slot               domain.MealSlot
	MealDate           time.Time
	FoodCount          int
	RepresentativeFood *string
	Kcal               decimal.Decimal
}

// DashboardSummary is the per-day overview: one summary per slot in canonical
// order, day totals and the member's daily target.
type DashboardSummary struct {
	MealDate  time.Time
	Summaries []MealSummary
	Totals    domain.Nutrition
	Target    domain.Nutrition
}
