package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Meal is one (member, slot, date) bucket of logged intake. Totals carries the
// running sum of the nutrient contributions of all live MealFood rows; it is
// maintained incrementally by signed deltas and never recomputed by scanning
// entries on the write path.
type Meal struct {
	ID        uuid.UUID
	MemberID  uuid.UUID
	Slot      MealSlot
	MealDate  time.Time
	Totals    Nutrition
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMeal returns a meal with zero totals for lazy creation on first use.
func NewMeal(memberID uuid.UUID, slot MealSlot, mealDate time.Time) *Meal {
	return &Meal{
		ID:       uuid.New(),
		MemberID: memberID,
		Slot:     slot,
		MealDate: mealDate,
		Totals:   ZeroNutrition(),
	}
}

// ApplyDelta accumulates a signed nutrient delta into the running totals.
func (m *Meal) ApplyDelta(delta Nutrition) {
	m.Totals = m.Totals.Add(delta)
}

// MealFood is one food logged into one meal. It belongs to exactly one meal.
type MealFood struct {
	ID        uuid.UUID
	MealID    uuid.UUID
	FoodID    uuid.UUID
	Intake    decimal.Decimal
	Unit      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMealFood creates an entry for the given meal and food.
func NewMealFood(mealID, foodID uuid.UUID, intake decimal.Decimal, unit string) *MealFood {
	return &MealFood{
		ID:     uuid.New(),
		MealID: mealID,
		FoodID: foodID,
		Intake: intake,
		Unit:   unit,
	}
}

// Update replaces the entry's food reference, intake and unit.
func (f *MealFood) Update(foodID uuid.UUID, intake decimal.Decimal, unit string) {
	f.FoodID = foodID
	f.Intake = intake
	f.Unit = unit
}

// MealLog is the denormalized per-meal mirror of Meal.Totals, kept for daily
// total queries that must not rejoin meal_foods. After every committed ledger
// mutation its totals equal the owning meal's totals.
type MealLog struct {
	ID        uuid.UUID
	MealID    uuid.UUID
	MemberID  uuid.UUID
	MealDate  time.Time
	Totals    Nutrition
	UpdatedAt time.Time
}

// MealFoodWithFood joins an entry with its food reference row for read paths.
type MealFoodWithFood struct {
	MealFood MealFood
	Food     Food
}

// MealAggregate is the read-side view of one meal: the meal row, its entries
// joined with food data, and the mirrored log row (nil when nothing was
// logged yet).
type MealAggregate struct {
	Meal  Meal
	Foods []MealFoodWithFood
	Log   *MealLog
}

// Kcal resolves the aggregate's calorie figure: the mirrored log value when
// present, otherwise the meal's running total.
func (a MealAggregate) Kcal() decimal.Decimal {
	if a.Log != nil {
		return a.Log.Totals.Kcal
	}
	return a.Meal.Totals.Kcal
}
