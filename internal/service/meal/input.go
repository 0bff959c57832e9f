package meal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bablog/bablog-backend/internal/domain"
)

// AddFoodInput carries the data for logging one food into a meal slot.
type AddFoodInput struct {
	Slot     domain.MealSlot
	MealDate time.Time
	FoodID   uuid.UUID
	Intake   decimal.Decimal
	Unit     string
}

// Validate checks field-level constraints.
func (in AddFoodInput) Validate() error {
	var fields []domain.FieldError
	if !in.Slot.IsValid() {
		fields = append(fields, domain.FieldError{Field: "slot", Message: "unknown meal slot"})
	}
	if in.MealDate.IsZero() {
		fields = append(fields, domain.FieldError{Field: "mealDate", Message: "is required"})
	}
	if in.FoodID == uuid.Nil {
		fields = append(fields, domain.FieldError{Field: "foodId", Message: "is required"})
	}
	if in.Intake.Sign() <= 0 {
		fields = append(fields, domain.FieldError{Field: "intake", Message: "must be positive"})
	}
	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

// UpdateFoodInput carries a partial update for an existing meal food entry.
// Nil fields keep their current values. MealID must match the meal the entry
// belongs to; it exists to catch clients addressing the wrong meal.
type UpdateFoodInput struct {
	MealID uuid.UUID
	FoodID *uuid.UUID
	Intake *decimal.Decimal
	Unit   *string
}

// Validate checks field-level constraints.
func (in UpdateFoodInput) Validate() error {
	var fields []domain.FieldError
	if in.MealID == uuid.Nil {
		fields = append(fields, domain.FieldError{Field: "mealId", Message: "is required"})
	}
	if in.FoodID != nil && *in.FoodID == uuid.Nil {
		fields = append(fields, domain.FieldError{Field: "foodId", Message: "must not be empty"})
	}
	if in.Intake != nil && in.Intake.Sign() <= 0 {
		fields = append(fields, domain.FieldError{Field: "intake", Message: "must be positive"})
	}
	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}
