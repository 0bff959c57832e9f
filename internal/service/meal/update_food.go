package meal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bablog/bablog-backend/internal/domain"
	"github.com/bablog/bablog-backend/internal/service/meal/nutricalc"
	"github.com/bablog/bablog-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 2. UpdateFood
// ---------------------------------------------------------------------------

// UpdateFood changes an existing entry's food, intake or unit. The previous
// contribution is reversed and the new one applied, both against the same
// locked meal row, so the totals never double-count.
func (s *Service) UpdateFood(ctx context.Context, mealFoodID uuid.UUID, input UpdateFoodInput) (*domain.MealFood, error) {
	memberID, ok := ctxutil.MemberIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.MealFood
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := s.mealFoods.GetByID(txCtx, mealFoodID)
		if err != nil {
			return fmt.Errorf("get meal food: %w", err)
		}
		if entry.MealID != input.MealID {
			return domain.NewValidationError("mealId", "entry does not belong to this meal")
		}

		meal, err := s.meals.GetByIDForUpdate(txCtx, entry.MealID)
		if err != nil {
			return fmt.Errorf("lock meal: %w", err)
		}
		if meal.MemberID != memberID {
			return domain.ErrForbidden
		}

		oldFood, err := s.foods.GetByID(txCtx, entry.FoodID)
		if err != nil {
			return fmt.Errorf("get current food: %w", err)
		}
		oldDelta, err := nutricalc.ComputeDelta(*oldFood, entry.Intake)
		if err != nil {
			return err
		}

		newFoodID := entry.FoodID
		if input.FoodID != nil {
			newFoodID = *input.FoodID
		}
		newFood := oldFood
		if newFoodID != entry.FoodID {
			newFood, err = s.foods.GetByID(txCtx, newFoodID)
			if err != nil {
				return fmt.Errorf("get new food: %w", err)
			}
		}

		newIntake := intakeOr(input.Intake, entry.Intake)
		newUnit := entry.Unit
		if input.Unit != nil {
			newUnit = *input.Unit
		}

		newDelta, err := nutricalc.ComputeDelta(*newFood, newIntake)
		if err != nil {
			return err
		}

		if err := s.applyDelta(txCtx, meal, nutricalc.Reverse(oldDelta)); err != nil {
			return fmt.Errorf("reverse delta: %w", err)
		}

		entry.Update(newFoodID, newIntake, newUnit)
		updated, err = s.mealFoods.Update(txCtx, entry)
		if err != nil {
			return fmt.Errorf("update meal food: %w", err)
		}

		if err := s.applyDelta(txCtx, meal, newDelta); err != nil {
			return fmt.Errorf("apply delta: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Info("food updated", "member_id", memberID, "meal_food_id", mealFoodID)
	return updated, nil
}
