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
// 3. DeleteFood
// ---------------------------------------------------------------------------

// DeleteFood removes an entry and reverses its contribution from the meal
// totals and the log mirror in one transaction. The meal row itself stays,
// even when its last food is removed.
func (s *Service) DeleteFood(ctx context.Context, mealFoodID uuid.UUID) error {
	memberID, ok := ctxutil.MemberIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := s.mealFoods.GetByID(txCtx, mealFoodID)
		if err != nil {
			return fmt.Errorf("get meal food: %w", err)
		}

		meal, err := s.meals.GetByIDForUpdate(txCtx, entry.MealID)
		if err != nil {
			return fmt.Errorf("lock meal: %w", err)
		}
		if meal.MemberID != memberID {
			return domain.ErrForbidden
		}

		food, err := s.foods.GetByID(txCtx, entry.FoodID)
		if err != nil {
			return fmt.Errorf("get food: %w", err)
		}
		delta, err := nutricalc.ComputeDelta(*food, entry.Intake)
		if err != nil {
			return err
		}

		if err := s.mealFoods.Delete(txCtx, mealFoodID); err != nil {
			return fmt.Errorf("delete meal food: %w", err)
		}
		if err := s.applyDelta(txCtx, meal, nutricalc.Reverse(delta)); err != nil {
			return fmt.Errorf("reverse delta: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	s.log.Info("food removed", "member_id", memberID, "meal_food_id", mealFoodID)
	return nil
}
