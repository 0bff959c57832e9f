package meal

import (
	"context"
	"fmt"

	"github.com/bablog/bablog-backend/internal/domain"
	"github.com/bablog/bablog-backend/internal/service/meal/nutricalc"
	"github.com/bablog/bablog-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 1. AddFood
// ---------------------------------------------------------------------------

// AddFood logs a food into the member's meal for the given slot and date,
// creating the meal row on first use. The entry insert, the totals adjustment
// and the log mirror are one transaction. Returns the created entry together
// with the meal carrying its post-delta totals.
func (s *Service) AddFood(ctx context.Context, input AddFoodInput) (*domain.MealFood, *domain.Meal, error) {
	memberID, ok := ctxutil.MemberIDFromCtx(ctx)
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, nil, err
	}

	var (
		created *domain.MealFood
		meal    *domain.Meal
	)
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		meal, err = s.getOrCreateMeal(txCtx, memberID, input.Slot, input.MealDate)
		if err != nil {
			return fmt.Errorf("get or create meal: %w", err)
		}

		food, err := s.foods.GetByID(txCtx, input.FoodID)
		if err != nil {
			return fmt.Errorf("get food: %w", err)
		}

		delta, err := nutricalc.ComputeDelta(*food, input.Intake)
		if err != nil {
			return err
		}

		created, err = s.mealFoods.Create(txCtx, domain.NewMealFood(meal.ID, food.ID, input.Intake, input.Unit))
		if err != nil {
			return fmt.Errorf("create meal food: %w", err)
		}

		if err := s.applyDelta(txCtx, meal, delta); err != nil {
			return fmt.Errorf("apply delta: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, nil, txErr
	}

	s.log.Info("food logged",
		"member_id", memberID,
		"meal_food_id", created.ID,
		"slot", input.Slot,
	)
	return created, meal, nil
}
