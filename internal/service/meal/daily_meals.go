package meal

import (
	"context"
	"fmt"
	"time"

	"github.com/bablog/bablog-backend/internal/domain"
	"github.com/bablog/bablog-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 5. CreateDailyMeals
// ---------------------------------------------------------------------------

// CreateDailyMeals ensures the member has a meal row for every slot of the
// date, returning all four in canonical slot order. Existing rows are kept
// as they are; only missing slots are created.
func (s *Service) CreateDailyMeals(ctx context.Context, mealDate time.Time) ([]domain.Meal, error) {
	memberID, ok := ctxutil.MemberIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if mealDate.IsZero() {
		return nil, domain.NewValidationError("mealDate", "is required")
	}

	slots := domain.MealSlots()
	meals := make([]domain.Meal, 0, len(slots))
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, slot := range slots {
			meal, err := s.getOrCreateMeal(txCtx, memberID, slot, mealDate)
			if err != nil {
				return fmt.Errorf("slot %s: %w", slot, err)
			}
			meals = append(meals, *meal)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return meals, nil
}
