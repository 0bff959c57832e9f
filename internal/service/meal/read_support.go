package meal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bablog/bablog-backend/internal/domain"
)

// buildAggregates joins meals with their entries and log mirrors. Meals keep
// the order they were listed in; a meal with no log row gets a nil Log.
func (s *Service) buildAggregates(ctx context.Context, meals []domain.Meal) ([]domain.MealAggregate, error) {
	if len(meals) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(meals))
	for i, m := range meals {
		ids[i] = m.ID
	}

	foodsByMeal, err := s.mealFoods.ListByMealIDsWithFood(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list meal foods: %w", err)
	}
	logsByMeal, err := s.mealLogs.ByMealIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list meal logs: %w", err)
	}

	aggregates := make([]domain.MealAggregate, len(meals))
	for i, m := range meals {
		agg := domain.MealAggregate{Meal: m, Foods: foodsByMeal[m.ID]}
		if log, ok := logsByMeal[m.ID]; ok {
			agg.Log = &log
		}
		aggregates[i] = agg
	}
	return aggregates, nil
}
