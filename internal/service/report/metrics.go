package report

import (
	"github.com/shopspring/decimal"

	"github.com/bablog/bablog-backend/internal/domain"
	"github.com/bablog/bablog-backend/internal/provider"
	"github.com/bablog/bablog-backend/internal/service/meal/nutricalc"
)

// mealPattern derives the eating-pattern figures for one day of meals:
// how many slots got food, which share of kcal came from snacks and dinner,
// and how many distinct foods were logged.
func (s *Service) mealPattern(aggregates []domain.MealAggregate) provider.MealPatternMetrics {
	totalKcal := decimal.Zero
	snackKcal := decimal.Zero
	dinnerKcal := decimal.Zero
	mealCount := 0
	variety := map[string]struct{}{}

	for _, agg := range aggregates {
		if len(agg.Foods) == 0 {
			continue
		}
		mealCount++
		kcal := agg.Kcal()
		totalKcal = totalKcal.Add(kcal)
		switch agg.Meal.Slot {
		case domain.MealSlotSnack:
			snackKcal = snackKcal.Add(kcal)
		case domain.MealSlotDinner:
			dinnerKcal = dinnerKcal.Add(kcal)
		}
		for _, f := range agg.Foods {
			variety[f.Food.ID.String()] = struct{}{}
		}
	}

	return provider.MealPatternMetrics{
		MealCount:   mealCount,
		SnackRatio:  nutricalc.Ratio(snackKcal, totalKcal, s.cfg.RatioScale),
		DinnerRatio: nutricalc.Ratio(dinnerKcal, totalKcal, s.cfg.RatioScale),
		FoodVariety: len(variety),
	}
}
