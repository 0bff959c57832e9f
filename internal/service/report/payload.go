package report

import (
	"encoding/json"
	"time"

	"github.com/bablog/bablog-backend/internal/domain"
	"github.com/bablog/bablog-backend/internal/provider"
)

// nutritionValues converts a domain vector to the wire shape.
func nutritionValues(n domain.Nutrition) provider.NutritionValues {
	return provider.NutritionValues{
		Kcal:          n.Kcal,
		Protein:       n.Protein,
		Fat:           n.Fat,
		SaturatedFat:  n.SaturatedFat,
		TransFat:      n.TransFat,
		Carbohydrates: n.Carbohydrates,
		Sugar:         n.Sugar,
		Natrium:       n.Natrium,
		Cholesterol:   n.Cholesterol,
	}
}

// mealBreakdowns builds the per-slot food listing for a daily request.
// Slots with no foods are omitted.
func mealBreakdowns(aggregates []domain.MealAggregate) []provider.MealBreakdown {
	var breakdowns []provider.MealBreakdown
	for _, agg := range aggregates {
		if len(agg.Foods) == 0 {
			continue
		}
		foods := make([]provider.MealFoodSummary, 0, len(agg.Foods))
		for _, f := range agg.Foods {
			foods = append(foods, provider.MealFoodSummary{
				Name:   f.Food.Name,
				Intake: f.MealFood.Intake,
				Kcal:   f.Food.Density.Kcal,
			})
		}
		breakdowns = append(breakdowns, provider.MealBreakdown{
			Slot:  agg.Meal.Slot.String(),
			Kcal:  agg.Kcal(),
			Foods: foods,
		})
	}
	return breakdowns
}

// dailyMetrics assembles one day's metrics block. date is included only for
// weekly requests; pass an empty string for daily ones. actual comes from the
// meal log mirror rather than resumming entries.
func (s *Service) dailyMetrics(date string, actual domain.Nutrition, aggregates []domain.MealAggregate, target domain.Nutrition) provider.DailyMetrics {
	return provider.DailyMetrics{
		Date:        date,
		Actual:      nutritionValues(actual),
		Target:      nutritionValues(target),
		MealPattern: s.mealPattern(aggregates),
	}
}

func formatDate(t time.Time) string { return t.Format(dateLayout) }

// toJSON serializes v for report persistence. A nil value or serialization
// trouble degrades to the given empty literal instead of failing the write.
func toJSON(v any, empty string) string {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return empty
	}
	return string(b)
}

func listJSON(v []string) string      { return toJSON(v, "[]") }
func mapJSON(v map[string]int) string { return toJSON(v, "{}") }

func anyMapJSON(v map[string]any) string { return toJSON(v, "{}") }
