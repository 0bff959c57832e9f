package meal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bablog/bablog-backend/internal/domain"
	"github.com/bablog/bablog-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 6. Dashboard
// ---------------------------------------------------------------------------

// Dashboard assembles the member's day view: one summary per slot (zeroed
// when nothing was logged), the day's nutrient totals and the daily target.
// A member without a target for the date gets a zero target, not an error.
func (s *Service) Dashboard(ctx context.Context, mealDate time.Time) (*DashboardSummary, error) {
	memberID, ok := ctxutil.MemberIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	aggregates, err := s.MealsForMember(ctx, memberID, mealDate)
	if err != nil {
		return nil, err
	}

	target := domain.ZeroNutrition()
	dailyTarget, err := s.targets.GetDaily(ctx, memberID, mealDate)
	switch {
	case err == nil:
		target = dailyTarget.Target
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get daily target: %w", err)
	}

	totals := domain.ZeroNutrition()
	bySlot := make(map[domain.MealSlot]domain.MealAggregate, len(aggregates))
	for _, agg := range aggregates {
		totals = totals.Add(agg.Meal.Totals)
		bySlot[agg.Meal.Slot] = agg
	}

	return &DashboardSummary{
		MealDate:  mealDate,
		Summaries: buildSummaries(mealDate, bySlot),
		Totals:    totals,
		Target:    target,
	}, nil
}

// buildSummaries produces one summary per slot in canonical order. Slots with
// no meal or no foods get a zero summary so the dashboard shape is stable.
func buildSummaries(mealDate time.Time, bySlot map[domain.MealSlot]domain.MealAggregate) []MealSummary {
	slots := domain.MealSlots()
	summaries := make([]MealSummary, 0, len(slots))
	for _, slot := range slots {
		summary := MealSummary{Slot: slot, MealDate: mealDate}
		if agg, ok := bySlot[slot]; ok {
			summary.FoodCount = len(agg.Foods)
			summary.Kcal = agg.Kcal()
			if len(agg.Foods) > 0 {
				name := agg.Foods[0].Food.Name
				summary.RepresentativeFood = &name
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
