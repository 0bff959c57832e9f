package meal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bablog/bablog-backend/internal/domain"
	"github.com/bablog/bablog-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 4. GetMeal / GetMeals
// ---------------------------------------------------------------------------

// GetMeal returns one meal with its entries and log mirror. Members can only
// read their own meals.
func (s *Service) GetMeal(ctx context.Context, mealID uuid.UUID) (*domain.MealAggregate, error) {
	memberID, ok := ctxutil.MemberIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	meal, err := s.meals.GetByID(ctx, mealID)
	if err != nil {
		return nil, err
	}
	if meal.MemberID != memberID {
		return nil, domain.ErrForbidden
	}

	aggregates, err := s.buildAggregates(ctx, []domain.Meal{*meal})
	if err != nil {
		return nil, err
	}
	return &aggregates[0], nil
}

// GetMeals returns the calling member's meals for a date.
func (s *Service) GetMeals(ctx context.Context, mealDate time.Time) ([]domain.MealAggregate, error) {
	memberID, ok := ctxutil.MemberIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.MealsForMember(ctx, memberID, mealDate)
}

// MealsForMember returns a member's meals for a date with entries and log
// mirrors attached. Callers are expected to have authorized the member;
// the report pipeline uses this directly.
func (s *Service) MealsForMember(ctx context.Context, memberID uuid.UUID, mealDate time.Time) ([]domain.MealAggregate, error) {
	meals, err := s.meals.ListByMemberAndDate(ctx, memberID, mealDate)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return s.buildAggregates(ctx, meals)
}

// MealsForMemberBetween returns a member's meals for an inclusive date range,
// ordered by date, with entries and log mirrors attached. The weekly report
// pipeline uses it to fetch a whole week in one read.
func (s *Service) MealsForMemberBetween(ctx context.Context, memberID uuid.UUID, start, end time.Time) ([]domain.MealAggregate, error) {
	meals, err := s.meals.ListByMemberBetween(ctx, memberID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return s.buildAggregates(ctx, meals)
}
