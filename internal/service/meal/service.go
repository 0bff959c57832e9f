// Package meal implements the food logging ledger: every change to a meal's
// contents is expressed as a signed nutrient delta and applied atomically to
// the meal food row, the meal totals and the meal log mirror.
package meal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bablog/bablog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type mealRepo interface {
	Create(ctx context.Context, meal *domain.Meal) (*domain.Meal, error)
	GetByID(ctx context.Context, mealID uuid.UUID) (*domain.Meal, error)
	GetByIDForUpdate(ctx context.Context, mealID uuid.UUID) (*domain.Meal, error)
	GetByKey(ctx context.Context, memberID uuid.UUID, slot domain.MealSlot, mealDate time.Time) (*domain.Meal, error)
	ListByMemberAndDate(ctx context.Context, memberID uuid.UUID, mealDate time.Time) ([]domain.Meal, error)
	ListByMemberBetween(ctx context.Context, memberID uuid.UUID, start, end time.Time) ([]domain.Meal, error)
	AdjustNutrition(ctx context.Context, mealID uuid.UUID, delta domain.Nutrition) error
}

type mealFoodRepo interface {
	Create(ctx context.Context, entry *domain.MealFood) (*domain.MealFood, error)
	GetByID(ctx context.Context, mealFoodID uuid.UUID) (*domain.MealFood, error)
	Update(ctx context.Context, entry *domain.MealFood) (*domain.MealFood, error)
	Delete(ctx context.Context, mealFoodID uuid.UUID) error
	ListByMealIDsWithFood(ctx context.Context, mealIDs []uuid.UUID) (map[uuid.UUID][]domain.MealFoodWithFood, error)
}

type mealLogRepo interface {
	ApplyDelta(ctx context.Context, meal *domain.Meal, delta domain.Nutrition) error
	ByMealIDs(ctx context.Context, mealIDs []uuid.UUID) (map[uuid.UUID]domain.MealLog, error)
}

type foodRepo interface {
	GetByID(ctx context.Context, foodID uuid.UUID) (*domain.Food, error)
}

type targetRepo interface {
	GetDaily(ctx context.Context, memberID uuid.UUID, targetDate time.Time) (*domain.DailyNutrientTarget, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the meal ledger business logic.
type Service struct {
	log       *slog.Logger
	meals     mealRepo
	mealFoods mealFoodRepo
	mealLogs  mealLogRepo
	foods     foodRepo
	targets   targetRepo
	tx        txManager
}

// NewService creates a new meal ledger service.
func NewService(
	logger *slog.Logger,
	meals mealRepo,
	mealFoods mealFoodRepo,
	mealLogs mealLogRepo,
	foods foodRepo,
	targets targetRepo,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "meal"),
		meals:     meals,
		mealFoods: mealFoods,
		mealLogs:  mealLogs,
		foods:     foods,
		targets:   targets,
		tx:        tx,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// getOrCreateMeal returns the meal identified by (member, slot, date),
// creating an empty one when it does not exist yet. A uniqueness conflict on
// create means another writer won the race, so the lookup is retried once.
func (s *Service) getOrCreateMeal(ctx context.Context, memberID uuid.UUID, slot domain.MealSlot, mealDate time.Time) (*domain.Meal, error) {
	meal, err := s.meals.GetByKey(ctx, memberID, slot, mealDate)
	if err == nil {
		return meal, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	created, err := s.meals.Create(ctx, domain.NewMeal(memberID, slot, mealDate))
	if err == nil {
		return created, nil
	}
	if errors.Is(err, domain.ErrAlreadyExists) {
		return s.meals.GetByKey(ctx, memberID, slot, mealDate)
	}
	return nil, err
}

// applyDelta records one signed mutation: meal totals and the meal log mirror
// move together or not at all. The in-memory meal is updated so the mirror
// upsert sees the post-delta state.
func (s *Service) applyDelta(ctx context.Context, meal *domain.Meal, delta domain.Nutrition) error {
	if delta.IsZero() {
		return nil
	}
	if err := s.meals.AdjustNutrition(ctx, meal.ID, delta); err != nil {
		return err
	}
	meal.ApplyDelta(delta)
	return s.mealLogs.ApplyDelta(ctx, meal, delta)
}

func intakeOr(override *decimal.Decimal, current decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}
	return current
}
