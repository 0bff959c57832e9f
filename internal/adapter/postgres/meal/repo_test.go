package meal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"

	"github.com/bablog/bablog-backend/internal/domain"
)

var mealCols = []string{
	"id", "member_id", "meal_slot", "meal_date",
	"kcal", "protein", "fat", "saturated_fat", "trans_fat",
	"carbohydrates", "sugar", "natrium", "cholesterol",
	"created_at", "updated_at",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		mock.Close()
	})
	return mock
}

func mealRow(m *domain.Meal, now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(mealCols).AddRow(
		m.ID, m.MemberID, m.Slot, m.MealDate,
		m.Totals.Kcal, m.Totals.Protein, m.Totals.Fat, m.Totals.SaturatedFat, m.Totals.TransFat,
		m.Totals.Carbohydrates, m.Totals.Sugar, m.Totals.Natrium, m.Totals.Cholesterol,
		now, now,
	)
}

func TestRepo_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	meal := domain.NewMeal(uuid.New(), domain.MealSlotLunch, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
	meal.ID = uuid.New()
	meal.Totals.Kcal = decimal.RequireFromString("420.50")

	mock.ExpectQuery(`FROM meals\s+WHERE id = \$1`).
		WithArgs(meal.ID).
		WillReturnRows(mealRow(meal, time.Now()))

	got, err := repo.GetByID(context.Background(), meal.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != meal.ID {
		t.Errorf("id = %s, want %s", got.ID, meal.ID)
	}
	if !got.Totals.Kcal.Equal(meal.Totals.Kcal) {
		t.Errorf("kcal = %s, want %s", got.Totals.Kcal, meal.Totals.Kcal)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	id := uuid.New()
	mock.ExpectQuery(`FROM meals\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRepo_Create_UniqueConflict(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	meal := domain.NewMeal(uuid.New(), domain.MealSlotDinner, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery(`INSERT INTO meals`).
		WithArgs(
			meal.ID, meal.MemberID, meal.Slot, meal.MealDate,
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "meals_member_id_meal_slot_meal_date_key"})

	_, err := repo.Create(context.Background(), meal)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestRepo_AdjustNutrition(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	id := uuid.New()
	delta := domain.Nutrition{Kcal: decimal.RequireFromString("195")}

	mock.ExpectExec(`UPDATE meals`).
		WithArgs(
			id,
			delta.Kcal, delta.Protein, delta.Fat, delta.SaturatedFat, delta.TransFat,
			delta.Carbohydrates, delta.Sugar, delta.Natrium, delta.Cholesterol,
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	if err := repo.AdjustNutrition(context.Background(), id, delta); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRepo_AdjustNutrition_MissingMeal(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	id := uuid.New()
	mock.ExpectExec(`UPDATE meals`).
		WithArgs(
			id,
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.AdjustNutrition(context.Background(), id, domain.Nutrition{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRepo_ListByMemberAndDate_Empty(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	memberID := uuid.New()
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM meals\s+WHERE member_id = \$1 AND meal_date = \$2`).
		WithArgs(memberID, date).
		WillReturnRows(pgxmock.NewRows(mealCols))

	meals, err := repo.ListByMemberAndDate(context.Background(), memberID, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meals) != 0 {
		t.Errorf("meals = %d, want 0", len(meals))
	}
}
