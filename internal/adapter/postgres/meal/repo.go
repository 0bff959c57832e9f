// Package meal implements the Meal repository using PostgreSQL.
// The nine running-total columns are only ever changed through AdjustNutrition,
// which adds a signed delta in a single UPDATE so concurrent writers compose
// at the row level.
package meal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bablog/bablog-backend/internal/adapter/postgres"
	"github.com/bablog/bablog-backend/internal/domain"
)

const mealColumns = `id, member_id, meal_slot, meal_date,
       kcal, protein, fat, saturated_fat, trans_fat, carbohydrates, sugar, natrium, cholesterol,
       created_at, updated_at`

const getByIDSQL = `
SELECT ` + mealColumns + `
FROM meals
WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const getByKeySQL = `
SELECT ` + mealColumns + `
FROM meals
WHERE member_id = $1 AND meal_slot = $2 AND meal_date = $3`

const listByMemberAndDateSQL = `
SELECT ` + mealColumns + `
FROM meals
WHERE member_id = $1 AND meal_date = $2
ORDER BY created_at, id`

const listByMemberBetweenSQL = `
SELECT ` + mealColumns + `
FROM meals
WHERE member_id = $1 AND meal_date BETWEEN $2 AND $3
ORDER BY meal_date, created_at, id`

const insertSQL = `
INSERT INTO meals (id, member_id, meal_slot, meal_date,
                   kcal, protein, fat, saturated_fat, trans_fat, carbohydrates, sugar, natrium, cholesterol,
                   created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now())
RETURNING created_at, updated_at`

const adjustNutritionSQL = `
UPDATE meals
SET kcal          = kcal + $2,
    protein       = protein + $3,
    fat           = fat + $4,
    saturated_fat = saturated_fat + $5,
    trans_fat     = trans_fat + $6,
    carbohydrates = carbohydrates + $7,
    sugar         = sugar + $8,
    natrium       = natrium + $9,
    cholesterol   = cholesterol + $10,
    updated_at    = now()
WHERE id = $1`

// Repo provides meal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new meal repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a meal row. A concurrent creator of the same
// (member, slot, date) key surfaces as domain.ErrAlreadyExists via the
// unique constraint; callers are expected to re-read on that error.
func (r *Repo) Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	err := q.QueryRow(ctx, insertSQL,
		m.ID, m.MemberID, m.Slot, m.MealDate,
		m.Totals.Kcal, m.Totals.Protein, m.Totals.Fat, m.Totals.SaturatedFat, m.Totals.TransFat,
		m.Totals.Carbohydrates, m.Totals.Sugar, m.Totals.Natrium, m.Totals.Cholesterol,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "meal", m.ID)
	}

	return m, nil
}

// GetByID returns a meal by primary key.
func (r *Repo) GetByID(ctx context.Context, mealID uuid.UUID) (*domain.Meal, error) {
	return r.get(ctx, getByIDSQL, mealID, mealID)
}

// GetByIDForUpdate returns a meal by primary key, locking the row for the
// duration of the surrounding transaction. The ledger uses it on update and
// delete paths so the reverse-then-apply delta pair cannot interleave with
// another writer on the same meal.
func (r *Repo) GetByIDForUpdate(ctx context.Context, mealID uuid.UUID) (*domain.Meal, error) {
	return r.get(ctx, getByIDForUpdateSQL, mealID, mealID)
}

// GetByKey returns the meal for (member, slot, date).
func (r *Repo) GetByKey(ctx context.Context, memberID uuid.UUID, slot domain.MealSlot, mealDate time.Time) (*domain.Meal, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, getByKeySQL, memberID, slot, mealDate)
	m, err := scanMeal(row)
	if err != nil {
		return nil, postgres.MapError(err, "meal", memberID)
	}
	return m, nil
}

// ListByMemberAndDate returns all meals logged by a member on a date.
func (r *Repo) ListByMemberAndDate(ctx context.Context, memberID uuid.UUID, mealDate time.Time) ([]domain.Meal, error) {
	return r.list(ctx, listByMemberAndDateSQL, memberID, mealDate)
}

// ListByMemberBetween returns a member's meals for the inclusive date range,
// ordered by date.
func (r *Repo) ListByMemberBetween(ctx context.Context, memberID uuid.UUID, start, end time.Time) ([]domain.Meal, error) {
	return r.list(ctx, listByMemberBetweenSQL, memberID, start, end)
}

func (r *Repo) list(ctx context.Context, sql string, memberID uuid.UUID, args ...any) ([]domain.Meal, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, sql, append([]any{memberID}, args...)...)
	if err != nil {
		return nil, postgres.MapError(err, "meal", memberID)
	}
	defer rows.Close()

	meals := []domain.Meal{}
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, postgres.MapError(err, "meal", memberID)
		}
		meals = append(meals, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "meal", memberID)
	}

	return meals, nil
}

// AdjustNutrition adds a signed delta to the meal's running totals.
func (r *Repo) AdjustNutrition(ctx context.Context, mealID uuid.UUID, delta domain.Nutrition) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, adjustNutritionSQL,
		mealID,
		delta.Kcal, delta.Protein, delta.Fat, delta.SaturatedFat, delta.TransFat,
		delta.Carbohydrates, delta.Sugar, delta.Natrium, delta.Cholesterol,
	)
	if err != nil {
		return postgres.MapError(err, "meal", mealID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meal %s: %w", mealID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) get(ctx context.Context, sql string, arg any, id uuid.UUID) (*domain.Meal, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, sql, arg)
	m, err := scanMeal(row)
	if err != nil {
		return nil, postgres.MapError(err, "meal", id)
	}
	return m, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeal(row rowScanner) (*domain.Meal, error) {
	var m domain.Meal
	err := row.Scan(
		&m.ID, &m.MemberID, &m.Slot, &m.MealDate,
		&m.Totals.Kcal, &m.Totals.Protein, &m.Totals.Fat, &m.Totals.SaturatedFat, &m.Totals.TransFat,
		&m.Totals.Carbohydrates, &m.Totals.Sugar, &m.Totals.Natrium, &m.Totals.Cholesterol,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
