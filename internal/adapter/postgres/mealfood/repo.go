// Package mealfood implements the MealFood entry repository using PostgreSQL.
package mealfood

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/bablog/bablog-backend/internal/adapter/postgres"
	"github.com/bablog/bablog-backend/internal/domain"
)

const getByIDSQL = `
SELECT id, meal_id, food_id, intake, unit, created_at, updated_at
FROM meal_foods
WHERE id = $1`

const insertSQL = `
INSERT INTO meal_foods (id, meal_id, food_id, intake, unit, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
RETURNING created_at, updated_at`

const updateSQL = `
UPDATE meal_foods
SET food_id = $2, intake = $3, unit = $4, updated_at = now()
WHERE id = $1
RETURNING updated_at`

const deleteSQL = `
DELETE FROM meal_foods
WHERE id = $1`

// Repo provides meal-food entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new meal-food repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts an entry row.
func (r *Repo) Create(ctx context.Context, f *domain.MealFood) (*domain.MealFood, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	err := q.QueryRow(ctx, insertSQL, f.ID, f.MealID, f.FoodID, f.Intake, f.Unit).
		Scan(&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "meal_food", f.ID)
	}
	return f, nil
}

// GetByID returns an entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MealFood, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var f domain.MealFood
	err := q.QueryRow(ctx, getByIDSQL, id).
		Scan(&f.ID, &f.MealID, &f.FoodID, &f.Intake, &f.Unit, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "meal_food", id)
	}
	return &f, nil
}

// Update persists the entry's mutable fields (food reference, intake, unit)
// and returns the entry with the database-assigned update timestamp.
func (r *Repo) Update(ctx context.Context, f *domain.MealFood) (*domain.MealFood, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	err := q.QueryRow(ctx, updateSQL, f.ID, f.FoodID, f.Intake, f.Unit).
		Scan(&f.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "meal_food", f.ID)
	}
	return f, nil
}

// Delete removes an entry row.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "meal_food", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meal_food %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListByMealIDsWithFood returns entries joined with their food reference rows,
// grouped by meal. Rows are ordered by entry creation time then id, which is
// the stable order the dashboard's representative-food pick relies on.
// An empty id list returns an empty map without querying.
func (r *Repo) ListByMealIDsWithFood(ctx context.Context, mealIDs []uuid.UUID) (map[uuid.UUID][]domain.MealFoodWithFood, error) {
	result := make(map[uuid.UUID][]domain.MealFoodWithFood)
	if len(mealIDs) == 0 {
		return result, nil
	}

	builder := sq.Select(
		"mf.id", "mf.meal_id", "mf.food_id", "mf.intake", "mf.unit", "mf.created_at", "mf.updated_at",
		"f.id", "f.name", "f.base_quantity", "f.base_unit",
		"f.kcal", "f.protein", "f.fat", "f.saturated_fat", "f.trans_fat",
		"f.carbohydrates", "f.sugar", "f.natrium", "f.cholesterol",
		"f.created_at", "f.updated_at",
	).
		From("meal_foods mf").
		Join("foods f ON f.id = mf.food_id").
		Where(sq.Eq{"mf.meal_id": mealIDs}).
		OrderBy("mf.created_at", "mf.id").
		PlaceholderFormat(sq.Dollar)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build meal_foods query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "meal_food", uuid.Nil)
	}
	defer rows.Close()

	for rows.Next() {
		var row domain.MealFoodWithFood
		err := rows.Scan(
			&row.MealFood.ID, &row.MealFood.MealID, &row.MealFood.FoodID,
			&row.MealFood.Intake, &row.MealFood.Unit, &row.MealFood.CreatedAt, &row.MealFood.UpdatedAt,
			&row.Food.ID, &row.Food.Name, &row.Food.BaseQuantity, &row.Food.BaseUnit,
			&row.Food.Density.Kcal, &row.Food.Density.Protein, &row.Food.Density.Fat,
			&row.Food.Density.SaturatedFat, &row.Food.Density.TransFat,
			&row.Food.Density.Carbohydrates, &row.Food.Density.Sugar,
			&row.Food.Density.Natrium, &row.Food.Density.Cholesterol,
			&row.Food.CreatedAt, &row.Food.UpdatedAt,
		)
		if err != nil {
			return nil, postgres.MapError(err, "meal_food", uuid.Nil)
		}
		result[row.MealFood.MealID] = append(result[row.MealFood.MealID], row)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "meal_food", uuid.Nil)
	}

	return result, nil
}
