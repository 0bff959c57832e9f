// Package meallog implements the denormalized per-meal nutrition mirror.
// Rows accumulate signed deltas: ApplyDelta with a reversed delta retracts a
// contribution. After every committed ledger mutation a meal's log row equals
// the meal's running totals.
package meallog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/bablog/bablog-backend/internal/adapter/postgres"
	"github.com/bablog/bablog-backend/internal/domain"
)

const applyDeltaSQL = `
INSERT INTO meal_logs (id, meal_id, member_id, meal_date,
                       kcal, protein, fat, saturated_fat, trans_fat, carbohydrates, sugar, natrium, cholesterol,
                       updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now())
ON CONFLICT (meal_id) DO UPDATE
SET kcal          = meal_logs.kcal + EXCLUDED.kcal,
    protein       = meal_logs.protein + EXCLUDED.protein,
    fat           = meal_logs.fat + EXCLUDED.fat,
    saturated_fat = meal_logs.saturated_fat + EXCLUDED.saturated_fat,
    trans_fat     = meal_logs.trans_fat + EXCLUDED.trans_fat,
    carbohydrates = meal_logs.carbohydrates + EXCLUDED.carbohydrates,
    sugar         = meal_logs.sugar + EXCLUDED.sugar,
    natrium       = meal_logs.natrium + EXCLUDED.natrium,
    cholesterol   = meal_logs.cholesterol + EXCLUDED.cholesterol,
    updated_at    = now()`

const dailyTotalSQL = `
SELECT COALESCE(SUM(kcal), 0),
       COALESCE(SUM(protein), 0),
       COALESCE(SUM(fat), 0),
       COALESCE(SUM(saturated_fat), 0),
       COALESCE(SUM(trans_fat), 0),
       COALESCE(SUM(carbohydrates), 0),
       COALESCE(SUM(sugar), 0),
       COALESCE(SUM(natrium), 0),
       COALESCE(SUM(cholesterol), 0)
FROM meal_logs
WHERE member_id = $1 AND meal_date = $2`

// Repo provides meal-log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new meal-log repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ApplyDelta upserts the mirror row for the meal, adding the signed delta to
// its accumulated totals. Passing a negated delta reverses a prior apply.
func (r *Repo) ApplyDelta(ctx context.Context, meal *domain.Meal, delta domain.Nutrition) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx, applyDeltaSQL,
		uuid.New(), meal.ID, meal.MemberID, meal.MealDate,
		delta.Kcal, delta.Protein, delta.Fat, delta.SaturatedFat, delta.TransFat,
		delta.Carbohydrates, delta.Sugar, delta.Natrium, delta.Cholesterol,
	)
	if err != nil {
		return postgres.MapError(err, "meal_log", meal.ID)
	}
	return nil
}

// ByMealIDs returns the log rows for the given meals keyed by meal id.
// An empty id list returns an empty map without querying.
func (r *Repo) ByMealIDs(ctx context.Context, mealIDs []uuid.UUID) (map[uuid.UUID]domain.MealLog, error) {
	result := make(map[uuid.UUID]domain.MealLog)
	if len(mealIDs) == 0 {
		return result, nil
	}

	builder := sq.Select(
		"id", "meal_id", "member_id", "meal_date",
		"kcal", "protein", "fat", "saturated_fat", "trans_fat",
		"carbohydrates", "sugar", "natrium", "cholesterol",
		"updated_at",
	).
		From("meal_logs").
		Where(sq.Eq{"meal_id": mealIDs}).
		PlaceholderFormat(sq.Dollar)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build meal_logs query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "meal_log", uuid.Nil)
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.MealLog
		err := rows.Scan(
			&l.ID, &l.MealID, &l.MemberID, &l.MealDate,
			&l.Totals.Kcal, &l.Totals.Protein, &l.Totals.Fat, &l.Totals.SaturatedFat, &l.Totals.TransFat,
			&l.Totals.Carbohydrates, &l.Totals.Sugar, &l.Totals.Natrium, &l.Totals.Cholesterol,
			&l.UpdatedAt,
		)
		if err != nil {
			return nil, postgres.MapError(err, "meal_log", uuid.Nil)
		}
		result[l.MealID] = l
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "meal_log", uuid.Nil)
	}

	return result, nil
}

// DailyTotal sums a member's log rows for one date. Days without any rows
// yield the zero vector.
func (r *Repo) DailyTotal(ctx context.Context, memberID uuid.UUID, mealDate time.Time) (domain.Nutrition, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n domain.Nutrition
	err := q.QueryRow(ctx, dailyTotalSQL, memberID, mealDate).Scan(
		&n.Kcal, &n.Protein, &n.Fat, &n.SaturatedFat, &n.TransFat,
		&n.Carbohydrates, &n.Sugar, &n.Natrium, &n.Cholesterol,
	)
	if err != nil {
		return domain.Nutrition{}, postgres.MapError(err, "meal_log", memberID)
	}
	return n, nil
}
