// Package nutrienttarget implements read-only access to per-day personalized
// nutrient targets.
package nutrienttarget

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bablog/bablog-backend/internal/adapter/postgres"
	"github.com/bablog/bablog-backend/internal/domain"
)

const getDailySQL = `
SELECT id, member_id, target_date,
       kcal, protein, fat, saturated_fat, trans_fat, carbohydrates, sugar, natrium, cholesterol,
       created_at, updated_at
FROM member_nutrient_daily
WHERE member_id = $1 AND target_date = $2`

// Repo provides daily nutrient target reads backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new nutrient target repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetDaily returns the member's target for the given date.
// Returns domain.ErrNotFound when no snapshot exists for the day; callers
// treat that as a zero target.
func (r *Repo) GetDaily(ctx context.Context, memberID uuid.UUID, targetDate time.Time) (*domain.DailyNutrientTarget, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var t domain.DailyNutrientTarget
	err := q.QueryRow(ctx, getDailySQL, memberID, targetDate).Scan(
		&t.ID, &t.MemberID, &t.TargetDate,
		&t.Target.Kcal, &t.Target.Protein, &t.Target.Fat, &t.Target.SaturatedFat, &t.Target.TransFat,
		&t.Target.Carbohydrates, &t.Target.Sugar, &t.Target.Natrium, &t.Target.Cholesterol,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "nutrient_target", memberID)
	}
	return &t, nil
}
