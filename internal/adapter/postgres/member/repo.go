// Package member implements read-only access to member profiles.
package member

import (
	"context"

	"github.com/google/uuid"

	"github.com/bablog/bablog-backend/internal/adapter/postgres"
	"github.com/bablog/bablog-backend/internal/domain"
)

const getByIDSQL = `
SELECT id, email, name, gender, birth_date, height_cm, weight_kg, created_at, updated_at
FROM members
WHERE id = $1`

// Repo provides member profile reads backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new member repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a member by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var m domain.Member
	err := q.QueryRow(ctx, getByIDSQL, id).Scan(
		&m.ID, &m.Email, &m.Name, &m.Gender, &m.BirthDate,
		&m.HeightCm, &m.WeightKg, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "member", id)
	}
	return &m, nil
}
