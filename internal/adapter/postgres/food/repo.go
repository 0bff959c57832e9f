// Package food implements read-only access to the food catalog.
package food

import (
	"context"

	"github.com/google/uuid"

	"github.com/bablog/bablog-backend/internal/adapter/postgres"
	"github.com/bablog/bablog-backend/internal/domain"
)

const getByIDSQL = `
SELECT id, name, base_quantity, base_unit,
       kcal, protein, fat, saturated_fat, trans_fat, carbohydrates, sugar, natrium, cholesterol,
       created_at, updated_at
FROM foods
WHERE id = $1`

// Repo provides food catalog reads backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new food repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a food by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Food, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var f domain.Food
	err := q.QueryRow(ctx, getByIDSQL, id).Scan(
		&f.ID, &f.Name, &f.BaseQuantity, &f.BaseUnit,
		&f.Density.Kcal, &f.Density.Protein, &f.Density.Fat, &f.Density.SaturatedFat, &f.Density.TransFat,
		&f.Density.Carbohydrates, &f.Density.Sugar, &f.Density.Natrium, &f.Density.Cholesterol,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "food", id)
	}
	return &f, nil
}
