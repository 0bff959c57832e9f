package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Food is a reference nutrient-density record: the nine nutrient values are
// expressed per BaseQuantity of BaseUnit (typically per 100 g). Food rows are
// owned by the catalog and are read-only to the ledger.
type Food struct {
	ID           uuid.UUID
	Name         string
	BaseQuantity decimal.Decimal
	BaseUnit     string
	Density      Nutrition
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
