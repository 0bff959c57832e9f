package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Member is the profile the report pipeline reads. Profile management itself
// lives outside the ledger core.
type Member struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Gender    Gender
	BirthDate time.Time
	HeightCm  decimal.Decimal
	WeightKg  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DailyNutrientTarget is the personalized per-day target vector for a member.
// A missing row reads as the zero vector.
type DailyNutrientTarget struct {
	ID         uuid.UUID
	MemberID   uuid.UUID
	TargetDate time.Time
	Target     Nutrition
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
