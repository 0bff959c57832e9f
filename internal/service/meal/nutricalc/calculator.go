// Package nutricalc computes signed nutrient deltas from food densities.
//
// All scaling uses one fixed rule: half-up rounding at two decimal places.
// A delta is reversed by exact field-wise negation, so applying a delta and
// its reverse always restores the previous totals bit for bit.
package nutricalc

import (
	"github.com/shopspring/decimal"

	"github.com/bablog/bablog-backend/internal/domain"
)

// Scale is the decimal scale of every computed delta field.
const Scale = 2

// ComputeDelta returns the nutrient contribution of consuming intake units of
// the food: each density field scaled by intake/baseQuantity, rounded half-up
// at Scale. Rejects non-positive intake with a field validation error.
func ComputeDelta(food domain.Food, intake decimal.Decimal) (domain.Nutrition, error) {
	if intake.Sign() <= 0 {
		return domain.Nutrition{}, domain.NewValidationError("intake", "must be positive")
	}
	if food.BaseQuantity.Sign() <= 0 {
		return domain.Nutrition{}, domain.NewValidationError("food", "base quantity must be positive")
	}

	factor := intake.Div(food.BaseQuantity)
	scale := func(v decimal.Decimal) decimal.Decimal {
		return v.Mul(factor).Round(Scale)
	}

	d := food.Density
	return domain.Nutrition{
		Kcal:          scale(d.Kcal),
		Protein:       scale(d.Protein),
		Fat:           scale(d.Fat),
		SaturatedFat:  scale(d.SaturatedFat),
		TransFat:      scale(d.TransFat),
		Carbohydrates: scale(d.Carbohydrates),
		Sugar:         scale(d.Sugar),
		Natrium:       scale(d.Natrium),
		Cholesterol:   scale(d.Cholesterol),
	}, nil
}

// Reverse returns the retraction of a previously computed delta.
func Reverse(delta domain.Nutrition) domain.Nutrition {
	return delta.Negate()
}

// Ratio divides part by total at the given scale (half-up). A total of zero
// or less yields zero instead of an error, since "no intake" is a normal state.
func Ratio(part, total decimal.Decimal, scale int32) decimal.Decimal {
	if total.Sign() <= 0 {
		return decimal.Zero
	}
	return part.DivRound(total, scale)
}
