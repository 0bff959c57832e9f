package domain

import "github.com/shopspring/decimal"

// Nutrition is a fixed-shape vector of the nine tracked nutrient values.
// It has value semantics: arithmetic returns a new vector and never mutates
// the receiver. The zero value of every field is decimal zero, so the zero
// Nutrition is a valid "nothing logged" vector.
type Nutrition struct {
	Kcal          decimal.Decimal
	Protein       decimal.Decimal
	Fat           decimal.Decimal
	SaturatedFat  decimal.Decimal
	TransFat      decimal.Decimal
	Carbohydrates decimal.Decimal
	Sugar         decimal.Decimal
	Natrium       decimal.Decimal
	Cholesterol   decimal.Decimal
}

// ZeroNutrition returns the all-zero vector.
func ZeroNutrition() Nutrition {
	return Nutrition{}
}

// Add returns the field-wise sum of n and o.
func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Kcal:          n.Kcal.Add(o.Kcal),
		Protein:       n.Protein.Add(o.Protein),
		Fat:           n.Fat.Add(o.Fat),
		SaturatedFat:  n.SaturatedFat.Add(o.SaturatedFat),
		TransFat:      n.TransFat.Add(o.TransFat),
		Carbohydrates: n.Carbohydrates.Add(o.Carbohydrates),
		Sugar:         n.Sugar.Add(o.Sugar),
		Natrium:       n.Natrium.Add(o.Natrium),
		Cholesterol:   n.Cholesterol.Add(o.Cholesterol),
	}
}

// Negate returns the field-wise negation of n.
func (n Nutrition) Negate() Nutrition {
	return Nutrition{
		Kcal:          n.Kcal.Neg(),
		Protein:       n.Protein.Neg(),
		Fat:           n.Fat.Neg(),
		SaturatedFat:  n.SaturatedFat.Neg(),
		TransFat:      n.TransFat.Neg(),
		Carbohydrates: n.Carbohydrates.Neg(),
		Sugar:         n.Sugar.Neg(),
		Natrium:       n.Natrium.Neg(),
		Cholesterol:   n.Cholesterol.Neg(),
	}
}

// IsZero reports whether every field is zero.
func (n Nutrition) IsZero() bool {
	return n.Kcal.IsZero() &&
		n.Protein.IsZero() &&
		n.Fat.IsZero() &&
		n.SaturatedFat.IsZero() &&
		n.TransFat.IsZero() &&
		n.Carbohydrates.IsZero() &&
		n.Sugar.IsZero() &&
		n.Natrium.IsZero() &&
		n.Cholesterol.IsZero()
}

// Equal reports field-wise numeric equality (2.50 equals 2.5).
func (n Nutrition) Equal(o Nutrition) bool {
	return n.Kcal.Equal(o.Kcal) &&
		n.Protein.Equal(o.Protein) &&
		n.Fat.Equal(o.Fat) &&
		n.SaturatedFat.Equal(o.SaturatedFat) &&
		n.TransFat.Equal(o.TransFat) &&
		n.Carbohydrates.Equal(o.Carbohydrates) &&
		n.Sugar.Equal(o.Sugar) &&
		n.Natrium.Equal(o.Natrium) &&
		n.Cholesterol.Equal(o.Cholesterol)
}
