package nutricalc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bablog/bablog-backend/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func riceFood() domain.Food {
	return domain.Food{
		Name:         "steamed rice",
		BaseQuantity: dec("100"),
		BaseUnit:     "g",
		Density: domain.Nutrition{
			Kcal:          dec("130"),
			Protein:       dec("2.7"),
			Fat:           dec("0.3"),
			Carbohydrates: dec("28.2"),
			Sugar:         dec("0.1"),
			Natrium:       dec("1"),
		},
	}
}

func TestComputeDelta_ScalesByIntake(t *testing.T) {
	delta, err := ComputeDelta(riceFood(), dec("150"))
	require.NoError(t, err)

	assert.True(t, dec("195").Equal(delta.Kcal), "kcal = %s", delta.Kcal)
	assert.True(t, dec("4.05").Equal(delta.Protein), "protein = %s", delta.Protein)
	assert.True(t, dec("42.3").Equal(delta.Carbohydrates), "carbs = %s", delta.Carbohydrates)
	assert.True(t, dec("1.5").Equal(delta.Natrium), "natrium = %s", delta.Natrium)
}

func TestComputeDelta_RoundsHalfUpAtScaleTwo(t *testing.T) {
	food := domain.Food{
		BaseQuantity: dec("3"),
		Density:      domain.Nutrition{Kcal: dec("1")},
	}
	// 1 * 10/3 = 3.333... -> 3.33
	delta, err := ComputeDelta(food, dec("10"))
	require.NoError(t, err)
	assert.True(t, dec("3.33").Equal(delta.Kcal), "kcal = %s", delta.Kcal)

	// 0.125 * 1/1 = 0.125 -> 0.13 (half rounds up)
	food.Density.Kcal = dec("0.125")
	food.BaseQuantity = dec("1")
	delta, err = ComputeDelta(food, dec("1"))
	require.NoError(t, err)
	assert.True(t, dec("0.13").Equal(delta.Kcal), "kcal = %s", delta.Kcal)
}

func TestComputeDelta_RejectsNonPositiveIntake(t *testing.T) {
	for _, intake := range []string{"0", "-50"} {
		_, err := ComputeDelta(riceFood(), dec(intake))
		assert.ErrorIs(t, err, domain.ErrValidation, "intake %s", intake)
	}
}

func TestComputeDelta_RejectsNonPositiveBaseQuantity(t *testing.T) {
	food := riceFood()
	food.BaseQuantity = decimal.Zero
	_, err := ComputeDelta(food, dec("100"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReverse_RoundTripRestoresTotals(t *testing.T) {
	delta, err := ComputeDelta(riceFood(), dec("137"))
	require.NoError(t, err)

	totals := domain.Nutrition{Kcal: dec("512.44"), Protein: dec("31.07")}
	after := totals.Add(delta).Add(Reverse(delta))

	assert.True(t, after.Equal(totals), "totals drifted: %+v", after)
}

func TestRatio(t *testing.T) {
	assert.True(t, dec("0.3333").Equal(Ratio(dec("1"), dec("3"), 4)))
	assert.True(t, Ratio(dec("5"), decimal.Zero, 4).IsZero())
	assert.True(t, Ratio(dec("5"), dec("-1"), 4).IsZero())
}
