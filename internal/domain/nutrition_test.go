package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNutrition_AddNegateRoundTrip(t *testing.T) {
	n := Nutrition{
		Kcal:    d("512.44"),
		Protein: d("31.07"),
		Sugar:   d("12.5"),
	}
	delta := Nutrition{
		Kcal:    d("195"),
		Protein: d("4.05"),
		Natrium: d("1.5"),
	}

	after := n.Add(delta).Add(delta.Negate())
	if !after.Equal(n) {
		t.Errorf("round trip drifted: %+v", after)
	}
}

func TestNutrition_ZeroValue(t *testing.T) {
	var n Nutrition
	if !n.IsZero() {
		t.Error("zero value must report IsZero")
	}
	if !n.Equal(ZeroNutrition()) {
		t.Error("zero value must equal ZeroNutrition()")
	}

	n.Cholesterol = d("0.01")
	if n.IsZero() {
		t.Error("non-zero cholesterol must not report IsZero")
	}
}

func TestNutrition_EqualIgnoresScale(t *testing.T) {
	a := Nutrition{Kcal: d("2.50")}
	b := Nutrition{Kcal: d("2.5")}
	if !a.Equal(b) {
		t.Error("2.50 must equal 2.5")
	}
}

func TestMealAggregate_KcalResolution(t *testing.T) {
	agg := MealAggregate{Meal: Meal{Totals: Nutrition{Kcal: d("400")}}}
	if !agg.Kcal().Equal(d("400")) {
		t.Errorf("kcal = %s, want meal totals", agg.Kcal())
	}

	agg.Log = &MealLog{Totals: Nutrition{Kcal: d("380")}}
	if !agg.Kcal().Equal(d("380")) {
		t.Errorf("kcal = %s, want log mirror value", agg.Kcal())
	}
}

func TestMealSlots_CanonicalOrder(t *testing.T) {
	slots := MealSlots()
	want := []MealSlot{MealSlotBreakfast, MealSlotLunch, MealSlotDinner, MealSlotSnack}
	if len(slots) != len(want) {
		t.Fatalf("slots = %d, want %d", len(slots), len(want))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slots[%d] = %s, want %s", i, slots[i], want[i])
		}
	}
	if MealSlot("BRUNCH").IsValid() {
		t.Error("unknown slot must be invalid")
	}
}
