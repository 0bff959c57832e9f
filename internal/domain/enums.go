package domain

// MealSlot is the fixed daily partition a meal belongs to.
type MealSlot string

const (
	MealSlotBreakfast MealSlot = "BREAKFAST"
	MealSlotLunch     MealSlot = "LUNCH"
	MealSlotDinner    MealSlot = "DINNER"
	MealSlotSnack     MealSlot = "SNACK"
)

func (s MealSlot) String() string { return string(s) }

func (s MealSlot) IsValid() bool {
	switch s {
	case MealSlotBreakfast, MealSlotLunch, MealSlotDinner, MealSlotSnack:
		return true
	}
	return false
}

// MealSlots lists all slots in canonical display order. Dashboard and report
// output always covers all four, in this order.
func MealSlots() []MealSlot {
	return []MealSlot{MealSlotBreakfast, MealSlotLunch, MealSlotDinner, MealSlotSnack}
}

// Gender represents the member's registered gender.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}
