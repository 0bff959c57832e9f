// Package provider defines the contract types exchanged with the external
// insight-scoring service. Adapters under internal/adapter/provider implement
// the transport; services consume these shapes only.
package provider

import "github.com/shopspring/decimal"

// NutritionValues is the wire shape of a nutrient vector.
type NutritionValues struct {
	Kcal          decimal.Decimal `json:"kcal"`
	Protein       decimal.Decimal `json:"protein"`
	Fat           decimal.Decimal `json:"fat"`
	SaturatedFat  decimal.Decimal `json:"saturatedFat"`
	TransFat      decimal.Decimal `json:"transFat"`
	Carbohydrates decimal.Decimal `json:"carbohydrates"`
	Sugar         decimal.Decimal `json:"sugar"`
	Natrium       decimal.Decimal `json:"natrium"`
	Cholesterol   decimal.Decimal `json:"cholesterol"`
}

// MemberAttributes carries the profile fields the scoring model uses.
type MemberAttributes struct {
	Gender   string          `json:"gender"`
	HeightCm decimal.Decimal `json:"heightCm"`
	WeightKg decimal.Decimal `json:"weightKg"`
}

// MealFoodSummary is one logged food inside a meal breakdown.
type MealFoodSummary struct {
	Name   string          `json:"name"`
	Intake decimal.Decimal `json:"intake"`
	Kcal   decimal.Decimal `json:"kcal"`
}

// MealBreakdown is the per-slot view sent with a daily request.
type MealBreakdown struct {
	Slot  string            `json:"mealType"`
	Kcal  decimal.Decimal   `json:"kcal"`
	Foods []MealFoodSummary `json:"foods"`
}

// MealPatternMetrics are the derived eating-pattern figures for one day.
type MealPatternMetrics struct {
	MealCount   int             `json:"mealCount"`
	SnackRatio  decimal.Decimal `json:"snackRatio"`
	DinnerRatio decimal.Decimal `json:"dinnerRatio"`
	FoodVariety int             `json:"foodVariety"`
}

// DailyMetrics combines actual intake, target, and pattern metrics for a day.
// Date is set only inside weekly requests.
type DailyMetrics struct {
	Date        string             `json:"date,omitempty"`
	Actual      NutritionValues    `json:"actual"`
	Target      NutritionValues    `json:"target"`
	MealPattern MealPatternMetrics `json:"mealPattern"`
}

// Period is an inclusive date range.
type Period struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// DailyScoringRequest is the payload for a daily insight request.
type DailyScoringRequest struct {
	Type    string           `json:"type"`
	Date    string           `json:"date"`
	Member  MemberAttributes `json:"member"`
	Actual  NutritionValues  `json:"actual"`
	Target  NutritionValues  `json:"target"`
	Metrics DailyMetrics     `json:"metrics"`
	Meals   []MealBreakdown  `json:"mealSummary"`
}

// WeeklyScoringRequest is the payload for a weekly insight request.
type WeeklyScoringRequest struct {
	Type         string           `json:"type"`
	Period       Period           `json:"period"`
	Member       MemberAttributes `json:"member"`
	DailyMetrics []DailyMetrics   `json:"dailyMetrics"`
}

// DailyInsight is the scoring service's answer for one day.
type DailyInsight struct {
	Score           int            `json:"score"`
	Grade           string         `json:"grade"`
	Summary         string         `json:"summary"`
	Highlights      []string       `json:"highlights"`
	Improvements    []string       `json:"improvements"`
	Recommendations []string       `json:"recommendations"`
	RiskFlags       []string       `json:"riskFlags"`
	NutrientScores  map[string]int `json:"nutrientScores"`
}

// WeeklyInsight is the scoring service's answer for one week.
// BestDay/WorstDay are raw strings as returned by the service; the report
// pipeline parses and window-checks them.
type WeeklyInsight struct {
	Score            int            `json:"score"`
	ConsistencyScore int            `json:"consistencyScore"`
	Grade            string         `json:"grade"`
	Summary          string         `json:"summary"`
	PatternSummary   string         `json:"patternSummary"`
	BestDay          string         `json:"bestDay"`
	BestReason       string         `json:"bestReason"`
	WorstDay         string         `json:"worstDay"`
	WorstReason      string         `json:"worstReason"`
	NextWeekFocus    string         `json:"nextWeekFocus"`
	Highlights       []string       `json:"highlights"`
	Improvements     []string       `json:"improvements"`
	Recommendations  []string       `json:"recommendations"`
	RiskFlags        []string       `json:"riskFlags"`
	Trend            map[string]any `json:"trend"`
}
