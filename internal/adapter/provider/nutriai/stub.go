package nutriai

import (
	"context"
	"time"

	"github.com/bablog/bablog-backend/internal/provider"
)

// Stub is a deterministic in-process scoring implementation for local
// development and tests. It never fails and never leaves the process.
type Stub struct{}

// NewStub creates a new stub scoring client.
func NewStub() *Stub { return &Stub{} }

// ScoreDaily returns a fixed mid-range daily result.
func (s *Stub) ScoreDaily(_ context.Context, _ provider.DailyScoringRequest) (*provider.DailyInsight, error) {
	return &provider.DailyInsight{
		Score:           75,
		Grade:           "fair",
		Summary:         "Stubbed daily report generated without calling the scoring service.",
		Highlights:      []string{"Macronutrient balance looks reasonably stable."},
		Improvements:    []string{"Cutting back on sodium a little would help."},
		Recommendations: []string{"Add two kinds of vegetables to tomorrow's lunch."},
		RiskFlags:       []string{"stub data"},
		NutrientScores: map[string]int{
			"kcal":         18,
			"macroBalance": 15,
			"protein":      8,
			"sugar":        6,
			"natrium":      6,
		},
	}, nil
}

// ScoreWeekly returns a fixed mid-range weekly result. Best day is
// the period start and worst day two days later, so window normalization in
// the report pipeline keeps both.
func (s *Stub) ScoreWeekly(_ context.Context, req provider.WeeklyScoringRequest) (*provider.WeeklyInsight, error) {
	bestDay := ""
	worstDay := ""
	if start, err := time.Parse("2006-01-02", req.Period.StartDate); err == nil {
		bestDay = start.Format("2006-01-02")
		worstDay = start.AddDate(0, 0, 2).Format("2006-01-02")
	}

	return &provider.WeeklyInsight{
		Score:            78,
		ConsistencyScore: 70,
		Grade:            "fair",
		Summary:          "Stubbed weekly report generated without calling the scoring service.",
		PatternSummary:   "Weekday regularity held up through the week.",
		BestDay:          bestDay,
		BestReason:       "Meals stayed balanced across the day.",
		WorstDay:         worstDay,
		WorstReason:      "Snacks carried a large share of the calories.",
		NextWeekFocus:    "Keep at least one protein serving per day.",
		Highlights:       []string{"Logging frequency stayed consistent."},
		Improvements:     []string{"Try to reduce sugar intake."},
		Recommendations:  []string{"Add one protein serving to breakfast next week."},
		RiskFlags:        []string{"stub data"},
		Trend:            map[string]any{"note": "stub"},
	}, nil
}
