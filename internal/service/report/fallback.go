package report

import "github.com/bablog/bablog-backend/internal/provider"

// Fixed results used when the insight provider cannot be consulted. A day
// with no logged food never reaches the provider at all; a provider failure
// degrades to a neutral result so generation still succeeds.

// noDataDaily is persisted for a day with nothing logged.
func noDataDaily() *provider.DailyInsight {
	return &provider.DailyInsight{
		Score:   0,
		Grade:   "needs focus",
		Summary: "No meals were logged for this day, so there is nothing to score.",
		Improvements: []string{
			"Log at least one meal to receive a daily nutrition report.",
		},
		NutrientScores: map[string]int{},
	}
}

// fallbackDaily is persisted when the provider call fails.
func fallbackDaily() *provider.DailyInsight {
	return &provider.DailyInsight{
		Score:   0,
		Grade:   "needs focus",
		Summary: "The nutrition analysis service was unavailable. Your meals were recorded and will be reflected in future reports.",
		Recommendations: []string{
			"Check back later for a full analysis of this day.",
		},
		NutrientScores: map[string]int{},
	}
}

// noDataWeekly is persisted for a week with nothing logged on any day.
func noDataWeekly() *provider.WeeklyInsight {
	return &provider.WeeklyInsight{
		Score:            0,
		ConsistencyScore: 0,
		Grade:            "needs focus",
		Summary:          "No meals were logged during this week, so there is nothing to score.",
		PatternSummary:   "No eating pattern could be derived.",
		Improvements: []string{
			"Log meals regularly to receive a weekly nutrition report.",
		},
	}
}

// fallbackWeekly is persisted when the provider call fails.
func fallbackWeekly() *provider.WeeklyInsight {
	return &provider.WeeklyInsight{
		Score:            0,
		ConsistencyScore: 0,
		Grade:            "needs focus",
		Summary:          "The nutrition analysis service was unavailable. Your logged meals are safe and the week can be rescored later.",
		PatternSummary:   "Pattern analysis was skipped for this week.",
		Recommendations: []string{
			"Regenerate this report later for a full weekly analysis.",
		},
	}
}
