package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportVersion tags every persisted report with the payload format it was
// generated under.
const ReportVersion = "v1"

// DailyReport is the persisted snapshot of one day's AI nutrition insight.
// At most one row exists per (member, date); regeneration overwrites it.
// List- and map-valued fields are stored as JSON text.
type DailyReport struct {
	ID              uuid.UUID
	MemberID        uuid.UUID
	ReportDate      time.Time
	Score           int
	Grade           string
	Summary         string
	Highlights      string
	Improvements    string
	Recommendations string
	NutrientScores  string
	RiskFlags       string
	Metrics         string
	ReportVersion   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WeeklyReport is the persisted snapshot of one week's AI nutrition insight,
// keyed by (member, startDate, endDate). BestDay/WorstDay are nil when the
// collaborator returned nothing usable for them.
type WeeklyReport struct {
	ID               uuid.UUID
	MemberID         uuid.UUID
	StartDate        time.Time
	EndDate          time.Time
	Score            int
	ConsistencyScore int
	Grade            string
	Summary          string
	PatternSummary   string
	BestDay          *time.Time
	BestReason       string
	WorstDay         *time.Time
	WorstReason      string
	NextWeekFocus    string
	Highlights       string
	Improvements     string
	Recommendations  string
	Trend            string
	RiskFlags        string
	ReportVersion    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
