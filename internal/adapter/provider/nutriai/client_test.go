package nutriai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bablog/bablog-backend/internal/provider"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_ScoreDaily_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/insights/daily" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %s", ct)
		}

		var req provider.DailyScoringRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Type != "daily" {
			t.Errorf("unexpected type: %s", req.Type)
		}
		if req.Date != "2026-03-11" {
			t.Errorf("unexpected date: %s", req.Date)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"score": 84,
			"grade": "good",
			"summary": "balanced intake",
			"highlights": ["steady protein"],
			"nutrientScores": {"kcal": 19}
		}`))
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, 2*time.Second, newTestLogger())
	insight, err := c.ScoreDaily(context.Background(), provider.DailyScoringRequest{
		Type: "daily",
		Date: "2026-03-11",
		Actual: provider.NutritionValues{
			Kcal: decimal.RequireFromString("1850"),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if insight.Score != 84 {
		t.Errorf("score = %d, want 84", insight.Score)
	}
	if insight.Grade != "good" {
		t.Errorf("grade = %q", insight.Grade)
	}
	if insight.NutrientScores["kcal"] != 19 {
		t.Errorf("nutrientScores = %v", insight.NutrientScores)
	}
}

func TestClient_ScoreWeekly_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/insights/weekly" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"score": 78,
			"consistencyScore": 71,
			"grade": "good",
			"bestDay": "2026-03-10",
			"trend": {"kcal": "stable"}
		}`))
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, 2*time.Second, newTestLogger())
	insight, err := c.ScoreWeekly(context.Background(), provider.WeeklyScoringRequest{Type: "weekly"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if insight.ConsistencyScore != 71 {
		t.Errorf("consistencyScore = %d", insight.ConsistencyScore)
	}
	if insight.BestDay != "2026-03-10" {
		t.Errorf("bestDay = %q", insight.BestDay)
	}
}

func TestClient_SendsBearerToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sekrit" {
			t.Errorf("authorization = %q", got)
		}
		w.Write([]byte(`{"score": 1}`))
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, time.Second, newTestLogger())
	c.apiKey = "sekrit"
	if _, err := c.ScoreDaily(context.Background(), provider.DailyScoringRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_NonOKStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, time.Second, newTestLogger())
	if _, err := c.ScoreDaily(context.Background(), provider.DailyScoringRequest{}); err == nil {
		t.Fatal("expected error for 503 response")
	}
}

func TestClient_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"score": `))
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, time.Second, newTestLogger())
	if _, err := c.ScoreWeekly(context.Background(), provider.WeeklyScoringRequest{}); err == nil {
		t.Fatal("expected error for truncated body")
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewClientWithURL(srv.URL, 5*time.Second, newTestLogger())
	if _, err := c.ScoreDaily(ctx, provider.DailyScoringRequest{}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestStub_IsDeterministic(t *testing.T) {
	t.Parallel()

	s := NewStub()
	first, err := s.ScoreDaily(context.Background(), provider.DailyScoringRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := s.ScoreDaily(context.Background(), provider.DailyScoringRequest{})
	if first.Score != second.Score || first.Grade != second.Grade {
		t.Errorf("stub results differ: %+v vs %+v", first, second)
	}

	weekly, err := s.ScoreWeekly(context.Background(), provider.WeeklyScoringRequest{
		Period: provider.Period{StartDate: "2026-03-09", EndDate: "2026-03-15"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weekly.BestDay != "2026-03-09" {
		t.Errorf("bestDay = %q", weekly.BestDay)
	}
}
