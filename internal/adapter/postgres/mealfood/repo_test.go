package mealfood

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"

	"github.com/bablog/bablog-backend/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		mock.Close()
	})
	return mock
}

func TestRepo_Update_ReturnsFreshTimestamp(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	entry := domain.NewMealFood(uuid.New(), uuid.New(), decimal.RequireFromString("150"), "g")
	entry.UpdatedAt = time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)
	refreshed := time.Date(2026, 3, 11, 12, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE meal_foods\s+SET food_id = \$2, intake = \$3, unit = \$4`).
		WithArgs(entry.ID, entry.FoodID, entry.Intake, entry.Unit).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(refreshed))

	got, err := repo.Update(context.Background(), entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("updated entry is nil")
	}
	if !got.UpdatedAt.Equal(refreshed) {
		t.Errorf("updated_at = %s, want %s", got.UpdatedAt, refreshed)
	}
	if got.ID != entry.ID {
		t.Errorf("id = %s, want %s", got.ID, entry.ID)
	}
}

func TestRepo_Update_MissingEntry(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	entry := domain.NewMealFood(uuid.New(), uuid.New(), decimal.RequireFromString("100"), "g")

	mock.ExpectQuery(`UPDATE meal_foods`).
		WithArgs(entry.ID, entry.FoodID, entry.Intake, entry.Unit).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Update(context.Background(), entry)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRepo_Delete_MissingEntry(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM meal_foods\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), id)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRepo_ListByMealIDsWithFood_EmptyIDs(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	result, err := repo.ListByMealIDsWithFood(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("result = %d entries, want 0", len(result))
	}
}
