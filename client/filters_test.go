package client

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tbanku/tbanku-api/models"
)

func TestFilterByDateRange(t *testing.T) {
	dates := []string{"2024-01-01", "2024-01-15T10:00:00", "2024-01-31", "2024-02-01", "garbage"}
	got := FilterByDateRange(dates, func(s string) string { return s }, "2024-01-01", "2024-01-31")

	want := []string{"2024-01-01", "2024-01-15T10:00:00", "2024-01-31"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if got := FilterByDateRange(dates, func(s string) string { return s }, "bad", "2024-01-31"); len(got) != 0 {
		t.Errorf("bad bound: got %v", got)
	}
}

func TestExpenseFilters(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	c.Expenses().Add(ctx, models.Expense{Amount: 10, Category: "Food", Date: "2024-01-03"})
	c.Expenses().Add(ctx, models.Expense{Amount: 20, Category: "Rent", Date: "2024-01-04"})
	c.Expenses().Add(ctx, models.Expense{Amount: 30, Category: "Food", Date: "2024-03-01"})

	food, err := c.ExpensesByCategory(ctx, "Food")
	if err != nil {
		t.Fatalf("ExpensesByCategory: %v", err)
	}
	if len(food) != 2 {
		t.Errorf("got %d food expenses, want 2", len(food))
	}

	january, err := c.ExpensesByDateRange(ctx, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("ExpensesByDateRange: %v", err)
	}
	if len(january) != 2 {
		t.Errorf("got %d january expenses, want 2", len(january))
	}
}

func TestNewProperty(t *testing.T) {
	now := time.Date(2024, 4, 10, 15, 0, 0, 0, time.UTC)

	p, err := NewProperty("Laptop", 1000, "2024-01-01", "work", now)
	if err != nil {
		t.Fatalf("NewProperty: %v", err)
	}
	// 100 days and 15 hours, rounded up
	if p.UsedTime != 101 {
		t.Errorf("usedtime = %v, want 101", p.UsedTime)
	}
	if p.Worth != 1000.0/101 {
		t.Errorf("worth = %v", p.Worth)
	}

	p, _ = NewProperty("Chair", 50, "2024-04-10", "", now.Add(-15*time.Hour))
	if p.UsedTime != 1 || p.Worth != 50 {
		t.Errorf("same day purchase: %+v", p)
	}

	if _, err := NewProperty("x", 1, "10/04/2024", "", now); err == nil {
		t.Error("invalid date should fail")
	}
}
