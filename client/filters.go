package client

import (
	"context"
	"math"
	"time"

	"github.com/tbanku/tbanku-api/models"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterByDateRange keeps items whose date lies in [start, end]. Items with
// an unparsable date are dropped; an unparsable bound drops everything.
func FilterByDateRange[T any](items []T, dateOf func(T) string, start, end string) []T {
	from, ok1 := parseDate(start)
	to, ok2 := parseDate(end)
	out := []T{}
	if !ok1 || !ok2 {
		return out
	}
	for _, item := range items {
		d, ok := parseDate(dateOf(item))
		if ok && !d.Before(from) && !d.After(to) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Client) IncomeByDateRange(ctx context.Context, start, end string) ([]models.Income, error) {
	items, err := c.Income().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByDateRange(items, func(i models.Income) string { return i.Date }, start, end), nil
}

func (c *Client) ExpensesByDateRange(ctx context.Context, start, end string) ([]models.Expense, error) {
	items, err := c.Expenses().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByDateRange(items, func(e models.Expense) string { return e.Date }, start, end), nil
}

func (c *Client) ExpensesByCategory(ctx context.Context, category string) ([]models.Expense, error) {
	items, err := c.Expenses().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Expense{}
	for _, e := range items {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

// NewProperty prepares a property for Add. UsedTime is the number of whole
// days between the purchase date and now, rounded up and at least 1, and
// Worth = value / UsedTime.
func NewProperty(name string, value float64, purchaseDate, description string, now time.Time) (models.Property, error) {
	bought, err := time.Parse("2006-01-02", purchaseDate)
	if err != nil {
		return models.Property{}, err
	}

	days := math.Ceil(math.Abs(now.Sub(bought).Hours()) / 24)
	usedTime := math.Max(days, 1)

	return models.Property{
		Name:        name,
		Value:       value,
		Date:        purchaseDate,
		UsedTime:    usedTime,
		Worth:       value / usedTime,
		Description: description,
	}, nil
}
