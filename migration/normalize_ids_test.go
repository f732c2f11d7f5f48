package migration

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/tbanku/tbanku-api/models"
	"github.com/tbanku/tbanku-api/services"
	"github.com/tbanku/tbanku-api/storage"
)

func TestNormalizeIDs(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	backend.Save(ctx, "expenses.json", []byte(`{"expenses": [
		{"id": "1700000000000", "amount": 10, "category": "Food", "note": "kept"},
		{"id": "1700000000001", "amount": 20, "category": "Rent"}
	]}`))

	n, err := NormalizeIDs(ctx, backend, models.ExpenseResource, services.SequentialIDs{})
	if err != nil {
		t.Fatalf("NormalizeIDs: %v", err)
	}
	if n != 2 {
		t.Errorf("rewrote %d records, want 2", n)
	}

	data, _ := backend.Load(ctx, "expenses.json")
	var doc struct {
		Expenses []map[string]interface{} `json:"expenses"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid document: %v", err)
	}
	if doc.Expenses[0]["id"] != float64(1) || doc.Expenses[1]["id"] != float64(2) {
		t.Errorf("ids = %v, %v", doc.Expenses[0]["id"], doc.Expenses[1]["id"])
	}
	if doc.Expenses[0]["note"] != "kept" {
		t.Error("unknown fields were dropped")
	}
}

func TestNormalizeAll(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	backend.Save(ctx, "income.json", []byte(`{"incomes": [{"id": 5}, {"id": "x"}]}`))

	if err := NormalizeAll(ctx, backend, services.StrategyUUID); err != nil {
		t.Fatalf("NormalizeAll: %v", err)
	}

	ledger, _ := services.NewLedger(backend, services.StrategyUUID)
	items, _ := ledger.Income.List(ctx)
	if len(items) != 2 || len(items[0].ID.String()) != 36 {
		t.Errorf("items = %+v", items)
	}

	// missing documents are created empty
	if _, err := backend.Load(ctx, "properties.json"); err != nil {
		t.Errorf("properties.json: %v", err)
	}

	if err := NormalizeAll(ctx, backend, "nope"); err == nil {
		t.Error("unknown strategy should fail")
	}
}
