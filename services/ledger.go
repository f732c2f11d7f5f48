package services

import (
	"context"

	"github.com/tbanku/tbanku-api/models"
	"github.com/tbanku/tbanku-api/storage"
)

// Ledger groups the record services of the four resources over one backend.
type Ledger struct {
	Income     *RecordService[models.Income]
	Expenses   *RecordService[models.Expense]
	Assets     *RecordService[models.Asset]
	Properties *RecordService[models.Property]
}

// NewLedger resolves the id strategy name for every resource.
func NewLedger(backend storage.Backend, idStrategy string) (*Ledger, error) {
	ids := make(map[string]IDStrategy, len(models.Resources))
	for _, r := range models.Resources {
		s, err := StrategyFor(idStrategy, r)
		if err != nil {
			return nil, err
		}
		ids[r.Name] = s
	}

	return &Ledger{
		Income:     NewRecordService[models.Income](models.IncomeResource, backend, ids[models.IncomeResource.Name]),
		Expenses:   NewRecordService[models.Expense](models.ExpenseResource, backend, ids[models.ExpenseResource.Name]),
		Assets:     NewRecordService[models.Asset](models.AssetResource, backend, ids[models.AssetResource.Name]),
		Properties: NewRecordService[models.Property](models.PropertyResource, backend, ids[models.PropertyResource.Name]),
	}, nil
}

// EnsureExists creates every missing document.
func (l *Ledger) EnsureExists(ctx context.Context) error {
	for _, ensure := range []func(context.Context) error{
		l.Income.EnsureExists,
		l.Expenses.EnsureExists,
		l.Assets.EnsureExists,
		l.Properties.EnsureExists,
	} {
		if err := ensure(ctx); err != nil {
			return err
		}
	}
	return nil
}

// OnChange registers listener on all four services.
func (l *Ledger) OnChange(listener ChangeListener) {
	l.Income.OnChange(listener)
	l.Expenses.OnChange(listener)
	l.Assets.OnChange(listener)
	l.Properties.OnChange(listener)
}
