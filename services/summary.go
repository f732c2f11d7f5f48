package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tbanku/tbanku-api/models"
	"github.com/tbanku/tbanku-api/utils"
)

type SummaryService struct {
	ledger   *Ledger
	currency string
}

func NewSummaryService(ledger *Ledger, currency string) *SummaryService {
	return &SummaryService{ledger: ledger, currency: currency}
}

// Summary reads all four collections and aggregates them.
func (s *SummaryService) Summary(ctx context.Context) (*models.Summary, error) {
	incomes, err := s.ledger.Income.List(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.ledger.Expenses.List(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := s.ledger.Assets.List(ctx)
	if err != nil {
		return nil, err
	}
	properties, err := s.ledger.Properties.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := ComputeSummary(incomes, expenses, assets, properties, s.currency)
	utils.SafeDebug("📊 Summary computed, total money %s", utils.MaskAmount(summary.TotalMoney))
	return &summary, nil
}

// ComputeSummary totals income amounts, expense amounts, asset current values
// and property worth. TotalMoney = income - expenses + assets + properties.
// Sums are computed in decimal so that e.g. 0.1 + 0.2 totals exactly 0.3.
func ComputeSummary(incomes []models.Income, expenses []models.Expense, assets []models.Asset, properties []models.Property, currency string) models.Summary {
	var totalIncome, totalExpenses, totalAssets, totalProperties decimal.Decimal

	for _, i := range incomes {
		totalIncome = totalIncome.Add(decimal.NewFromFloat(i.Amount))
	}
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(decimal.NewFromFloat(e.Amount))
	}
	for _, a := range assets {
		totalAssets = totalAssets.Add(decimal.NewFromFloat(a.CurrentValue))
	}
	for _, p := range properties {
		totalProperties = totalProperties.Add(decimal.NewFromFloat(p.Worth))
	}
	totalMoney := totalIncome.Sub(totalExpenses).Add(totalAssets).Add(totalProperties)

	return models.Summary{
		TotalIncome:     totalIncome.InexactFloat64(),
		TotalExpenses:   totalExpenses.InexactFloat64(),
		TotalAssets:     totalAssets.InexactFloat64(),
		TotalProperties: totalProperties.InexactFloat64(),
		TotalMoney:      totalMoney.InexactFloat64(),
		Currency:        currency,
		Formatted: models.SummaryDisplay{
			TotalIncome:     utils.FormatMoney(totalIncome, currency),
			TotalExpenses:   utils.FormatMoney(totalExpenses, currency),
			TotalAssets:     utils.FormatMoney(totalAssets, currency),
			TotalProperties: utils.FormatMoney(totalProperties, currency),
			TotalMoney:      utils.FormatMoney(totalMoney, currency),
		},
	}
}
