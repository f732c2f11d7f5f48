package services

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tbanku/tbanku-api/models"
)

type ExportService struct {
	ledger  *Ledger
	summary *SummaryService
}

func NewExportService(ledger *Ledger, summary *SummaryService) *ExportService {
	return &ExportService{ledger: ledger, summary: summary}
}

type sheet struct {
	name   string
	header []interface{}
	rows   [][]interface{}
}

// WriteWorkbook writes an xlsx workbook with one sheet per resource followed
// by a Summary sheet.
func (s *ExportService) WriteWorkbook(ctx context.Context, w io.Writer) error {
	sheets, err := s.sheets(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", sh.name, err)
		}

		if err := f.SetSheetRow(sh.name, "A1", &sh.header); err != nil {
			return fmt.Errorf("write %s header: %w", sh.name, err)
		}
		for r, row := range sh.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			row := row
			if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
				return fmt.Errorf("write %s row %d: %w", sh.name, r+2, err)
			}
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func (s *ExportService) sheets(ctx context.Context) ([]sheet, error) {
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
	summary, err := s.summary.Summary(ctx)
	if err != nil {
		return nil, err
	}

	incomeSheet := sheet{name: "Income", header: []interface{}{"ID", "Amount", "Source", "Date", "Description"}}
	for _, i := range incomes {
		incomeSheet.rows = append(incomeSheet.rows, []interface{}{i.ID.String(), i.Amount, i.Source, i.Date, i.Description})
	}

	expenseSheet := sheet{name: "Expenses", header: []interface{}{"ID", "Amount", "Category", "Date", "Description"}}
	for _, e := range expenses {
		expenseSheet.rows = append(expenseSheet.rows, []interface{}{e.ID.String(), e.Amount, e.Category, e.Date, e.Description})
	}

	assetSheet := sheet{name: "Assets", header: []interface{}{"ID", "Name", "Original Value", "Current Value", "Date", "Location", "Description"}}
	for _, a := range assets {
		assetSheet.rows = append(assetSheet.rows, []interface{}{a.ID.String(), a.Name, a.OriginalValue, a.CurrentValue, a.Date, a.Location, a.Description})
	}

	propertySheet := sheet{name: "Properties", header: []interface{}{"ID", "Name", "Value", "Date", "Used Days", "Worth", "Description"}}
	for _, p := range properties {
		propertySheet.rows = append(propertySheet.rows, []interface{}{p.ID.String(), p.Name, p.Value, p.Date, p.UsedTime, p.Worth, p.Description})
	}

	summarySheet := summaryRows(summary)

	return []sheet{incomeSheet, expenseSheet, assetSheet, propertySheet, summarySheet}, nil
}

func summaryRows(s *models.Summary) sheet {
	return sheet{
		name:   "Summary",
		header: []interface{}{"Total", "Amount", "Formatted"},
		rows: [][]interface{}{
			{"Income", s.TotalIncome, s.Formatted.TotalIncome},
			{"Expenses", s.TotalExpenses, s.Formatted.TotalExpenses},
			{"Assets", s.TotalAssets, s.Formatted.TotalAssets},
			{"Properties", s.TotalProperties, s.Formatted.TotalProperties},
			{"Money", s.TotalMoney, s.Formatted.TotalMoney},
		},
	}
}
