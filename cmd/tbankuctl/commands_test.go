package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tbanku/tbanku-api/models"
)

func TestPrintJSONPath(t *testing.T) {
	raw := json.RawMessage(`[{"id":1,"amount":5000},{"id":2,"amount":200}]`)

	var buf bytes.Buffer
	if err := printJSON(&buf, raw, "$[*].amount"); err != nil {
		t.Fatalf("printJSON: %v", err)
	}
	var got []float64
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid output %q: %v", buf.String(), err)
	}
	if len(got) != 2 || got[0] != 5000 || got[1] != 200 {
		t.Errorf("got %v", got)
	}

	if err := printJSON(&buf, raw, "$[*"); err == nil {
		t.Error("invalid path should fail")
	}
}

func TestWriteRecordWrapsDescription(t *testing.T) {
	var buf bytes.Buffer
	long := strings.Repeat("groceries and household items ", 5)
	writeRecord(&buf, models.IntID(3), "2024-01-05", "$45.50", "Food", long)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected a wrapped description, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "3 ") || !strings.Contains(lines[0], "$45.50") {
		t.Errorf("header line %q", lines[0])
	}
	for _, l := range lines[1:] {
		if !strings.HasPrefix(l, "    ") {
			t.Errorf("description line not indented: %q", l)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	md := summaryMarkdown(&models.Summary{
		Currency: "USD",
		Formatted: models.SummaryDisplay{
			TotalIncome: "$10.00", TotalExpenses: "$2.00", TotalAssets: "$0.00",
			TotalProperties: "$0.00", TotalMoney: "$8.00",
		},
	})
	for _, want := range []string{"# TbankU summary (USD)", "| Income | $10.00 |", "| **Money** | **$8.00** |"} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in\n%s", want, md)
		}
	}
}
