package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/kr/text"
	"github.com/shopspring/decimal"

	"github.com/tbanku/tbanku-api/client"
	"github.com/tbanku/tbanku-api/models"
	"github.com/tbanku/tbanku-api/utils"
)

type globals struct {
	server   *string
	currency *string
}

func (g *globals) client() *client.Client { return client.New(*g.server) }

func (g *globals) money(v float64) string {
	return utils.FormatMoney(decimal.NewFromFloat(v), *g.currency)
}

func fail(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}

func resourceArg(f *flag.FlagSet) (models.Resource, error) {
	if f.NArg() < 1 {
		return models.Resource{}, fmt.Errorf("missing resource (income, expenses, assets, properties)")
	}
	r, ok := models.LookupResource(f.Arg(0))
	if !ok {
		return models.Resource{}, fmt.Errorf("unknown resource %q", f.Arg(0))
	}
	return r, nil
}

// ============================================================================
// list
// ============================================================================

type listCmd struct {
	*globals
	path    string
	rawJSON bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the records of a resource" }
func (*listCmd) Usage() string {
	return `list [-json] [-path <jsonpath>] <income|expenses|assets|properties>:
  Print every record. -path selects values with a JSONPath expression,
  e.g. -path '$[*].amount'.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "", "JSONPath expression applied to the record array")
	f.BoolVar(&c.rawJSON, "json", false, "print the records as JSON")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := resourceArg(f)
	if err != nil {
		return fail("%v", err)
	}

	if c.rawJSON || c.path != "" {
		raw, err := c.client().RawList(ctx, r.Name)
		if err != nil {
			return fail("%v", err)
		}
		if err := printJSON(os.Stdout, raw, c.path); err != nil {
			return fail("%v", err)
		}
		return subcommands.ExitSuccess
	}

	if err := c.printRecords(ctx, os.Stdout, r); err != nil {
		return fail("%v", err)
	}
	return subcommands.ExitSuccess
}

// printJSON pretty prints raw, or the values path selects from it.
func printJSON(w io.Writer, raw json.RawMessage, path string) error {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	if path != "" {
		selected, err := jsonpath.Get(path, v)
		if err != nil {
			return fmt.Errorf("jsonpath %q: %w", path, err)
		}
		v = selected
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *listCmd) printRecords(ctx context.Context, w io.Writer, r models.Resource) error {
	cl := c.client()
	switch r.Name {
	case models.IncomeResource.Name:
		items, err := cl.Income().GetAll(ctx)
		if err != nil {
			return err
		}
		for _, i := range items {
			writeRecord(w, i.ID, i.Date, c.money(i.Amount), i.Source, i.Description)
		}
	case models.ExpenseResource.Name:
		items, err := cl.Expenses().GetAll(ctx)
		if err != nil {
			return err
		}
		for _, e := range items {
			writeRecord(w, e.ID, e.Date, c.money(e.Amount), e.Category, e.Description)
		}
	case models.AssetResource.Name:
		items, err := cl.Assets().GetAll(ctx)
		if err != nil {
			return err
		}
		for _, a := range items {
			label := a.Name
			if a.Location != "" {
				label += " @ " + a.Location
			}
			writeRecord(w, a.ID, a.Date, c.money(a.CurrentValue), label, a.Description)
		}
	case models.PropertyResource.Name:
		items, err := cl.Properties().GetAll(ctx)
		if err != nil {
			return err
		}
		for _, p := range items {
			label := fmt.Sprintf("%s (%s over %.0f days)", p.Name, c.money(p.Value), p.UsedTime)
			writeRecord(w, p.ID, p.Date, c.money(p.Worth), label, p.Description)
		}
	}
	return nil
}

func writeRecord(w io.Writer, id models.ID, date, amount, label, description string) {
	fmt.Fprintf(w, "%-14s %-10s %14s  %s\n", id, date, amount, label)
	if description = strings.TrimSpace(description); description != "" {
		fmt.Fprintln(w, text.Indent(text.Wrap(description, 60), "    "))
	}
}

// ============================================================================
// delete
// ============================================================================

type deleteCmd struct{ *globals }

func (*deleteCmd) Name() string             { return "delete" }
func (*deleteCmd) Synopsis() string         { return "delete a record by id" }
func (*deleteCmd) Usage() string            { return "delete <resource> <id>:\n  Delete one record.\n" }
func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := resourceArg(f)
	if err != nil {
		return fail("%v", err)
	}
	if f.NArg() < 2 {
		return fail("missing id")
	}
	id := models.ParseID(f.Arg(1))

	cl := c.client()
	switch r.Name {
	case models.IncomeResource.Name:
		err = cl.Income().Delete(ctx, id)
	case models.ExpenseResource.Name:
		err = cl.Expenses().Delete(ctx, id)
	case models.AssetResource.Name:
		err = cl.Assets().Delete(ctx, id)
	case models.PropertyResource.Name:
		err = cl.Properties().Delete(ctx, id)
	}
	if err != nil {
		return fail("%v", err)
	}
	fmt.Printf("deleted %s %s\n", r.Name, id)
	return subcommands.ExitSuccess
}

// ============================================================================
// summary
// ============================================================================

type summaryCmd struct {
	*globals
	plain bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show dashboard totals" }
func (*summaryCmd) Usage() string    { return "summary [-plain]:\n  Print income, expense, asset and property totals.\n" }

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "print markdown without terminal styling")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := c.client().Summary(ctx)
	if err != nil {
		return fail("%v", err)
	}

	md := summaryMarkdown(s)
	if c.plain {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		return fail("%v", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fail("%v", err)
	}
	fmt.Print(out)
	return subcommands.ExitSuccess
}

func summaryMarkdown(s *models.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# TbankU summary (%s)\n\n", s.Currency)
	b.WriteString("| Total | Amount |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Income | %s |\n", s.Formatted.TotalIncome)
	fmt.Fprintf(&b, "| Expenses | %s |\n", s.Formatted.TotalExpenses)
	fmt.Fprintf(&b, "| Assets | %s |\n", s.Formatted.TotalAssets)
	fmt.Fprintf(&b, "| Properties | %s |\n", s.Formatted.TotalProperties)
	fmt.Fprintf(&b, "| **Money** | **%s** |\n", s.Formatted.TotalMoney)
	return b.String()
}
