package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/tbanku/tbanku-api/client"
	"github.com/tbanku/tbanku-api/models"
)

func today() string { return time.Now().Format("2006-01-02") }

type addIncomeCmd struct {
	*globals
	amount      float64
	source      string
	date        string
	description string
}

func (*addIncomeCmd) Name() string     { return "add-income" }
func (*addIncomeCmd) Synopsis() string { return "record an income" }
func (*addIncomeCmd) Usage() string {
	return "add-income -amount <n> -source <s> [-date YYYY-MM-DD] [-description <d>]\n"
}

func (c *addIncomeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "amount received")
	f.StringVar(&c.source, "source", "", "where the money came from")
	f.StringVar(&c.date, "date", today(), "date received")
	f.StringVar(&c.description, "description", "", "free text")
}

func (c *addIncomeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.source == "" {
		return fail("-source is required")
	}
	created, err := c.client().Income().Add(ctx, models.Income{
		Amount:      c.amount,
		Source:      c.source,
		Date:        c.date,
		Description: c.description,
	})
	if err != nil {
		return fail("%v", err)
	}
	fmt.Printf("added income %s: %s from %s\n", created.ID, c.money(created.Amount), created.Source)
	return subcommands.ExitSuccess
}

type addExpenseCmd struct {
	*globals
	amount      float64
	category    string
	date        string
	description string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record an expense" }
func (*addExpenseCmd) Usage() string {
	return "add-expense -amount <n> -category <c> [-date YYYY-MM-DD] [-description <d>]\n"
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "amount spent")
	f.StringVar(&c.category, "category", "", "expense category")
	f.StringVar(&c.date, "date", today(), "date spent")
	f.StringVar(&c.description, "description", "", "free text")
}

func (c *addExpenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" {
		return fail("-category is required")
	}
	created, err := c.client().Expenses().Add(ctx, models.Expense{
		Amount:      c.amount,
		Category:    c.category,
		Date:        c.date,
		Description: c.description,
	})
	if err != nil {
		return fail("%v", err)
	}
	fmt.Printf("added expense %s: %s on %s\n", created.ID, c.money(created.Amount), created.Category)
	return subcommands.ExitSuccess
}

type addAssetCmd struct {
	*globals
	name        string
	original    float64
	current     float64
	date        string
	location    string
	description string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "record an asset" }
func (*addAssetCmd) Usage() string {
	return "add-asset -name <n> -original <v> -current <v> [-date YYYY-MM-DD] [-location <l>] [-description <d>]\n"
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "asset name")
	f.Float64Var(&c.original, "original", 0, "purchase value")
	f.Float64Var(&c.current, "current", 0, "current value")
	f.StringVar(&c.date, "date", today(), "acquisition date")
	f.StringVar(&c.location, "location", "", "where the asset is kept")
	f.StringVar(&c.description, "description", "", "free text")
}

func (c *addAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail("-name is required")
	}
	created, err := c.client().Assets().Add(ctx, models.Asset{
		Name:          c.name,
		OriginalValue: c.original,
		CurrentValue:  c.current,
		Date:          c.date,
		Location:      c.location,
		Description:   c.description,
	})
	if err != nil {
		return fail("%v", err)
	}
	fmt.Printf("added asset %s: %s worth %s\n", created.ID, created.Name, c.money(created.CurrentValue))
	return subcommands.ExitSuccess
}

type addPropertyCmd struct {
	*globals
	name        string
	value       float64
	date        string
	description string
}

func (*addPropertyCmd) Name() string     { return "add-property" }
func (*addPropertyCmd) Synopsis() string { return "record a depreciating property" }
func (*addPropertyCmd) Usage() string {
	return `add-property -name <n> -value <v> -date YYYY-MM-DD [-description <d>]:
  Used time and daily worth are derived from the purchase date.
`
}

func (c *addPropertyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "property name")
	f.Float64Var(&c.value, "value", 0, "purchase price")
	f.StringVar(&c.date, "date", today(), "purchase date")
	f.StringVar(&c.description, "description", "", "free text")
}

func (c *addPropertyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail("-name is required")
	}
	p, err := client.NewProperty(c.name, c.value, c.date, c.description, time.Now())
	if err != nil {
		return fail("invalid -date: %v", err)
	}
	created, err := c.client().Properties().Add(ctx, p)
	if err != nil {
		return fail("%v", err)
	}
	fmt.Printf("added property %s: %s, %s per day over %.0f days\n",
		created.ID, created.Name, c.money(created.Worth), created.UsedTime)
	return subcommands.ExitSuccess
}
