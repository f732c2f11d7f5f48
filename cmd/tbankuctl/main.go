// Command tbankuctl manages TbankU records through the REST API.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	server := flag.String("server", "http://localhost:8080", "base URL of the TbankU API")
	currency := flag.String("currency", "USD", "currency used to display amounts")

	g := &globals{server: server, currency: currency}

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&listCmd{globals: g}, "records")
	commander.Register(&deleteCmd{globals: g}, "records")
	commander.Register(&addIncomeCmd{globals: g}, "records")
	commander.Register(&addExpenseCmd{globals: g}, "records")
	commander.Register(&addAssetCmd{globals: g}, "records")
	commander.Register(&addPropertyCmd{globals: g}, "records")
	commander.Register(&summaryCmd{globals: g}, "reports")
	commander.Register(&migrateIDsCmd{}, "maintenance")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
