package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/tbanku/tbanku-api/migration"
	"github.com/tbanku/tbanku-api/models"
	"github.com/tbanku/tbanku-api/services"
	"github.com/tbanku/tbanku-api/storage"
)

// migrateIDsCmd works on the data files directly; stop the server first.
type migrateIDsCmd struct {
	dataDir  string
	resource string
	strategy string
	key      string
}

func (*migrateIDsCmd) Name() string     { return "migrate-ids" }
func (*migrateIDsCmd) Synopsis() string { return "rewrite record ids with another id strategy" }
func (*migrateIDsCmd) Usage() string {
	return `migrate-ids [-data-dir dir] [-resource name] [-strategy name] [-key passphrase]:
  Reassign the id of every record in the data files. Run it while the
  server is stopped.
`
}

func (c *migrateIDsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dataDir, "data-dir", "public/data", "directory holding the JSON documents")
	f.StringVar(&c.resource, "resource", "", "only migrate this resource (default: all)")
	f.StringVar(&c.strategy, "strategy", services.StrategySequential, "legacy, sequential, timestamp or uuid")
	f.StringVar(&c.key, "key", "", "DATA_ENCRYPTION_KEY the documents are encrypted with")
}

func (c *migrateIDsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var backend storage.Backend = storage.NewFileBackend(c.dataDir)
	if c.key != "" {
		backend = storage.NewEncryptedBackend(backend, c.key)
	}

	if c.resource == "" {
		if err := migration.NormalizeAll(ctx, backend, c.strategy); err != nil {
			return fail("%v", err)
		}
		return subcommands.ExitSuccess
	}

	r, ok := models.LookupResource(c.resource)
	if !ok {
		return fail("unknown resource %q", c.resource)
	}
	strategy, err := services.StrategyFor(c.strategy, r)
	if err != nil {
		return fail("%v", err)
	}
	n, err := migration.NormalizeIDs(ctx, backend, r, strategy)
	if err != nil {
		return fail("%v", err)
	}
	fmt.Printf("%d %s records rewritten\n", n, r.Name)
	return subcommands.ExitSuccess
}
