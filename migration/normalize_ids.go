// migration/normalize_ids.go
// Rewrites the identifiers of a collection with another id strategy, e.g.
// after switching ID_STRATEGY from "legacy" to "uuid". Record order and all
// other fields are preserved.
//
// USAGE: tbankuctl migrate-ids -data-dir public/data -resource expenses -strategy sequential

package migration

import (
	"context"
	"fmt"
	"log"

	"github.com/tbanku/tbanku-api/models"
	"github.com/tbanku/tbanku-api/services"
	"github.com/tbanku/tbanku-api/storage"
)

// NormalizeIDs assigns a fresh id from strategy to every record of resource
// and returns how many records were rewritten. Records are handled as plain
// JSON objects so that fields unknown to the models survive.
func NormalizeIDs(ctx context.Context, backend storage.Backend, resource models.Resource, strategy services.IDStrategy) (int, error) {
	collection := storage.NewCollection[map[string]interface{}](backend, resource.File, resource.Collection)

	log.Printf("🚀 Normalising ids of %s (%s)", resource.Name, resource.File)

	var count int
	err := collection.Update(ctx, func(entries []storage.Entry[map[string]interface{}]) ([]storage.Entry[map[string]interface{}], error) {
		assigned := make([]models.ID, 0, len(entries))
		for i, e := range entries {
			if !e.OK || e.Value == nil {
				return nil, fmt.Errorf("record %d is not an object", i)
			}
			id := strategy.Next(assigned)
			assigned = append(assigned, id)

			log.Printf("  %v -> %s", e.Value["id"], id)
			e.Value["id"] = id
			entries[i] = storage.NewEntry(e.Value)
		}
		count = len(entries)
		return entries, nil
	})
	if err != nil {
		return 0, fmt.Errorf("normalise %s ids: %w", resource.Name, err)
	}

	log.Printf("✅ %d records rewritten", count)
	return count, nil
}

// NormalizeAll runs NormalizeIDs on every resource with the strategy that
// the given ID_STRATEGY name selects for it.
func NormalizeAll(ctx context.Context, backend storage.Backend, strategyName string) error {
	var failed int
	for _, r := range models.Resources {
		strategy, err := services.StrategyFor(strategyName, r)
		if err != nil {
			return err
		}
		if _, err := NormalizeIDs(ctx, backend, r, strategy); err != nil {
			log.Printf("  ❌ Error: %v", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d collections failed to migrate", failed)
	}
	return nil
}
