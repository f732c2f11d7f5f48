package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tbanku/tbanku-api/models"
)

// IDStrategy hands out the identifier of a new record given the ids already
// in the collection. The result must differ from every existing id.
type IDStrategy interface {
	Next(existing []models.ID) models.ID
}

// SequentialIDs returns max(existing)+1, or 1 for an empty collection.
type SequentialIDs struct{}

func (SequentialIDs) Next(existing []models.ID) models.ID {
	var max int64
	for _, id := range existing {
		if n, ok := id.Int(); ok && n > max {
			max = n
		}
	}
	return models.IntID(max + 1)
}

// TimestampIDs returns the current Unix time in milliseconds as a string,
// bumped forward while it collides with an existing id.
type TimestampIDs struct {
	Now func() time.Time
}

func (s TimestampIDs) Next(existing []models.ID) models.ID {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	taken := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		taken[id.String()] = struct{}{}
	}
	ms := now().UnixMilli()
	for {
		candidate := strconv.FormatInt(ms, 10)
		if _, ok := taken[candidate]; !ok {
			return models.StringID(candidate)
		}
		ms++
	}
}

// UUIDs returns random version 4 UUID strings.
type UUIDs struct{}

func (UUIDs) Next(existing []models.ID) models.ID {
	return models.StringID(uuid.NewString())
}

const (
	StrategyLegacy     = "legacy"
	StrategySequential = "sequential"
	StrategyTimestamp  = "timestamp"
	StrategyUUID       = "uuid"
)

// StrategyFor resolves a configured strategy name for one resource. The
// legacy strategy keeps the schemes existing data files were written with:
// integers for income and assets, timestamps for expenses and properties.
func StrategyFor(name string, resource models.Resource) (IDStrategy, error) {
	switch name {
	case "", StrategyLegacy:
		switch resource.Name {
		case models.ExpenseResource.Name, models.PropertyResource.Name:
			return TimestampIDs{}, nil
		default:
			return SequentialIDs{}, nil
		}
	case StrategySequential:
		return SequentialIDs{}, nil
	case StrategyTimestamp:
		return TimestampIDs{}, nil
	case StrategyUUID:
		return UUIDs{}, nil
	}
	return nil, fmt.Errorf("unknown id strategy %q", name)
}
