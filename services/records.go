package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tbanku/tbanku-api/models"
	"github.com/tbanku/tbanku-api/storage"
	"github.com/tbanku/tbanku-api/utils"
)

var ErrNotFound = errors.New("record not found")

// ChangeEvent is emitted after a mutation has been persisted.
type ChangeEvent struct {
	Resource string
	Action   string // "created", "updated" or "deleted"
	ID       models.ID
}

type ChangeListener func(ChangeEvent)

// RecordService implements the list / create / replace / delete cycle of one
// resource on top of its collection document.
type RecordService[T models.Record[T]] struct {
	resource   models.Resource
	collection *storage.Collection[T]
	ids        IDStrategy
	listeners  []ChangeListener
}

func NewRecordService[T models.Record[T]](resource models.Resource, backend storage.Backend, ids IDStrategy) *RecordService[T] {
	return &RecordService[T]{
		resource:   resource,
		collection: storage.NewCollection[T](backend, resource.File, resource.Collection),
		ids:        ids,
	}
}

func (s *RecordService[T]) Resource() models.Resource { return s.resource }

// OnChange registers a listener. Not safe to call once requests are served.
func (s *RecordService[T]) OnChange(l ChangeListener) {
	s.listeners = append(s.listeners, l)
}

// EnsureExists creates the backing document if needed.
func (s *RecordService[T]) EnsureExists(ctx context.Context) error {
	return s.collection.EnsureExists(ctx)
}

// List returns every record of the collection.
func (s *RecordService[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.collection.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.resource.Name, err)
	}
	return items, nil
}

// Create assigns a fresh identifier to record and appends it. Identifiers
// of stored elements that do not decode still count as taken.
func (s *RecordService[T]) Create(ctx context.Context, record T) (T, error) {
	var created T
	err := s.collection.Update(ctx, func(entries []storage.Entry[T]) ([]storage.Entry[T], error) {
		existing := make([]models.ID, 0, len(entries))
		for _, e := range entries {
			if id, ok := entryID(e); ok {
				existing = append(existing, id)
			}
		}
		created = record.WithID(s.ids.Next(existing))
		return append(entries, storage.NewEntry(created)), nil
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("create %s: %w", s.resource.Name, err)
	}

	s.emit("created", created.RecordID())
	return created, nil
}

// Replace overwrites the stored record that has the same identifier. It
// returns ErrNotFound, and writes nothing, when there is no such record.
func (s *RecordService[T]) Replace(ctx context.Context, record T) (T, error) {
	var replaced T
	err := s.collection.Update(ctx, func(entries []storage.Entry[T]) ([]storage.Entry[T], error) {
		for i, e := range entries {
			if e.OK && e.Value.RecordID().Equal(record.RecordID()) {
				replaced = record.WithID(e.Value.RecordID())
				entries[i] = storage.NewEntry(replaced)
				return entries, nil
			}
		}
		return nil, ErrNotFound
	})
	if errors.Is(err, ErrNotFound) {
		var zero T
		return zero, err
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("update %s: %w", s.resource.Name, err)
	}

	s.emit("updated", replaced.RecordID())
	return replaced, nil
}

// Delete removes the record with the given identifier. Deleting an unknown
// identifier is not an error and emits no change.
func (s *RecordService[T]) Delete(ctx context.Context, id models.ID) error {
	var removed bool
	err := s.collection.Update(ctx, func(entries []storage.Entry[T]) ([]storage.Entry[T], error) {
		kept := entries[:0]
		for _, e := range entries {
			if e.OK && e.Value.RecordID().Equal(id) {
				continue
			}
			kept = append(kept, e)
		}
		removed = len(kept) < len(entries)
		return kept, nil
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.resource.Name, err)
	}

	if removed {
		s.emit("deleted", id)
	}
	return nil
}

// entryID returns the identifier of a stored element, reading it straight
// from the raw JSON when the element does not decode.
func entryID[T models.Record[T]](e storage.Entry[T]) (models.ID, bool) {
	if e.OK {
		return e.Value.RecordID(), !e.Value.RecordID().IsZero()
	}
	var stored struct {
		ID models.ID `json:"id"`
	}
	if err := json.Unmarshal(e.Raw, &stored); err != nil || stored.ID.IsZero() {
		return models.ID{}, false
	}
	return stored.ID, true
}

func (s *RecordService[T]) emit(action string, id models.ID) {
	utils.LogRecordAction(action, s.resource.Name, id.String())
	event := ChangeEvent{Resource: s.resource.Name, Action: action, ID: id}
	for _, l := range s.listeners {
		l(event)
	}
}
