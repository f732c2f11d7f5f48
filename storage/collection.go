package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tbanku/tbanku-api/utils"
)

// Entry is one element of a stored collection. Raw holds the element as it
// was read and is written back verbatim, unknown fields included, until the
// entry is replaced. OK reports whether Raw decoded into Value.
type Entry[T any] struct {
	Value T
	Raw   json.RawMessage
	OK    bool
}

// NewEntry wraps a value to be encoded on the next write.
func NewEntry[T any](v T) Entry[T] {
	return Entry[T]{Value: v, OK: true}
}

// Collection persists one array of records as the document
// { "<key>": [ ... ] }. Every write rewrites the whole document.
//
// Writers inside one process are serialised by mu. Separate processes
// sharing the same backend can still overwrite each other's updates.
type Collection[T any] struct {
	backend Backend
	name    string
	key     string
	mu      sync.Mutex
}

// NewCollection stores the document called name in backend, keyed by key.
func NewCollection[T any](backend Backend, name, key string) *Collection[T] {
	return &Collection[T]{backend: backend, name: name, key: key}
}

func (c *Collection[T]) Name() string { return c.name }

func (c *Collection[T]) Key() string { return c.key }

// EnsureExists creates the document with an empty collection when it is
// missing. An existing document is never touched, even if malformed.
func (c *Collection[T]) EnsureExists(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.load(ctx)
	return err
}

// Read returns the records that decode into T. A document that does not
// parse, or whose key does not hold an array, reads as an empty collection.
func (c *Collection[T]) Read(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	items := []T{}
	for _, e := range entries {
		if e.OK {
			items = append(items, e.Value)
		}
	}
	return items, nil
}

// Write replaces the stored collection.
func (c *Collection[T]) Write(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]Entry[T], len(items))
	for i, item := range items {
		entries[i] = NewEntry(item)
	}
	return c.save(ctx, entries)
}

// Update runs a read-modify-write cycle while holding the collection lock.
// fn sees every element, including those that do not decode into T; entries
// it returns unchanged keep their stored bytes. Nothing is written when fn
// returns an error.
func (c *Collection[T]) Update(ctx context.Context, fn func([]Entry[T]) ([]Entry[T], error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load(ctx)
	if err != nil {
		return err
	}
	entries, err = fn(entries)
	if err != nil {
		return err
	}
	return c.save(ctx, entries)
}

// load reads the document once, creating it when missing.
func (c *Collection[T]) load(ctx context.Context) ([]Entry[T], error) {
	data, err := c.backend.Load(ctx, c.name)
	if errors.Is(err, ErrNotExist) {
		return []Entry[T]{}, c.save(ctx, nil)
	}
	if err != nil {
		return nil, err
	}

	entries, err := decode[T](data, c.key)
	if err != nil {
		utils.SafeWarn("⚠️ %s is malformed, reading it as empty: %v", c.name, err)
		return []Entry[T]{}, nil
	}
	return entries, nil
}

func (c *Collection[T]) save(ctx context.Context, entries []Entry[T]) error {
	data, err := encode(entries, c.key)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := c.backend.Save(ctx, c.name, data); err != nil {
		return err
	}
	utils.SafeDebug("💾 %s saved (%d records)", c.name, len(entries))
	return nil
}

func encode[T any](entries []Entry[T], key string) ([]byte, error) {
	elems := make([]json.RawMessage, len(entries))
	for i, e := range entries {
		if e.Raw != nil {
			elems[i] = e.Raw
			continue
		}
		b, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		elems[i] = b
	}
	return json.MarshalIndent(map[string][]json.RawMessage{key: elems}, "", "  ")
}

// decode fails only when the document is not an object holding an array
// under key. Elements are decoded one by one; one that does not fit T is
// kept as raw JSON with OK unset.
func decode[T any](data []byte, key string) ([]Entry[T], error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	raw, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("missing %q", key)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%q is not an array", key)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, err
	}
	entries := make([]Entry[T], len(elems))
	for i, elem := range elems {
		entries[i].Raw = elem
		if err := json.Unmarshal(elem, &entries[i].Value); err != nil {
			var zero T
			entries[i].Value = zero
			utils.SafeWarn("⚠️ %s[%d] does not decode, keeping it untouched: %v", key, i, err)
			continue
		}
		entries[i].OK = true
	}
	return entries, nil
}
