package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestEnsureExistsCreatesEmptyDocument(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	c := NewCollection[item](backend, "items.json", "items")

	if err := c.EnsureExists(ctx); err != nil {
		t.Fatalf("EnsureExists: %v", err)
	}
	data, err := backend.Load(ctx, "items.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := "{\n  \"items\": []\n}"; string(data) != want {
		t.Errorf("got %q, want %q", data, want)
	}
}

func TestEnsureExistsKeepsExistingDocument(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	original := []byte(`{"items": "not-an-array"}`)
	backend.Save(ctx, "items.json", original)

	c := NewCollection[item](backend, "items.json", "items")
	for i := 0; i < 2; i++ {
		if err := c.EnsureExists(ctx); err != nil {
			t.Fatalf("EnsureExists: %v", err)
		}
	}
	data, _ := backend.Load(ctx, "items.json")
	if string(data) != string(original) {
		t.Errorf("existing document was rewritten: %s", data)
	}
}

func TestReadMalformedIsEmpty(t *testing.T) {
	ctx := context.Background()
	for _, doc := range []string{
		`{"items": "not-an-array"}`,
		`{"other": []}`,
		`not json`,
	} {
		backend := NewMemoryBackend()
		backend.Save(ctx, "items.json", []byte(doc))
		c := NewCollection[item](backend, "items.json", "items")

		items, err := c.Read(ctx)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", doc, err)
		}
		if items == nil || len(items) != 0 {
			t.Errorf("%s: got %v, want empty", doc, items)
		}
	}
}

func TestUndecodableElementsSurviveWrites(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	backend.Save(ctx, "items.json", []byte(`{"items": [
		{"id": 1, "name": "car", "colour": "red"},
		{"id": "wrong type", "name": "bike"},
		7
	]}`))
	c := NewCollection[item](backend, "items.json", "items")

	items, err := c.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff([]item{{ID: 1, Name: "car"}}, items); diff != "" {
		t.Errorf("Read mismatch (-want +got):\n%s", diff)
	}

	err = c.Update(ctx, func(entries []Entry[item]) ([]Entry[item], error) {
		if len(entries) != 3 || !entries[0].OK || entries[1].OK || entries[2].OK {
			t.Errorf("unexpected entries: %+v", entries)
		}
		return append(entries, NewEntry(item{ID: 2, Name: "watch"})), nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	data, _ := backend.Load(ctx, "items.json")
	var doc struct {
		Items []interface{} `json:"items"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid document: %v", err)
	}
	want := []interface{}{
		map[string]interface{}{"id": float64(1), "name": "car", "colour": "red"},
		map[string]interface{}{"id": "wrong type", "name": "bike"},
		float64(7),
		map[string]interface{}{"id": float64(2), "name": "watch"},
	}
	if diff := cmp.Diff(want, doc.Items); diff != "" {
		t.Errorf("stored document mismatch (-want +got):\n%s", diff)
	}
}

type countingBackend struct {
	*MemoryBackend
	loads int
}

func (b *countingBackend) Load(ctx context.Context, name string) ([]byte, error) {
	b.loads++
	return b.MemoryBackend.Load(ctx, name)
}

func TestUpdateLoadsOnce(t *testing.T) {
	ctx := context.Background()
	backend := &countingBackend{MemoryBackend: NewMemoryBackend()}
	c := NewCollection[item](backend, "items.json", "items")

	for i := 0; i < 2; i++ {
		backend.loads = 0
		err := c.Update(ctx, func(entries []Entry[item]) ([]Entry[item], error) {
			return append(entries, NewEntry(item{ID: i})), nil
		})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if backend.loads != 1 {
			t.Errorf("update %d loaded the document %d times, want 1", i, backend.loads)
		}
	}

	backend.loads = 0
	c.Read(ctx)
	if backend.loads != 1 {
		t.Errorf("Read loaded the document %d times, want 1", backend.loads)
	}
}

func TestWriteThenRead(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[item](NewMemoryBackend(), "items.json", "items")

	want := []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	if err := c.Write(ctx, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := c.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteIndentsTwoSpaces(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	c := NewCollection[item](backend, "items.json", "items")

	if err := c.Write(ctx, []item{{ID: 1, Name: "a"}}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, _ := backend.Load(ctx, "items.json")
	want := "{\n  \"items\": [\n    {\n      \"id\": 1,\n      \"name\": \"a\"\n    }\n  ]\n}"
	if string(data) != want {
		t.Errorf("got\n%s\nwant\n%s", data, want)
	}
}

func TestUpdateErrorWritesNothing(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[item](NewMemoryBackend(), "items.json", "items")
	c.Write(ctx, []item{{ID: 1}})

	boom := errors.New("boom")
	err := c.Update(ctx, func(entries []Entry[item]) ([]Entry[item], error) {
		return append(entries, NewEntry(item{ID: 2})), boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want boom", err)
	}
	items, _ := c.Read(ctx)
	if len(items) != 1 {
		t.Errorf("got %d items, want 1", len(items))
	}
}

func TestConcurrentUpdatesAreSerialised(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[item](NewMemoryBackend(), "items.json", "items")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Update(ctx, func(entries []Entry[item]) ([]Entry[item], error) {
				return append(entries, NewEntry(item{ID: i})), nil
			})
		}(i)
	}
	wg.Wait()

	items, _ := c.Read(ctx)
	if len(items) != 50 {
		t.Errorf("got %d items, want 50", len(items))
	}
}

func TestFileBackendCreatesDirectory(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "public", "data")
	c := NewCollection[item](NewFileBackend(dir), "items.json", "items")

	if err := c.Write(ctx, []item{{ID: 1, Name: "a"}}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "items.json"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"name": "a"`) {
		t.Errorf("unexpected file content: %s", data)
	}
}

func TestFileBackendMissingDocument(t *testing.T) {
	_, err := NewFileBackend(t.TempDir()).Load(context.Background(), "missing.json")
	if !errors.Is(err, ErrNotExist) {
		t.Errorf("got %v, want ErrNotExist", err)
	}
}
