package config

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/tbanku/tbanku-api/storage"
)

// Runs against a real server: TEST_DATABASE_URL=postgres://... go test ./config
func TestPostgresBackend(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := InitDB(url)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer db.Close()
	if err := RunMigrations(db); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}

	ctx := context.Background()
	name := "test-" + t.Name() + ".json"
	defer db.Exec(`DELETE FROM documents WHERE name = $1`, name)

	backend := storage.NewPostgresBackend(db)
	if _, err := backend.Load(ctx, name); !errors.Is(err, storage.ErrNotExist) {
		t.Fatalf("got %v, want ErrNotExist", err)
	}

	for _, body := range []string{`{"incomes": []}`, `{"incomes": [{"id": 1}]}`} {
		if err := backend.Save(ctx, name, []byte(body)); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, err := backend.Load(ctx, name)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if string(got) != body {
			t.Errorf("got %s, want %s", got, body)
		}
	}
}
