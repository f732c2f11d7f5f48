package config

import (
	"database/sql"
	"log"

	"github.com/tbanku/tbanku-api/storage"
	"github.com/tbanku/tbanku-api/utils"
)

// InitBackend builds the storage backend selected by cfg. The returned
// *sql.DB is nil unless the postgres driver is used; the caller closes it.
func InitBackend(cfg *Config) (storage.Backend, *sql.DB, error) {
	var (
		backend storage.Backend
		db      *sql.DB
	)

	switch cfg.StorageDriver {
	case DriverMemory:
		backend = storage.NewMemoryBackend()
		log.Println("⚠️ Using in-memory storage, data is lost on restart")
	case DriverPostgres:
		var err error
		db, err = InitDB(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := RunMigrations(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		backend = storage.NewPostgresBackend(db)
		log.Println("✅ Database connected successfully")
	default:
		backend = storage.NewFileBackend(cfg.DataDir)
		log.Printf("📁 Storing data in %s", cfg.DataDir)
	}

	if cfg.EncryptionKey != "" {
		backend = storage.NewEncryptedBackend(backend, cfg.EncryptionKey)
		utils.SafeInfo("🔐 Documents are encrypted at rest")
	}

	return backend, db, nil
}
