package storage

import (
	"context"
	"fmt"

	"github.com/tbanku/tbanku-api/utils"
)

// EncryptedBackend encrypts documents at rest before handing them to the
// wrapped backend. A document that cannot be decrypted is an error, never an
// empty collection, so a wrong key cannot lead to data being overwritten.
type EncryptedBackend struct {
	inner  Backend
	sealer *utils.Sealer
}

func NewEncryptedBackend(inner Backend, passphrase string) *EncryptedBackend {
	return &EncryptedBackend{inner: inner, sealer: utils.NewSealer(passphrase)}
}

func (b *EncryptedBackend) Load(ctx context.Context, name string) ([]byte, error) {
	data, err := b.inner.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	plain, err := b.sealer.Open(data)
	if err != nil {
		return nil, fmt.Errorf("decrypt %s: %w", name, err)
	}
	return plain, nil
}

func (b *EncryptedBackend) Save(ctx context.Context, name string, data []byte) error {
	sealed, err := b.sealer.Seal(data)
	if err != nil {
		return fmt.Errorf("encrypt %s: %w", name, err)
	}
	return b.inner.Save(ctx, name, sealed)
}
