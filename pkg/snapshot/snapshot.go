// Package snapshot persists the full ledger as an opaque serialized blob.
// The engine treats persistence as an external collaborator: it loads one
// snapshot at startup and writes the complete new state after every mutation.
package snapshot

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/noah-isme/acc-api/internal/models"
)

// Store is the persistence boundary. Load returns (nil, nil) when no snapshot
// has ever been written; Save replaces the stored snapshot wholesale.
type Store interface {
	Load(ctx context.Context) (*models.Ledger, error)
	Save(ctx context.Context, ledger models.Ledger) error
}

// Encode serializes a ledger for storage.
func Encode(ledger models.Ledger) ([]byte, error) {
	return json.Marshal(ledger)
}

// Decode deserializes a stored snapshot.
func Decode(data []byte) (*models.Ledger, error) {
	var ledger models.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, err
	}
	return &ledger, nil
}

// Memory is an in-process snapshot store used in tests and ephemeral runs.
type Memory struct {
	mu   sync.Mutex
	data []byte
}

// NewMemory returns an empty in-memory snapshot store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load implements Store.
func (m *Memory) Load(ctx context.Context) (*models.Ledger, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	return Decode(m.data)
}

// Save implements Store.
func (m *Memory) Save(ctx context.Context, ledger models.Ledger) error {
	data, err := Encode(ledger)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}
