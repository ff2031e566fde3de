package vault

import (
	"context"
	"sync"

	"payment-orchestrator/internal/core/ports"
)

// MemoryVault keeps entries in process memory. Development only.
type MemoryVault struct {
	mu      sync.RWMutex
	entries map[string]ports.VaultEntry
}

func NewMemoryVault() *MemoryVault {
	return &MemoryVault{entries: make(map[string]ports.VaultEntry)}
}

func (v *MemoryVault) Store(_ context.Context, reference string, entry ports.VaultEntry) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries[reference] = entry
	return nil
}

func (v *MemoryVault) Load(_ context.Context, reference string) (*ports.VaultEntry, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	entry, ok := v.entries[reference]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}
