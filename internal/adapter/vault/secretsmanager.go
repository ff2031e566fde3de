// Package vault stores tokenized card values outside the database.
package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"payment-orchestrator/internal/core/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

// SecretsManagerAPI is the subset of the Secrets Manager client used here.
type SecretsManagerAPI interface {
	CreateSecret(ctx context.Context, params *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error)
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type cachedEntry struct {
	entry     ports.VaultEntry
	expiresAt time.Time
}

// SecretsManagerVault implements ports.TokenVault with one secret per token.
// Values are sealed before upload and cached in memory for cacheTTL.
type SecretsManagerVault struct {
	client   SecretsManagerAPI
	sealer   *Sealer
	prefix   string
	cacheTTL time.Duration

	mu    sync.RWMutex
	cache map[string]cachedEntry
	now   func() time.Time
}

func NewSecretsManagerVault(client SecretsManagerAPI, sealer *Sealer, prefix string, cacheTTL time.Duration) *SecretsManagerVault {
	return &SecretsManagerVault{
		client:   client,
		sealer:   sealer,
		prefix:   prefix,
		cacheTTL: cacheTTL,
		cache:    make(map[string]cachedEntry),
		now:      time.Now,
	}
}

func (v *SecretsManagerVault) Store(ctx context.Context, reference string, entry ports.VaultEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal vault entry: %w", err)
	}
	sealed, err := v.sealer.Seal(data, reference)
	if err != nil {
		return err
	}

	_, err = v.client.CreateSecret(ctx, &secretsmanager.CreateSecretInput{
		Name:         aws.String(v.prefix + reference),
		SecretString: aws.String(sealed),
	})
	if err != nil {
		return fmt.Errorf("failed to create secret %s: %w", reference, err)
	}

	v.remember(reference, entry)
	return nil
}

func (v *SecretsManagerVault) Load(ctx context.Context, reference string) (*ports.VaultEntry, error) {
	v.mu.RLock()
	c, ok := v.cache[reference]
	v.mu.RUnlock()
	if ok && v.now().Before(c.expiresAt) {
		entry := c.entry
		return &entry, nil
	}

	out, err := v.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(v.prefix + reference),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get secret %s: %w", reference, err)
	}
	if out.SecretString == nil {
		return nil, fmt.Errorf("secret %s has no string value", reference)
	}

	data, err := v.sealer.Open(*out.SecretString, reference)
	if err != nil {
		return nil, err
	}
	var entry ports.VaultEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("unmarshal vault entry: %w", err)
	}

	v.remember(reference, entry)
	return &entry, nil
}

func (v *SecretsManagerVault) remember(reference string, entry ports.VaultEntry) {
	if v.cacheTTL <= 0 {
		return
	}
	v.mu.Lock()
	v.cache[reference] = cachedEntry{entry: entry, expiresAt: v.now().Add(v.cacheTTL)}
	v.mu.Unlock()
}
