//go:generate go run go.uber.org/mock/mockgen -source=name_directory.go -destination=../../mocks/mock_name_directory.go -package=mocks
package storage

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"anonchat/domain"
	"anonchat/errors"

	"github.com/redis/go-redis/v9"
)

type INameDirectory interface {
	Get(ctx context.Context, displayName string) (domain.NameDirectoryEntry, bool, error)
	Put(ctx context.Context, entry domain.NameDirectoryEntry) error
	Scan(ctx context.Context) ([]domain.NameDirectoryEntry, error)
}

// NameDirectory is the shared uniqueness registry mapping display names to
// the source address that claimed them. One key per name.
type NameDirectory struct {
	client *redis.Client
	prefix string
}

func NewNameDirectory(client *redis.Client) *NameDirectory {
	return &NameDirectory{client: client, prefix: "usernames:"}
}

func (d *NameDirectory) Get(ctx context.Context, displayName string) (domain.NameDirectoryEntry, bool, error) {
	raw, err := d.client.Get(ctx, d.prefix+displayName).Result()
	if stderrors.Is(err, redis.Nil) {
		return domain.NameDirectoryEntry{}, false, nil
	}
	if err != nil {
		return domain.NameDirectoryEntry{}, false, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	var entry domain.NameDirectoryEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return domain.NameDirectoryEntry{}, false, fmt.Errorf("unmarshal failed: %w", err)
	}
	return entry, true, nil
}

// Put writes the claim row for a name. Last write wins: the uniqueness
// check is read-then-write by design, so two clients racing on the same
// name let the store decide the final owner.
func (d *NameDirectory) Put(ctx context.Context, entry domain.NameDirectoryEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	if err := d.client.Set(ctx, d.prefix+entry.DisplayName, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return nil
}

// Scan walks every registered name. Used for diagnostics and tests;
// registration itself only needs the point read.
func (d *NameDirectory) Scan(ctx context.Context) ([]domain.NameDirectoryEntry, error) {
	var entries []domain.NameDirectoryEntry
	iter := d.client.Scan(ctx, 0, d.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		raw, err := d.client.Get(ctx, iter.Val()).Result()
		if stderrors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
		}
		var entry domain.NameDirectoryEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("unmarshal failed: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return entries, nil
}
