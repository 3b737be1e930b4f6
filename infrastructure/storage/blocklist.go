//go:generate go run go.uber.org/mock/mockgen -source=blocklist.go -destination=../../mocks/mock_blocklist.go -package=mocks
package storage

import (
	"context"
	"fmt"

	"anonchat/errors"

	"github.com/redis/go-redis/v9"
)

type IBlocklist interface {
	Scan(ctx context.Context) ([]string, error)
}

// Blocklist is the server-maintained set of source addresses barred from
// sending. It is fetched in full before every send rather than cached,
// trading a round-trip for freshness.
type Blocklist struct {
	client *redis.Client
	key    string
}

func NewBlocklist(client *redis.Client) *Blocklist {
	return &Blocklist{client: client, key: "blocklist"}
}

func (b *Blocklist) Scan(ctx context.Context) ([]string, error) {
	members, err := b.client.SMembers(ctx, b.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return members, nil
}
