//go:generate go run go.uber.org/mock/mockgen -source=message_collection.go -destination=../../mocks/mock_message_collection.go -package=mocks
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"anonchat/contract"
	"anonchat/domain"
	"anonchat/errors"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
)

type IMessageCollection interface {
	Append(ctx context.Context, message domain.Message) error
	Scan(ctx context.Context) ([]domain.Message, error)
	Subscribe(ctx context.Context, sink contract.SnapshotSink) (contract.Unsubscribe, error)
}

// MessageCollection is the append-only shared message stream, backed by a
// Redis sorted set scored by CreatedAt. Ordering comes from the score;
// equal timestamps fall back to the member encoding, which starts with the
// message id, so ties are broken deterministically by the store.
type MessageCollection struct {
	client  *redis.Client
	log     *slog.Logger
	key     string
	channel string
}

func NewMessageCollection(client *redis.Client, log *slog.Logger) *MessageCollection {
	return &MessageCollection{
		client:  client,
		log:     log,
		key:     "chat:messages",
		channel: "chat:messages:changed",
	}
}

// Append stores a message and notifies subscribers. Clients only ever
// append; nothing in this module mutates or deletes stored messages.
func (c *MessageCollection) Append(ctx context.Context, message domain.Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	member := redis.Z{
		Score:  float64(message.CreatedAt.UnixNano()),
		Member: string(data),
	}
	if err := c.client.ZAdd(ctx, c.key, member).Err(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	if err := c.client.Publish(ctx, c.channel, message.ID.String()).Err(); err != nil {
		// The write landed; subscribers will still converge on their next scan.
		c.log.Warn("Change notification failed", "err", err)
	}
	return nil
}

// Scan returns the full history ordered by CreatedAt ascending.
func (c *MessageCollection) Scan(ctx context.Context) ([]domain.Message, error) {
	raw, err := c.client.ZRange(ctx, c.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	messages := make([]domain.Message, 0, len(raw))
	for _, entry := range raw {
		var message domain.Message
		if err := json.Unmarshal([]byte(entry), &message); err != nil {
			return nil, fmt.Errorf("unmarshal failed: %w", err)
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// Subscribe delivers the current full snapshot immediately, then a fresh
// snapshot after every change notification. The returned Unsubscribe is
// idempotent; calling it more than once is safe.
func (c *MessageCollection) Subscribe(ctx context.Context, sink contract.SnapshotSink) (contract.Unsubscribe, error) {
	pubsub := c.client.Subscribe(ctx, c.channel)

	// Force the subscription to be established before the initial scan so
	// no change can slip between the two.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}

	if err := c.deliver(ctx, sink); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		notifications := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case _, ok := <-notifications:
				if !ok {
					return
				}
				if err := c.deliver(ctx, sink); err != nil {
					c.log.Warn("Snapshot delivery failed", "err", err)
				}
			}
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			close(done)
			_ = pubsub.Close()
		})
	}
	return unsubscribe, nil
}

func (c *MessageCollection) deliver(ctx context.Context, sink contract.SnapshotSink) error {
	snapshot, err := c.Scan(ctx)
	if err != nil {
		return err
	}
	return sink.Consume(ctx, snapshot)
}

// LatestSenders reports the distinct display names present in a snapshot,
// newest first. Used by the viewer binary for its roster column.
func LatestSenders(snapshot []domain.Message) []string {
	reversed := lo.Reverse(lo.Map(snapshot, func(m domain.Message, _ int) string {
		return m.Sender.DisplayName
	}))
	return lo.Uniq(reversed)
}
