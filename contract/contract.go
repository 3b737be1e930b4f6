//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"anonchat/domain"
	"context"
)

// SnapshotSink receives the full ordered message history every time the
// backing collection changes. Each delivery supersedes the previous one.
type SnapshotSink interface {
	Consume(ctx context.Context, snapshot []domain.Message) error
}

// SnapshotFunc adapts a plain function to a SnapshotSink.
type SnapshotFunc func(ctx context.Context, snapshot []domain.Message) error

func (f SnapshotFunc) Consume(ctx context.Context, snapshot []domain.Message) error {
	return f(ctx, snapshot)
}

// Unsubscribe tears down a live subscription.
// Implementations must be idempotent and safe to call multiple times.
type Unsubscribe func()
