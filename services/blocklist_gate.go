//go:generate go run go.uber.org/mock/mockgen -source=blocklist_gate.go -destination=../mocks/mock_blocklist_gate.go -package=mocks
package services

import (
	"context"

	"anonchat/infrastructure/storage"

	"github.com/samber/lo"
)

type IBlocklistGate interface {
	IsBlocked(ctx context.Context, sourceAddress string) (bool, error)
}

// BlocklistGate checks a source address against the server-maintained
// deny-list. The list is fetched fresh on every call; staleness is bounded
// by the fetch latency only.
type BlocklistGate struct {
	blocklist storage.IBlocklist
}

func NewBlocklistGate(blocklist storage.IBlocklist) IBlocklistGate {
	return &BlocklistGate{blocklist: blocklist}
}

func (g *BlocklistGate) IsBlocked(ctx context.Context, sourceAddress string) (bool, error) {
	if sourceAddress == "" {
		// Unresolved addresses pass vacuously. Accepted open risk.
		return false, nil
	}
	blocked, err := g.blocklist.Scan(ctx)
	if err != nil {
		return false, err
	}
	return lo.Contains(blocked, sourceAddress), nil
}
