package services

import (
	"log/slog"
	"testing"

	"anonchat/errors"
	"anonchat/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, dailyLimit int) (*RateLimiter, repositories.IQuotaRepository) {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	quota := repositories.NewQuotaRepository(db)
	return NewRateLimiter(quota, slog.Default(), dailyLimit), quota
}

func Test_Reserve_Increments_Counter(t *testing.T) {
	req := require.New(t)
	limiter, quota := newTestLimiter(t, 1000)
	addr := "203.0.113.7"

	req.NoError(limiter.CheckAndReserve(addr))
	req.NoError(limiter.CheckAndReserve(addr))

	count, err := quota.Count(addr)
	req.NoError(err)
	req.Equal(2, count)
}

func Test_Reserve_At_Limit_Edge(t *testing.T) {
	req := require.New(t)
	limiter, quota := newTestLimiter(t, 1000)
	addr := "203.0.113.7"

	// Sync once so the stored date matches today, then place the counter
	// one below the limit.
	req.NoError(limiter.SyncDate(addr))
	req.NoError(quota.SetCount(addr, 999))

	// 999 -> 1000 still goes through.
	req.NoError(limiter.CheckAndReserve(addr))
	count, err := quota.Count(addr)
	req.NoError(err)
	req.Equal(1000, count)

	// The next attempt is rejected and does not increment.
	req.ErrorIs(limiter.CheckAndReserve(addr), errors.ErrQuotaExceeded)
	count, err = quota.Count(addr)
	req.NoError(err)
	req.Equal(1000, count)
}

func Test_Counter_Resets_On_New_Day_Only(t *testing.T) {
	req := require.New(t)
	limiter, quota := newTestLimiter(t, 1000)
	addr := "203.0.113.7"

	limiter.today = func() string { return "2024-05-01" }
	req.NoError(limiter.SyncDate(addr))
	req.NoError(quota.SetCount(addr, 5))

	// Same date: nothing resets.
	count, err := limiter.CurrentCount(addr)
	req.NoError(err)
	req.Equal(5, count)

	// The day rolls over: the counter resets exactly once.
	limiter.today = func() string { return "2024-05-02" }
	count, err = limiter.CurrentCount(addr)
	req.NoError(err)
	req.Zero(count)

	req.NoError(quota.SetCount(addr, 3))
	count, err = limiter.CurrentCount(addr)
	req.NoError(err)
	req.Equal(3, count)
}

func Test_Unresolved_Address_Is_Not_Counted(t *testing.T) {
	req := require.New(t)
	limiter, quota := newTestLimiter(t, 1)

	req.NoError(limiter.CheckAndReserve(""))
	req.NoError(limiter.CheckAndReserve(""))

	count, err := quota.Count("")
	req.NoError(err)
	req.Zero(count)
}
