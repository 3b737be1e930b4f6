package netaddr

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"anonchat/errors"
	"anonchat/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) repositories.IAddressRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repositories.NewAddressRepository(db)
}

func newTestResolver(repository repositories.IAddressRepository, endpoint string, ttl time.Duration) *Resolver {
	return NewResolver(http.DefaultClient, repository, slog.Default(), endpoint, "network.ip", ttl)
}

func Test_Resolve_Fetches_And_Caches(t *testing.T) {
	req := require.New(t)
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"network":{"ip":"203.0.113.7"},"city":"Lisbon"}`))
	}))
	defer server.Close()

	repository := newTestRepository(t)
	resolver := newTestResolver(repository, server.URL, time.Hour)

	address, err := resolver.Resolve(context.Background())
	req.NoError(err)
	req.Equal("203.0.113.7", address)
	req.Equal(int32(1), hits.Load())

	// A fresh cache entry short-circuits the lookup entirely.
	address, err = resolver.Resolve(context.Background())
	req.NoError(err)
	req.Equal("203.0.113.7", address)
	req.Equal(int32(1), hits.Load())
}

func Test_Resolve_Revalidates_Expired_Cache(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"network":{"ip":"198.51.100.9"}}`))
	}))
	defer server.Close()

	repository := newTestRepository(t)
	req.NoError(repository.Save("203.0.113.7", time.Now().Add(-time.Minute)))

	resolver := newTestResolver(repository, server.URL, time.Hour)

	address, err := resolver.Resolve(context.Background())
	req.NoError(err)
	req.Equal("198.51.100.9", address)

	// The revalidated value replaced the stale one.
	cached, found, err := repository.Load()
	req.NoError(err)
	req.True(found)
	req.Equal("198.51.100.9", cached.Address)
}

func Test_Resolve_Reports_Lookup_Failure(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	resolver := newTestResolver(newTestRepository(t), server.URL, time.Hour)

	_, err := resolver.Resolve(context.Background())
	req.ErrorIs(err, errors.ErrAddressResolution)
}

func Test_Resolve_Reports_Missing_Field(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"city":"Lisbon"}`))
	}))
	defer server.Close()

	resolver := newTestResolver(newTestRepository(t), server.URL, time.Hour)

	_, err := resolver.Resolve(context.Background())
	req.ErrorIs(err, errors.ErrAddressResolution)
}
