package repositories

import (
	"testing"

	"anonchat/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Identity_Survives_Reload(t *testing.T) {
	req := require.New(t)
	repository := NewIdentityRepository(openTestDB(t))

	identity := domain.Identity{
		DisplayName:   "Ana",
		AvatarRef:     "data:image/png;base64,abc",
		SourceAddress: "203.0.113.7",
	}
	req.NoError(repository.Save(identity))

	loaded, found, err := repository.Load()
	req.NoError(err)
	req.True(found)
	req.Equal(identity, loaded)
}

func Test_Identity_Missing_Is_Not_An_Error(t *testing.T) {
	req := require.New(t)
	repository := NewIdentityRepository(openTestDB(t))

	_, found, err := repository.Load()
	req.NoError(err)
	req.False(found)
}

func Test_Identity_Clear_Forgets_And_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	repository := NewIdentityRepository(openTestDB(t))

	req.NoError(repository.Save(domain.Identity{DisplayName: "Ana"}))
	req.NoError(repository.Clear())
	req.NoError(repository.Clear())

	_, found, err := repository.Load()
	req.NoError(err)
	req.False(found)
}
