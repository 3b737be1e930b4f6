//go:generate go run go.uber.org/mock/mockgen -source=identity.go -destination=../mocks/mock_identity_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"anonchat/domain"

	"github.com/dgraph-io/badger/v4"
)

type IIdentityRepository interface {
	Load() (domain.Identity, bool, error)
	Save(identity domain.Identity) error
	Clear() error
}

// IdentityRepository caches the local user's identity in BadgerDB so it
// survives process restarts, the way a browser keeps localStorage.
type IdentityRepository struct {
	db *badger.DB
}

func NewIdentityRepository(db *badger.DB) IIdentityRepository {
	return &IdentityRepository{db: db}
}

const identityKey = "identity"

// Load returns the cached identity. The boolean reports whether one exists;
// a missing entry is not an error.
func (r IdentityRepository) Load() (domain.Identity, bool, error) {
	var identity domain.Identity
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(identityKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &identity)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Identity{}, false, nil
	}
	if err != nil {
		return domain.Identity{}, false, err
	}
	return identity, true, nil
}

func (r IdentityRepository) Save(identity domain.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(identityKey), data)
	})
}

// Clear forgets the cached identity. The directory claim made under this
// name is deliberately left in place.
func (r IdentityRepository) Clear() error {
	return r.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(identityKey))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}
