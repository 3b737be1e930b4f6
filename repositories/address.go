//go:generate go run go.uber.org/mock/mockgen -source=address.go -destination=../mocks/mock_address_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IAddressRepository interface {
	Load() (CachedAddress, bool, error)
	Save(address string, expiry time.Time) error
}

// CachedAddress is the locally stored result of a network-address lookup
// together with its advisory expiry.
type CachedAddress struct {
	Address string    `json:"address"`
	Expiry  time.Time `json:"expiry"`
}

func (c CachedAddress) Expired(now time.Time) bool {
	return now.After(c.Expiry)
}

// AddressRepository caches the resolved public network address so the
// external lookup service is not contacted on every start.
type AddressRepository struct {
	db *badger.DB
}

func NewAddressRepository(db *badger.DB) IAddressRepository {
	return &AddressRepository{db: db}
}

const addressKey = "address"

func (r AddressRepository) Load() (CachedAddress, bool, error) {
	var cached CachedAddress
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(addressKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cached)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return CachedAddress{}, false, nil
	}
	if err != nil {
		return CachedAddress{}, false, err
	}
	return cached, true, nil
}

func (r AddressRepository) Save(address string, expiry time.Time) error {
	data, err := json.Marshal(CachedAddress{Address: address, Expiry: expiry})
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(addressKey), data)
	})
}
