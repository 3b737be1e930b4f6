//go:generate go run go.uber.org/mock/mockgen -source=quota.go -destination=../mocks/mock_quota_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

type IQuotaRepository interface {
	Count(sourceAddress string) (int, error)
	SetCount(sourceAddress string, count int) error
	Reset(sourceAddress string) error
	CountDate() (string, error)
	SetCountDate(date string) error
}

// QuotaRepository persists the per-address daily message counters and the
// calendar date they belong to. Counters are local-only and advisory:
// they are never synchronized across devices for the same address.
type QuotaRepository struct {
	db *badger.DB
}

func NewQuotaRepository(db *badger.DB) IQuotaRepository {
	return &QuotaRepository{db: db}
}

const quotaDateKey = "quota:date"

func quotaKey(sourceAddress string) []byte {
	return []byte("quota:" + sourceAddress)
}

// Count returns the stored counter for an address, zero when absent.
func (r QuotaRepository) Count(sourceAddress string) (int, error) {
	var count int
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(quotaKey(sourceAddress))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			count, err = strconv.Atoi(string(val))
			return err
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("quota read failed: %w", err)
	}
	return count, nil
}

func (r QuotaRepository) SetCount(sourceAddress string, count int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(quotaKey(sourceAddress), []byte(strconv.Itoa(count)))
	})
}

// Reset drops the counter for an address, typically on a day boundary.
func (r QuotaRepository) Reset(sourceAddress string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(quotaKey(sourceAddress))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// CountDate returns the calendar date the stored counters belong to,
// empty when no counter has ever been written.
func (r QuotaRepository) CountDate() (string, error) {
	var date string
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(quotaDateKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			date = string(val)
			return nil
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return date, nil
}

func (r QuotaRepository) SetCountDate(date string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(quotaDateKey), []byte(date))
	})
}
