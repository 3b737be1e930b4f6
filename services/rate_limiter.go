//go:generate go run go.uber.org/mock/mockgen -source=rate_limiter.go -destination=../mocks/mock_rate_limiter.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"time"

	"anonchat/errors"
	"anonchat/repositories"
)

type IRateLimiter interface {
	CurrentCount(sourceAddress string) (int, error)
	CheckAndReserve(sourceAddress string) error
	SyncDate(sourceAddress string) error
}

// RateLimiter enforces the per-address daily send quota from locally
// cached counters. The limit is advisory and per-device: it protects
// against accidental floods from one client, not a determined abuser.
type RateLimiter struct {
	quota      repositories.IQuotaRepository
	log        *slog.Logger
	dailyLimit int
	today      func() string
}

const dateLayout = "2006-01-02"

func NewRateLimiter(quota repositories.IQuotaRepository, log *slog.Logger, dailyLimit int) *RateLimiter {
	return &RateLimiter{
		quota:      quota,
		log:        log,
		dailyLimit: dailyLimit,
		today:      func() string { return time.Now().Format(dateLayout) },
	}
}

// SyncDate resets the counter for an address when the cached count date no
// longer matches today. Counters never reset while the date is unchanged.
func (l *RateLimiter) SyncDate(sourceAddress string) error {
	stored, err := l.quota.CountDate()
	if err != nil {
		return err
	}
	today := l.today()
	if stored == today {
		return nil
	}
	if sourceAddress != "" {
		if err := l.quota.Reset(sourceAddress); err != nil {
			return err
		}
	}
	l.log.Debug("Quota counter reset for new day", "date", today)
	return l.quota.SetCountDate(today)
}

func (l *RateLimiter) CurrentCount(sourceAddress string) (int, error) {
	if err := l.SyncDate(sourceAddress); err != nil {
		return 0, err
	}
	return l.quota.Count(sourceAddress)
}

// CheckAndReserve increments the counter unless the daily limit is already
// reached. The reservation is not rolled back if the send later fails
// downstream; the occasional over-count is accepted for an advisory limit.
func (l *RateLimiter) CheckAndReserve(sourceAddress string) error {
	if sourceAddress == "" {
		// Unresolved addresses are not counted. Accepted open risk.
		return nil
	}
	count, err := l.CurrentCount(sourceAddress)
	if err != nil {
		return err
	}
	if count >= l.dailyLimit {
		return fmt.Errorf("%w: %d/%d today", errors.ErrQuotaExceeded, count, l.dailyLimit)
	}
	return l.quota.SetCount(sourceAddress, count+1)
}
