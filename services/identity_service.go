//go:generate go run go.uber.org/mock/mockgen -source=identity_service.go -destination=../mocks/mock_identity_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"

	"anonchat/domain"
	"anonchat/errors"
	"anonchat/infrastructure/storage"
	"anonchat/repositories"
)

type IIdentityService interface {
	LoadCached() (domain.Identity, bool, error)
	RegisterName(ctx context.Context, name, avatarRef, sourceAddress string) (domain.Identity, error)
	Persist(identity domain.Identity) error
	Clear() error
}

// IdentityService resolves display-name claims against the shared directory
// and keeps the winning identity cached locally.
//
// Name-collision policy: a directory entry claimed by a DIFFERENT source
// address blocks registration; an entry claimed by the SAME address does
// not, so re-registering one's own name is idempotent and refreshes the
// claim. The read-then-write check is racy under concurrent registration
// of one name from two clients; the store's last write wins.
type IdentityService struct {
	directory storage.INameDirectory
	cache     repositories.IIdentityRepository
	log       *slog.Logger
}

func NewIdentityService(
	directory storage.INameDirectory,
	cache repositories.IIdentityRepository,
	log *slog.Logger,
) IIdentityService {
	return &IdentityService{directory: directory, cache: cache, log: log}
}

// LoadCached returns the identity persisted by a previous session, if any.
func (s *IdentityService) LoadCached() (domain.Identity, bool, error) {
	return s.cache.Load()
}

func (s *IdentityService) RegisterName(ctx context.Context, name, avatarRef, sourceAddress string) (domain.Identity, error) {
	trimmed, err := domain.ValidateName(name)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", errors.ErrEmptyInput, err)
	}

	entry, found, err := s.directory.Get(ctx, trimmed)
	if err != nil {
		return domain.Identity{}, err
	}
	if found && entry.SourceAddress != sourceAddress {
		return domain.Identity{}, fmt.Errorf("%w: %q", errors.ErrNameTaken, trimmed)
	}

	claim := domain.NameDirectoryEntry{DisplayName: trimmed, SourceAddress: sourceAddress}
	if err := s.directory.Put(ctx, claim); err != nil {
		return domain.Identity{}, err
	}

	identity := domain.Identity{
		DisplayName:   trimmed,
		AvatarRef:     avatarRef,
		SourceAddress: sourceAddress,
	}
	if err := s.cache.Save(identity); err != nil {
		return domain.Identity{}, err
	}
	s.log.Info("Display name registered", "name", trimmed)
	return identity, nil
}

func (s *IdentityService) Persist(identity domain.Identity) error {
	return s.cache.Save(identity)
}

// Clear forgets the local identity only. The directory entry and messages
// already sent under the name persist; names are never truly released.
func (s *IdentityService) Clear() error {
	return s.cache.Clear()
}
