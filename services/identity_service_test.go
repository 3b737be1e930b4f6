package services

import (
	"context"
	"log/slog"
	"testing"

	"anonchat/domain"
	"anonchat/errors"
	"anonchat/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdentityService_RegisterName(t *testing.T) {
	ctx := context.Background()

	t.Run("should register a free name and cache the identity", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockINameDirectory(ctrl)
		cache := mocks.NewMockIIdentityRepository(ctrl)
		svc := NewIdentityService(directory, cache, slog.Default())

		directory.EXPECT().
			Get(ctx, "Ana").
			Return(domain.NameDirectoryEntry{}, false, nil).
			Times(1)
		directory.EXPECT().
			Put(ctx, domain.NameDirectoryEntry{DisplayName: "Ana", SourceAddress: "203.0.113.7"}).
			Return(nil).
			Times(1)
		cache.EXPECT().
			Save(gomock.Any()).
			Return(nil).
			Times(1)

		identity, err := svc.RegisterName(ctx, "  Ana ", "", "203.0.113.7")

		req.NoError(err)
		req.Equal("Ana", identity.DisplayName)
		req.Equal("203.0.113.7", identity.SourceAddress)
	})

	t.Run("should reject a name claimed by a different address", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockINameDirectory(ctrl)
		cache := mocks.NewMockIIdentityRepository(ctrl)
		svc := NewIdentityService(directory, cache, slog.Default())

		directory.EXPECT().
			Get(ctx, "Ana").
			Return(domain.NameDirectoryEntry{DisplayName: "Ana", SourceAddress: "198.51.100.1"}, true, nil).
			Times(1)
		// The directory is never written and nothing is cached.
		directory.EXPECT().Put(gomock.Any(), gomock.Any()).Times(0)
		cache.EXPECT().Save(gomock.Any()).Times(0)

		_, err := svc.RegisterName(ctx, "Ana", "", "203.0.113.7")

		req.ErrorIs(err, errors.ErrNameTaken)
	})

	t.Run("should treat re-registration from the same address as idempotent", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockINameDirectory(ctrl)
		cache := mocks.NewMockIIdentityRepository(ctrl)
		svc := NewIdentityService(directory, cache, slog.Default())

		claim := domain.NameDirectoryEntry{DisplayName: "Ana", SourceAddress: "203.0.113.7"}
		directory.EXPECT().Get(ctx, "Ana").Return(claim, true, nil).Times(1)
		directory.EXPECT().Put(ctx, claim).Return(nil).Times(1)
		cache.EXPECT().Save(gomock.Any()).Return(nil).Times(1)

		_, err := svc.RegisterName(ctx, "Ana", "", "203.0.113.7")

		req.NoError(err)
	})

	t.Run("should reject a blank name before touching the directory", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockINameDirectory(ctrl)
		cache := mocks.NewMockIIdentityRepository(ctrl)
		svc := NewIdentityService(directory, cache, slog.Default())

		directory.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.RegisterName(ctx, "   ", "", "203.0.113.7")

		req.ErrorIs(err, errors.ErrEmptyInput)
	})
}

func TestIdentityService_Clear(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockINameDirectory(ctrl)
	cache := mocks.NewMockIIdentityRepository(ctrl)
	svc := NewIdentityService(directory, cache, slog.Default())

	// Logout clears the local cache only; the directory keeps the claim.
	cache.EXPECT().Clear().Return(nil).Times(1)
	directory.EXPECT().Put(gomock.Any(), gomock.Any()).Times(0)

	req.NoError(svc.Clear())
}
