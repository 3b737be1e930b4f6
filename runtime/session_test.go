package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"anonchat/contract"
	"anonchat/domain"
	"anonchat/errors"
	"anonchat/mocks"
	"anonchat/projection"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionFixture struct {
	identityService *mocks.MockIIdentityService
	limiter         *mocks.MockIRateLimiter
	resolver        *mocks.MockIAddressResolver
	collection      *mocks.MockIMessageCollection
	timeline        *projection.Timeline
	session         *Session
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &sessionFixture{
		identityService: mocks.NewMockIIdentityService(ctrl),
		limiter:         mocks.NewMockIRateLimiter(ctrl),
		resolver:        mocks.NewMockIAddressResolver(ctrl),
		collection:      mocks.NewMockIMessageCollection(ctrl),
		timeline:        projection.NewTimeline(nil),
	}
	f.session = NewSession(
		slog.Default(),
		f.identityService,
		f.limiter,
		f.resolver,
		f.collection,
		f.timeline,
		domain.NewRoster([]string{"Mama"}),
		time.Hour,
	)
	t.Cleanup(f.session.Close)
	return f
}

func Test_Start_Resumes_Cached_Identity(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)
	cached := domain.Identity{DisplayName: "Ana", SourceAddress: "198.51.100.1"}

	f.resolver.EXPECT().Resolve(gomock.Any()).Return("203.0.113.7", nil).Times(1)
	f.identityService.EXPECT().LoadCached().Return(cached, true, nil).Times(1)
	f.limiter.EXPECT().SyncDate("203.0.113.7").Return(nil).Times(1)
	f.collection.EXPECT().
		Subscribe(gomock.Any(), f.timeline).
		Return(contract.Unsubscribe(func() {}), nil).
		Times(1)

	req.NoError(f.session.Start(context.Background()))
	req.Equal(StateChatting, f.session.State())

	// The sender keeps the registered name but the freshly resolved address.
	identity, ok := f.session.CurrentIdentity()
	req.True(ok)
	req.Equal("Ana", identity.DisplayName)
	req.Equal("203.0.113.7", identity.SourceAddress)
}

func Test_Start_Without_Cached_Identity_Awaits_Name(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)

	f.resolver.EXPECT().Resolve(gomock.Any()).Return("203.0.113.7", nil).Times(1)
	f.identityService.EXPECT().LoadCached().Return(domain.Identity{}, false, nil).Times(1)
	f.collection.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Times(0)

	req.NoError(f.session.Start(context.Background()))
	req.Equal(StateAwaitingName, f.session.State())

	_, ok := f.session.CurrentIdentity()
	req.False(ok)
}

func Test_Start_Continues_When_Resolution_Fails(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)

	f.resolver.EXPECT().
		Resolve(gomock.Any()).
		Return("", fmt.Errorf("%w: endpoint unreachable", errors.ErrAddressResolution)).
		Times(1)
	f.identityService.EXPECT().LoadCached().Return(domain.Identity{}, false, nil).Times(1)

	req.NoError(f.session.Start(context.Background()))
	req.Equal(StateAwaitingName, f.session.State())
}

func Test_Start_Fails_On_Unexpected_Resolver_Error(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)

	f.resolver.EXPECT().Resolve(gomock.Any()).Return("", context.Canceled).Times(1)

	req.Error(f.session.Start(context.Background()))
	req.Equal(StateNoIdentity, f.session.State())
}

func Test_SubmitName_Enters_Chatting(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)

	f.resolver.EXPECT().Resolve(gomock.Any()).Return("203.0.113.7", nil).Times(1)
	f.identityService.EXPECT().LoadCached().Return(domain.Identity{}, false, nil).Times(1)
	req.NoError(f.session.Start(context.Background()))

	registered := domain.Identity{DisplayName: "Ana", SourceAddress: "203.0.113.7"}
	f.identityService.EXPECT().
		RegisterName(gomock.Any(), "Ana", "", "203.0.113.7").
		Return(registered, nil).
		Times(1)
	f.limiter.EXPECT().SyncDate("203.0.113.7").Return(nil).Times(1)
	f.collection.EXPECT().
		Subscribe(gomock.Any(), f.timeline).
		Return(contract.Unsubscribe(func() {}), nil).
		Times(1)

	req.NoError(f.session.SubmitName(context.Background(), "Ana", nil))
	req.Equal(StateChatting, f.session.State())
}

func Test_SubmitName_Taken_Stays_Awaiting(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)

	f.resolver.EXPECT().Resolve(gomock.Any()).Return("203.0.113.7", nil).Times(1)
	f.identityService.EXPECT().LoadCached().Return(domain.Identity{}, false, nil).Times(1)
	req.NoError(f.session.Start(context.Background()))

	f.identityService.EXPECT().
		RegisterName(gomock.Any(), "Ana", "", "203.0.113.7").
		Return(domain.Identity{}, fmt.Errorf("%w: %q", errors.ErrNameTaken, "Ana")).
		Times(1)
	f.collection.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Times(0)

	err := f.session.SubmitName(context.Background(), "Ana", nil)
	req.ErrorIs(err, errors.ErrNameTaken)
	req.Equal(StateAwaitingName, f.session.State())

	_, ok := f.session.CurrentIdentity()
	req.False(ok)
}

func Test_SubmitName_Rejects_Bad_Avatar(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)

	f.resolver.EXPECT().Resolve(gomock.Any()).Return("203.0.113.7", nil).Times(1)
	f.identityService.EXPECT().LoadCached().Return(domain.Identity{}, false, nil).Times(1)
	req.NoError(f.session.Start(context.Background()))

	f.identityService.EXPECT().RegisterName(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := f.session.SubmitName(context.Background(), "Ana", []byte("not an image"))
	req.ErrorIs(err, errors.ErrUnsupportedAvatarFormat)
	req.Equal(StateAwaitingName, f.session.State())
}

func Test_Send_Requires_Chatting_State(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)

	err := f.session.Send(context.Background(), "hello")
	req.ErrorIs(err, errors.ErrNoIdentity)
}

func Test_Logout_Releases_Subscription_And_Forgets_Identity(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)
	cached := domain.Identity{DisplayName: "Ana"}

	var unsubscribed int
	f.resolver.EXPECT().Resolve(gomock.Any()).Return("203.0.113.7", nil).Times(1)
	f.identityService.EXPECT().LoadCached().Return(cached, true, nil).Times(1)
	f.limiter.EXPECT().SyncDate("203.0.113.7").Return(nil).Times(1)
	f.collection.EXPECT().
		Subscribe(gomock.Any(), f.timeline).
		Return(contract.Unsubscribe(func() { unsubscribed++ }), nil).
		Times(1)
	req.NoError(f.session.Start(context.Background()))

	f.identityService.EXPECT().Clear().Return(nil).Times(1)
	req.NoError(f.session.Logout())

	req.Equal(StateNoIdentity, f.session.State())
	req.Equal(1, unsubscribed)

	_, ok := f.session.CurrentIdentity()
	req.False(ok)

	// Closing again after logout must not unsubscribe twice.
	f.session.Close()
	req.Equal(1, unsubscribed)
}

func Test_Profile_Reports_Count_And_Admin_Flag(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)
	cached := domain.Identity{DisplayName: "Mama"}

	f.resolver.EXPECT().Resolve(gomock.Any()).Return("203.0.113.7", nil).Times(1)
	f.identityService.EXPECT().LoadCached().Return(cached, true, nil).Times(1)
	f.limiter.EXPECT().SyncDate("203.0.113.7").Return(nil).Times(1)
	f.collection.EXPECT().
		Subscribe(gomock.Any(), f.timeline).
		Return(contract.Unsubscribe(func() {}), nil).
		Times(1)
	req.NoError(f.session.Start(context.Background()))

	f.limiter.EXPECT().CurrentCount("203.0.113.7").Return(42, nil).Times(1)

	profile, err := f.session.Profile()
	req.NoError(err)
	req.Equal("Mama", profile.Identity.DisplayName)
	req.Equal(42, profile.MessageCount)
	req.True(profile.Admin)
}
