// Package runtime sequences the client session: name entry, chatting,
// logout. It wires presentation events to the gating services without
// containing business rules itself.
package runtime

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sync"
	"time"

	"anonchat/contract"
	"anonchat/domain"
	"anonchat/errors"
	"anonchat/infrastructure/netaddr"
	"anonchat/infrastructure/storage"
	"anonchat/projection"
	"anonchat/services"
)

// State is the session controller's position in
// NoIdentity -> AwaitingName -> Chatting -> NoIdentity.
type State int32

const (
	StateNoIdentity State = iota
	StateAwaitingName
	StateChatting
)

// Profile is what the profile panel shows: the identity plus the
// lifetime-visible message count from the local quota counter.
type Profile struct {
	Identity     domain.Identity
	MessageCount int
	Admin        bool
}

type Session struct {
	mu          sync.Mutex
	state       State
	identity    domain.Identity
	hasIdentity bool
	address     string
	unsubscribe contract.Unsubscribe
	stopTicker  chan struct{}

	log             *slog.Logger
	identityService services.IIdentityService
	limiter         services.IRateLimiter
	resolver        netaddr.IAddressResolver
	collection      storage.IMessageCollection
	timeline        *projection.Timeline
	roster          domain.Roster
	pipeline        *services.SendPipeline

	quotaCheckInterval time.Duration
}

func NewSession(
	log *slog.Logger,
	identityService services.IIdentityService,
	limiter services.IRateLimiter,
	resolver netaddr.IAddressResolver,
	collection storage.IMessageCollection,
	timeline *projection.Timeline,
	roster domain.Roster,
	quotaCheckInterval time.Duration,
) *Session {
	return &Session{
		log:                log,
		identityService:    identityService,
		limiter:            limiter,
		resolver:           resolver,
		collection:         collection,
		timeline:           timeline,
		roster:             roster,
		quotaCheckInterval: quotaCheckInterval,
	}
}

// AttachPipeline hands the session its send pipeline. Kept separate from
// the constructor because the pipeline needs the session's identity
// provider, and the session needs the pipeline: the session wins the tie.
func (s *Session) AttachPipeline(pipeline *services.SendPipeline) {
	s.pipeline = pipeline
}

// CurrentIdentity implements services.IdentityProvider. The sender fields
// come from the registered identity; the source address is always the
// freshest resolved one, not the one recorded at registration time.
func (s *Session) CurrentIdentity() (domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasIdentity {
		return domain.Identity{}, false
	}
	identity := s.identity
	identity.SourceAddress = s.address
	return identity, true
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start resolves the source address, restores a cached identity if one
// survives from a previous session, and lands in either Chatting or
// AwaitingName.
func (s *Session) Start(ctx context.Context) error {
	address, err := s.resolver.Resolve(ctx)
	if err != nil {
		if !stderrors.Is(err, errors.ErrAddressResolution) {
			return err
		}
		// Without an address the blocklist and quota gates pass vacuously.
		// Documented open risk; the session still works.
		s.log.Warn("Address resolution failed, continuing unaddressed", "err", err)
		address = ""
	}

	s.mu.Lock()
	s.address = address
	s.mu.Unlock()

	identity, found, err := s.identityService.LoadCached()
	if err != nil {
		return err
	}
	if !found {
		s.setState(StateAwaitingName)
		return nil
	}

	s.mu.Lock()
	s.identity = identity
	s.hasIdentity = true
	s.mu.Unlock()
	return s.enterChatting(ctx)
}

// SubmitName attempts to claim a display name. A rejected claim leaves the
// session in AwaitingName with no side effects; the caller surfaces the
// error and lets the user pick another name.
func (s *Session) SubmitName(ctx context.Context, name string, avatar []byte) error {
	if s.State() == StateChatting {
		return nil
	}

	avatarRef := ""
	if len(avatar) > 0 {
		ref, err := domain.EncodeAvatar(avatar)
		if err != nil {
			return err
		}
		avatarRef = ref
	}

	s.mu.Lock()
	address := s.address
	s.mu.Unlock()

	identity, err := s.identityService.RegisterName(ctx, name, avatarRef, address)
	if err != nil {
		s.setState(StateAwaitingName)
		return err
	}

	s.mu.Lock()
	s.identity = identity
	s.hasIdentity = true
	s.mu.Unlock()
	return s.enterChatting(ctx)
}

// Send forwards to the pipeline. Exposed here so the presentation layer
// has a single entry point for the whole session.
func (s *Session) Send(ctx context.Context, text string) error {
	if s.State() != StateChatting {
		return errors.ErrNoIdentity
	}
	return s.pipeline.Submit(ctx, text)
}

// Profile returns what the profile panel renders.
func (s *Session) Profile() (Profile, error) {
	s.mu.Lock()
	identity := s.identity
	hasIdentity := s.hasIdentity
	address := s.address
	s.mu.Unlock()

	if !hasIdentity {
		return Profile{}, errors.ErrNoIdentity
	}
	count, err := s.limiter.CurrentCount(address)
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		Identity:     identity,
		MessageCount: count,
		Admin:        s.roster.IsAdmin(identity.DisplayName),
	}, nil
}

// Logout clears the local cache and releases the subscription. The
// directory claim stays behind on purpose: only this device forgets the
// name.
func (s *Session) Logout() error {
	if err := s.identityService.Clear(); err != nil {
		return err
	}
	s.teardown()

	s.mu.Lock()
	s.identity = domain.Identity{}
	s.hasIdentity = false
	s.mu.Unlock()

	s.setState(StateNoIdentity)
	s.log.Info("Logged out, local identity cleared")
	return nil
}

// Close releases live resources without touching the cached identity,
// so the next start resumes straight into Chatting.
func (s *Session) Close() {
	s.teardown()
	s.setState(StateNoIdentity)
}

func (s *Session) enterChatting(ctx context.Context) error {
	s.mu.Lock()
	address := s.address
	name := s.identity.DisplayName
	s.mu.Unlock()

	if err := s.limiter.SyncDate(address); err != nil {
		return err
	}

	unsubscribe, err := s.collection.Subscribe(ctx, s.timeline)
	if err != nil {
		return err
	}

	stop := make(chan struct{})
	go s.watchQuotaDate(address, stop)

	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.stopTicker = stop
	s.mu.Unlock()

	s.setState(StateChatting)
	s.log.Info("Entered chat", "name", name)
	return nil
}

// watchQuotaDate re-checks the count date periodically so a session left
// open across midnight gets its counter reset without a restart.
func (s *Session) watchQuotaDate(address string, stop chan struct{}) {
	ticker := time.NewTicker(s.quotaCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := s.limiter.SyncDate(address); err != nil {
				s.log.Warn("Quota date check failed", "err", err)
			}
		}
	}
}

// teardown releases the subscription and the quota ticker. Safe to call
// repeatedly; unsubscribe itself is idempotent.
func (s *Session) teardown() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	stop := s.stopTicker
	s.unsubscribe = nil
	s.stopTicker = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if stop != nil {
		close(stop)
	}
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
