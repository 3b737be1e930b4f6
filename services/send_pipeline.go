package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"anonchat/domain"
	"anonchat/errors"
	"anonchat/infrastructure/storage"
	"anonchat/projection"

	"github.com/google/uuid"
)

// SendState is the pipeline's position in Idle -> Sending -> Cooldown -> Idle.
type SendState int32

const (
	StateIdle SendState = iota
	StateSending
	StateCooldown
)

// IdentityProvider reports the current identity, or false when none is
// established yet.
type IdentityProvider func() (domain.Identity, bool)

// SendPipeline composes the blocklist gate, the rate limiter, and message
// construction into one send operation. Its own state is the concurrency
// guard: a second Submit while one is in flight fails fast instead of
// producing a duplicate, which absorbs double-clicks and repeated Enter
// presses from the presentation layer.
type SendPipeline struct {
	mu    sync.Mutex
	state SendState

	log        *slog.Logger
	gate       IBlocklistGate
	limiter    IRateLimiter
	collection storage.IMessageCollection
	timeline   *projection.Timeline
	identity   IdentityProvider

	// cooldown visually debounces re-submission after a successful send.
	// It is an explicit timed transition, not a correctness mechanism.
	cooldown          time.Duration
	maxTextLength     int
	externalAvatarRef string
	defaultAvatarRef  string
}

func NewSendPipeline(
	log *slog.Logger,
	gate IBlocklistGate,
	limiter IRateLimiter,
	collection storage.IMessageCollection,
	timeline *projection.Timeline,
	identity IdentityProvider,
	cooldown time.Duration,
	maxTextLength int,
	externalAvatarRef string,
	defaultAvatarRef string,
) *SendPipeline {
	return &SendPipeline{
		log:               log,
		gate:              gate,
		limiter:           limiter,
		collection:        collection,
		timeline:          timeline,
		identity:          identity,
		cooldown:          cooldown,
		maxTextLength:     maxTextLength,
		externalAvatarRef: externalAvatarRef,
		defaultAvatarRef:  defaultAvatarRef,
	}
}

func (p *SendPipeline) State() SendState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Submit runs one send attempt to completion or failure; there is no
// mid-flight cancellation. Rejections are not sticky: the next attempt
// starts fresh from Idle.
func (p *SendPipeline) Submit(ctx context.Context, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return errors.ErrEmptyInput
	}
	identity, ok := p.identity()
	if !ok {
		return errors.ErrNoIdentity
	}

	p.mu.Lock()
	if p.state != StateIdle {
		p.mu.Unlock()
		return errors.ErrSendInFlight
	}
	p.state = StateSending
	p.mu.Unlock()

	if err := p.send(ctx, identity, trimmed); err != nil {
		p.setState(StateIdle)
		return err
	}

	// Successful append: hold Cooldown briefly, then re-open the pipeline.
	p.setState(StateCooldown)
	time.AfterFunc(p.cooldown, func() {
		p.mu.Lock()
		if p.state == StateCooldown {
			p.state = StateIdle
		}
		p.mu.Unlock()
	})
	return nil
}

func (p *SendPipeline) send(ctx context.Context, identity domain.Identity, trimmed string) error {
	blocked, err := p.gate.IsBlocked(ctx, identity.SourceAddress)
	if err != nil {
		// A failed blocklist fetch does not block the send; the list is
		// advisory freshness, not a hard dependency.
		p.log.Warn("Blocklist fetch failed, proceeding unchecked", "err", err)
	}
	if blocked {
		return fmt.Errorf("%w: %s", errors.ErrBlocked, identity.SourceAddress)
	}

	if err := p.limiter.CheckAndReserve(identity.SourceAddress); err != nil {
		return err
	}

	message := p.buildMessage(identity, trimmed)
	if err := p.collection.Append(ctx, message); err != nil {
		// The quota reservation above is intentionally kept; over-counting
		// a failed send is accepted for an advisory limit.
		return err
	}

	p.timeline.AppendLocal(message)
	return nil
}

func (p *SendPipeline) buildMessage(identity domain.Identity, trimmed string) domain.Message {
	if runes := []rune(trimmed); len(runes) > p.maxTextLength {
		trimmed = string(runes[:p.maxTextLength])
	}
	return domain.Message{
		ID:   uuid.New(),
		Text: trimmed,
		Sender: domain.Sender{
			DisplayName: identity.DisplayName,
			AvatarRef:   p.resolveAvatar(identity),
		},
		SourceAddress: identity.SourceAddress,
		CreatedAt:     time.Now().UTC(),
	}
}

// resolveAvatar picks the explicitly selected image first, then an
// externally provided one, then the default placeholder.
func (p *SendPipeline) resolveAvatar(identity domain.Identity) string {
	if identity.AvatarRef != "" {
		return identity.AvatarRef
	}
	if p.externalAvatarRef != "" {
		return p.externalAvatarRef
	}
	return p.defaultAvatarRef
}

func (p *SendPipeline) setState(state SendState) {
	p.mu.Lock()
	p.state = state
	p.mu.Unlock()
}
