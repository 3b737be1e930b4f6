//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=../../mocks/mock_address_resolver.go -package=mocks
package netaddr

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"anonchat/errors"
	"anonchat/repositories"

	"github.com/tidwall/gjson"
)

type IAddressResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// Resolver returns the caller's public network address, an opaque string
// used as the per-user key for quotas and blocking. The lookup result is
// cached locally; a cached value past its expiry is always revalidated
// against the lookup service before being reused.
type Resolver struct {
	httpClient *http.Client
	repository repositories.IAddressRepository
	log        *slog.Logger
	endpoint   string
	fieldPath  string
	ttl        time.Duration
}

func NewResolver(
	httpClient *http.Client,
	repository repositories.IAddressRepository,
	log *slog.Logger,
	endpoint string,
	fieldPath string,
	ttl time.Duration,
) *Resolver {
	return &Resolver{
		httpClient: httpClient,
		repository: repository,
		log:        log,
		endpoint:   endpoint,
		fieldPath:  fieldPath,
		ttl:        ttl,
	}
}

func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	cached, found, err := r.repository.Load()
	if err != nil {
		return "", err
	}
	if found && !cached.Expired(time.Now()) {
		return cached.Address, nil
	}

	address, err := r.fetch(ctx)
	if err != nil {
		return "", err
	}

	if err := r.repository.Save(address, time.Now().Add(r.ttl)); err != nil {
		// The address itself is still usable; only the cache write failed.
		r.log.Warn("Address cache write failed", "err", err)
	}
	return address, nil
}

func (r *Resolver) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrAddressResolution, err)
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrAddressResolution, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: lookup returned %s", errors.ErrAddressResolution, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrAddressResolution, err)
	}

	address := gjson.GetBytes(body, r.fieldPath).String()
	if address == "" {
		return "", fmt.Errorf("%w: field %q missing from response", errors.ErrAddressResolution, r.fieldPath)
	}
	return address, nil
}
