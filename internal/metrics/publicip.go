package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultIPEndpoint is the lookup service used when the profile does
// not override it.
const DefaultIPEndpoint = "https://ipinfo.io/json"

// PublicIPResolver performs the public-IP/geolocation lookup. The call
// is network-bound and allowed to be slow or fail; the sampler keeps it
// off the metric tick path.
type PublicIPResolver struct {
	Endpoint string
	Client   *http.Client
}

// NewPublicIPResolver builds a resolver for endpoint with a bounded
// request timeout. An empty endpoint selects DefaultIPEndpoint.
func NewPublicIPResolver(endpoint string) *PublicIPResolver {
	if endpoint == "" {
		endpoint = DefaultIPEndpoint
	}
	return &PublicIPResolver{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Resolve performs one lookup. Timeouts, DNS failures and non-2xx
// responses all come back as errors; the caller decides what to keep
// from earlier attempts.
func (r *PublicIPResolver) Resolve(ctx context.Context) (*PublicIPInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.Endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("ip lookup: unexpected status %s", resp.Status)
	}

	var info PublicIPInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("ip lookup: decode: %w", err)
	}
	return &info, nil
}
