package price

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// Quote is the ALPH to USD conversion rate.
type Quote struct {
	USD float64
}

// Source fetches the current quote.
type Source interface {
	Quote(ctx context.Context) (*Quote, error)
}

func newQuote(rate float64) (*Quote, error) {
	if rate <= 0 {
		return nil, errors.Errorf("invalid usd rate %v", rate)
	}
	return &Quote{USD: rate}, nil
}

// GeckoSource reads a CoinGecko style simple price payload: {"<coin>": {"usd": <number>}}.
type GeckoSource struct {
	url        string
	coinID     string
	httpClient *http.Client
}

func NewGeckoSource(url, coinID string, httpClient *http.Client) *GeckoSource {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GeckoSource{
		url:        url,
		coinID:     coinID,
		httpClient: httpClient,
	}
}

func (s *GeckoSource) Quote(ctx context.Context) (*Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not build price request")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "price request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("price api returned status %d", resp.StatusCode)
	}

	var payload map[string]map[string]*float64
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "could not decode price response")
	}

	rate := payload[s.coinID]["usd"]
	if rate == nil {
		return nil, errors.Errorf("price response has no usd rate for %s", s.coinID)
	}
	return newQuote(*rate)
}
