package token

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	OrderByCreated     = "createdTimestamp"
	OrderByVolumeDaily = "volumeDaily"
	OrderByMarketCap   = "marketCap"
)

// SearchOptions are the query parameters of the token-search endpoint. Boolean filters are sent only when set.
type SearchOptions struct {
	PageSize    int
	Page        int
	BondingPair bool
	DexPair     bool
	Search      string
	OrderBy     string
	Desc        bool
}

func (o SearchOptions) values() url.Values {
	v := url.Values{}
	v.Set("pageSize", strconv.Itoa(o.PageSize))
	v.Set("page", strconv.Itoa(o.Page))
	if o.BondingPair {
		v.Set("bondingPair", "true")
	}
	if o.DexPair {
		v.Set("dexPair", "true")
	}
	if o.Search != "" {
		v.Set("search", o.Search)
	}
	if o.OrderBy != "" {
		v.Set("orderBy", o.OrderBy)
	}
	if o.Desc {
		v.Set("desc", "true")
	}
	return v
}

// HTTPError is returned when the API answers with a status other than 200.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Method     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d %s: %s", e.Method, e.URL, e.StatusCode, e.Status, e.Body)
}

// Client queries the token-search API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Search returns one page of tokens in API order.
func (c *Client) Search(ctx context.Context, opts SearchOptions) ([]Record, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid token api url %q", c.baseURL)
	}
	q := u.Query()
	for k, vs := range opts.values() {
		q[k] = vs
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not build token search request")
	}
	req.Header.Set("Accept", "application/json")

	log.Debugf("searching tokens: %s", u.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "token search request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        u.String(),
			Method:     http.MethodGet,
			Body:       string(body),
		}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "could not decode token search response")
	}

	for i := range result.Data {
		result.Data[i].applyDefaults()
	}
	return result.Data, nil
}
