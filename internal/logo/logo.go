package logo

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

const transformation = "cdn-cgi/image/width=800,height=800,fit=crop,format=webp,quality=100"

// Fetcher downloads token logos through the image CDN.
type Fetcher struct {
	baseURL    string
	httpClient *http.Client
}

func NewFetcher(baseURL string, httpClient *http.Client) *Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Fetcher{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// URL builds the 800x800 webp transformation URL for filename.
func (f *Fetcher) URL(filename string) string {
	return f.baseURL + "/" + transformation + "/" + strings.TrimPrefix(filename, "/")
}

func (f *Fetcher) Fetch(ctx context.Context, filename string) ([]byte, error) {
	if filename == "" {
		return nil, errors.New("empty logo filename")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL(filename), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not build logo request")
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "logo request for %s failed", filename)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("logo %s returned status %d", filename, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read logo %s", filename)
	}
	if len(data) == 0 {
		return nil, errors.Errorf("logo %s is empty", filename)
	}
	return data, nil
}
