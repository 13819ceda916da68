package price

import (
	"context"
	"net/http"

	"github.com/coinpaprika/coinpaprika-api-go-client/v2/coinpaprika"
	"github.com/pkg/errors"
)

// PaprikaSource reads the USD quote from the CoinPaprika ticker endpoint.
type PaprikaSource struct {
	client *coinpaprika.Client
	coinID string
}

func NewPaprikaSource(httpClient *http.Client, apiProKey, coinID string) *PaprikaSource {
	var client *coinpaprika.Client
	if apiProKey != "" {
		client = coinpaprika.NewClient(httpClient, coinpaprika.WithAPIKey(apiProKey))
	} else {
		client = coinpaprika.NewClient(httpClient)
	}
	return &PaprikaSource{
		client: client,
		coinID: coinID,
	}
}

// Quote ignores ctx: the paprika client does not take one.
func (s *PaprikaSource) Quote(_ context.Context) (*Quote, error) {
	ticker, err := s.client.Tickers.GetByID(s.coinID, &coinpaprika.TickersOptions{Quotes: "USD"})
	if err != nil {
		return nil, errors.Wrapf(err, "could not get ticker %s", s.coinID)
	}

	usd, ok := ticker.Quotes["USD"]
	if !ok || usd.Price == nil {
		return nil, errors.Errorf("ticker %s has no usd price", s.coinID)
	}
	return newQuote(*usd.Price)
}
