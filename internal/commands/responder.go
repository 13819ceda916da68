package commands

import (
	"context"

	"myonion-telegram-bot/internal/price"
	"myonion-telegram-bot/internal/token"

	log "github.com/sirupsen/logrus"
)

// DefaultSupply is the fixed total supply of every MyOnion token.
const DefaultSupply = 1_000_000_000

// RefreshPrefix prefixes the callback data of the refresh button; the rest is the token symbol.
const RefreshPrefix = "refresh_"

// maxCallbackData is Telegram's limit on callback data length in bytes.
const maxCallbackData = 64

type TokenSearcher interface {
	Search(ctx context.Context, opts token.SearchOptions) ([]token.Record, error)
}

type LogoFetcher interface {
	Fetch(ctx context.Context, filename string) ([]byte, error)
}

// Settings are the immutable, process-wide values the responders render with.
type Settings struct {
	SiteURL     string
	TotalSupply int64
}

// Responder turns queries into responses. It keeps no state between calls and is safe for concurrent use.
type Responder struct {
	tokens   TokenSearcher
	prices   price.Source
	logos    LogoFetcher
	settings Settings
}

func NewResponder(tokens TokenSearcher, prices price.Source, logos LogoFetcher, settings Settings) *Responder {
	if settings.TotalSupply <= 0 {
		settings.TotalSupply = DefaultSupply
	}
	return &Responder{
		tokens:   tokens,
		prices:   prices,
		logos:    logos,
		settings: settings,
	}
}

// fetchQuote never fails: an unavailable quote is reported as nil.
func (r *Responder) fetchQuote(ctx context.Context) *price.Quote {
	q, err := r.prices.Quote(ctx)
	if err != nil {
		log.Warnf("alph price unavailable: %v", err)
		return nil
	}
	return q
}
