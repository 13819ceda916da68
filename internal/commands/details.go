package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"myonion-telegram-bot/internal/price"
	"myonion-telegram-bot/internal/token"
	"myonion-telegram-bot/lib/helpers"
	"myonion-telegram-bot/lib/translation"

	log "github.com/sirupsen/logrus"
)

const detailsPageSize = 10

// Details holds the rendered fields of a token reply.
type Details struct {
	Name         string
	Symbol       string
	Contract     string
	Price        string
	PriceUSD     string
	MarketCap    string
	MarketCapUSD string
	Volume       string
	VolumeUSD    string
	Status       string
}

// NewDetails derives the display fields of rec. USD fields are "N/A" when quote is nil.
func NewDetails(rec token.Record, quote *price.Quote, totalSupply int64) Details {
	if totalSupply <= 0 {
		totalSupply = DefaultSupply
	}

	marketCap := helpers.Round2(float64(rec.MarketCap))
	volume := helpers.Round2(float64(rec.VolumeDaily))

	d := Details{
		Name:         rec.Name,
		Symbol:       rec.Symbol,
		Contract:     rec.ID,
		Price:        helpers.NotAvailable,
		PriceUSD:     helpers.NotAvailable,
		MarketCap:    helpers.FormatAmount(marketCap),
		MarketCapUSD: helpers.NotAvailable,
		Volume:       helpers.FormatAmount(volume),
		VolumeUSD:    helpers.NotAvailable,
		Status:       rec.Status(),
	}

	var unitPrice float64
	if marketCap != 0 {
		d.Price = helpers.FormatFixed(marketCap/float64(totalSupply), 10)
		// the USD price is derived from the displayed native price
		unitPrice, _ = strconv.ParseFloat(d.Price, 64)
	}

	if quote != nil {
		d.MarketCapUSD = helpers.FormatFixed(marketCap*quote.USD, 2)
		d.VolumeUSD = helpers.FormatFixed(volume*quote.USD, 2)
		if d.Price != helpers.NotAvailable {
			d.PriceUSD = helpers.FormatFixed(unitPrice*quote.USD, 10)
		}
	}
	return d
}

// Text renders d as MarkdownV2. Every field is escaped.
func (d Details) Text() string {
	e := helpers.EscapeMarkdownV2
	return fmt.Sprintf(
		"🚀 *%s* \\(`%s`\\)\n\n"+
			"📜 *Contract:* `%s`\n"+
			"💰 *Price:* `%s ℵ`  _\\(≈ $%s\\)_\n"+
			"🏦 *Market Cap:* `%s ℵ` _\\(≈ $%s\\)_\n"+
			"📈 *Daily Volume:* `%s ℵ` _\\(≈ $%s\\)_\n"+
			"🔗 *Status:* `%s`\n",
		e(d.Name), e(d.Symbol),
		e(d.Contract),
		e(d.Price), e(d.PriceUSD),
		e(d.MarketCap), e(d.MarketCapUSD),
		e(d.Volume), e(d.VolumeUSD),
		e(d.Status),
	)
}

func (r *Responder) detailsButtons(d Details) []Button {
	buttons := []Button{{
		Label: translation.Translate("🔗 View on MyOnion.fun"),
		URL:   fmt.Sprintf("%s/trade?tokenId=%s", strings.TrimSuffix(r.settings.SiteURL, "/"), d.Contract),
	}}

	data := RefreshPrefix + d.Symbol
	if len(data) <= maxCallbackData {
		buttons = append(buttons, Button{
			Label: translation.Translate("🔄 Refresh"),
			Data:  data,
		})
	}
	return buttons
}

// TokenDetails looks up query by symbol, name or contract and renders the best match.
func (r *Responder) TokenDetails(ctx context.Context, query string) Response {
	query = strings.TrimSpace(query)
	log.Debugf("processing token query: %s", query)

	quote := r.fetchQuote(ctx)

	records, err := r.tokens.Search(ctx, token.SearchOptions{
		PageSize:    detailsPageSize,
		Page:        0,
		BondingPair: true,
		DexPair:     true,
		Search:      query,
		OrderBy:     token.OrderByCreated,
	})
	if err != nil {
		log.Errorf("token search for %q failed: %v", query, err)
		return notice(translation.Translate("⚠️ Failed to fetch token details. Try again later."))
	}

	rec, ok := token.Select(records, query)
	if !ok {
		return notice(translation.Translate("❌ Token not found."))
	}
	log.Debugf("best match for query '%s' is: %s (%s)", query, rec.Symbol, rec.ID)

	d := NewDetails(rec, quote, r.settings.TotalSupply)
	resp := Response{
		Text:    d.Text(),
		Buttons: r.detailsButtons(d),
	}

	if rec.Logo != "" {
		image, err := r.logos.Fetch(ctx, rec.Logo)
		if err != nil {
			log.Warnf("logo for %s unavailable, replying with text: %v", rec.Symbol, err)
		} else {
			resp.Image = image
		}
	}
	return resp
}
