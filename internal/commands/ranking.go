package commands

import (
	"context"
	"fmt"
	"strings"

	"myonion-telegram-bot/internal/price"
	"myonion-telegram-bot/internal/token"
	"myonion-telegram-bot/lib/helpers"
	"myonion-telegram-bot/lib/translation"

	log "github.com/sirupsen/logrus"
)

const rankingPageSize = 5

type ranking struct {
	orderBy  string
	header   string
	failed   string
	notFound string
	metric   func(token.Record) float64
}

var (
	trendingRanking = ranking{
		orderBy:  token.OrderByVolumeDaily,
		header:   "🔥 *Trending Tokens \\(by Volume\\)*:",
		failed:   "⚠️ Failed to fetch trending tokens.",
		notFound: "❌ No trending tokens found.",
		metric:   func(r token.Record) float64 { return float64(r.VolumeDaily) },
	}
	leaderboardRanking = ranking{
		orderBy:  token.OrderByMarketCap,
		header:   "🏆 *Top Tokens \\(by Market Cap\\)*:",
		failed:   "⚠️ Failed to fetch leaderboard data.",
		notFound: "❌ No leaderboard data found.",
		metric:   func(r token.Record) float64 { return float64(r.MarketCap) },
	}
)

// Trending lists the five tokens with the highest daily volume.
func (r *Responder) Trending(ctx context.Context) Response {
	return r.rank(ctx, trendingRanking)
}

// Leaderboard lists the five tokens with the highest market cap.
func (r *Responder) Leaderboard(ctx context.Context) Response {
	return r.rank(ctx, leaderboardRanking)
}

func (r *Responder) rank(ctx context.Context, rk ranking) Response {
	log.Debugf("processing ranking by %s", rk.orderBy)

	quote := r.fetchQuote(ctx)
	if quote == nil {
		return notice(translation.Translate("⚠️ Failed to fetch ALPH price. Try again later."))
	}

	records, err := r.tokens.Search(ctx, token.SearchOptions{
		PageSize: rankingPageSize,
		Page:     0,
		OrderBy:  rk.orderBy,
		Desc:     true,
	})
	if err != nil {
		log.Errorf("ranking by %s failed: %v", rk.orderBy, err)
		return notice(translation.Translate(rk.failed))
	}
	if len(records) == 0 {
		return notice(translation.Translate(rk.notFound))
	}

	return Response{Text: renderRanking(translation.Translate(rk.header), records, rk.metric, quote)}
}

// renderRanking numbers records in the order the API returned them, as MarkdownV2.
func renderRanking(header string, records []token.Record, metric func(token.Record) float64, quote *price.Quote) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	for i, rec := range records {
		value := helpers.Round2(metric(rec))
		fmt.Fprintf(&b, "%d\\. *%s* \\(%s\\) \\- %s ℵ \\(≈ $%s\\)\n",
			i+1,
			helpers.EscapeMarkdownV2(rec.Name),
			helpers.EscapeMarkdownV2(rec.Symbol),
			helpers.EscapeMarkdownV2(helpers.FormatAmount(value)),
			helpers.EscapeMarkdownV2(helpers.FormatFixed(value*quote.USD, 2)),
		)
	}
	return b.String()
}
