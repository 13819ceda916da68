package commands

import (
	"context"
	"testing"

	"myonion-telegram-bot/internal/price"
	"myonion-telegram-bot/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedRecords() []token.Record {
	return []token.Record{
		{Name: "Zeta", Symbol: "ZET", MarketCap: 10, VolumeDaily: 900},
		{Name: "Alpha", Symbol: "ALP", MarketCap: 30, VolumeDaily: 800.5},
		{Name: "Mid_Token", Symbol: "MID", MarketCap: 20, VolumeDaily: 700},
		{Name: "Beta", Symbol: "BET", MarketCap: 50, VolumeDaily: 600},
		{Name: "Gamma", Symbol: "GAM", MarketCap: 40, VolumeDaily: 500.123},
	}
}

func TestResponder_Trending(t *testing.T) {
	searcher := &fakeSearcher{records: rankedRecords()}
	r := newTestResponder(searcher, fakePrices{quote: &price.Quote{USD: 2}}, &fakeLogos{})

	resp := r.Trending(context.Background())

	require.Len(t, searcher.calls, 1)
	assert.Equal(t, token.SearchOptions{PageSize: 5, OrderBy: token.OrderByVolumeDaily, Desc: true}, searcher.calls[0])
	assert.False(t, resp.Notice)
	assert.Equal(t, "🔥 *Trending Tokens \\(by Volume\\)*:\n\n"+
		"1\\. *Zeta* \\(ZET\\) \\- 900 ℵ \\(≈ $1800\\.00\\)\n"+
		"2\\. *Alpha* \\(ALP\\) \\- 800\\.5 ℵ \\(≈ $1601\\.00\\)\n"+
		"3\\. *Mid\\_Token* \\(MID\\) \\- 700 ℵ \\(≈ $1400\\.00\\)\n"+
		"4\\. *Beta* \\(BET\\) \\- 600 ℵ \\(≈ $1200\\.00\\)\n"+
		"5\\. *Gamma* \\(GAM\\) \\- 500\\.12 ℵ \\(≈ $1000\\.24\\)\n", resp.Text)
}

func TestResponder_LeaderboardPreservesOrder(t *testing.T) {
	searcher := &fakeSearcher{records: rankedRecords()}
	r := newTestResponder(searcher, fakePrices{quote: &price.Quote{USD: 1}}, &fakeLogos{})

	resp := r.Leaderboard(context.Background())

	require.Len(t, searcher.calls, 1)
	assert.Equal(t, token.OrderByMarketCap, searcher.calls[0].OrderBy)
	assert.True(t, searcher.calls[0].Desc)
	assert.Equal(t, "🏆 *Top Tokens \\(by Market Cap\\)*:\n\n"+
		"1\\. *Zeta* \\(ZET\\) \\- 10 ℵ \\(≈ $10\\.00\\)\n"+
		"2\\. *Alpha* \\(ALP\\) \\- 30 ℵ \\(≈ $30\\.00\\)\n"+
		"3\\. *Mid\\_Token* \\(MID\\) \\- 20 ℵ \\(≈ $20\\.00\\)\n"+
		"4\\. *Beta* \\(BET\\) \\- 50 ℵ \\(≈ $50\\.00\\)\n"+
		"5\\. *Gamma* \\(GAM\\) \\- 40 ℵ \\(≈ $40\\.00\\)\n", resp.Text)
}

func TestResponder_RankingNotices(t *testing.T) {
	tests := []struct {
		name     string
		searcher *fakeSearcher
		prices   fakePrices
		call     func(*Responder) Response
		want     string
	}{
		{
			name:     "TrendingWithoutPrice",
			searcher: &fakeSearcher{records: rankedRecords()},
			prices:   fakePrices{err: errUnavailable},
			call:     func(r *Responder) Response { return r.Trending(context.Background()) },
			want:     "⚠️ Failed to fetch ALPH price. Try again later.",
		},
		{
			name:     "TrendingSearchFailure",
			searcher: &fakeSearcher{err: errUnavailable},
			prices:   fakePrices{quote: &price.Quote{USD: 1}},
			call:     func(r *Responder) Response { return r.Trending(context.Background()) },
			want:     "⚠️ Failed to fetch trending tokens.",
		},
		{
			name:     "TrendingEmpty",
			searcher: &fakeSearcher{},
			prices:   fakePrices{quote: &price.Quote{USD: 1}},
			call:     func(r *Responder) Response { return r.Trending(context.Background()) },
			want:     "❌ No trending tokens found.",
		},
		{
			name:     "LeaderboardSearchFailure",
			searcher: &fakeSearcher{err: errUnavailable},
			prices:   fakePrices{quote: &price.Quote{USD: 1}},
			call:     func(r *Responder) Response { return r.Leaderboard(context.Background()) },
			want:     "⚠️ Failed to fetch leaderboard data.",
		},
		{
			name:     "LeaderboardEmpty",
			searcher: &fakeSearcher{},
			prices:   fakePrices{quote: &price.Quote{USD: 1}},
			call:     func(r *Responder) Response { return r.Leaderboard(context.Background()) },
			want:     "❌ No leaderboard data found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResponder(tt.searcher, tt.prices, &fakeLogos{})
			resp := tt.call(r)
			assert.True(t, resp.Notice)
			assert.Equal(t, tt.want, resp.Text)
		})
	}

	t.Run("NoSearchWithoutPrice", func(t *testing.T) {
		searcher := &fakeSearcher{}
		r := newTestResponder(searcher, fakePrices{err: errUnavailable}, &fakeLogos{})
		r.Leaderboard(context.Background())
		assert.Empty(t, searcher.calls)
	})
}

func TestResponder_StartAndHelp(t *testing.T) {
	r := newTestResponder(&fakeSearcher{}, fakePrices{}, &fakeLogos{})

	start := r.Start()
	assert.Contains(t, start.Text, "Welcome to the MyOnion Token Bot!")
	require.Len(t, start.Buttons, 1)
	assert.Equal(t, "https://myonion.fun", start.Buttons[0].URL)

	help := r.Help()
	assert.Contains(t, help.Text, "/trending")
	assert.Contains(t, help.Text, "[MyOnion\\.fun](https://myonion.fun)")
	assert.Contains(t, help.Text, "`/p <query>`")
	assert.Empty(t, help.Buttons)
}
