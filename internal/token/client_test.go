package token

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SearchSendsQueryParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "10", q.Get("pageSize"))
		assert.Equal(t, "0", q.Get("page"))
		assert.Equal(t, "true", q.Get("bondingPair"))
		assert.Equal(t, "true", q.Get("dexPair"))
		assert.Equal(t, "layld", q.Get("search"))
		assert.Equal(t, OrderByCreated, q.Get("orderBy"))
		assert.False(t, q.Has("desc"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{
					"name":         "LayerLayd",
					"symbol":       "LAYLD",
					"id":           "0xabc",
					"marketCap":    5000,
					"volumeDaily":  120,
					"bondingCurve": true,
					"dexPair":      false,
					"logo":         nil,
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	records, err := client.Search(context.Background(), SearchOptions{
		PageSize:    10,
		BondingPair: true,
		DexPair:     true,
		Search:      "layld",
		OrderBy:     OrderByCreated,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "LayerLayd", r.Name)
	assert.Equal(t, "LAYLD", r.Symbol)
	assert.Equal(t, "0xabc", r.ID)
	assert.Equal(t, Amount(5000), r.MarketCap)
	assert.Equal(t, Amount(120), r.VolumeDaily)
	assert.True(t, bool(r.BondingCurve))
	assert.False(t, bool(r.DexPair))
	assert.Empty(t, r.Logo)
	assert.Equal(t, StatusBonding, r.Status())
}

func TestClient_SearchRankingParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "5", q.Get("pageSize"))
		assert.Equal(t, OrderByVolumeDaily, q.Get("orderBy"))
		assert.Equal(t, "true", q.Get("desc"))
		assert.False(t, q.Has("bondingPair"))
		assert.False(t, q.Has("dexPair"))
		assert.False(t, q.Has("search"))
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	records, err := NewClient(server.URL, nil).Search(context.Background(), SearchOptions{
		PageSize: 5,
		OrderBy:  OrderByVolumeDaily,
		Desc:     true,
	})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClient_SearchNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, nil).Search(context.Background(), SearchOptions{PageSize: 10})
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, http.MethodGet, httpErr.Method)
}

func TestClient_SearchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, nil).Search(context.Background(), SearchOptions{PageSize: 10})
	assert.Error(t, err)
}

func TestClient_SearchUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url, nil).Search(context.Background(), SearchOptions{PageSize: 10})
	assert.Error(t, err)
}

func TestRecordDefaults(t *testing.T) {
	var resp searchResponse
	err := json.Unmarshal([]byte(`{"data":[{"name":null,"marketCap":"12.5","volumeDaily":"oops","bondingCurve":"0xpair","dexPair":null,"logo":" logo.png "}]}`), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)

	r := resp.Data[0]
	r.applyDefaults()

	assert.Equal(t, "Unknown", r.Name)
	assert.Equal(t, "Unknown", r.Symbol)
	assert.Equal(t, "N/A", r.ID)
	assert.Equal(t, Amount(12.5), r.MarketCap)
	assert.Equal(t, Amount(0), r.VolumeDaily)
	assert.True(t, bool(r.BondingCurve))
	assert.False(t, bool(r.DexPair))
	assert.Equal(t, "logo.png", r.Logo)
}

func TestAmountRejectsNonFinite(t *testing.T) {
	var resp searchResponse
	err := json.Unmarshal([]byte(`{"data":[
		{"marketCap":"NaN","volumeDaily":"Infinity"},
		{"marketCap":"-Inf","volumeDaily":"+Inf"},
		{"marketCap":"-3","volumeDaily":"1e400"}
	]}`), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Data, 3)

	for i, r := range resp.Data {
		assert.Equal(t, Amount(0), r.MarketCap, "record %d", i)
		assert.Equal(t, Amount(0), r.VolumeDaily, "record %d", i)
	}
}
