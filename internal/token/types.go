package token

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	unknown = "Unknown"
	noID    = "N/A"
)

const (
	StatusBondingAndDex = "Bonding Curve / AMM DEX"
	StatusBonding       = "Bonding Curve"
	StatusUnknown       = "N/A"
)

// Record is a token as returned by the token-search API.
type Record struct {
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	ID           string `json:"id"`
	MarketCap    Amount `json:"marketCap"`
	VolumeDaily  Amount `json:"volumeDaily"`
	BondingCurve Flag   `json:"bondingCurve"`
	DexPair      Flag   `json:"dexPair"`
	Logo         string `json:"logo"`
}

type searchResponse struct {
	Data []Record `json:"data"`
}

func (r *Record) applyDefaults() {
	if strings.TrimSpace(r.Name) == "" {
		r.Name = unknown
	}
	if strings.TrimSpace(r.Symbol) == "" {
		r.Symbol = unknown
	}
	if strings.TrimSpace(r.ID) == "" {
		r.ID = noID
	}
	r.Logo = strings.TrimSpace(r.Logo)
}

// Status classifies the token by where it trades.
func (r Record) Status() string {
	return Status(bool(r.BondingCurve), bool(r.DexPair))
}

// Status maps (bondingCurve, dexPair) to a label: (true, true) is StatusBondingAndDex,
// (true, false) is StatusBonding and anything else is StatusUnknown.
func Status(bondingCurve, dexPair bool) string {
	switch {
	case bondingCurve && dexPair:
		return StatusBondingAndDex
	case bondingCurve:
		return StatusBonding
	default:
		return StatusUnknown
	}
}

// Amount is a non-negative, finite ALPH amount. Numbers and numeric strings are accepted; anything else decodes to zero.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = 0
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	*a = Amount(v)
	return nil
}

// Flag decodes any JSON value by truthiness: null, false, 0, "" and empty objects or arrays are false.
// The API reports bondingCurve and dexPair either as booleans or as the pair address.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		*f = false
		return nil
	}
	*f = Flag(truthy(v))
	return nil
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	default:
		return true
	}
}
