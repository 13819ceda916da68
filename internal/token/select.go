package token

import "myonion-telegram-bot/lib/helpers"

// Select picks the first record whose symbol equals query (case-insensitively), falling back to the first record.
func Select(records []Record, query string) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}
	for _, r := range records {
		if helpers.SameSymbol(r.Symbol, query) {
			return r, true
		}
	}
	return records[0], true
}
