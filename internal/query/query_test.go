package query

import (
	"github.com/guttosm/stockprice/internal/domain/models"
)

// rec builds a record with the given top-level fields and meta object.
func rec(top map[string]any, meta map[string]any) models.Record {
	r := models.Record{}
	for k, v := range top {
		r[k] = v
	}
	if meta != nil {
		r[models.MetaKey] = meta
	}
	return r
}

func symbols(records []models.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i], _ = r.String("symbol")
	}
	return out
}

func listing() []models.Record {
	return []models.Record{
		rec(map[string]any{"identifier": "RELIANCEEQN", "symbol": "RELIANCE", "lastPrice": 2400.5, "lastUpdateTime": "03-Mar-2023 16:00:00"},
			map[string]any{"companyName": "Reliance Industries Limited", "industry": "REFINERIES", "isin": "INE002A01018"}),
		rec(map[string]any{"identifier": "TCSEQN", "symbol": "TCS", "lastPrice": 3350.0, "lastUpdateTime": "02-Mar-2023 15:30:00"},
			map[string]any{"companyName": "Tata Consultancy Services Limited", "industry": "COMPUTERS - SOFTWARE", "isin": "INE467B01029"}),
		rec(map[string]any{"identifier": "INFYEQN", "symbol": "INFY", "lastPrice": "-", "lastUpdateTime": "03-Mar-2023 09:15:00"},
			map[string]any{"companyName": "Infosys Limited", "industry": "COMPUTERS - SOFTWARE", "isin": "INE009A01021"}),
		rec(map[string]any{"identifier": "NIFTY 50", "symbol": "NIFTY 50", "lastPrice": 17594.35, "lastUpdateTime": "03-Mar-2023 16:00:00"}, nil),
	}
}
