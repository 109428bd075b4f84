package query

import "github.com/guttosm/stockprice/internal/domain/models"

// predicate is one exact-match filter over a record.
type predicate struct {
	want  string
	value func(models.Record) (string, bool)
}

func topLevel(field string) func(models.Record) (string, bool) {
	return func(r models.Record) (string, bool) { return r.String(field) }
}

func metaLevel(field string) func(models.Record) (string, bool) {
	return func(r models.Record) (string, bool) { return r.MetaString(field) }
}

// predicates returns the filters present in params, in application order.
func predicates(p models.Params) []predicate {
	all := []predicate{
		{want: p.Identifier, value: topLevel("identifier")},
		{want: p.Symbol, value: topLevel("symbol")},
		{want: p.CompanyName, value: metaLevel("companyName")},
		{want: p.Industry, value: metaLevel("industry")},
		{want: p.ISIN, value: metaLevel("isin")},
	}
	out := all[:0]
	for _, pr := range all {
		if pr.want != "" {
			out = append(out, pr)
		}
	}
	return out
}

// Filter keeps the records matching every filter present in params.
//
// Behavior:
//   - identifier and symbol are matched against top-level fields.
//   - company_name, industry and isin are matched against the nested "meta" object.
//   - Matching is exact, case-sensitive string equality; non-string values never match.
//   - Absent (empty) filters impose no constraint.
//
// Returns:
//   - A new slice (never nil); the input is not modified.
func Filter(records []models.Record, p models.Params) []models.Record {
	out := make([]models.Record, 0, len(records))
	preds := predicates(p)

next:
	for _, r := range records {
		for _, pr := range preds {
			if got, ok := pr.value(r); !ok || got != pr.want {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}
