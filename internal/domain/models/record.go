package models

// Record represents a single stock listing as returned by the price API.
//
// The API payload is loosely typed (numbers, strings and the "-" placeholder
// share the same fields), so a record is kept as the decoded JSON object.
// Company metadata lives under the nested "meta" object.
//
// Example:
//
//	{
//	  "identifier": "NIFTY 50",
//	  "symbol": "NIFTY 50",
//	  "lastPrice": 17465.8,
//	  "lastUpdateTime": "03-Mar-2023 16:00:00",
//	  "meta": {"companyName": "...", "industry": "...", "isin": "..."}
//	}
//
// swagger:model Record
type Record map[string]any

// MetaKey is the name of the nested company metadata object.
const MetaKey = "meta"

// Meta returns the nested metadata object, or nil when absent or not an object.
func (r Record) Meta() map[string]any {
	m, _ := r[MetaKey].(map[string]any)
	return m
}

// Value returns a top-level field.
func (r Record) Value(field string) (any, bool) {
	v, ok := r[field]
	return v, ok
}

// MetaValue returns a field of the nested metadata object.
func (r Record) MetaValue(field string) (any, bool) {
	m := r.Meta()
	if m == nil {
		return nil, false
	}
	v, ok := m[field]
	return v, ok
}

// String returns a top-level field when it holds a string.
func (r Record) String(field string) (string, bool) {
	s, ok := r[field].(string)
	return s, ok
}

// MetaString returns a metadata field when it holds a string.
func (r Record) MetaString(field string) (string, bool) {
	v, _ := r.MetaValue(field)
	s, ok := v.(string)
	return s, ok
}
