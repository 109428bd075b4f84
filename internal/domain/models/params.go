package models

const (
	// DefaultPage is used when no page is supplied.
	DefaultPage = 1
	// DefaultLimit is used when no limit is supplied.
	DefaultLimit = 10
)

// Params holds the caller-supplied query over a price listing.
//
// String filters are exact-match and case-sensitive; an empty string means
// the filter is absent. Sort has the form "<field>.<asc|desc>".
//
// Page and Limit are optional: nil selects DefaultPage / DefaultLimit.
// Zero and negative values are accepted and follow closed-range slicing.
type Params struct {
	Identifier  string `json:"identifier,omitempty"`
	Symbol      string `json:"symbol,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Industry    string `json:"industry,omitempty"`
	ISIN        string `json:"isin,omitempty"`
	Sort        string `json:"sort,omitempty"`
	Page        *int   `json:"page,omitempty"`
	Limit       *int   `json:"limit,omitempty"`
}

// PageOrDefault resolves Page, substituting DefaultPage when absent.
func (p Params) PageOrDefault() int {
	if p.Page == nil {
		return DefaultPage
	}
	return *p.Page
}

// LimitOrDefault resolves Limit, substituting DefaultLimit when absent.
func (p Params) LimitOrDefault() int {
	if p.Limit == nil {
		return DefaultLimit
	}
	return *p.Limit
}

// Int returns a pointer to v, for filling Params.Page and Params.Limit.
func Int(v int) *int {
	return &v
}
