package query

// FieldClass selects how a sort key is extracted and compared.
type FieldClass int

const (
	// Numeric fields are parsed as float64; "-" sorts last in both directions.
	Numeric FieldClass = iota
	// Datetime fields are parsed into Unix seconds.
	Datetime
	// StringTop fields are top-level strings compared case-insensitively.
	StringTop
	// StringMeta fields are strings under the nested "meta" object.
	StringMeta
)

func (c FieldClass) String() string {
	switch c {
	case Datetime:
		return "datetime"
	case StringTop:
		return "string"
	case StringMeta:
		return "meta_string"
	default:
		return "numeric"
	}
}

// fieldClasses lists every field that is not numeric.
var fieldClasses = map[string]FieldClass{
	"lastUpdateTime": Datetime,
	"identifier":     StringTop,
	"symbol":         StringTop,
	"companyName":    StringMeta,
	"industry":       StringMeta,
	"isin":           StringMeta,
}

// fieldAliases maps the snake_case names accepted in query strings to record keys.
var fieldAliases = map[string]string{
	"last_update_time": "lastUpdateTime",
	"company_name":     "companyName",
}

// Classify resolves a sort field name to its record key and comparison class.
// Unknown fields are numeric.
func Classify(field string) (string, FieldClass) {
	if canonical, ok := fieldAliases[field]; ok {
		field = canonical
	}
	if class, ok := fieldClasses[field]; ok {
		return field, class
	}
	return field, Numeric
}
