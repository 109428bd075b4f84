package query

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/guttosm/stockprice/internal/domain/models"
)

// noValue is the placeholder the price API uses for missing numbers.
const noValue = "-"

// leadingNumber matches the numeric prefix of a value such as "12.5%".
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// datetimeLayouts are tried in order when parsing datetime sort keys.
// Values without a zone are read as UTC.
var datetimeLayouts = []string{
	"02-Jan-2006 15:04:05",
	"02-Jan-2006 15:04",
	"02-Jan-2006",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// SortSpec is a parsed "<field>.<direction>" sort expression.
type SortSpec struct {
	Field      string     // record key, after alias resolution
	Class      FieldClass // comparison semantics for Field
	Descending bool
}

// ParseSortSpec splits spec on its first "." into field and direction.
//
// Any direction other than "desc" sorts ascending. A spec without a
// separator, or with an empty field, fails with ErrMalformedSortSpec.
func ParseSortSpec(spec string) (SortSpec, error) {
	field, direction, ok := strings.Cut(spec, ".")
	if !ok || field == "" {
		return SortSpec{}, fmt.Errorf("%w: %q, expected <field>.<asc|desc>", ErrMalformedSortSpec, spec)
	}
	key, class := Classify(field)
	return SortSpec{Field: key, Class: class, Descending: direction == "desc"}, nil
}

// Sort parses spec and returns a sorted copy of records.
func Sort(records []models.Record, spec string) ([]models.Record, error) {
	s, err := ParseSortSpec(spec)
	if err != nil {
		return nil, err
	}
	return s.Apply(records)
}

type keyed[K any] struct {
	rec models.Record
	key K
}

// Apply returns a sorted copy of records; the input slice is left untouched.
//
// Behavior:
//   - Datetime and Numeric keys are float64; descending negates finite keys,
//     so values without data (+Inf) stay last in both directions.
//   - String keys are lower-cased with blanks last; descending reverses the
//     whole ascending result, which also reverses the order of ties.
//   - The underlying sort is stable.
func (s SortSpec) Apply(records []models.Record) ([]models.Record, error) {
	switch s.Class {
	case StringTop, StringMeta:
		return s.applyString(records), nil
	default:
		return s.applyNumeric(records)
	}
}

type stringKey struct {
	blank bool
	value string
}

func (s SortSpec) applyString(records []models.Record) []models.Record {
	items := make([]keyed[stringKey], len(records))
	for i, r := range records {
		var v any
		if s.Class == StringMeta {
			v, _ = r.MetaValue(s.Field)
		} else {
			v, _ = r.Value(s.Field)
		}
		str := strings.ToLower(cast.ToString(v))
		items[i] = keyed[stringKey]{rec: r, key: stringKey{blank: strings.TrimSpace(str) == "", value: str}}
	}

	slices.SortStableFunc(items, func(a, b keyed[stringKey]) int {
		if a.key.blank != b.key.blank {
			if a.key.blank {
				return 1
			}
			return -1
		}
		return strings.Compare(a.key.value, b.key.value)
	})

	out := unwrap(items)
	if s.Descending {
		slices.Reverse(out)
	}
	return out
}

func (s SortSpec) applyNumeric(records []models.Record) ([]models.Record, error) {
	items := make([]keyed[float64], len(records))
	for i, r := range records {
		v, _ := r.Value(s.Field)

		var (
			key float64
			err error
		)
		if s.Class == Datetime {
			key, err = datetimeKey(v)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", s.Field, err)
			}
		} else {
			key = numericKey(v)
		}

		if s.Descending && !math.IsInf(key, 1) {
			key = -key
		}
		items[i] = keyed[float64]{rec: r, key: key}
	}

	slices.SortStableFunc(items, func(a, b keyed[float64]) int {
		return cmp.Compare(a.key, b.key)
	})
	return unwrap(items), nil
}

func unwrap[K any](items []keyed[K]) []models.Record {
	out := make([]models.Record, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out
}

// isBlank reports whether v carries no data: absent, empty or the "-" placeholder.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	return s == "" || s == noValue
}

// numericKey coerces v leniently: blanks map to +Inf, strings sort on
// their leading number with thousands separators removed, and anything
// without a number sorts as 0.
func numericKey(v any) float64 {
	if isBlank(v) {
		return math.Inf(1)
	}
	if s, ok := v.(string); ok {
		v = leadingNumber.FindString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
		if v == "" {
			return 0
		}
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func datetimeKey(v any) (float64, error) {
	if isBlank(v) {
		return math.Inf(1), nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("%w: %v is not a datetime", ErrInvalidSortValue, v)
	}
	t, err := ParseDatetime(s)
	if err != nil {
		return 0, err
	}
	return float64(t.Unix()), nil
}

// ParseDatetime parses the datetime formats served by the price API.
func ParseDatetime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a datetime", ErrInvalidSortValue, s)
}
