package query

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/stockprice/internal/domain/models"
)

func numbered(n int) []models.Record {
	out := make([]models.Record, n)
	for i := range out {
		out[i] = models.Record{"symbol": fmt.Sprintf("S%02d", i)}
	}
	return out
}

func indexes(records []models.Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		s, _ := r.String("symbol")
		_, _ = fmt.Sscanf(s, "S%02d", &out[i])
	}
	return out
}

func span(from, to int) []int {
	out := []int{}
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func TestPaginate_TableDriven(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		page  int
		limit int
		want  []int
	}{
		{name: "first page", n: 25, page: 1, limit: 10, want: span(0, 9)},
		{name: "second page", n: 25, page: 2, limit: 10, want: span(10, 19)},
		{name: "partial last page", n: 25, page: 3, limit: 10, want: span(20, 24)},
		{name: "past the end", n: 25, page: 4, limit: 10, want: []int{}},
		{name: "start equals length", n: 20, page: 3, limit: 10, want: []int{}},
		{name: "empty input", n: 0, page: 1, limit: 10, want: []int{}},
		{name: "page zero wraps to the tail", n: 25, page: 0, limit: 10, want: span(15, 24)},
		{name: "page zero larger than input", n: 5, page: 0, limit: 10, want: []int{}},
		{name: "negative page far out", n: 25, page: -5, limit: 10, want: []int{}},
		{name: "zero limit spans everything", n: 25, page: 1, limit: 0, want: span(0, 24)},
		{name: "negative limit clamps", n: 25, page: 1, limit: -1, want: span(0, 23)},
		{name: "negative limit on later page", n: 25, page: 3, limit: -2, want: []int{}},
		{name: "limit one", n: 25, page: 7, limit: 1, want: []int{6}},
		{name: "huge page does not wrap", n: 25, page: 4611686018427387905, limit: 4, want: []int{}},
		{name: "max page and limit", n: 25, page: math.MaxInt, limit: math.MaxInt, want: []int{}},
		{name: "min page", n: 25, page: math.MinInt, limit: 1, want: []int{}},
		{name: "min page zero limit", n: 25, page: math.MinInt, limit: 0, want: span(0, 24)},
		{name: "huge negative page", n: 25, page: -(math.MaxInt / 2), limit: 4, want: []int{}},
		{name: "huge limit first page", n: 25, page: 1, limit: math.MaxInt, want: span(0, 24)},
		{name: "huge negative limit", n: 25, page: 2, limit: math.MinInt, want: []int{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := Paginate(numbered(tc.n), tc.page, tc.limit)
			require.NotNil(t, out)
			assert.Equal(t, tc.want, indexes(out))
		})
	}
}

func TestPaginate_ReturnsCopy(t *testing.T) {
	in := numbered(3)
	out := Paginate(in, 1, 2)
	out[0] = models.Record{"symbol": "S99"}
	assert.Equal(t, []int{0, 1, 2}, indexes(in))
}

func TestPaginate_HugeQueryValues(t *testing.T) {
	p, err := ParseParams(func(key string) string {
		switch key {
		case KeyPage:
			return "4611686018427387905"
		case KeyLimit:
			return "4"
		}
		return ""
	})
	require.NoError(t, err)

	out := Paginate(numbered(25), p.PageOrDefault(), p.LimitOrDefault())
	require.NotNil(t, out)
	assert.Empty(t, out)
}
