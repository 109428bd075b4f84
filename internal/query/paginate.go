package query

import (
	"math/big"
	"slices"

	"github.com/guttosm/stockprice/internal/domain/models"
)

// Paginate returns the records of a 1-based page holding limit records.
//
// The page covers the closed index range [start, end] with
// start = (page-1)*limit and end = start+limit-1. The range follows
// closed-range slicing rules:
//   - a negative index counts back from the end of the sequence;
//   - a start that is still negative, or at/after the end, yields no records;
//   - end is clamped to the last index, and end < start yields no records.
//
// So page=1, limit=10 over 25 records is [0..9], page=3 is [20..24], and
// page=0, limit=10 wraps to the last ten records. The result is a new slice
// and is never nil. Bounds are computed without int overflow.
func Paginate(records []models.Record, page, limit int) []models.Record {
	n := len(records)
	start, end := pageBounds(n, page, limit)

	lo, hi, ok := closedRange(n, start, end)
	if !ok {
		return []models.Record{}
	}
	return slices.Clone(records[lo : hi+1])
}

// pageBounds returns (page-1)*limit and start+limit-1, each clamped to
// [-n-1, n]. Within that interval closedRange treats every value beyond
// either end the same way, so the clamp does not change the result.
func pageBounds(n, page, limit int) (int, int) {
	l := big.NewInt(int64(limit))
	start := new(big.Int).Sub(big.NewInt(int64(page)), big.NewInt(1))
	start.Mul(start, l)
	end := new(big.Int).Add(start, l)
	end.Sub(end, big.NewInt(1))
	return clampIndex(start, n), clampIndex(end, n)
}

func clampIndex(v *big.Int, n int) int {
	switch {
	case v.Cmp(big.NewInt(int64(-n-1))) < 0:
		return -n - 1
	case v.Cmp(big.NewInt(int64(n))) > 0:
		return n
	default:
		return int(v.Int64())
	}
}

// closedRange resolves [start, end] against a sequence of length n.
func closedRange(n, start, end int) (int, int, bool) {
	if start < 0 {
		start += n
		if start < 0 {
			return 0, 0, false
		}
	}
	if start >= n {
		return 0, 0, false
	}
	if end < 0 {
		end += n
	}
	if end >= n {
		end = n - 1
	}
	if end < start {
		return 0, 0, false
	}
	return start, end, true
}
