package query

import "errors"

var (
	// ErrMalformedSortSpec is returned when a sort spec is not "<field>.<direction>".
	ErrMalformedSortSpec = errors.New("malformed sort spec")

	// ErrInvalidSortValue is returned when a datetime sort key cannot be parsed.
	ErrInvalidSortValue = errors.New("invalid sort value")

	// ErrInvalidPagination is returned when page or limit is not an integer.
	ErrInvalidPagination = errors.New("invalid pagination")
)
