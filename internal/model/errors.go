package model

import "errors"

var (
	// ErrUnavailable means no catalog entry with that title is on the shelf.
	ErrUnavailable = errors.New("book not available or not found")
	// ErrNotBorrowed means the student does not hold that title.
	ErrNotBorrowed = errors.New("book not found in borrowed list")
	// ErrNotFound means the catalog has no entry with that title.
	ErrNotFound = errors.New("book not found")
)
