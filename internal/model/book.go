package model

import "strings"

// Book is one catalog entry. Its identity is the title, compared
// case-insensitively; the author is only descriptive.
type Book struct {
	Title     string
	Author    string
	Available bool
}

// NewBook returns a book that is on the shelf.
func NewBook(title, author string) Book {
	return Book{Title: title, Author: author, Available: true}
}

// Status is the human label for the availability flag.
func (b Book) Status() string {
	if b.Available {
		return "Available"
	}
	return "Borrowed"
}

// sameTitle is the single title comparison used across the package.
func sameTitle(a, b string) bool { return strings.EqualFold(a, b) }
