// Package jsonstore reads the JSON seed for the catalog. It is read once at
// startup and never written back: a session lives in memory only.
//
//	[{"title": "Algorithms", "author": "Robert Sedgewick"}, ...]
//
// Seeded books are always on the shelf; nobody holds them yet.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/idilsaglam/library/internal/model"
)

// ErrEmptyTitle is returned for a seed entry without a title.
var ErrEmptyTitle = errors.New("empty title")

type seedBook struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Load reads the seed file at path.
func Load(path string) ([]model.Book, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var seeds []seedBook
	if err := json.Unmarshal(b, &seeds); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	books := make([]model.Book, 0, len(seeds))
	for i, s := range seeds {
		if strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("book %d: %w", i+1, ErrEmptyTitle)
		}
		books = append(books, model.NewBook(s.Title, s.Author))
	}
	return books, nil
}
