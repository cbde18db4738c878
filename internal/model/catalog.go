package model

// Catalog is the ordered, in-memory collection of books shared by the
// student and the librarian. The zero value is an empty catalog.
type Catalog struct {
	books []Book
}

// Counts summarizes a catalog. Available+Borrowed always equals Total.
type Counts struct {
	Total, Available, Borrowed int
}

// NewCatalog returns a catalog holding copies of books, in order.
func NewCatalog(books ...Book) *Catalog {
	c := &Catalog{books: make([]Book, 0, len(books))}
	c.books = append(c.books, books...)
	return c
}

// DefaultBooks is the shelf a fresh session starts with.
func DefaultBooks() []Book {
	return []Book{
		NewBook("Java Programming", "Herbert Schildt"),
		NewBook("Data Structures", "Mark Allen Weiss"),
		NewBook("Web Development", "Jon Duckett"),
		NewBook("Algorithms", "Robert Sedgewick"),
	}
}

// Add appends an available book and returns it.
func (c *Catalog) Add(title, author string) Book {
	b := NewBook(title, author)
	c.books = append(c.books, b)
	return b
}

// RemoveByTitle drops the first book whose title matches. It does not look
// at availability, so a lent book can be removed while the borrower still
// lists it.
func (c *Catalog) RemoveByTitle(title string) (Book, bool) {
	i := c.index(title, false)
	if i < 0 {
		return Book{}, false
	}
	removed := c.books[i]
	c.books = append(c.books[:i], c.books[i+1:]...)
	return removed, true
}

// FindAvailable returns the first matching book that is on the shelf, or nil.
// The pointer is valid until the catalog is next modified by Add or Remove.
func (c *Catalog) FindAvailable(title string) *Book {
	if i := c.index(title, true); i >= 0 {
		return &c.books[i]
	}
	return nil
}

// FindByTitle returns the first matching book regardless of availability, or nil.
func (c *Catalog) FindByTitle(title string) *Book {
	if i := c.index(title, false); i >= 0 {
		return &c.books[i]
	}
	return nil
}

// findLent prefers a lent copy so that returning one of two same-titled
// books restocks the one that is actually out.
func (c *Catalog) findLent(title string) *Book {
	for i := range c.books {
		if sameTitle(c.books[i].Title, title) && !c.books[i].Available {
			return &c.books[i]
		}
	}
	return c.FindByTitle(title)
}

func (c *Catalog) index(title string, availableOnly bool) int {
	for i := range c.books {
		if !sameTitle(c.books[i].Title, title) {
			continue
		}
		if availableOnly && !c.books[i].Available {
			continue
		}
		return i
	}
	return -1
}

// Counts scans the availability flags.
func (c *Catalog) Counts() Counts {
	n := Counts{Total: len(c.books)}
	for _, b := range c.books {
		if b.Available {
			n.Available++
		} else {
			n.Borrowed++
		}
	}
	return n
}

// Books returns a copy of every book in insertion order.
func (c *Catalog) Books() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// AvailableBooks returns the books currently on the shelf, in order.
func (c *Catalog) AvailableBooks() []Book {
	var out []Book
	for _, b := range c.books {
		if b.Available {
			out = append(out, b)
		}
	}
	return out
}

func (c *Catalog) Len() int { return len(c.books) }
