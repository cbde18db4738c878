package model

// Librarian manages the catalog. It is created once per session.
type Librarian struct {
	Name       string
	EmployeeID string
}

func NewLibrarian(name, employeeID string) Librarian {
	return Librarian{Name: name, EmployeeID: employeeID}
}

// AddBook always succeeds.
func (l Librarian) AddBook(title, author string, c *Catalog) Book {
	return c.Add(title, author)
}

// RemoveBook removes the first copy of title and returns it.
func (l Librarian) RemoveBook(title string, c *Catalog) (Book, error) {
	b, ok := c.RemoveByTitle(title)
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}

// BookCount is the total/available/borrowed report.
func (l Librarian) BookCount(c *Catalog) Counts { return c.Counts() }
