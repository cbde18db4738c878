package model

// Student is the single borrower of a session.
type Student struct {
	Name               string
	StudentID          string
	RegistrationNumber string

	// Borrowed holds catalog titles in checkout order; duplicates allowed.
	Borrowed []string
}

func NewStudent(name, id, regNo string) *Student {
	return &Student{Name: name, StudentID: id, RegistrationNumber: regNo, Borrowed: []string{}}
}

// RequestBook checks out the first available copy of title. On failure
// nothing changes and ErrUnavailable is returned.
func (s *Student) RequestBook(title string, c *Catalog) error {
	b := c.FindAvailable(title)
	if b == nil {
		return ErrUnavailable
	}
	b.Available = false
	s.Borrowed = append(s.Borrowed, b.Title)
	return nil
}

// ReturnBook gives back one borrowed copy of title. restocked is false when
// the title was borrowed but has since been removed from the catalog: the
// borrowed entry is still dropped, there is just no shelf to put it on.
func (s *Student) ReturnBook(title string, c *Catalog) (restocked bool, err error) {
	i := s.borrowedIndex(title)
	if i < 0 {
		return false, ErrNotBorrowed
	}
	held := s.Borrowed[i]
	s.Borrowed = append(s.Borrowed[:i], s.Borrowed[i+1:]...)

	if b := c.findLent(held); b != nil {
		b.Available = true
		return true, nil
	}
	return false, nil
}

// HasBorrowed reports whether title is currently held.
func (s *Student) HasBorrowed(title string) bool { return s.borrowedIndex(title) >= 0 }

func (s *Student) borrowedIndex(title string) int {
	for i, t := range s.Borrowed {
		if sameTitle(t, title) {
			return i
		}
	}
	return -1
}
