package session

import "github.com/idilsaglam/library/internal/model"

// Event is one piece of output produced by a transition. Events carry
// plain data; front ends decide how to style them.
type Event interface{ event() }

// Level grades a Notice.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelFailure
)

// Notice is a one-line message.
type Notice struct {
	Level Level
	Text  string
}

// BookList is a numbered listing of books.
type BookList struct {
	Heading    string
	Books      []model.Book
	ShowStatus bool
	Empty      string // shown instead of a table when Books is empty
}

// StudentCard shows the registered student and what they hold.
type StudentCard struct {
	Student model.Student
}

// LibrarianCard shows the librarian and the catalog counts.
type LibrarianCard struct {
	Librarian model.Librarian
	Counts    model.Counts
}

func (Notice) event()        {}
func (BookList) event()      {}
func (StudentCard) event()   {}
func (LibrarianCard) event() {}

func info(text string) Notice    { return Notice{Level: LevelInfo, Text: text} }
func success(text string) Notice { return Notice{Level: LevelSuccess, Text: text} }
func warning(text string) Notice { return Notice{Level: LevelWarning, Text: text} }
func failure(text string) Notice { return Notice{Level: LevelFailure, Text: text} }
