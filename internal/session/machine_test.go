package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/library/internal/model"
	"github.com/idilsaglam/library/internal/session"
)

func newMachine(books ...model.Book) *session.Machine {
	return session.NewMachine(
		model.NewCatalog(books...),
		model.NewLibrarian("Mr. John", "LIB001"),
		nil,
	)
}

func twoBooks() []model.Book {
	return []model.Book{
		model.NewBook("Java Programming", "Herbert Schildt"),
		model.NewBook("Algorithms", "Robert Sedgewick"),
	}
}

// feed sends every line and returns the events of the last one.
func feed(m *session.Machine, lines ...string) []session.Event {
	var out []session.Event
	for _, l := range lines {
		out = m.Feed(l)
	}
	return out
}

func registered(t *testing.T, books ...model.Book) *session.Machine {
	t.Helper()
	m := newMachine(books...)
	ev := feed(m, "1", "Ada Lovelace", "S-1", "REG-1")
	require.Equal(t, []session.Event{session.Notice{Level: session.LevelSuccess, Text: "Student registered!"}}, ev)
	require.Equal(t, session.StateStudentMenu, m.State())
	return m
}

func Test_Machine_StartsInMainMenu(t *testing.T) {
	m := newMachine()

	p := m.Prompt()

	assert.Equal(t, session.StateMainMenu, m.State())
	require.NotNil(t, p.Menu)
	assert.Equal(t, "MAIN MENU", p.Menu.Title)
	assert.Equal(t, []string{"Student Mode", "Librarian Mode", "View All Books", "Exit"}, p.Menu.Options)
	assert.Equal(t, "Choose an option: ", p.Text)
	assert.Nil(t, m.Student())
}

func Test_Machine_InvalidChoices(t *testing.T) {
	tests := []struct {
		name  string
		setup []string
		state session.State
		want  string
	}{
		{"main", nil, session.StateMainMenu, "Invalid choice! Please try again."},
		{"librarian", []string{"2"}, session.StateLibrarianMenu, "Invalid choice!"},
		{"student", []string{"1", "a", "b", "c"}, session.StateStudentMenu, "Invalid choice!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMachine(twoBooks()...)
			feed(m, tt.setup...)
			before := m.Catalog().Books()

			for _, in := range []string{"", "5", "0", "exit", "1 2"} {
				ev := m.Feed(in)
				assert.Equal(t, []session.Event{session.Notice{Level: session.LevelFailure, Text: tt.want}}, ev, "input %q", in)
				assert.Equal(t, tt.state, m.State())
			}
			assert.Equal(t, before, m.Catalog().Books())
		})
	}
}

func Test_Machine_MenuChoicesAreTrimmed(t *testing.T) {
	m := newMachine()

	m.Feed("  2\t")

	assert.Equal(t, session.StateLibrarianMenu, m.State())
}

func Test_Machine_StudentRegisteredOnlyOnce(t *testing.T) {
	m := registered(t)
	first := m.Student()

	feed(m, "4", "1")

	assert.Equal(t, session.StateStudentMenu, m.State())
	assert.Same(t, first, m.Student())
	assert.Equal(t, "Ada Lovelace", first.Name)
	assert.Equal(t, "S-1", first.StudentID)
	assert.Equal(t, "REG-1", first.RegistrationNumber)
}

func Test_Machine_RegistrationPrompts(t *testing.T) {
	m := newMachine()

	m.Feed("1")
	assert.Equal(t, session.Prompt{Text: "Enter Student Name: "}, m.Prompt())
	m.Feed("  Ada  ")
	assert.Equal(t, session.Prompt{Text: "Enter Student ID: "}, m.Prompt())
	m.Feed("S-1")
	assert.Equal(t, session.Prompt{Text: "Enter Registration Number: "}, m.Prompt())
	m.Feed("R-1")

	// free text is kept verbatim
	assert.Equal(t, "  Ada  ", m.Student().Name)
}

func Test_Machine_RequestListsAvailableBooks(t *testing.T) {
	m := registered(t, twoBooks()...)
	feed(m, "1", "Algorithms")

	ev := m.Feed("1")

	require.Len(t, ev, 1)
	list := ev[0].(session.BookList)
	assert.Equal(t, "Available Books", list.Heading)
	assert.False(t, list.ShowStatus)
	assert.Equal(t, []model.Book{model.NewBook("Java Programming", "Herbert Schildt")}, list.Books)
	assert.Equal(t, session.StateRequestTitle, m.State())
}

func Test_Machine_Scenario(t *testing.T) {
	m := registered(t, twoBooks()...)
	c := m.Catalog()

	ev := feed(m, "1", "Algorithms")
	assert.Equal(t, []session.Event{session.Notice{Level: session.LevelSuccess, Text: "Book issued successfully!"}}, ev)
	assert.False(t, c.Books()[1].Available)
	assert.Equal(t, []string{"Algorithms"}, m.Student().Borrowed)

	ev = feed(m, "1", "Algorithms")
	assert.Equal(t, []session.Event{session.Notice{Level: session.LevelFailure, Text: "Book not available or not found!"}}, ev)
	assert.Equal(t, []string{"Algorithms"}, m.Student().Borrowed)

	ev = feed(m, "2", "Algorithms")
	assert.Equal(t, []session.Event{session.Notice{Level: session.LevelSuccess, Text: "Book returned successfully!"}}, ev)
	assert.True(t, c.Books()[1].Available)
	assert.Empty(t, m.Student().Borrowed)

	ev = feed(m, "2", "Algorithms")
	assert.Equal(t, []session.Event{session.Notice{Level: session.LevelFailure, Text: "Book not found in your borrowed list!"}}, ev)

	ev = feed(m, "4", "2", "2", "Java Programming")
	assert.Equal(t, []session.Event{session.Notice{Level: session.LevelSuccess, Text: "Book removed successfully!"}}, ev)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "Algorithms", c.Books()[0].Title)

	ev = feed(m, "2", "Java Programming")
	assert.Equal(t, []session.Event{session.Notice{Level: session.LevelFailure, Text: "Book not found!"}}, ev)
	assert.Equal(t, session.StateLibrarianMenu, m.State())
}

func Test_Machine_AddBookThenStats(t *testing.T) {
	m := newMachine()

	feed(m, "2", "1", "Refactoring")
	assert.Equal(t, session.Prompt{Text: "Enter author name: "}, m.Prompt())
	ev := m.Feed("Martin Fowler")

	assert.Equal(t, []session.Event{session.Notice{Level: session.LevelSuccess, Text: "Book added successfully!"}}, ev)
	assert.Equal(t, []model.Book{model.NewBook("Refactoring", "Martin Fowler")}, m.Catalog().Books())

	ev = m.Feed("3")
	assert.Equal(t, []session.Event{session.LibrarianCard{
		Librarian: model.NewLibrarian("Mr. John", "LIB001"),
		Counts:    model.Counts{Total: 1, Available: 1},
	}}, ev)
}

func Test_Machine_ViewAllBooks(t *testing.T) {
	m := newMachine()

	ev := m.Feed("3")

	require.Len(t, ev, 1)
	list := ev[0].(session.BookList)
	assert.Empty(t, list.Books)
	assert.Equal(t, "No books in library!", list.Empty)
	assert.True(t, list.ShowStatus)
	assert.Equal(t, session.StateMainMenu, m.State())
}

func Test_Machine_StudentCardIsASnapshot(t *testing.T) {
	m := registered(t, twoBooks()...)
	feed(m, "1", "java programming")

	ev := m.Feed("3")
	require.Len(t, ev, 1)
	card := ev[0].(session.StudentCard)
	assert.Equal(t, []string{"Java Programming"}, card.Student.Borrowed)

	feed(m, "2", "Java Programming")
	assert.Equal(t, []string{"Java Programming"}, card.Student.Borrowed)
}

func Test_Machine_RemoveLentBookWarnsAndOrphanReturnIsReported(t *testing.T) {
	m := registered(t, twoBooks()...)
	feed(m, "1", "Algorithms", "4")

	ev := feed(m, "2", "2", "algorithms")
	require.Len(t, ev, 2)
	assert.Equal(t, session.LevelSuccess, ev[0].(session.Notice).Level)
	assert.Equal(t, session.LevelWarning, ev[1].(session.Notice).Level)
	assert.Contains(t, ev[1].(session.Notice).Text, `"Algorithms" was checked out`)

	ev = feed(m, "4", "1", "2", "Algorithms")
	require.Len(t, ev, 2)
	assert.Equal(t, session.Notice{Level: session.LevelSuccess, Text: "Book returned successfully!"}, ev[0])
	assert.Equal(t, session.LevelWarning, ev[1].(session.Notice).Level)
	assert.Contains(t, ev[1].(session.Notice).Text, "no longer in the catalog")
	assert.Empty(t, m.Student().Borrowed)
	assert.Equal(t, model.Counts{Total: 1, Available: 1}, m.Catalog().Counts())
}

func Test_Machine_Exit(t *testing.T) {
	m := newMachine()

	ev := m.Feed("4")

	assert.True(t, m.Done())
	assert.Equal(t, []session.Event{session.Notice{Level: session.LevelInfo, Text: "Thank you for using Library Management System!"}}, ev)
	assert.Nil(t, m.Feed("1"))
	assert.Nil(t, m.Quit())
}

func Test_Machine_QuitFromInputState(t *testing.T) {
	m := newMachine()
	feed(m, "2", "1")
	require.Equal(t, session.StateAddTitle, m.State())

	ev := m.Quit()

	assert.True(t, m.Done())
	assert.Len(t, ev, 1)
	assert.Zero(t, m.Catalog().Len())
}

func Test_State_String(t *testing.T) {
	assert.Equal(t, "main-menu", session.StateMainMenu.String())
	assert.Equal(t, "exit", session.StateExit.String())
	assert.Equal(t, "unknown", session.State(99).String())
}
