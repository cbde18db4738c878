package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/idilsaglam/library/internal/model"
)

const farewell = "Thank you for using Library Management System!"

// transition performs the effect of one input and returns the next state.
type transition func(m *Machine, input string) State

func goTo(next State) transition {
	return func(*Machine, string) State { return next }
}

// menuTransitions maps (menu state, trimmed choice) to a transition.
// A missing entry is an invalid choice and keeps the current state.
var menuTransitions = map[State]map[string]transition{
	StateMainMenu: {
		"1": (*Machine).enterStudentMode,
		"2": goTo(StateLibrarianMenu),
		"3": (*Machine).viewAllBooks,
		"4": (*Machine).exit,
	},
	StateStudentMenu: {
		"1": (*Machine).listAvailable,
		"2": goTo(StateReturnTitle),
		"3": (*Machine).showStudent,
		"4": goTo(StateMainMenu),
	},
	StateLibrarianMenu: {
		"1": goTo(StateAddTitle),
		"2": goTo(StateRemoveTitle),
		"3": (*Machine).showStats,
		"4": goTo(StateMainMenu),
	},
}

// inputTransitions consume an untrimmed free-text line.
var inputTransitions = map[State]transition{
	StateStudentName:  (*Machine).setStudentName,
	StateStudentID:    (*Machine).setStudentID,
	StateStudentRegNo: (*Machine).registerStudent,
	StateRequestTitle: (*Machine).requestBook,
	StateReturnTitle:  (*Machine).returnBook,
	StateAddTitle:     (*Machine).setNewTitle,
	StateAddAuthor:    (*Machine).addBook,
	StateRemoveTitle:  (*Machine).removeBook,
}

// Machine is the interaction state machine. It owns the session's only
// catalog and student; the zero value is not usable, see NewMachine.
type Machine struct {
	state     State
	catalog   *model.Catalog
	librarian model.Librarian

	// student is nil until the first entry into student mode.
	student *model.Student
	draft   model.Student
	// newTitle carries the title between the two add-book prompts.
	newTitle string

	out []Event
	log *slog.Logger
}

// NewMachine starts in the main menu. A nil logger discards.
func NewMachine(c *model.Catalog, l model.Librarian, log *slog.Logger) *Machine {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Machine{state: StateMainMenu, catalog: c, librarian: l, log: log}
}

func (m *Machine) State() State { return m.state }

// Done reports whether the machine reached Exit.
func (m *Machine) Done() bool { return m.state == StateExit }

func (m *Machine) Catalog() *model.Catalog { return m.catalog }

func (m *Machine) Librarian() model.Librarian { return m.librarian }

// Student returns the registered student, or nil before registration.
func (m *Machine) Student() *model.Student { return m.student }

// Prompt describes the input Feed expects next.
func (m *Machine) Prompt() Prompt {
	if menu, ok := menus[m.state]; ok {
		return Prompt{Menu: menu, Text: choosePrompt}
	}
	return Prompt{Text: inputPrompts[m.state]}
}

// Feed consumes one input line and returns what to show for it.
func (m *Machine) Feed(line string) []Event {
	m.out = nil
	from := m.state

	switch {
	case m.state == StateExit:
		return nil
	case menus[m.state] != nil:
		choice := strings.TrimSpace(line)
		t, ok := menuTransitions[m.state][choice]
		if !ok {
			m.log.Debug("Invalid menu choice", "state", m.state, "choice", choice)
			m.emit(failure(invalidChoice[m.state]))
			return m.out
		}
		m.state = t(m, choice)
	default:
		m.state = inputTransitions[m.state](m, line)
	}

	if from != m.state {
		m.log.Debug("Transition", "from", from, "to", m.state)
	}
	return m.out
}

// Quit moves to Exit from any state, as when input ends.
func (m *Machine) Quit() []Event {
	m.out = nil
	if m.state != StateExit {
		m.state = m.exit("")
	}
	return m.out
}

func (m *Machine) emit(e ...Event) { m.out = append(m.out, e...) }

// ---------------------------------------------------
// Main menu
// ---------------------------------------------------

// enterStudentMode registers the student on first entry only; later entries
// reuse the same record.
func (m *Machine) enterStudentMode(string) State {
	if m.student != nil {
		return StateStudentMenu
	}
	m.draft = model.Student{}
	return StateStudentName
}

func (m *Machine) viewAllBooks(string) State {
	m.emit(BookList{
		Heading:    "ALL LIBRARY BOOKS",
		Books:      m.catalog.Books(),
		ShowStatus: true,
		Empty:      "No books in library!",
	})
	return StateMainMenu
}

func (m *Machine) exit(string) State {
	m.emit(info(farewell))
	m.log.Info("Session ended", "books", m.catalog.Len())
	return StateExit
}

// ---------------------------------------------------
// Student registration
// ---------------------------------------------------

func (m *Machine) setStudentName(line string) State {
	m.draft.Name = line
	return StateStudentID
}

func (m *Machine) setStudentID(line string) State {
	m.draft.StudentID = line
	return StateStudentRegNo
}

func (m *Machine) registerStudent(line string) State {
	m.student = model.NewStudent(m.draft.Name, m.draft.StudentID, line)
	m.draft = model.Student{}
	m.log.Info("Student registered", "name", m.student.Name, "id", m.student.StudentID)
	m.emit(success("Student registered!"))
	return StateStudentMenu
}

// ---------------------------------------------------
// Student menu
// ---------------------------------------------------

func (m *Machine) listAvailable(string) State {
	m.emit(BookList{
		Heading: "Available Books",
		Books:   m.catalog.AvailableBooks(),
		Empty:   "No books available right now.",
	})
	return StateRequestTitle
}

func (m *Machine) requestBook(title string) State {
	if err := m.student.RequestBook(title, m.catalog); err != nil {
		m.log.Debug("Request refused", "title", title, "err", err)
		m.emit(failure(message(err)))
		return StateStudentMenu
	}
	m.log.Debug("Book issued", "title", title)
	m.emit(success("Book issued successfully!"))
	return StateStudentMenu
}

func (m *Machine) returnBook(title string) State {
	restocked, err := m.student.ReturnBook(title, m.catalog)
	switch {
	case err != nil:
		m.log.Debug("Return refused", "title", title, "err", err)
		m.emit(failure(message(err)))
	case !restocked:
		m.log.Warn("Returned book is no longer cataloged", "title", title)
		m.emit(
			success("Book returned successfully!"),
			warning(fmt.Sprintf("%q is no longer in the catalog, so it was not put back on the shelf.", title)),
		)
	default:
		m.log.Debug("Book returned", "title", title)
		m.emit(success("Book returned successfully!"))
	}
	return StateStudentMenu
}

func (m *Machine) showStudent(string) State {
	s := *m.student
	s.Borrowed = append([]string(nil), m.student.Borrowed...)
	m.emit(StudentCard{Student: s})
	return StateStudentMenu
}

// ---------------------------------------------------
// Librarian menu
// ---------------------------------------------------

func (m *Machine) setNewTitle(line string) State {
	m.newTitle = line
	return StateAddAuthor
}

func (m *Machine) addBook(author string) State {
	b := m.librarian.AddBook(m.newTitle, author, m.catalog)
	m.newTitle = ""
	m.log.Debug("Book added", "title", b.Title, "author", b.Author)
	m.emit(success("Book added successfully!"))
	return StateLibrarianMenu
}

func (m *Machine) removeBook(title string) State {
	b, err := m.librarian.RemoveBook(title, m.catalog)
	if err != nil {
		m.log.Debug("Remove refused", "title", title, "err", err)
		m.emit(failure(message(err)))
		return StateLibrarianMenu
	}
	m.log.Debug("Book removed", "title", b.Title)
	m.emit(success("Book removed successfully!"))
	if !b.Available {
		m.emit(warning(fmt.Sprintf("%q was checked out; it stays on the student's borrowed list.", b.Title)))
	}
	return StateLibrarianMenu
}

func (m *Machine) showStats(string) State {
	m.emit(LibrarianCard{Librarian: m.librarian, Counts: m.librarian.BookCount(m.catalog)})
	return StateLibrarianMenu
}

// message is the console text for a domain error.
func message(err error) string {
	switch {
	case errors.Is(err, model.ErrUnavailable):
		return "Book not available or not found!"
	case errors.Is(err, model.ErrNotBorrowed):
		return "Book not found in your borrowed list!"
	case errors.Is(err, model.ErrNotFound):
		return "Book not found!"
	}
	return err.Error()
}
