package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/library/internal/model"
	"github.com/idilsaglam/library/internal/ui"
)

// RenderWelcome prints the startup banner and greeting.
func RenderWelcome(p *ui.Printer) {
	p.Banner("LIBRARY MANAGEMENT SYSTEM", "Interactive Demo")
	p.Styled(p.Theme().Success, "Welcome to the Library Management System!")
	p.Line("This system allows students to request and return books.")
	p.Line("Librarians can manage the library inventory.")
	p.Blank()
}

// RenderMenu prints a menu header and its numbered options.
func RenderMenu(p *ui.Printer, menu *Menu) {
	p.Header(menu.Title)
	for i, opt := range menu.Options {
		p.Line(fmt.Sprintf("%d. %s", i+1, opt))
	}
}

// Render prints events in order.
func Render(p *ui.Printer, events []Event) {
	t := p.Theme()
	for _, ev := range events {
		switch e := ev.(type) {
		case Notice:
			switch e.Level {
			case LevelSuccess:
				p.OK(e.Text)
			case LevelWarning:
				p.Warn(e.Text)
			case LevelFailure:
				p.Fail(e.Text)
			default:
				p.Styled(t.Accent, e.Text)
			}
		case BookList:
			renderBooks(p, e)
		case StudentCard:
			s := e.Student
			p.Blank()
			p.Styled(t.Student, fmt.Sprintf("Name: %s | ID: %s | Reg#: %s", s.Name, s.StudentID, s.RegistrationNumber))
			p.Line("Borrowed Books: [" + strings.Join(s.Borrowed, ", ") + "]")
		case LibrarianCard:
			l, n := e.Librarian, e.Counts
			p.Blank()
			p.Styled(t.Librarian, fmt.Sprintf("Librarian: %s | Employee ID: %s", l.Name, l.EmployeeID))
			p.Styled(t.Stats, fmt.Sprintf("Total Books: %d | Available: %d | Borrowed: %d", n.Total, n.Available, n.Borrowed))
		}
	}
}

func renderBooks(p *ui.Printer, l BookList) {
	p.Blank()
	p.Styled(p.Theme().Header, "--- "+l.Heading+" ---")
	if len(l.Books) == 0 {
		p.Styled(p.Theme().Muted, l.Empty)
		return
	}
	header := []string{"#", "Title", "Author"}
	if l.ShowStatus {
		header = append(header, "Status")
	}
	p.Table(header, bookRows(l.Books, l.ShowStatus))
}

func bookRows(books []model.Book, status bool) [][]string {
	rows := make([][]string, 0, len(books))
	for i, b := range books {
		row := []string{strconv.Itoa(i + 1), b.Title, b.Author}
		if status {
			row = append(row, b.Status())
		}
		rows = append(rows, row)
	}
	return rows
}
