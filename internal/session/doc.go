// Package session runs the library's menu-driven interaction.
//
// # Machine
//
// Machine is a pure state machine: it owns the catalog, the librarian and
// the (lazily registered) student, consumes one line of input per Feed call
// and answers with a list of Events. It never performs I/O.
//
//	m := session.NewMachine(catalog, librarian, logger)
//	for !m.Done() {
//	    p := m.Prompt()           // menu to show and prompt text
//	    events := m.Feed(line)    // one line of user input
//	}
//
// Menu states dispatch through a table keyed by (state, trimmed choice);
// input states (names, titles, authors) take the raw line.
//
// # Session
//
// Session is the line-oriented front end: it renders prompts and events
// with a ui.Printer and reads lines from a Prompter, which is liner on an
// interactive terminal and a plain buffered reader otherwise.
package session
