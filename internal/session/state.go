package session

// State is a node of the interaction state machine.
type State int

const (
	StateMainMenu State = iota
	StateStudentMenu
	StateLibrarianMenu

	// Free-text input states.
	StateStudentName
	StateStudentID
	StateStudentRegNo
	StateRequestTitle
	StateReturnTitle
	StateAddTitle
	StateAddAuthor
	StateRemoveTitle

	StateExit
)

var stateNames = [...]string{
	StateMainMenu:      "main-menu",
	StateStudentMenu:   "student-menu",
	StateLibrarianMenu: "librarian-menu",
	StateStudentName:   "student-name",
	StateStudentID:     "student-id",
	StateStudentRegNo:  "student-regno",
	StateRequestTitle:  "request-title",
	StateReturnTitle:   "return-title",
	StateAddTitle:      "add-title",
	StateAddAuthor:     "add-author",
	StateRemoveTitle:   "remove-title",
	StateExit:          "exit",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Menu is what a menu state shows before asking for a choice.
// Options are numbered from 1.
type Menu struct {
	Title   string
	Options []string
}

// Prompt describes the next input the machine expects.
type Prompt struct {
	Menu *Menu // nil for free-text input
	Text string
}

const choosePrompt = "Choose an option: "

var menus = map[State]*Menu{
	StateMainMenu: {
		Title:   "MAIN MENU",
		Options: []string{"Student Mode", "Librarian Mode", "View All Books", "Exit"},
	},
	StateStudentMenu: {
		Title:   "STUDENT MENU",
		Options: []string{"Request a Book", "Return a Book", "View My Books", "Back to Main Menu"},
	},
	StateLibrarianMenu: {
		Title:   "LIBRARIAN MENU",
		Options: []string{"Add a Book", "Remove a Book", "View Library Stats", "Back to Main Menu"},
	},
}

var inputPrompts = map[State]string{
	StateStudentName:  "Enter Student Name: ",
	StateStudentID:    "Enter Student ID: ",
	StateStudentRegNo: "Enter Registration Number: ",
	StateRequestTitle: "Enter book title to request: ",
	StateReturnTitle:  "Enter book title to return: ",
	StateAddTitle:     "Enter book title: ",
	StateAddAuthor:    "Enter author name: ",
	StateRemoveTitle:  "Enter book title to remove: ",
}

// invalidChoice is the message for a menu choice with no transition.
var invalidChoice = map[State]string{
	StateMainMenu:      "Invalid choice! Please try again.",
	StateStudentMenu:   "Invalid choice!",
	StateLibrarianMenu: "Invalid choice!",
}
