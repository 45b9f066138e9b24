package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding of the console; modes match against it and the
// footer renders its help
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	Left       key.Binding
	Right      key.Binding
	SwitchSide key.Binding
	Toggle     key.Binding
	ToggleAll  key.Binding
	MoveRight  key.Binding
	MoveLeft   key.Binding
	Search     key.Binding
	Branches   key.Binding
	Save       key.Binding
	Cancel     key.Binding

	EditUsers   key.Binding
	EditCourses key.Binding
	Remove      key.Binding
	Assign      key.Binding
	ClearDraft  key.Binding
	Refresh     key.Binding
	AssignTab   key.Binding
	ProgressTab key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	Rows        key.Binding
	Sort        key.Binding
	Report      key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// Keys is the console's key map
var Keys = KeyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:     key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown:   key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "available")),
	Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "selected")),
	SwitchSide: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "other list")),
	Toggle:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "check")),
	ToggleAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "check all")),
	MoveRight:  key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "move right")),
	MoveLeft:   key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "move left")),
	Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Branches:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "branches")),
	Save:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

	EditUsers:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "users")),
	EditCourses: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "courses")),
	Remove:      key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
	Assign:      key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "assign")),
	ClearDraft:  key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear")),
	Refresh:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload")),
	AssignTab:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "assignment")),
	ProgressTab: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "progress")),
	NextPage:    key.NewBinding(key.WithKeys("n", "]"), key.WithHelp("n", "next page")),
	PrevPage:    key.NewBinding(key.WithKeys("p", "["), key.WithHelp("p", "prev page")),
	Rows:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rows")),
	Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Report:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "full report")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
}

// DialogHelp is the footer of the transfer dialog
func (k KeyMap) DialogHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.ToggleAll, k.MoveRight, k.MoveLeft, k.SwitchSide, k.Search, k.Save, k.Cancel}
}

// AssignHelp is the footer of the assignment tab
func (k KeyMap) AssignHelp() []key.Binding {
	return []key.Binding{k.EditUsers, k.EditCourses, k.Remove, k.Assign, k.ProgressTab, k.Help, k.Quit}
}

// ProgressHelp is the footer of the progress tab
func (k KeyMap) ProgressHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.PrevPage, k.Rows, k.Sort, k.Report, k.Refresh, k.AssignTab, k.Help, k.Quit}
}
