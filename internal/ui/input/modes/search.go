package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"eduadmin/internal/ui/input/types"
)

// SearchMode edits the search term of the focused dialog list; every
// keystroke is applied live
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, types.ModeDialog, "search", "Search: ", ti),
	}
}
