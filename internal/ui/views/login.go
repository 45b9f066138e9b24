package views

import (
	"strings"
)

// LoginView is the state of the login form
type LoginView struct {
	BaseURL  string
	Username string // rendered text input
	Password string // rendered text input
	Focus    int    // 0 username, 1 password
	Busy     bool
	Err      string
}

// RenderLogin draws the login form
func (r *Renderer) RenderLogin(v LoginView) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("eduadmin"))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(v.BaseURL))
	b.WriteString("\n\n")

	labels := []string{"Username", "Password"}
	inputs := []string{v.Username, v.Password}
	for i, label := range labels {
		marker := "  "
		if i == v.Focus {
			marker = r.styles.Highlight.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(r.styles.CardTitle.Render(pad(label, 10)))
		b.WriteString(inputs[i])
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case v.Busy:
		b.WriteString(r.styles.StatusLoading.Render("Signing in…"))
	case v.Err != "":
		b.WriteString(r.styles.StatusError.Render(v.Err))
	default:
		b.WriteString(r.styles.Help.Render("tab: next field • enter: sign in • ctrl+c: quit"))
	}

	return r.styles.Card.Padding(1, 3).Render(b.String())
}
