package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	inputtypes "eduadmin/internal/ui/input/types"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys inputtypes.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{keys: inputtypes.Keys}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	k := r.keys
	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Assignment tab", []key.Binding{k.Up, k.Down, k.Left, k.Right, k.EditUsers, k.EditCourses, k.Remove, k.ClearDraft, k.Assign, k.Refresh}},
		{"Progress tab", []key.Binding{k.NextPage, k.PrevPage, k.Rows, k.Sort, k.Report, k.Refresh}},
		{"Selection dialog", []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.Left, k.Right, k.SwitchSide, k.Toggle, k.ToggleAll, k.MoveRight, k.MoveLeft, k.Search, k.Branches, k.Save, k.Cancel}},
		{"Other", []key.Binding{k.AssignTab, k.ProgressTab, k.Help, k.Quit}},
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("eduadmin help"))
	help.WriteString("\n")

	for _, s := range sections {
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, b := range s.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  In the users dialog, b narrows the available list to the chosen branches."))
	help.WriteString("\n")

	return help.String()
}

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager shows content using ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
