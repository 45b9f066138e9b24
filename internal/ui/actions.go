package ui

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"eduadmin/internal/assign"
	"eduadmin/internal/catalog"
	"eduadmin/internal/domain"
	"eduadmin/internal/eventbus"
	"eduadmin/internal/ui/input/modes"
	inputtypes "eduadmin/internal/ui/input/types"
	"eduadmin/internal/ui/logic"
	"eduadmin/internal/ui/views"
)

// processAction executes an action and returns any resulting command
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		if a.Force || !m.assigning {
			return tea.Quit
		}
		return m.setStatus("Assignment in progress, press ctrl+c to quit anyway", views.StatusError)

	case inputtypes.ToggleHelpAction:
		return m.pagerCmd("help", m.helpRenderer.RenderHelpContent())

	case inputtypes.SwitchTabAction:
		return m.switchTab(a.Tab)

	// Dialog actions
	case inputtypes.OpenDialogAction:
		return m.openDialog(catalog.Kind(a.Kind))

	case inputtypes.NavigateAction, inputtypes.SwitchSideAction,
		inputtypes.ToggleAction, inputtypes.ToggleAllAction,
		inputtypes.MoveRightAction, inputtypes.MoveLeftAction:
		if d := m.activeDialog(); d != nil {
			d.Apply(action)
			return nil
		}
		m.applyPanel(action)
		return nil

	case inputtypes.UpdateTextAction:
		if d := m.activeDialog(); d != nil {
			d.Search(a.Text)
		}
		return nil

	case inputtypes.SubmitTextAction:
		if d := m.activeDialog(); d != nil {
			d.Search(a.Text)
		}
		return nil

	case inputtypes.CancelTextAction:
		if d := m.activeDialog(); d != nil {
			d.Search("")
		}
		return nil

	case inputtypes.SaveDialogAction:
		if d := m.activeDialog(); d != nil {
			d.Save()
			m.closeDialog(d)
		}
		return nil

	case inputtypes.CancelDialogAction:
		if d := m.activeDialog(); d != nil {
			d.Cancel()
			m.closeDialog(d)
		}
		return nil

	// Assignment tab
	case inputtypes.RemoveItemAction:
		m.removeCurrent()
		return nil

	case inputtypes.ClearDraftAction:
		if m.draft.Total() == 0 {
			return nil
		}
		m.draft.Clear()
		m.syncPanel()
		return m.setStatus("Selection cleared", views.StatusInfo)

	case inputtypes.AssignAction:
		return m.startAssign()

	case inputtypes.RefreshAction:
		if m.tab == modes.TabProgress {
			return m.reloadProgress()
		}
		if m.loadingDir {
			return nil
		}
		m.loadingDir = true
		return m.loadDirectoryCmd()

	// Progress tab
	case inputtypes.PageAction:
		if a.Delta > 0 {
			m.rows.NextPage()
		} else {
			m.rows.PrevPage()
		}
		return nil

	case inputtypes.CycleRowsAction:
		n := m.rows.CycleRowsPerPage()
		m.publish(eventbus.ConfigChangedEvent{RowsPerPage: n})
		return m.setStatus(fmt.Sprintf("Showing %d rows per page", n), views.StatusInfo)

	case inputtypes.CycleSortAction:
		m.sortMode = m.sortMode.Next()
		logic.SortProgress(m.progress, m.sortMode)
		return m.setStatus("Sorted by "+m.sortMode.String(), views.StatusInfo)

	case inputtypes.OpenReportAction:
		if len(m.progress) == 0 {
			return m.setStatus("No progress data to show", views.StatusInfo)
		}
		return m.pagerCmd("report", m.renderer.Progress().RenderPlain(m.progress))
	}

	return nil
}

func (m *Model) switchTab(tab int) tea.Cmd {
	m.tab = tab
	if tab == modes.TabProgress && !m.progressLoaded && !m.progressLoading {
		return m.reloadProgress()
	}
	return nil
}

func (m *Model) reloadProgress() tea.Cmd {
	if m.progressLoading {
		return nil
	}
	m.progressLoading = true
	return m.loadProgressCmd()
}

// openDialog pushes a transfer dialog of the given kind
func (m *Model) openDialog(kind catalog.Kind) tea.Cmd {
	if kind != catalog.KindBranch && !m.directoryLoaded {
		return m.setStatus("Users and courses are still loading", views.StatusInfo)
	}

	var (
		d   transferDialog
		err error
	)
	switch kind {
	case catalog.KindProfile:
		d, err = NewDialog[int](DialogOptions[domain.Profile]{
			Kind:       kind,
			Title:      "Select users",
			Schema:     catalog.ProfileSchema(),
			Describe:   catalog.DescribeProfile,
			Strict:     m.config.Strict,
			ListHeight: m.listHeight(),
			OnSave: func(id string, items []domain.Profile) {
				m.draft.SetUsers(items)
				m.syncPanel()
				m.publish(eventbus.SelectionSavedEvent{DialogID: id, Kind: string(kind), Count: len(items)})
			},
			OnClose: m.selectionCancelled(kind),
		}, m.profiles, m.draft.Users)

	case catalog.KindCourse:
		d, err = NewDialog[int](DialogOptions[domain.Course]{
			Kind:       kind,
			Title:      "Select courses",
			Schema:     catalog.CourseSchema(),
			Describe:   catalog.DescribeCourse,
			Strict:     m.config.Strict,
			ListHeight: m.listHeight(),
			OnSave: func(id string, items []domain.Course) {
				m.draft.SetCourses(items)
				m.syncPanel()
				m.publish(eventbus.SelectionSavedEvent{DialogID: id, Kind: string(kind), Count: len(items)})
			},
			OnClose: m.selectionCancelled(kind),
		}, m.courses, m.draft.Courses)

	case catalog.KindBranch:
		parent := m.activeDialog()
		if parent == nil || parent.Kind() != catalog.KindProfile {
			return nil
		}
		d, err = NewDialog[string](DialogOptions[domain.Choice]{
			Kind:       kind,
			Title:      "Filter by branch",
			Schema:     catalog.BranchSchema(),
			Describe:   catalog.DescribeBranch,
			Strict:     true,
			ListHeight: m.listHeight(),
			OnSave: func(id string, items []domain.Choice) {
				codes := catalog.Codes(items)
				if parent.SetCategoryFilter(codes) {
					log.Printf("Dialog %s: branch filter %v", parent.ID(), codes)
				}
				m.publish(eventbus.SelectionSavedEvent{DialogID: id, Kind: string(kind), Count: len(items)})
			},
			OnClose: m.selectionCancelled(kind),
		}, domain.BranchChoices, catalog.BranchesByCode(parent.Categories()))

	default:
		return nil
	}

	if err != nil {
		return m.fail("Cannot open selection", err)
	}

	m.dialogs = append(m.dialogs, d)
	m.inputHandler.ChangeMode(inputtypes.ModeDialog, "")
	return nil
}

func (m *Model) selectionCancelled(kind catalog.Kind) func(string) {
	return func(id string) {
		m.publish(eventbus.SelectionCancelledEvent{DialogID: id, Kind: string(kind)})
	}
}

// closeDialog pops d and returns input to whatever is below it
func (m *Model) closeDialog(d transferDialog) {
	for i := len(m.dialogs) - 1; i >= 0; i-- {
		if m.dialogs[i] == d {
			m.dialogs = append(m.dialogs[:i], m.dialogs[i+1:]...)
			break
		}
	}
	if len(m.dialogs) > 0 {
		m.inputHandler.ChangeMode(inputtypes.ModeDialog, "")
	} else {
		m.inputHandler.ChangeMode(inputtypes.ModeNormal, "")
	}
}

// applyPanel moves the cursor of the assignment tab
func (m *Model) applyPanel(action inputtypes.Action) {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.panelNav[m.panelSide].Navigate(a.Direction)
	case inputtypes.SwitchSideAction:
		switch a.Side {
		case "left":
			m.panelSide = panelUsers
		case "right":
			m.panelSide = panelCourses
		default:
			m.panelSide = 1 - m.panelSide
		}
	}
}

func (m *Model) removeCurrent() {
	i := m.panelNav[m.panelSide].GetSelectedIndex()
	switch m.panelSide {
	case panelUsers:
		if i >= 0 && i < len(m.draft.Users) {
			m.draft.RemoveUser(m.draft.Users[i].ID)
		}
	case panelCourses:
		if i >= 0 && i < len(m.draft.Courses) {
			m.draft.RemoveCourse(m.draft.Courses[i].ID)
		}
	}
	m.syncPanel()
}

func (m *Model) startAssign() tea.Cmd {
	if m.assigning {
		return nil
	}
	if !m.draft.Ready() {
		return m.setStatus(assign.ErrNothingToAssign.Error(), views.StatusError)
	}
	m.assigning = true
	d := assign.Draft{}
	d.SetUsers(m.draft.Users)
	d.SetCourses(m.draft.Courses)
	log.Printf("Assign: %d users x %d courses", len(d.Users), len(d.Courses))
	return tea.Batch(
		m.setStatus(fmt.Sprintf("Assigning %d courses…", d.Total()), views.StatusLoading),
		m.assignCmd(d),
	)
}

func (m *Model) assignView() views.AssignView {
	users := make([]views.Row, len(m.draft.Users))
	for i, p := range m.draft.Users {
		disp := catalog.DescribeProfile(p)
		users[i] = views.Row{Primary: disp.Primary, Secondary: disp.Secondary}
	}
	courses := make([]views.Row, len(m.draft.Courses))
	for i, c := range m.draft.Courses {
		disp := catalog.DescribeCourse(c)
		courses[i] = views.Row{Primary: disp.Primary, Secondary: disp.Secondary}
	}

	return views.AssignView{
		Users:   m.panelList(panelUsers, fmt.Sprintf("Users (%d)", len(users)), "Press u to choose users", users),
		Courses: m.panelList(panelCourses, fmt.Sprintf("Courses (%d)", len(courses)), "Press c to choose courses", courses),
		Pairs:   len(m.draft.Users) * len(m.draft.Courses),
	}
}

func (m *Model) panelList(side int, title, empty string, rows []views.Row) views.ListView {
	nav := m.panelNav[side]
	start, end := nav.Window()
	cursor := -1
	if end > start && side == m.panelSide {
		cursor = nav.GetSelectedIndex() - start
	}
	return views.ListView{
		Title:   title,
		Rows:    rows[start:end],
		Cursor:  cursor,
		Focused: side == m.panelSide,
		Empty:   empty,
		Above:   start,
		Below:   len(rows) - end,
		Height:  nav.Height(),
	}
}

func (m *Model) progressView() views.ProgressView {
	v := views.ProgressView{
		Loading: m.progressLoading && !m.progressLoaded,
		Err:     m.progressErr,
		Total:   len(m.progress),
		Pager:   m.rows.View(),
		Sort:    m.sortMode.String(),
	}
	start, end := m.rows.Bounds()
	if start < end && end <= len(m.progress) {
		v.Rows = m.progress[start:end]
	}
	return v
}
