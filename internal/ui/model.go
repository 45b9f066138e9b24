package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"eduadmin/internal/assign"
	"eduadmin/internal/catalog"
	"eduadmin/internal/config"
	"eduadmin/internal/domain"
	"eduadmin/internal/eventbus"
	"eduadmin/internal/session"
	"eduadmin/internal/ui/input"
	"eduadmin/internal/ui/input/modes"
	inputtypes "eduadmin/internal/ui/input/types"
	"eduadmin/internal/ui/logic"
	"eduadmin/internal/ui/views"
)

const statusTimeout = 5 * time.Second

// Assignment panel lists
const (
	panelUsers = iota
	panelCourses
)

// Model represents the application state
type Model struct {
	ctx     context.Context
	bus     eventbus.EventBus
	config  *config.Config
	portal  Portal
	runner  *assign.Runner
	program *tea.Program
	pager   *PagerOps

	width  int
	height int

	login   *loginForm
	session *session.Session

	// Directory of the portal
	profiles        []domain.Profile
	courses         []domain.Course
	directoryLoaded bool
	loadingDir      bool

	// Assignment tab
	tab       int
	draft     assign.Draft
	panelSide int
	panelNav  [2]*logic.Navigator
	assigning bool

	// Open transfer dialogs, the last one is active
	dialogs []transferDialog

	// Progress tab
	progress        []domain.Progress
	progressLoaded  bool
	progressLoading bool
	progressErr     string
	rows            *logic.Pager
	sortMode        logic.SortMode

	inputHandler *input.Handler
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	help         help.Model

	statusMessage string
	statusKind    views.StatusKind
	statusSeq     int
	inPagerMode   bool
}

// Options carries what NewModel needs besides the config
type Options struct {
	Context  context.Context
	Bus      eventbus.EventBus
	Portal   Portal
	BaseURL  string
	Username string
	Password string // non-empty signs in on start
}

// NewModel creates a new application model
func NewModel(cfg *config.Config, opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := &Model{
		ctx:          ctx,
		bus:          opts.Bus,
		config:       cfg,
		portal:       opts.Portal,
		runner:       assign.NewRunner(opts.Portal, cfg.Concurrency),
		pager:        NewPagerOps(),
		login:        newLoginForm(opts.BaseURL, opts.Username, opts.Password),
		panelNav:     [2]*logic.Navigator{logic.NewNavigator(cfg.UISettings.ListHeight), logic.NewNavigator(cfg.UISettings.ListHeight)},
		rows:         logic.NewPager(cfg.UISettings.RowsPerPage),
		sortMode:     logic.SortByUser,
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		help:         help.New(),
	}
	return m
}

// SetProgram sets the tea.Program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// SignedIn reports whether a staff session is open
func (m *Model) SignedIn() bool {
	return m.session != nil
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	if m.login.ready() {
		return m.submitLogin()
	}
	return m.login.focusCmd()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateListHeights()
		return m, nil

	case tea.KeyMsg:
		if m.session == nil {
			return m.updateLogin(msg)
		}

		// Handle input through the input handler
		actions, cmd := m.inputHandler.HandleKey(msg, &modelContext{m: m})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case loginResultMsg, directoryLoadedMsg, progressLoadedMsg, assignDoneMsg,
		pagerMsg, pauseRenderingMsg, resumeRenderingMsg, clearStatusMsg:
		return m.handleNonKeyboardMsg(msg)

	default:
		// Cursor blinks and other text input messages
		if m.session == nil {
			return m, m.login.update(msg)
		}
		return m, m.inputHandler.Update(msg)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		return m, m.handleLoginResult(msg)

	case directoryLoadedMsg:
		m.loadingDir = false
		if msg.err != nil {
			return m, m.fail("Failed to load users and courses", msg.err)
		}
		m.profiles = msg.profiles
		m.courses = msg.courses
		m.directoryLoaded = true
		log.Printf("Directory: %d profiles, %d courses", len(m.profiles), len(m.courses))
		m.publish(eventbus.DirectoryLoadedEvent{Profiles: len(m.profiles), Courses: len(m.courses)})
		return m, m.setStatus(fmt.Sprintf("Loaded %d users and %d courses", len(m.profiles), len(m.courses)), views.StatusInfo)

	case progressLoadedMsg:
		m.progressLoading = false
		if msg.err != nil {
			m.progressErr = msg.err.Error()
			return m, m.fail("Failed to load progress", msg.err)
		}
		m.progressErr = ""
		m.progress = msg.rows
		m.progressLoaded = true
		logic.SortProgress(m.progress, m.sortMode)
		m.rows.SetTotal(len(m.progress))
		m.publish(eventbus.ProgressLoadedEvent{Count: len(m.progress)})
		return m, nil

	case assignDoneMsg:
		return m, m.handleAssignDone(msg)

	case pagerMsg:
		if msg.err != nil {
			return m, m.fail("Failed to show "+msg.what, msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, tea.ClearScreen

	case clearStatusMsg:
		if msg.seq == m.statusSeq && m.statusKind != views.StatusLoading {
			m.statusMessage = ""
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleLoginResult(msg loginResultMsg) tea.Cmd {
	m.login.busy = false
	if msg.err != nil {
		log.Printf("Login: failed: %v", msg.err)
		m.login.err = loginErrorText(msg.err)
		m.publish(eventbus.ErrorEvent{Message: "login failed", Err: msg.err})
		return m.login.focusCmd()
	}

	m.session = msg.session
	m.login.clearPassword()
	m.inputHandler.Reset()
	log.Printf("Login: signed in as %s", m.session.User.Username)
	m.publish(eventbus.SessionStartedEvent{Username: m.session.User.Username, IsStaff: m.session.User.IsStaff})

	m.loadingDir = true
	return tea.Batch(
		m.setStatus("Welcome, "+m.session.DisplayName(), views.StatusSuccess),
		m.loadDirectoryCmd(),
	)
}

func (m *Model) handleAssignDone(msg assignDoneMsg) tea.Cmd {
	m.assigning = false
	if msg.err != nil {
		return m.fail("Assignment failed", msg.err)
	}

	r := msg.report
	for _, f := range r.Failures {
		log.Printf("Assign: user %d course %d failed: %v", f.UserID, f.CourseID, f.Err)
	}
	m.publish(eventbus.AssignmentCompletedEvent{
		Successful:      r.Successful,
		AlreadyAssigned: r.AlreadyAssigned,
		Failed:          r.Failed,
		Summary:         r.Summary(),
	})

	// New subscriptions change the report
	m.progressLoaded = false

	if r.Failed > 0 {
		return m.setStatus(r.Summary(), views.StatusError)
	}
	m.draft.Clear()
	m.syncPanel()
	return m.setStatus(r.Summary(), views.StatusSuccess)
}

// setStatus shows a message and schedules its removal
func (m *Model) setStatus(msg string, kind views.StatusKind) tea.Cmd {
	m.statusSeq++
	m.statusMessage = msg
	m.statusKind = kind
	if kind == views.StatusLoading {
		return nil
	}
	return clearStatusAfter(m.statusSeq, statusTimeout)
}

// fail logs, publishes and shows an error
func (m *Model) fail(what string, err error) tea.Cmd {
	log.Printf("Error: %s: %v", what, err)
	m.publish(eventbus.ErrorEvent{Message: what, Err: err})
	return m.setStatus(what+": "+err.Error(), views.StatusError)
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

func (m *Model) activeDialog() transferDialog {
	if len(m.dialogs) == 0 {
		return nil
	}
	return m.dialogs[len(m.dialogs)-1]
}

func (m *Model) listHeight() int {
	h := m.config.UISettings.ListHeight
	if m.height > 0 {
		// Title, tabs, card borders, summary, status and help
		if avail := m.height - 16; avail < h {
			h = avail
		}
	}
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) updateListHeights() {
	h := m.listHeight()
	for _, n := range m.panelNav {
		n.SetViewportHeight(h)
	}
	for _, d := range m.dialogs {
		d.SetListHeight(h)
	}
}

func (m *Model) syncPanel() {
	m.panelNav[panelUsers].SetTotal(len(m.draft.Users))
	m.panelNav[panelCourses].SetTotal(len(m.draft.Courses))
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Screen:        views.ScreenPanel,
		Tab:           m.tab,
		Tabs:          []string{"Assignment", "Progress"},
		StatusMessage: m.statusMessage,
		StatusKind:    m.statusKind,
	}

	if m.session == nil {
		state.Screen = views.ScreenLogin
		state.Login = m.login.view()
		return m.renderer.Render(state)
	}

	state.User = m.session.DisplayName()
	switch {
	case m.loadingDir:
		state.Loading = "loading directory…"
	case m.assigning:
		state.Loading = "assigning…"
	case m.progressLoading:
		state.Loading = "loading progress…"
	}

	if d := m.activeDialog(); d != nil {
		v := d.View()
		if ti := m.inputHandler.TextInput(); ti != nil {
			v.SearchPrompt = m.inputHandler.Prompt()
			v.SearchInput = ti.View()
		}
		v.Help = m.help.ShortHelpView(m.dialogHelp(d))
		state.Dialog = &v
		return m.renderer.Render(state)
	}

	if m.inputHandler.GetMode() == inputtypes.ModeConfirm {
		state.Confirm = fmt.Sprintf("Assign %d courses to %d users?", len(m.draft.Courses), len(m.draft.Users))
	}

	state.Assign = m.assignView()
	state.Progress = m.progressView()
	if m.tab == modes.TabProgress {
		state.HelpLine = m.help.ShortHelpView(inputtypes.Keys.ProgressHelp())
	} else {
		state.HelpLine = m.help.ShortHelpView(inputtypes.Keys.AssignHelp())
	}
	return m.renderer.Render(state)
}

func (m *Model) dialogHelp(d transferDialog) []key.Binding {
	bindings := inputtypes.Keys.DialogHelp()
	if d.Kind() == catalog.KindProfile {
		bindings = append(bindings, inputtypes.Keys.Branches)
	}
	return bindings
}

// modelContext exposes model state to the input modes
type modelContext struct {
	m *Model
}

func (c *modelContext) ActiveTab() int { return c.m.tab }

func (c *modelContext) DialogKind() string {
	if d := c.m.activeDialog(); d != nil {
		return string(d.Kind())
	}
	return ""
}

func (c *modelContext) DraftReady() bool { return c.m.draft.Ready() }

func (c *modelContext) CanMoveRight() bool {
	d := c.m.activeDialog()
	return d != nil && d.CanMoveRight()
}

func (c *modelContext) CanMoveLeft() bool {
	d := c.m.activeDialog()
	return d != nil && d.CanMoveLeft()
}

func (c *modelContext) SearchTerm() string {
	if d := c.m.activeDialog(); d != nil {
		return d.SearchTerm()
	}
	return ""
}
