package ui

import (
	"eduadmin/internal/assign"
	"eduadmin/internal/domain"
	"eduadmin/internal/session"
)

// loginResultMsg carries the outcome of a login attempt
type loginResultMsg struct {
	session *session.Session
	err     error
}

// directoryLoadedMsg carries the users and courses of the portal
type directoryLoadedMsg struct {
	profiles []domain.Profile
	courses  []domain.Course
	err      error
}

// progressLoadedMsg carries the admin progress report
type progressLoadedMsg struct {
	rows []domain.Progress
	err  error
}

// assignDoneMsg carries the report of a bulk assignment
type assignDoneMsg struct {
	report assign.Report
	err    error
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	what string
	err  error
}

// clearStatusMsg clears the status line unless a newer message replaced it
type clearStatusMsg struct {
	seq int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
