package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"eduadmin/internal/api"
	"eduadmin/internal/assign"
	"eduadmin/internal/domain"
	"eduadmin/internal/session"
)

// Portal is the part of the REST client the console needs
type Portal interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*session.Session, error)
	Profiles(ctx context.Context) ([]domain.Profile, error)
	Courses(ctx context.Context) ([]domain.Course, error)
	AdminProgress(ctx context.Context) ([]domain.Progress, error)
	Subscribe(ctx context.Context, userID, courseID int) (api.SubscribeResult, error)
}

// loginCmd signs in and loads the session; non-staff accounts are logged out again
func (m *Model) loginCmd(username, password string) tea.Cmd {
	ctx, portal := m.ctx, m.portal
	return func() tea.Msg {
		if err := portal.Login(ctx, username, password); err != nil {
			return loginResultMsg{err: err}
		}
		s, err := portal.CurrentSession(ctx)
		if err != nil {
			return loginResultMsg{err: err}
		}
		if err := session.RequireStaff(s); err != nil {
			if lerr := portal.Logout(ctx); lerr != nil {
				log.Printf("Login: logout after refused session failed: %v", lerr)
			}
			return loginResultMsg{err: err}
		}
		return loginResultMsg{session: s}
	}
}

// loadDirectoryCmd fetches profiles and courses in parallel
func (m *Model) loadDirectoryCmd() tea.Cmd {
	ctx, portal := m.ctx, m.portal
	return func() tea.Msg {
		g, ctx := errgroup.WithContext(ctx)

		var msg directoryLoadedMsg
		g.Go(func() error {
			profiles, err := portal.Profiles(ctx)
			msg.profiles = profiles
			return err
		})
		g.Go(func() error {
			courses, err := portal.Courses(ctx)
			msg.courses = courses
			return err
		})

		if err := g.Wait(); err != nil {
			return directoryLoadedMsg{err: err}
		}
		return msg
	}
}

func (m *Model) loadProgressCmd() tea.Cmd {
	ctx, portal := m.ctx, m.portal
	return func() tea.Msg {
		rows, err := portal.AdminProgress(ctx)
		return progressLoadedMsg{rows: rows, err: err}
	}
}

func (m *Model) assignCmd(d assign.Draft) tea.Cmd {
	ctx, runner := m.ctx, m.runner
	return func() tea.Msg {
		report, err := runner.Run(ctx, d)
		return assignDoneMsg{report: report, err: err}
	}
}

// pagerCmd shows content in the ov pager, pausing our rendering meanwhile
func (m *Model) pagerCmd(what, content string) tea.Cmd {
	if m.program == nil {
		return func() tea.Msg {
			return pagerMsg{what: what, err: fmt.Errorf("program not set")}
		}
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.ShowInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{what: what, err: err}
	}
}

func clearStatusAfter(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}
