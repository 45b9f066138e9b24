// Package session carries the authenticated administrator through the
// console. Components receive it explicitly instead of reading global state.
package session

import (
	"errors"

	"eduadmin/internal/domain"
)

// ErrNotStaff is returned when the logged in account may not administer courses
var ErrNotStaff = errors.New("account is not a staff member")

// Session is the current login
type Session struct {
	User    domain.User
	Profile *domain.Profile
}

// New returns a session for the given account
func New(user domain.User, profile *domain.Profile) *Session {
	return &Session{User: user, Profile: profile}
}

// DisplayName is the name shown in the status bar
func (s *Session) DisplayName() string {
	if s == nil {
		return ""
	}
	return s.User.FullName()
}

// RequireStaff returns ErrNotStaff unless the session belongs to staff
func RequireStaff(s *Session) error {
	if s == nil || !s.User.IsStaff {
		return ErrNotStaff
	}
	return nil
}
