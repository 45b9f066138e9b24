package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrEmailNotConfirmed = errors.New("email not confirmed")
)

// Error is a non-2xx response from the portal
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code != "" && e.Code != msg {
		return fmt.Sprintf("portal returned %d (%s): %s", e.Status, e.Code, msg)
	}
	return fmt.Sprintf("portal returned %d: %s", e.Status, msg)
}

// Is lets errors.Is match the package sentinels
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrEmailNotConfirmed:
		return e.Code == "email_not_confirmed"
	}
	return false
}

// parseError reads the portal's error bodies: {"error", "message"} from the
// account views and {"detail"} from the REST framework.
func parseError(status int, body []byte) *Error {
	e := &Error{Status: status}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		e.Message = strings.TrimSpace(string(body))
		if r := []rune(e.Message); len(r) > 200 {
			e.Message = string(r[:200])
		}
		return e
	}

	if code, ok := payload["error"].(string); ok {
		e.Code = code
	}
	for _, key := range []string{"message", "detail", "error"} {
		if msg, ok := payload[key].(string); ok && msg != "" {
			e.Message = msg
			break
		}
	}
	return e
}
