package transfer

import (
	"errors"
	"strings"
)

// Side identifies one of the two lists of a transfer dialog
type Side int

const (
	Left  Side = iota // available items
	Right             // selected items
)

func (s Side) String() string {
	if s == Right {
		return "selected"
	}
	return "available"
}

// Other returns the opposite side
func (s Side) Other() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Keyed is implemented by every item the engine can hold.
// The zero value of K means the item has no identity.
type Keyed[K comparable] interface {
	Key() K
}

// Choice is a category that may be written as its code, its label or any
// of its aliases
type Choice struct {
	Code    string
	Label   string
	Aliases []string
}

func (c Choice) matches(v string) bool {
	if strings.EqualFold(v, c.Code) || strings.EqualFold(v, c.Label) {
		return true
	}
	for _, a := range c.Aliases {
		if strings.EqualFold(v, a) {
			return true
		}
	}
	return false
}

// Schema tells the engine how to read items of type T
type Schema[T any] struct {
	// SearchFields returns the texts a search term is matched against
	SearchFields func(T) []string

	// Category returns the grouping value of an item. Leave nil for
	// item types that cannot be narrowed by category.
	Category func(T) string

	// Choices maps category labels to codes so that both encodings match
	Choices []Choice
}

// Config carries the host callbacks and validation mode
type Config[T any] struct {
	// Strict makes the setters reject items with missing or duplicate keys
	// instead of dropping them.
	Strict bool

	OnSave  func(selected []T)
	OnClose func()
}

// Header describes the select-all control of one side
type Header struct {
	Checked       int
	Visible       int
	AllChecked    bool
	Indeterminate bool
	Disabled      bool
}

var (
	// ErrMissingKey is returned in strict mode for an item whose key is the zero value
	ErrMissingKey = errors.New("item has no key")

	// ErrDuplicateKey is returned in strict mode when two items share a key
	ErrDuplicateKey = errors.New("duplicate item key")
)
