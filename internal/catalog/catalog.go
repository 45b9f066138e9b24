// Package catalog binds portal records to the transfer engine: for every
// item kind it knows which fields are displayed, which fields a search term
// is matched against and which field, if any, carries the category.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"eduadmin/internal/domain"
	"eduadmin/internal/transfer"
)

// Kind selects the display and search mapping of a transfer dialog
type Kind string

const (
	KindUser    Kind = "user"
	KindProfile Kind = "profile"
	KindCourse  Kind = "course"
	KindBranch  Kind = "branch"
)

// Unnamed is shown for items that have nothing to display
const Unnamed = "(unnamed item)"

// ParseKind validates a kind discriminator
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindUser, KindProfile, KindCourse, KindBranch:
		return k, nil
	}
	return "", fmt.Errorf("unknown item kind %q", s)
}

// Title returns the plural heading used for a kind
func (k Kind) Title() string {
	switch k {
	case KindUser, KindProfile:
		return "Users"
	case KindCourse:
		return "Courses"
	case KindBranch:
		return "Branches"
	}
	return "Items"
}

// Display is what a list row shows for an item
type Display struct {
	Primary   string
	Secondary string
}

func orUnnamed(s string) string {
	if strings.TrimSpace(s) == "" {
		return Unnamed
	}
	return s
}

func toChoices(cs []domain.Choice) []transfer.Choice {
	out := make([]transfer.Choice, len(cs))
	for i, c := range cs {
		out[i] = transfer.Choice{Code: c.Code, Label: c.Label}
		if c.Portal != "" {
			out[i].Aliases = []string{c.Portal}
		}
	}
	return out
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// UserSchema searches users by full name and email
func UserSchema() transfer.Schema[domain.User] {
	return transfer.Schema[domain.User]{
		SearchFields: func(u domain.User) []string {
			return []string{fullName(u.FirstName, u.LastName), u.Email}
		},
	}
}

// DescribeUser renders a user row
func DescribeUser(u domain.User) Display {
	return Display{Primary: orUnnamed(fullName(u.FirstName, u.LastName)), Secondary: u.Email}
}

// ProfileSchema searches profiles by full name and email and groups them by branch
func ProfileSchema() transfer.Schema[domain.Profile] {
	return transfer.Schema[domain.Profile]{
		SearchFields: func(p domain.Profile) []string {
			return []string{fullName(p.User.FirstName, p.User.LastName), p.User.Email}
		},
		Category: func(p domain.Profile) string { return p.Branch },
		Choices:  toChoices(domain.BranchChoices),
	}
}

// DescribeProfile renders a profile row
func DescribeProfile(p domain.Profile) Display {
	branch := "Not specified"
	if p.Branch != "" {
		branch = domain.LabelOf(domain.BranchChoices, p.Branch)
	}
	secondary := branch
	if p.User.Email != "" {
		secondary = p.User.Email + " • " + branch
	}
	return Display{
		Primary:   orUnnamed(fullName(p.User.FirstName, p.User.LastName)),
		Secondary: secondary,
	}
}

// CourseSchema searches courses by title and groups them by category
func CourseSchema() transfer.Schema[domain.Course] {
	return transfer.Schema[domain.Course]{
		SearchFields: func(c domain.Course) []string { return []string{c.Title} },
		Category:     func(c domain.Course) string { return c.Category },
		Choices:      toChoices(domain.CourseCategories),
	}
}

// DescribeCourse renders a course row
func DescribeCourse(c domain.Course) Display {
	category := "No category"
	if c.Category != "" {
		category = domain.LabelOf(domain.CourseCategories, c.Category)
	}
	return Display{
		Primary:   orUnnamed(c.Title),
		Secondary: "ID: " + strconv.Itoa(c.ID) + " • " + category,
	}
}

// BranchSchema searches branch choices by label, portal label and code
func BranchSchema() transfer.Schema[domain.Choice] {
	return transfer.Schema[domain.Choice]{
		SearchFields: func(c domain.Choice) []string { return []string{c.Label, c.Portal, c.Code} },
	}
}

// DescribeBranch renders a branch row
func DescribeBranch(c domain.Choice) Display {
	return Display{Primary: orUnnamed(c.Label), Secondary: c.Code}
}

// BranchesByCode resolves codes to branch choices, skipping unknown codes
func BranchesByCode(codes []string) []domain.Choice {
	var out []domain.Choice
	for _, code := range codes {
		for _, c := range domain.BranchChoices {
			if c.Code == code {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Codes returns the codes of the given choices
func Codes(cs []domain.Choice) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Code
	}
	return out
}
