package domain

import (
	"strconv"
	"strings"
	"time"
)

// User is a portal account
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
}

func (u User) Key() int { return u.ID }

// FullName joins first and last name, falling back to the username
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// Profile holds the employee details attached to a user
type Profile struct {
	ID             int    `json:"id"`
	User           User   `json:"user"`
	Patronymic     string `json:"patronymic"`
	Role           string `json:"role"`
	Position       string `json:"position"`
	Department     string `json:"department"`
	Branch         string `json:"branch"` // code or label, see BranchChoices
	EmailConfirmed bool   `json:"email_confirmed"`
}

func (p Profile) Key() int { return p.ID }

// Course is an assignable training course
type Course struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	IsActive    bool   `json:"is_active"`
}

func (c Course) Key() int { return c.ID }

// ProgressUser is the reduced user shape embedded in progress records
type ProgressUser struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
}

// Name returns a display name for the progress table
func (u ProgressUser) Name() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return "ID: " + strconv.Itoa(u.ID)
}

// Progress statuses
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Progress is one user's progress through one course
type Progress struct {
	ID              int          `json:"id"`
	User            ProgressUser `json:"user"`
	Course          Course       `json:"course"`
	Status          string       `json:"status"`
	ProgressPercent int          `json:"progress_percent"`
	Score           int          `json:"score"`
	StartedAt       *time.Time   `json:"started_at"`
	CompletedAt     *time.Time   `json:"completed_at"`
}

// StatusText returns the human readable status
func (p Progress) StatusText() string {
	switch p.Status {
	case StatusCompleted:
		return "Completed"
	case StatusInProgress:
		return "In progress"
	default:
		return "Not started"
	}
}

// Choice is a fixed option of the portal. Portal is the label the portal
// itself stores and may send instead of the code; Label is what the
// console displays.
type Choice struct {
	Code   string
	Label  string
	Portal string
}

func (c Choice) Key() string { return c.Code }

// BranchChoices lists the organisation branches a profile can belong to
var BranchChoices = []Choice{
	{Code: "cardio", Label: "Cardiology Research Institute", Portal: "НИИ Кардиологии"},
	{Code: "oncology", Label: "Oncology Research Institute", Portal: "НИИ Онкологии"},
	{Code: "tumen", Label: "Tyumen Cardiology Research Center", Portal: "Тюменский кардиологический научный центр"},
	{Code: "pz", Label: "Mental Health Research Institute", Portal: "НИИ Психического здоровья"},
	{Code: "medgenetics", Label: "Medical Genetics Research Institute", Portal: "НИИ Медицинского генетики"},
	{Code: "pharma", Label: "Pharmacology and Regenerative Medicine Institute", Portal: "НИИ Фармакологии и регенеративной медицины"},
	{Code: "head", Label: "Head Office", Portal: "Аппарат управления ТНИМЦ"},
}

// CourseCategories lists the course categories
var CourseCategories = []Choice{
	{Code: "phishing", Label: "Phishing links and emails", Portal: "Фишинговые ссылки и письма"},
	{Code: "data_protetion", Label: "Data protection", Portal: "Защита данных"},
	{Code: "password_sec", Label: "Password security", Portal: "Безопасность паролей"},
}

// Matches reports whether v is the code, the display label or the portal
// label of the choice
func (c Choice) Matches(v string) bool {
	v = strings.TrimSpace(v)
	return strings.EqualFold(v, c.Code) ||
		strings.EqualFold(v, c.Label) ||
		(c.Portal != "" && strings.EqualFold(v, c.Portal))
}

// LabelOf resolves a code or a label against choices and returns the
// display label. Unknown values are returned unchanged.
func LabelOf(choices []Choice, v string) string {
	for _, c := range choices {
		if c.Matches(v) {
			return c.Label
		}
	}
	return v
}
