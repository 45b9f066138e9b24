package logic

import (
	"sort"
	"strings"

	"eduadmin/internal/domain"
)

// SortMode orders the progress report
type SortMode int

const (
	SortByUser SortMode = iota
	SortByCourse
	SortByStatus
	SortByProgress
)

var sortModeNames = []string{"user", "course", "status", "progress"}

func (m SortMode) String() string {
	if int(m) < len(sortModeNames) {
		return sortModeNames[m]
	}
	return "unknown"
}

// Next returns the following sort mode, wrapping around
func (m SortMode) Next() SortMode {
	return SortMode((int(m) + 1) % len(sortModeNames))
}

// SortProgress sorts rows in place; ties keep the server order
func SortProgress(rows []domain.Progress, mode SortMode) {
	switch mode {
	case SortByUser:
		sort.SliceStable(rows, func(i, j int) bool {
			return strings.ToLower(rows[i].User.Name()) < strings.ToLower(rows[j].User.Name())
		})
	case SortByCourse:
		sort.SliceStable(rows, func(i, j int) bool {
			return strings.ToLower(rows[i].Course.Title) < strings.ToLower(rows[j].Course.Title)
		})
	case SortByStatus:
		sort.SliceStable(rows, func(i, j int) bool {
			return GetStatusPriority(rows[i].Status) < GetStatusPriority(rows[j].Status)
		})
	case SortByProgress:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].ProgressPercent > rows[j].ProgressPercent
		})
	}
}

// GetStatusPriority puts unfinished work first
func GetStatusPriority(status string) int {
	switch status {
	case domain.StatusInProgress:
		return 0
	case domain.StatusNotStarted:
		return 1
	case domain.StatusCompleted:
		return 2
	default:
		return 3
	}
}
