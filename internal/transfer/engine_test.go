package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type course struct {
	id       int
	title    string
	category string
}

func (c course) Key() int { return c.id }

type person struct {
	id    int
	name  string
	group string
}

func (p person) Key() int { return p.id }

var courseSchema = Schema[course]{
	SearchFields: func(c course) []string { return []string{c.title} },
	Category:     func(c course) string { return c.category },
	Choices: []Choice{
		{Code: "phishing", Label: "Phishing links and emails"},
		{Code: "password_sec", Label: "Password security", Aliases: []string{"Безопасность паролей"}},
	},
}

var personSchema = Schema[person]{
	SearchFields: func(p person) []string { return []string{p.name} },
	Category:     func(p person) string { return p.group },
}

func courses(n int) []course {
	out := make([]course, n)
	for i := range out {
		out[i] = course{id: i + 1, title: "Course"}
	}
	return out
}

func keys[T Keyed[int]](items []T) []int {
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = item.Key()
	}
	return out
}

func newCourseEngine(t *testing.T, all, selected []course) *Engine[int, course] {
	t.Helper()
	e := New[int](courseSchema, Config[course]{Strict: true})
	require.NoError(t, e.SetItems(all, selected))
	return e
}

// requirePartition checks that the sides are disjoint and cover the candidates
func requirePartition(t *testing.T, e *Engine[int, course], candidates []int) {
	t.Helper()
	left := keys(e.Available())
	right := keys(e.Selected())
	for _, k := range left {
		require.NotContains(t, right, k, "item %d is on both sides", k)
	}
	require.ElementsMatch(t, candidates, append(left, right...))
}

func TestSetItemsDerivesAvailable(t *testing.T) {
	all := courses(4)
	e := newCourseEngine(t, all, []course{all[1], all[3]})

	assert.Equal(t, []int{1, 3}, keys(e.Available()))
	assert.Equal(t, []int{2, 4}, keys(e.Selected()))
	requirePartition(t, e, []int{1, 2, 3, 4})
}

func TestSetItemsToleratesEmptyInput(t *testing.T) {
	e := New[int](courseSchema, Config[course]{})
	require.NoError(t, e.SetItems(nil, nil))
	assert.Empty(t, e.Available())
	assert.Empty(t, e.Selected())
	assert.True(t, e.Header(Left).Disabled)

	// candidates arrive later
	require.NoError(t, e.SetCandidates(courses(2)))
	assert.Equal(t, []int{1, 2}, keys(e.Available()))

	// then the selection
	require.NoError(t, e.SetSelected([]course{{id: 2}}))
	assert.Equal(t, []int{1}, keys(e.Available()))
	assert.Equal(t, []int{2}, keys(e.Selected()))
}

func TestPartitionHoldsAcrossOperations(t *testing.T) {
	all := courses(6)
	e := newCourseEngine(t, all, []course{all[0]})
	candidates := []int{1, 2, 3, 4, 5, 6}

	e.Toggle(all[2])
	e.Toggle(all[4])
	e.MoveRight()
	requirePartition(t, e, candidates)

	e.ToggleAll(Right)
	e.MoveLeft()
	requirePartition(t, e, candidates)

	e.SearchLeft("course")
	e.ToggleAll(Left)
	e.MoveRight()
	requirePartition(t, e, candidates)
	assert.Empty(t, e.Available())
}

func TestMoveRoundTripRestoresPartition(t *testing.T) {
	all := courses(5)
	e := newCourseEngine(t, all, []course{all[4]})
	beforeLeft, beforeRight := keys(e.Available()), keys(e.Selected())

	e.Toggle(all[0])
	e.Toggle(all[2])
	require.Equal(t, 2, e.MoveRight())

	e.Toggle(all[0])
	e.Toggle(all[2])
	require.Equal(t, 2, e.MoveLeft())

	assert.ElementsMatch(t, beforeLeft, keys(e.Available()))
	assert.ElementsMatch(t, beforeRight, keys(e.Selected()))
	assert.Zero(t, e.CheckedCount())
}

func TestMoveRightAppendsInAvailableOrder(t *testing.T) {
	all := courses(5)
	e := newCourseEngine(t, all, []course{all[4]})

	// check in reverse order; destination still follows available order
	e.Toggle(all[3])
	e.Toggle(all[0])
	e.Toggle(all[2])
	require.Equal(t, 3, e.MoveRight())

	assert.Equal(t, []int{5, 1, 3, 4}, keys(e.Selected()))
	assert.Equal(t, []int{2}, keys(e.Available()))
	assert.Zero(t, e.CheckedCount())
}

func TestMoveLeftReturnsItemsToCandidatePosition(t *testing.T) {
	all := courses(4)
	e := newCourseEngine(t, all, []course{all[0], all[2]})

	e.Toggle(all[0])
	require.Equal(t, 1, e.MoveLeft())

	assert.Equal(t, []int{1, 2, 4}, keys(e.Available()))
	assert.Equal(t, []int{3}, keys(e.Selected()))
}

func TestMoveWithNothingCheckedIsNoop(t *testing.T) {
	all := courses(3)
	e := newCourseEngine(t, all, []course{all[0]})

	assert.False(t, e.CanMoveRight())
	assert.False(t, e.CanMoveLeft())
	assert.Zero(t, e.MoveRight())
	assert.Zero(t, e.MoveLeft())
	assert.Equal(t, []int{2, 3}, keys(e.Available()))

	// checking on the left enables only the right move
	e.Toggle(all[1])
	assert.True(t, e.CanMoveRight())
	assert.False(t, e.CanMoveLeft())
}

func TestToggleAllTwiceRestoresCheckedSet(t *testing.T) {
	all := courses(4)
	e := newCourseEngine(t, all, nil)

	e.ToggleAll(Left)
	assert.True(t, e.Header(Left).AllChecked)
	e.ToggleAll(Left)
	assert.Zero(t, e.Header(Left).Checked)

	// starting from fully checked
	for _, c := range all {
		e.Toggle(c)
	}
	e.ToggleAll(Left)
	e.ToggleAll(Left)
	assert.Equal(t, 4, e.Header(Left).Checked)
}

func TestToggleAllWithPartialCheckSelectsAll(t *testing.T) {
	all := courses(3)
	e := newCourseEngine(t, all, nil)

	e.Toggle(all[1])
	e.ToggleAll(Left)
	assert.True(t, e.Header(Left).AllChecked)
	assert.Equal(t, 3, e.CheckedCount())
}

func TestHeaderIndeterminateBoundary(t *testing.T) {
	all := courses(5)
	e := newCourseEngine(t, all, nil)

	h := e.Header(Left)
	assert.False(t, h.AllChecked)
	assert.False(t, h.Indeterminate)
	assert.False(t, h.Disabled)

	e.Toggle(all[0])
	h = e.Header(Left)
	assert.True(t, h.Indeterminate)
	assert.False(t, h.AllChecked)
	assert.Equal(t, 1, h.Checked)
	assert.Equal(t, 5, h.Visible)

	for _, c := range all[1:] {
		e.Toggle(c)
	}
	h = e.Header(Left)
	assert.True(t, h.AllChecked)
	assert.False(t, h.Indeterminate)

	assert.True(t, e.Header(Right).Disabled)
}

func TestSearchNarrowsWithoutMutating(t *testing.T) {
	all := []course{
		{id: 1, title: "Security 101"},
		{id: 2, title: "Network Basics"},
	}
	e := newCourseEngine(t, all, nil)

	e.SearchLeft("secur")
	assert.Equal(t, []int{1}, keys(e.Visible(Left)))
	assert.Equal(t, []int{1, 2}, keys(e.Available()))

	e.SearchLeft("")
	assert.Equal(t, []int{1, 2}, keys(e.Visible(Left)))
}

func TestSearchKeepsSurroundingSpaces(t *testing.T) {
	all := []course{
		{id: 1, title: "Ivan Petrov"},
		{id: 2, title: "Ivanova Anna"},
	}
	e := newCourseEngine(t, all, nil)

	e.SearchLeft("ivan ")
	assert.Equal(t, []int{1}, keys(e.Visible(Left)))

	e.SearchLeft("   ")
	assert.Equal(t, []int{1, 2}, keys(e.Visible(Left)))
}

func TestSearchFoldsUnicodeCase(t *testing.T) {
	all := []course{
		{id: 1, title: "Безопасность паролей"},
		{id: 2, title: "Защита данных"},
	}
	e := newCourseEngine(t, all, nil)

	e.SearchLeft("БЕЗОПАСНОСТЬ")
	assert.Equal(t, []int{1}, keys(e.Visible(Left)))
}

func TestSearchIsReappliedAfterMoves(t *testing.T) {
	all := []course{
		{id: 1, title: "Security 101"},
		{id: 2, title: "Security 201"},
		{id: 3, title: "Network Basics"},
	}
	e := newCourseEngine(t, all, nil)
	e.SearchLeft("security")
	e.SearchRight("security")

	e.Toggle(all[0])
	e.MoveRight()

	assert.Equal(t, []int{2}, keys(e.Visible(Left)))
	assert.Equal(t, []int{1}, keys(e.Visible(Right)))
	assert.Equal(t, "security", e.Term(Left))
}

func TestSearchSidesAreIndependent(t *testing.T) {
	all := []course{
		{id: 1, title: "Security 101"},
		{id: 2, title: "Network Basics"},
		{id: 3, title: "Network Security"},
	}
	e := newCourseEngine(t, all, []course{all[2]})

	e.SearchLeft("network")
	assert.Equal(t, []int{2}, keys(e.Visible(Left)))
	assert.Equal(t, []int{3}, keys(e.Visible(Right)))

	e.SearchRight("basics")
	assert.Empty(t, e.Visible(Right))
	assert.Equal(t, []int{2}, keys(e.Visible(Left)))
}

func TestToggleIgnoresUnknownAndHiddenItems(t *testing.T) {
	all := []course{
		{id: 1, title: "Security 101"},
		{id: 2, title: "Network Basics"},
	}
	e := newCourseEngine(t, all, nil)

	assert.False(t, e.Toggle(course{id: 99}))
	assert.Zero(t, e.CheckedCount())

	e.SearchLeft("secur")
	assert.False(t, e.Toggle(all[1]), "hidden items cannot be toggled")
	assert.True(t, e.Toggle(all[0]))
	assert.True(t, e.IsChecked(all[0]))
}

func TestHiddenCheckedItemStillMoves(t *testing.T) {
	all := []course{
		{id: 1, title: "Security 101"},
		{id: 2, title: "Network Basics"},
		{id: 3, title: "Security 201"},
	}
	e := newCourseEngine(t, all, nil)

	e.Toggle(all[1])
	e.SearchLeft("secur")

	// the hidden checked item does not count towards the visible header
	h := e.Header(Left)
	assert.Equal(t, 0, h.Checked)
	assert.Equal(t, 2, h.Visible)
	assert.True(t, e.IsChecked(all[1]))
	assert.True(t, e.CanMoveRight())

	e.ToggleAll(Left)
	require.Equal(t, 3, e.MoveRight())
	assert.Equal(t, []int{1, 2, 3}, keys(e.Selected()))
}

func TestCategoryPreFilter(t *testing.T) {
	all := []person{
		{id: 1, name: "Anna", group: "A"},
		{id: 2, name: "Boris", group: "B"},
		{id: 3, name: "Alla", group: "A"},
		{id: 4, name: "Bella", group: "B"},
	}
	e := New[int](personSchema, Config[person]{})
	require.NoError(t, e.SetItems(all, []person{all[3]}))

	require.True(t, e.SetCategoryFilter([]string{"A"}))
	assert.Equal(t, []int{1, 3}, keys(e.Visible(Left)))
	assert.Equal(t, []int{4}, keys(e.Visible(Right)))
	assert.Equal(t, []int{1, 2, 3}, keys(e.Available()))

	assert.False(t, e.Toggle(all[1]), "items outside the category are not interactive")

	require.True(t, e.SetCategoryFilter(nil))
	assert.Equal(t, []int{1, 2, 3}, keys(e.Visible(Left)))
}

func TestCategoryFilterKeepsHiddenChecks(t *testing.T) {
	all := []person{
		{id: 1, name: "Anna", group: "A"},
		{id: 2, name: "Boris", group: "B"},
	}
	e := New[int](personSchema, Config[person]{})
	require.NoError(t, e.SetItems(all, nil))

	e.Toggle(all[1])
	e.SetCategoryFilter([]string{"A"})
	assert.True(t, e.IsChecked(all[1]))
	assert.Equal(t, 1, e.MoveRight())
	assert.Equal(t, []int{2}, keys(e.Selected()))
}

func TestCategoryMatchesCodeOrLabel(t *testing.T) {
	all := []course{
		{id: 1, title: "Fake invoices", category: "phishing"},
		{id: 2, title: "Spoofed senders", category: "Phishing links and emails"},
		{id: 3, title: "Passphrases", category: "password_sec"},
	}
	e := newCourseEngine(t, all, nil)

	e.SetCategoryFilter([]string{"phishing"})
	assert.Equal(t, []int{1, 2}, keys(e.Visible(Left)))

	e.SetCategoryFilter([]string{"Password security"})
	assert.Equal(t, []int{3}, keys(e.Visible(Left)))
	assert.Equal(t, []string{"password_sec"}, e.Categories())
}

func TestCategoryMatchesAlias(t *testing.T) {
	all := []course{
		{id: 1, title: "Passphrases", category: "password_sec"},
		{id: 2, title: "Password managers", category: "БЕЗОПАСНОСТЬ ПАРОЛЕЙ"},
		{id: 3, title: "Fake invoices", category: "phishing"},
	}
	e := newCourseEngine(t, all, nil)

	e.SetCategoryFilter([]string{"password_sec"})
	assert.Equal(t, []int{1, 2}, keys(e.Visible(Left)))

	e.SetCategoryFilter([]string{"Безопасность паролей"})
	assert.Equal(t, []string{"password_sec"}, e.Categories())
	assert.Equal(t, []int{1, 2}, keys(e.Visible(Left)))
}

func TestCategoryFilterNeedsCategorizedSchema(t *testing.T) {
	plain := Schema[course]{SearchFields: courseSchema.SearchFields}
	e := New[int](plain, Config[course]{})
	require.NoError(t, e.SetItems(courses(2), nil))

	assert.False(t, e.Categorized())
	assert.False(t, e.SetCategoryFilter([]string{"phishing"}))
	assert.Len(t, e.Visible(Left), 2)
}

func TestCategoryAndSearchCombine(t *testing.T) {
	all := []course{
		{id: 1, title: "Fake invoices", category: "phishing"},
		{id: 2, title: "Fake login pages", category: "phishing"},
		{id: 3, title: "Fake passwords", category: "password_sec"},
	}
	e := newCourseEngine(t, all, nil)

	e.SetCategoryFilter([]string{"phishing"})
	e.SearchLeft("login")
	assert.Equal(t, []int{2}, keys(e.Visible(Left)))
}

func TestCommitContract(t *testing.T) {
	all := []course{{id: 5, title: "A"}, {id: 7, title: "B"}, {id: 9, title: "C"}}
	var saved []course
	e := New[int](courseSchema, Config[course]{OnSave: func(s []course) { saved = s }})
	require.NoError(t, e.SetItems(all, nil))

	e.Toggle(all[1])
	e.MoveRight()
	e.SearchLeft("a")
	out := e.Commit()

	require.Equal(t, []int{7}, keys(saved))
	assert.Equal(t, saved, out)
	assert.True(t, e.Closed())

	reopened := newCourseEngine(t, all, out)
	assert.Equal(t, []int{5, 9}, keys(reopened.Available()))
	assert.Equal(t, []int{7}, keys(reopened.Selected()))
}

func TestCommitWithEmptySelection(t *testing.T) {
	e := newCourseEngine(t, courses(2), nil)
	out := e.Commit()
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestCancelDiscardsState(t *testing.T) {
	closed := false
	saved := false
	e := New[int](courseSchema, Config[course]{
		OnSave:  func([]course) { saved = true },
		OnClose: func() { closed = true },
	})
	all := courses(3)
	require.NoError(t, e.SetItems(all, nil))
	e.Toggle(all[0])
	e.MoveRight()

	e.Cancel()
	assert.True(t, closed)
	assert.False(t, saved)
	assert.Empty(t, e.Selected())

	// a closed engine ignores further input
	assert.False(t, e.Toggle(all[1]))
	assert.Nil(t, e.Commit())
	assert.False(t, saved)
}

func TestRecomputeKeepsValidChecks(t *testing.T) {
	all := courses(3)
	e := newCourseEngine(t, all, nil)
	e.Toggle(all[0])
	e.Toggle(all[2])

	require.NoError(t, e.SetCandidates(all[:2]))
	assert.True(t, e.IsChecked(all[0]))
	assert.False(t, e.IsChecked(all[2]))
	assert.Equal(t, 1, e.CheckedCount())
}

func TestSelectedItemsOutsideCandidatesStaySelected(t *testing.T) {
	all := courses(2)
	extra := course{id: 42, title: "Archived"}
	e := newCourseEngine(t, all, []course{extra})

	assert.Equal(t, []int{42}, keys(e.Selected()))
	requirePartition(t, e, []int{1, 2, 42})

	e.Toggle(extra)
	e.MoveLeft()
	assert.Equal(t, []int{1, 2, 42}, keys(e.Available()))
}

func TestStrictModeRejectsBadKeys(t *testing.T) {
	e := New[int](courseSchema, Config[course]{Strict: true})

	err := e.SetItems([]course{{id: 1}, {id: 0}}, nil)
	require.ErrorIs(t, err, ErrMissingKey)

	err = e.SetItems([]course{{id: 1}, {id: 1}}, nil)
	require.ErrorIs(t, err, ErrDuplicateKey)

	assert.Empty(t, e.Available(), "failed setters leave the engine untouched")
}

func TestLenientModeDropsBadKeys(t *testing.T) {
	e := New[int](courseSchema, Config[course]{})

	require.NoError(t, e.SetItems([]course{{id: 1}, {id: 0}, {id: 2}, {id: 1, title: "again"}}, nil))
	assert.Equal(t, []int{1, 2}, keys(e.Available()))
	assert.Empty(t, e.Available()[0].title, "first occurrence wins")
}

func TestSideHelpers(t *testing.T) {
	assert.Equal(t, Right, Left.Other())
	assert.Equal(t, Left, Right.Other())
	assert.Equal(t, "available", Left.String())
	assert.Equal(t, "selected", Right.String())
}
