package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduadmin/internal/ui/views"
)

func TestHelpContentListsSections(t *testing.T) {
	content := NewHelpRenderer().RenderHelpContent()
	for _, want := range []string{"Assignment tab", "Progress tab", "Selection dialog", "branches", "full report"} {
		assert.Contains(t, content, want)
	}
}

func TestPagerWithoutProgramReportsError(t *testing.T) {
	m, p, _ := newTestModel()
	signIn(t, m, p)

	cmd := press(m, "?")
	require.NotNil(t, cmd)
	msg, ok := cmd().(pagerMsg)
	require.True(t, ok)
	require.Error(t, msg.err)

	m.Update(msg)
	assert.Equal(t, views.StatusError, m.statusKind)
	assert.Contains(t, m.statusMessage, "Failed to show help")
}

func TestPagerPausesRendering(t *testing.T) {
	m, p, _ := newTestModel()
	signIn(t, m, p)

	m.Update(pauseRenderingMsg{})
	assert.Empty(t, m.View())

	m.Update(resumeRenderingMsg{})
	assert.NotEmpty(t, m.View())
}
