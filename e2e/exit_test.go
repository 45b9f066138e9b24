//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQuitLogsOut(t *testing.T) {
	t.Parallel()
	portal, url := startPortal(t, true)
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("secret", "-config", tf.WriteConfig(url), "-user", "admin"))
	require.True(t, tf.SeePlain("Loaded 3 users and 2 courses"))

	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(3*time.Second))
	require.Equal(t, 1, portal.Logouts())
}

func TestCtrlCQuitsFromLoginScreen(t *testing.T) {
	t.Parallel()
	_, url := startPortal(t, true)
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("", "-config", tf.WriteConfig(url)))
	require.True(t, tf.SeePlain("Username"))

	require.NoError(t, tf.SendCtrlC())
	require.NoError(t, tf.WaitExit(3*time.Second))
}
