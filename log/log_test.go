package log

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/stormyhs/fox/ansi"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		SetLevel(LevelDebug)
	})
	return &buf
}

func TestLevelGate(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelWarn)

	Debug("hidden")
	Info("hidden")
	SWarn("shown")
	SError("shown")
	SCritical("shown")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
}

func TestCriticalSurvivesEveryLevel(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelCritical)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Error("hidden")
	SCritical("the only line")

	require.Equal(t, "CRITICAL the only line\n", xansi.Strip(buf.String()))
}

func TestFullPreambleFormat(t *testing.T) {
	buf := capture(t)

	Info("loaded %d items", 3)

	stripped := xansi.Strip(buf.String())
	require.Regexp(t, `^INFO {5}\d{2}:\d{2}:\d{2} log/log_test\.go:\d+ loaded 3 items\n$`, stripped)
}

func TestShortFormSkipsTimeAndCaller(t *testing.T) {
	buf := capture(t)

	SInfo("ready")

	require.Equal(t, "INFO     ready\n", xansi.Strip(buf.String()))
}

func TestMessageBodyIsHighlighted(t *testing.T) {
	buf := capture(t)

	SDebug("key: %d", 42)

	require.Contains(t, buf.String(), ansi.Key+"key"+ansi.Reset+":")
	require.Contains(t, buf.String(), ansi.Number+"42"+ansi.Reset)
}

func TestPreStyledBodyPassesThrough(t *testing.T) {
	buf := capture(t)
	body := "\x1b[31malready red\x1b[0m"

	SInfo("%s", body)

	require.Contains(t, buf.String(), body)
}

func TestTagsArePaddedAndColored(t *testing.T) {
	buf := capture(t)

	SWarn("w")

	require.True(t, strings.HasPrefix(buf.String(), ansi.Warn+"WARN    "+ansi.Reset))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"Info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"critical", LevelCritical},
		{" critical ", LevelCritical},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.want, got, tt.name)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "CRITICAL", LevelCritical.String())
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "UNKNOWN", Level(9).String())
}

func TestConcurrentWritesStayWholeLines(t *testing.T) {
	buf := capture(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			SInfo("worker %d done", n)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(xansi.Strip(buf.String()), "\n"), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		require.Regexp(t, `^INFO {5}worker \d+ done$`, line)
	}
}
