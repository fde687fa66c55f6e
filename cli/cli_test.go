package cli

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stormyhs/fox/log"
)

var errExit = errors.New("exit called")

func catchExit(t *testing.T, fn func()) (code int) {
	t.Helper()
	orig := exit
	code = -1
	exit = func(c int) {
		code = c
		panic(errExit)
	}
	defer func() {
		exit = orig
		if r := recover(); r != nil && r != errExit {
			panic(r)
		}
	}()
	fn()
	return code
}

func quietLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stdout) })
	return &buf
}

func TestParse_RequiredWithValue(t *testing.T) {
	quietLogs(t)
	p := NewParser().Required("--out")

	var args *Arguments
	code := catchExit(t, func() { args = p.parse([]string{"--out", "/tmp/x"}) })

	require.Equal(t, -1, code)
	got, ok := args.Value("--out")
	require.True(t, ok)
	require.Equal(t, "/tmp/x", got)
}

func TestParse_OptionalFlag(t *testing.T) {
	quietLogs(t)
	p := NewParser().Optional("--verbose", false)

	args := p.parse([]string{"--verbose"})
	require.True(t, args.HasFlag("--verbose"))

	args = p.parse([]string{})
	require.False(t, args.HasFlag("--verbose"))
}

func TestParse_ValueIsNotReparsed(t *testing.T) {
	quietLogs(t)
	p := NewParser().Optional("--mode", true).Optional("--fast", false)

	args := p.parse([]string{"--mode", "--fast"})

	got, ok := args.Value("--mode")
	require.True(t, ok)
	require.Equal(t, "--fast", got)
	require.False(t, args.HasFlag("--fast"))
}

func TestParse_UndeclaredArgumentsIgnored(t *testing.T) {
	quietLogs(t)
	p := NewParser().Optional("--known", false)

	args := p.parse([]string{"stray", "--unknown", "--known"})

	require.True(t, args.HasFlag("--known"))
	_, ok := args.Value("--unknown")
	require.False(t, ok)
}

func TestParse_MissingValueExits(t *testing.T) {
	buf := quietLogs(t)
	p := NewParser().Required("--out")

	code := catchExit(t, func() { p.parse([]string{"--out"}) })

	require.Equal(t, 1, code)
	require.Contains(t, buf.String(), "No value provided")
}

func TestParse_DuplicateExits(t *testing.T) {
	buf := quietLogs(t)
	p := NewParser().Optional("--verbose", false)

	code := catchExit(t, func() { p.parse([]string{"--verbose", "--verbose"}) })

	require.Equal(t, 1, code)
	require.Contains(t, buf.String(), "provided twice")
}

func TestParse_MissingRequiredExits(t *testing.T) {
	buf := quietLogs(t)
	p := NewParser().Required("--out").Optional("--verbose", false)

	code := catchExit(t, func() { p.parse([]string{"--verbose"}) })

	require.Equal(t, 1, code)
	require.Contains(t, buf.String(), "Missing required argument `--out`")
}

func TestValue_OnFlagExits(t *testing.T) {
	buf := quietLogs(t)
	args := NewParser().Optional("--verbose", false).parse([]string{"--verbose"})

	code := catchExit(t, func() { args.Value("--verbose") })

	require.Equal(t, 1, code)
	require.Contains(t, buf.String(), "HasFlag")
}

func TestHasFlag_OnValueArgumentExits(t *testing.T) {
	buf := quietLogs(t)
	args := NewParser().Optional("--mode", true).parse([]string{"--mode", "x"})

	code := catchExit(t, func() { args.HasFlag("--mode") })

	require.Equal(t, 1, code)
	require.Contains(t, buf.String(), "Value")
}

func TestValue_AbsentArgument(t *testing.T) {
	quietLogs(t)
	args := NewParser().Optional("--mode", true).parse([]string{})

	got, ok := args.Value("--mode")
	require.False(t, ok)
	require.Empty(t, got)
}
