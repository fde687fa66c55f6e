package disk

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stormyhs/fox/log"
)

var errExit = errors.New("exit called")

// catchExit runs fn with the package exit hook stubbed out and returns the
// exit code it was called with, or -1 when fn finished normally.
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

func TestReadFile(t *testing.T) {
	quietLogs(t)
	path := filepath.Join(t.TempDir(), "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	var got string
	code := catchExit(t, func() { got = ReadFile(path) })

	require.Equal(t, -1, code)
	require.Equal(t, "hello", got)
}

func TestReadFile_Missing(t *testing.T) {
	buf := quietLogs(t)
	path := filepath.Join(t.TempDir(), "nope.txt")

	code := catchExit(t, func() { ReadFile(path) })

	require.Equal(t, 1, code)
	require.Contains(t, buf.String(), "not found")
}

func TestReadFile_Directory(t *testing.T) {
	buf := quietLogs(t)
	dir := t.TempDir()

	code := catchExit(t, func() { ReadFile(dir) })

	require.Equal(t, 1, code)
	require.Contains(t, buf.String(), "directory")
}

func TestWriteFile_Overwrites(t *testing.T) {
	quietLogs(t)
	path := filepath.Join(t.TempDir(), "out.txt")

	code := catchExit(t, func() {
		WriteFile(path, "first")
		WriteFile(path, "second")
	})

	require.Equal(t, -1, code)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(data))
}

func TestDeleteFile(t *testing.T) {
	quietLogs(t)
	path := filepath.Join(t.TempDir(), "gone.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	code := catchExit(t, func() { DeleteFile(path) })

	require.Equal(t, -1, code)
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestDeleteFile_MissingWarnsWithoutExit(t *testing.T) {
	buf := quietLogs(t)
	path := filepath.Join(t.TempDir(), "never-existed.txt")

	code := catchExit(t, func() { DeleteFile(path) })

	require.Equal(t, -1, code)
	require.Contains(t, buf.String(), "not found for deletion")
}

func TestFileInfo(t *testing.T) {
	quietLogs(t)
	path := filepath.Join(t.TempDir(), "info.txt")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0o644))

	var info os.FileInfo
	code := catchExit(t, func() { info = FileInfo(path) })

	require.Equal(t, -1, code)
	require.EqualValues(t, 5, info.Size())
}

func TestFileInfo_MissingExits(t *testing.T) {
	quietLogs(t)
	path := filepath.Join(t.TempDir(), "nope.txt")

	code := catchExit(t, func() { FileInfo(path) })

	require.Equal(t, 1, code)
}

func TestFileInfoIfExists(t *testing.T) {
	quietLogs(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "maybe.txt")

	_, ok := FileInfoIfExists(path)
	require.False(t, ok)

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	info, ok := FileInfoIfExists(path)
	require.True(t, ok)
	require.False(t, info.IsDir())
}

func TestListDir(t *testing.T) {
	quietLogs(t)
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	var names []string
	code := catchExit(t, func() { names = ListDir(dir) })

	require.Equal(t, -1, code)
	require.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, names)
}

func TestListDir_MissingExits(t *testing.T) {
	buf := quietLogs(t)

	code := catchExit(t, func() { ListDir(filepath.Join(t.TempDir(), "void")) })

	require.Equal(t, 1, code)
	require.Contains(t, buf.String(), "not found")
}

func TestListDirOrEmpty_Missing(t *testing.T) {
	buf := quietLogs(t)

	var names []string
	code := catchExit(t, func() { names = ListDirOrEmpty(filepath.Join(t.TempDir(), "void")) })

	require.Equal(t, -1, code)
	require.Empty(t, names)
	require.Contains(t, buf.String(), "not found")
}
