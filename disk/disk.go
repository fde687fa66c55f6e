// Package disk wraps common file system operations with fox's logging and
// failure policy. Helpers that cannot recover log a critical line and stop
// the process with exit code 1; the forgiving variants downgrade an absent
// file or directory to a warning and carry on.
package disk

import (
	"errors"
	"io/fs"
	"os"
	"syscall"

	"github.com/stormyhs/fox/log"
)

// exit stops the process after an unrecoverable failure. Tests swap it out
// to observe the code instead of dying.
var exit = os.Exit

// ReadFile returns the content of a file as a string. Useful when the file
// must exist and be readable or the program should not continue: on any
// error it logs a critical line and exits.
func ReadFile(path string) string {
	content, err := os.ReadFile(path)
	if err == nil {
		return string(content)
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Critical("File `%s` not found.", path)
	case errors.Is(err, fs.ErrPermission):
		log.Critical("Not permitted to read file `%s`.", path)
	case errors.Is(err, syscall.EISDIR):
		log.Critical("Cannot read `%s`, as it is a directory.", path)
	default:
		log.Critical("Failed to read file `%s`: %v", path, err)
	}
	exit(1)
	return ""
}

// WriteFile writes content to a file, overwriting it if it already exists.
// On any error it logs a critical line and exits.
func WriteFile(path, content string) {
	err := os.WriteFile(path, []byte(content), 0o644)
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, fs.ErrPermission):
		log.Critical("Not permitted to write to file `%s`.", path)
	case errors.Is(err, syscall.EISDIR):
		log.Critical("Cannot write to `%s`, as it is a directory.", path)
	default:
		log.Critical("Failed to write to file `%s`: %v", path, err)
	}
	exit(1)
}

// DeleteFile removes a file. A file that is already gone only warns; any
// other failure logs a critical line and exits.
func DeleteFile(path string) {
	err := os.Remove(path)
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn("File `%s` not found for deletion.", path)
		return
	case errors.Is(err, fs.ErrPermission):
		log.Critical("Not permitted to delete file `%s`.", path)
	default:
		log.Critical("Failed to delete file `%s`: %v", path, err)
	}
	exit(1)
}

// FileInfo returns the metadata of a file. On any error it logs a critical
// line and exits.
func FileInfo(path string) os.FileInfo {
	info, err := os.Stat(path)
	if err == nil {
		return info
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Critical("File `%s` not found.", path)
	case errors.Is(err, fs.ErrPermission):
		log.Critical("Not permitted to read metadata of file `%s`.", path)
	default:
		log.Critical("Failed to read metadata of file `%s`: %v", path, err)
	}
	exit(1)
	return nil
}

// FileInfoIfExists returns the metadata of a file, or false when the file
// does not exist. Errors other than absence still log and exit.
func FileInfoIfExists(path string) (os.FileInfo, bool) {
	info, err := os.Stat(path)
	if err == nil {
		return info, true
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, false
	case errors.Is(err, fs.ErrPermission):
		log.Critical("Not permitted to read metadata of file `%s`.", path)
	default:
		log.Critical("Failed to read metadata of file `%s`: %v", path, err)
	}
	exit(1)
	return nil, false
}

// ListDir returns the entry names of a directory, sorted by filename. On
// any error it logs a critical line and exits.
func ListDir(path string) []string {
	names, err := readNames(path)
	if err == nil {
		return names
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Critical("Directory `%s` not found.", path)
	case errors.Is(err, fs.ErrPermission):
		log.Critical("Not permitted to read directory `%s`.", path)
	default:
		log.Critical("Failed to read directory `%s`: %v", path, err)
	}
	exit(1)
	return nil
}

// ListDirOrEmpty returns the entry names of a directory, or an empty slice
// with a warning when the directory does not exist. Other errors still log
// and exit.
func ListDirOrEmpty(path string) []string {
	names, err := readNames(path)
	if err == nil {
		return names
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn("Directory `%s` not found.", path)
		return []string{}
	case errors.Is(err, fs.ErrPermission):
		log.Critical("Not permitted to read directory `%s`.", path)
	default:
		log.Critical("Failed to read directory `%s`: %v", path, err)
	}
	exit(1)
	return nil
}

// readNames collects entry names. A read error after the directory opened
// is downgraded to a warning and the names read so far are returned.
func readNames(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil && len(entries) == 0 {
		return nil, err
	}
	if err != nil {
		log.Warn("Failed to read directory `%s`: %v", path, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
