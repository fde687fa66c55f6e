// Package net layers fox's failure policy over plain HTTP calls. A request
// that does not come back with a success status is treated as unrecoverable:
// the helper logs a critical line and stops the process, so callers only
// ever see responses worth reading.
package net

import (
	"net/http"
	"os"

	"github.com/stormyhs/fox/log"
)

// exit stops the process after an unrecoverable failure. Tests swap it out
// to observe the code instead of dying.
var exit = os.Exit

// Get performs a GET request and returns the response. A transport error or
// an error status (4xx, 5xx) logs a critical line and exits.
func Get(url string) *http.Response {
	resp, err := http.Get(url)
	if err != nil {
		log.Critical("HTTP request failed with transport error: %v", err)
		exit(1)
		return nil
	}
	if resp.StatusCode >= 400 {
		code := resp.StatusCode
		_ = resp.Body.Close()
		if phrase := HTTPCodeToString(code); phrase != "Unknown" {
			log.Critical("HTTP request failed: %d %s", code, phrase)
		} else {
			log.Critical("HTTP request failed with status code %d:\n%+v", code, resp)
		}
		exit(1)
		return nil
	}
	return resp
}
