package greeting

import (
	"errors"
	"net/http"
	"strings"
)

// getErrorStatusCode returns the status code for the given error.
func getErrorStatusCode(err error) int {
	for known, status := range wellKnownErrors {
		if errors.Is(err, known) {
			return status
		}
	}

	return http.StatusInternalServerError
}

// newErrorResponse creates a new error response. The message is
// capitalized and terminated by a newline, like any other body.
func newErrorResponse(err error) Response {
	msg := err.Error()
	if msg != "" {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return newResponse(getErrorStatusCode(err), []byte(msg+"\n"))
}

// newResponse creates a new response with an empty header.
func newResponse(status int, body []byte) Response {
	return Response{
		StatusCode: status,
		Body:       body,
		Header:     make(http.Header),
	}
}
