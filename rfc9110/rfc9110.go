// Package rfc9110 contains the parts of HTTP Semantics (RFC 9110) that the echo
// service needs in order to describe requests and synthesize responses:
// field folding, HTTP-date handling, conditional request detection and the
// status code registry.
//
// Files are named after the RFC sections they implement.
package rfc9110

import (
	"net/http"
	"time"
)

// StatusReason returns the reason phrase for the given status code.
// The boolean reports whether the code is part of the registry at all;
// an otherwise valid code with no registered phrase returns an empty phrase.
// An error is returned if the code cannot be carried in a status line.
func StatusReason(code uint16) (string, bool, error) {
	if !ValidStatusCode(code) {
		return "", false, ErrInvalidStatusCode
	}
	reason, ok := reasonPhrases[code]
	return reason, ok, nil
}

// Conditional reports whether the request header section carries a
// precondition that a cache evaluates when validating a stored response.
func Conditional(header http.Header) bool {
	return ParsePreconditions(header).Conditional()
}

// Now returns the current time as an IMF-fixdate, suitable for the
// Date and Last-Modified fields.
func Now() string {
	return FormatHttpDate(time.Now())
}
