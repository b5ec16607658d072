// Package rfc6265 reads the Cookie request header and writes Set-Cookie
// response headers (HTTP State Management Mechanism, RFC 6265).
package rfc6265

import "net/http"

// Pair is a single cookie-pair, in the order it was received.
type Pair struct {
	Name  string
	Value string
}

// ReadCookies parses every Cookie field line of a request header section.
func ReadCookies(header http.Header) ([]Pair, error) {
	return ParseCookieHeader(header.Values("Cookie"))
}

// Jar turns cookie-pairs into a name to value mapping.
// When a name occurs more than once, the last value seen wins.
func Jar(pairs []Pair) map[string]string {
	jar := make(map[string]string, len(pairs))
	for _, p := range pairs {
		jar[p.Name] = p.Value
	}
	return jar
}
