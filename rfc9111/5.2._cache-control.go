package rfc9111

import "strings"

// CacheControl builds a "Cache-Control" header field value.
//
// §  5.2. Cache-Control
// §
// §  The "Cache-Control" header field is used to list directives for caches along
// §  the request/response chain. Cache directives are unidirectional, in that the
// §  presence of a directive in a request does not imply that the same directive is
// §  present or copied in the response.
// §
// §  [...] Cache directives are identified by a token, to
// §  be compared case-insensitively, and have an optional argument that can use both
// §  token and quoted-string syntax. For the directives defined below that define
// §  arguments, recipients ought to accept both forms, even if a specific form is
// §  required for generation.
// §
// §    Cache-Control   = #cache-directive
// §
// §    cache-directive = token [ "=" ( token / quoted-string ) ]
type CacheControl struct {
	directives []directive
}

type directive struct {
	name string
	arg  string
}

// Set adds a directive, or replaces the argument of a directive already present.
// An empty argument produces a directive without "=".
func (c *CacheControl) Set(name, arg string) {
	// §  [...] to be compared case-insensitively [...]
	name = strings.ToLower(name)
	for i := range c.directives {
		if c.directives[i].name == name {
			c.directives[i].arg = arg
			return
		}
	}
	c.directives = append(c.directives, directive{name, arg})
}

// String returns the field value, with directives in the order they were set.
func (c CacheControl) String() string {
	parts := make([]string, 0, len(c.directives))
	for _, d := range c.directives {
		if d.arg == "" {
			parts = append(parts, d.name)
		} else {
			parts = append(parts, d.name+"="+d.arg)
		}
	}
	return strings.Join(parts, ", ")
}

// §  5.2.2.1. max-age
// §
// §  Argument syntax:
// §
// §      delta-seconds (see Section 1.2.2)
// §
// §  The max-age response directive indicates that the response is to be considered
// §  stale after its age is greater than the specified number of seconds. This
// §  directive uses the token form of the argument syntax: e.g., 'max-age=5' not
// §  'max-age="5"'. A sender MUST NOT generate the quoted-string form.
func (c *CacheControl) MaxAge(seconds uint64) {
	c.Set("max-age", toDeltaSeconds(seconds))
}

// MaxAge returns a Cache-Control value holding only the max-age directive.
func MaxAge(seconds uint64) CacheControl {
	var cc CacheControl
	cc.MaxAge(seconds)
	return cc
}
