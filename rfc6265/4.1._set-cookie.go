package rfc6265

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/always-cache/httpecho/rfc9110"
)

// SetCookie is a cookie the server asks the user agent to store.
type SetCookie struct {
	Name  string
	Value string
	// Path is omitted from the field when empty.
	Path string
	// MaxAge is omitted from the field when nil.
	MaxAge *int
	// Expires is omitted from the field when zero.
	Expires time.Time
}

// NewSetCookie returns a session cookie scoped to the whole site.
func NewSetCookie(name, value string) SetCookie {
	return SetCookie{Name: name, Value: value, Path: "/"}
}

// §  3.1.  Examples
// §
// §     Finally, to remove a cookie, the server returns a Set-Cookie header
// §     with an expiration date in the past.  The server will be successful
// §     in removing the cookie only if the Path and the Domain attribute in
// §     the Set-Cookie header match the values used when the cookie was
// §     created.
//
// RemovalCookie returns a cookie that makes the user agent delete any stored
// cookie with the same name and path. The value is kept as given.
// The expiry is the Unix epoch so that the field value is stable.
func RemovalCookie(name, value string) SetCookie {
	maxAge := 0
	c := NewSetCookie(name, value)
	c.MaxAge = &maxAge
	c.Expires = time.Unix(0, 0)
	return c
}

// §  4.1.1.  Syntax
// §
// §     set-cookie-header = "Set-Cookie:" SP set-cookie-string
// §     set-cookie-string = cookie-pair *( ";" SP cookie-av )
// §     cookie-pair       = cookie-name "=" cookie-value
// §     cookie-name       = token
// §     cookie-value      = *cookie-octet / ( DQUOTE *cookie-octet DQUOTE )
// §     cookie-octet      = %x21 / %x23-2B / %x2D-3A / %x3C-5B / %x5D-7E
// §                           ; US-ASCII characters excluding CTLs,
// §                           ; whitespace DQUOTE, comma, semicolon,
// §                           ; and backslash
// §
// §     expires-av        = "Expires=" sane-cookie-date
// §     max-age-av        = "Max-Age=" non-zero-digit *DIGIT
// §     path-av           = "Path=" path-value
//
// Names and values outside the grammar are percent-encoded, which the Cookie
// parser in this package reverses.
func (c SetCookie) String() string {
	var b strings.Builder
	b.WriteString(encode(c.Name, isTokenChar))
	b.WriteByte('=')
	b.WriteString(encode(c.Value, isCookieOctet))
	if c.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(c.Path)
	}
	if c.MaxAge != nil {
		// §  [...] If delta-seconds is less than or equal to zero (0), let
		// §  expiry-time be the earliest representable date and time.
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(*c.MaxAge))
	}
	if !c.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(rfc9110.FormatHttpDate(c.Expires))
	}
	return b.String()
}

func isCookieOctet(c byte) bool {
	return c == 0x21 ||
		(c >= 0x23 && c <= 0x2B) ||
		(c >= 0x2D && c <= 0x3A) ||
		(c >= 0x3C && c <= 0x5B) ||
		(c >= 0x5D && c <= 0x7E)
}

// §     token          = 1*tchar
// §     tchar          = "!" / "#" / "$" / "%" / "&" / "'" / "*"
// §                    / "+" / "-" / "." / "^" / "_" / "`" / "|" / "~"
// §                    / DIGIT / ALPHA
func isTokenChar(c byte) bool {
	if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return true
	}
	return strings.IndexByte("!#$&'*+-.^_`|~", c) >= 0
}

// encode percent-encodes every byte not allowed by the grammar, and "%" itself.
func encode(s string, allowed func(byte) bool) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' && allowed(c) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
