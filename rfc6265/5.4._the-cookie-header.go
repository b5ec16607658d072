package rfc6265

import (
	"errors"
	"strings"
)

var (
	ErrMissingPair = errors.New("the cookie is missing a name/value pair")
	ErrEmptyName   = errors.New("the cookie's name is empty")
)

// §  4.2.1.  Syntax
// §
// §     The user agent sends stored cookies to the origin server in the
// §     Cookie header.  If the server conforms to the requirements in
// §     Section 4.1 (and the user agent conforms to the requirements in
// §     Section 5), the user agent will send a Cookie header that conforms to
// §     the following grammar:
// §
// §     cookie-header = "Cookie:" OWS cookie-string OWS
// §     cookie-string = cookie-pair *( ";" SP cookie-pair )
//
// §  5.4.  The Cookie Header
// §
// §     [...] When the user agent generates an HTTP request, the user agent
// §     MUST NOT attach more than one Cookie header field.
//
// Clients do send more than one Cookie field line in practice (and HTTP/2
// splits the field on purpose), so every line is read.
//
// ParseCookieHeader parses Cookie field values into cookie-pairs.
// Empty segments are ignored. A segment without "=" or with an empty name fails
// the whole header. Percent-encoded octets are decoded; a "%" that does not start
// an encoded octet is a cookie-octet and is kept.
func ParseCookieHeader(values []string) ([]Pair, error) {
	pairs := make([]Pair, 0)
	for _, value := range values {
		for _, segment := range strings.Split(value, ";") {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				continue
			}
			pair, err := parseCookiePair(segment)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, pair)
		}
	}
	return pairs, nil
}

// §     cookie-pair       = cookie-name "=" cookie-value
// §     cookie-name       = token
// §     cookie-value      = *cookie-octet / ( DQUOTE *cookie-octet DQUOTE )
func parseCookiePair(segment string) (Pair, error) {
	eq := strings.IndexByte(segment, '=')
	if eq < 0 {
		return Pair{}, ErrMissingPair
	}
	name := strings.TrimSpace(segment[:eq])
	if name == "" {
		return Pair{}, ErrEmptyName
	}
	value := strings.TrimSpace(segment[eq+1:])
	return Pair{Name: unescape(name), Value: unescape(value)}, nil
}

// unescape decodes every "%" followed by two hex digits and leaves the rest as is.
func unescape(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
