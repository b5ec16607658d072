// Package rfc6750 reads bearer tokens from the Authorization request header
// field (The OAuth 2.0 Authorization Framework: Bearer Token Usage, RFC 6750).
package rfc6750

import "strings"

// §  2.1.  Authorization Request Header Field
// §
// §     When sending the access token in the "Authorization" request header
// §     field defined by HTTP/1.1 [RFC2617], the client uses the "Bearer"
// §     authentication scheme to transmit the access token.
// §
// §     For example:
// §
// §       GET /resource HTTP/1.1
// §       Host: server.example.com
// §       Authorization: Bearer mF_9.B5f-4.1JqM
// §
// §     The syntax of the "Authorization" header field for this scheme
// §     follows the usage of the Basic scheme defined in Section 2 of
// §     [RFC2617].
// §
// §       b64token    = 1*( ALPHA / DIGIT /
// §                         "-" / "." / "_" / "~" / "+" / "/" ) *"="
// §       credentials = "Bearer" 1*SP b64token
const prefix = "Bearer "

// Token extracts the token from an Authorization field value.
//
// The value is trimmed of surrounding whitespace and must then start with
// "Bearer " (case-sensitive, a single space). Everything after the prefix is
// the token, unmodified; the b64token grammar is not enforced.
func Token(authorization string) (string, bool) {
	value := strings.TrimSpace(authorization)
	if len(value) < len(prefix) || !strings.HasPrefix(value, prefix) {
		return "", false
	}
	return value[len(prefix):], true
}

// §  3.  The WWW-Authenticate Response Header Field
// §
// §     If the protected resource request does not include authentication
// §     credentials or does not contain an access token that enables access
// §     to the protected resource, the resource server MUST include the HTTP
// §     "WWW-Authenticate" response header field
//
// Challenge is the WWW-Authenticate field value without auth-params.
const Challenge = "Bearer"
