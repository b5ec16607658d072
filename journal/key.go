package journal

import "net/http"

const (
	methodSeparator = ":"
	idSeparator     = "\t"
)

// MethodPrefix gets the key prefix for all exchanges with the given method.
func MethodPrefix(method string) string {
	return method + methodSeparator
}

// KeyPrefix returns the key of an exchange without its id.
// It is suitable for finding every recorded exchange for a particular request target.
func KeyPrefix(r *http.Request) string {
	return MethodPrefix(r.Method) + r.URL.RequestURI() + idSeparator
}

// Key returns the full key of an exchange.
// The id tells apart exchanges for the same request target.
func Key(r *http.Request, id string) string {
	return KeyPrefix(r) + id
}
