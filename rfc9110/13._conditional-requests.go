package rfc9110

import (
	"net/http"
	"time"
)

// §  13.1.  Preconditions
// §
// §     A conditional request is an HTTP request with one or more request
// §     header fields that indicate a precondition to be tested before
// §     applying the request method to the target resource.
// §
// §     [...]  In summary, the If-Match and If-Unmodified-Since conditional
// §     header fields are not applicable to a cache, and If-None-Match takes
// §     precedence over If-Modified-Since.

// Preconditions holds the validator preconditions of a request that matter to a cache.
type Preconditions struct {
	// IfNoneMatch is the combined If-None-Match field value.
	IfNoneMatch    string
	HasIfNoneMatch bool
	// IfModifiedSince is zero if the field is absent or not a valid HTTP-date.
	IfModifiedSince    time.Time
	HasIfModifiedSince bool
}

// §  13.1.2.  If-None-Match
// §
// §     The "If-None-Match" header field makes the request method conditional
// §     on a recipient cache or origin server either not having any current
// §     representation of the target resource, when the field value is "*",
// §     or having a selected representation with an entity tag that does not
// §     match any of those listed in the field value.
// §
// §  13.1.3.  If-Modified-Since
// §
// §     The "If-Modified-Since" header field makes a GET or HEAD request
// §     method conditional on the selected representation's modification
// §     date being more recent than the date provided in the field value.

// ParsePreconditions reads the If-None-Match and If-Modified-Since fields.
// A field is considered present even if its value is empty.
func ParsePreconditions(header http.Header) Preconditions {
	var p Preconditions
	if values := header.Values("If-None-Match"); len(values) > 0 {
		p.HasIfNoneMatch = true
		p.IfNoneMatch = joinList(values)
	}
	if values := header.Values("If-Modified-Since"); len(values) > 0 {
		p.HasIfModifiedSince = true
		if date, err := HttpDate(values[0]); err == nil {
			p.IfModifiedSince = date
		}
	}
	return p
}

// Conditional reports whether either validator precondition is present.
// Either one alone is sufficient.
func (p Preconditions) Conditional() bool {
	return p.HasIfNoneMatch || p.HasIfModifiedSince
}

func joinList(values []string) string {
	list := values[0]
	for _, v := range values[1:] {
		list += ", " + v
	}
	return list
}
