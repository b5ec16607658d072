package rfc9110

import (
	"net/http"
	"sort"
	"strings"
)

// §  5.1.  Field Names
// §
// §     Field names are case-insensitive and ought to be registered within
// §     the "Hypertext Transfer Protocol (HTTP) Field Name Registry"; see
// §     Section 16.3.1.

// FieldName returns the lower-cased form of a field name, which is the form
// used when reporting fields back to a client.
func FieldName(name string) string {
	return strings.ToLower(name)
}

// §  5.3.  Field Order
// §
// §     A recipient MAY combine multiple field lines within a field section
// §     that have the same field name into one field line, without changing
// §     the semantics of the message, by appending each subsequent field line
// §     value to the initial field line value in order, separated by a comma
// §     (",") and optional whitespace (OWS, defined in Section 5.6.3).  For
// §     consistency, use comma SP.
// §
// §     The order in which field lines with the same name are received is
// §     therefore significant to the interpretation of the field value; a
// §     proxy MUST NOT change the order of these field line values when
// §     forwarding a message.

// FoldFields combines every field line of a header section into a single value
// per lower-cased field name, keeping the order in which the lines arrived.
//
// The separator is placed between combined values. The RFC asks for ", ", but
// the echo endpoints have always concatenated values without any separator, so
// the caller decides.
//
// Go's server removes the Host field from the header section and keeps it on
// the request instead. A non-empty host is reported as the "host" field.
func FoldFields(header http.Header, host string, separator string) map[string]string {
	fields := make(map[string]string, len(header)+1)
	if host != "" {
		fields["host"] = host
	}
	// sort names so that differently-cased duplicates fold deterministically
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		key := FieldName(name)
		if key == "host" && host != "" {
			continue
		}
		value := strings.Join(header[name], separator)
		if prev, ok := fields[key]; ok {
			value = prev + separator + value
		}
		fields[key] = value
	}
	return fields
}
