package rfc9110

import "errors"

// §  15.  Status Codes
// §
// §     The status code of a response is a three-digit integer code that
// §     describes the result of the request and the semantics of the
// §     response, including whether the request was successful and what
// §     content is enclosed (if any).  All valid status codes are within the
// §     range of 100 to 599, inclusive.
// §
// §     HTTP status codes are extensible.  A client is not required to
// §     understand the meaning of all registered status codes, though such
// §     understanding is obviously desirable.  However, a client MUST
// §     understand the class of any status code, as indicated by the first
// §     digit, and treat an unrecognized status code as being equivalent to
// §     the x00 status code of that class.
//
// The status line itself (RFC 9112, section 4) carries any three-digit code,
// which is what both Go's server and most clients accept. Codes 600 to 999 are
// therefore valid but unregistered.

// ErrInvalidStatusCode is returned for codes that cannot appear in a status line.
var ErrInvalidStatusCode = errors.New("invalid status code")

// ValidStatusCode reports whether the code is a three-digit status code.
func ValidStatusCode(code uint16) bool {
	return code >= 100 && code <= 999
}

// §  15.2.  Informational 1xx
// §
// §     The 1xx (Informational) class of status code indicates an interim
// §     response for communicating connection status or request progress
// §     prior to completing the requested action and sending a final
// §     response.
//
// Interim reports whether the code is informational and therefore cannot be
// sent as the final response to a request.
func Interim(code uint16) bool {
	return code >= 100 && code < 200
}

// reasonPhrases is the registry of canonical reason phrases.
// It is never written to after package initialization.
var reasonPhrases = map[uint16]string{
	// §  15.2.  Informational 1xx
	100: "Continue",
	101: "Switching Protocols",
	102: "Processing",

	// §  15.3.  Successful 2xx
	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",
	207: "Multi-Status",
	208: "Already Reported",
	226: "IM Used",

	// §  15.4.  Redirection 3xx
	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	307: "Temporary Redirect",
	308: "Permanent Redirect",

	// §  15.5.  Client Error 4xx
	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Payload Too Large",
	414: "URI Too Long",
	415: "Unsupported Media Type",
	416: "Range Not Satisfiable",
	417: "Expectation Failed",
	418: "I'm a teapot",
	421: "Misdirected Request",
	422: "Unprocessable Entity",
	423: "Locked",
	424: "Failed Dependency",
	426: "Upgrade Required",
	428: "Precondition Required",
	429: "Too Many Requests",
	431: "Request Header Fields Too Large",
	451: "Unavailable For Legal Reasons",

	// §  15.6.  Server Error 5xx
	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
	506: "Variant Also Negotiates",
	507: "Insufficient Storage",
	508: "Loop Detected",
	510: "Not Extended",
	511: "Network Authentication Required",
}
