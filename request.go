package httpecho

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	querypairs "github.com/always-cache/httpecho/pkg/query-pairs"
	"github.com/always-cache/httpecho/rfc6265"
	"github.com/always-cache/httpecho/rfc9110"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
)

// RequestView is what the server observed of a single request.
type RequestView struct {
	Method string
	Path   string
	// URL as the client asked for it, always with the http scheme.
	URL      string
	RawQuery string
	// Header fields folded into one value per lower-cased name.
	Headers     map[string]string
	Body        []byte
	PeerAddress string

	header http.Header
}

// Query parses the query string, failing on the first malformed pair.
func (v RequestView) Query() (querypairs.Pairs, error) {
	pairs, err := querypairs.Parse(v.RawQuery)
	if err != nil {
		return nil, ClientInputError{Err: err}
	}
	return pairs, nil
}

// LenientQuery parses the query string, skipping malformed pairs.
func (v RequestView) LenientQuery() querypairs.Pairs {
	return querypairs.ParseLenient(v.RawQuery)
}

// Cookies returns the cookie-pairs of the request in the order they were sent.
func (v RequestView) Cookies() ([]rfc6265.Pair, error) {
	pairs, err := rfc6265.ReadCookies(v.header)
	if err != nil {
		return nil, ClientInputError{Err: err}
	}
	return pairs, nil
}

// describe reads the request, including its body, into a RequestView.
func (s *Server) describe(r *http.Request) (RequestView, error) {
	peer, err := peerAddress(r)
	if err != nil {
		return RequestView{}, err
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return RequestView{}, err
	}
	return RequestView{
		Method:      r.Method,
		Path:        r.URL.Path,
		URL:         requestURL(r),
		RawQuery:    r.URL.RawQuery,
		Headers:     rfc9110.FoldFields(receivedHeader(r), r.Host, s.headerSeparator),
		Body:        body,
		PeerAddress: peer,
		header:      r.Header,
	}, nil
}

// receivedHeader returns the header section as received.
// Go's server moves Transfer-Encoding out of the header map, so it is put back.
func receivedHeader(r *http.Request) http.Header {
	if len(r.TransferEncoding) == 0 || r.Header.Get("Transfer-Encoding") != "" {
		return r.Header
	}
	header := r.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	header["Transfer-Encoding"] = append([]string(nil), r.TransferEncoding...)
	return header
}

func requestURL(r *http.Request) string {
	u := "http://" + r.Host + r.URL.EscapedPath()
	if r.URL.RawQuery != "" {
		u += "?" + r.URL.RawQuery
	}
	return u
}

// peerAddress returns the IP address of the client.
// RemoteAddr is in the format:
// 1.2.3.4:10000 for ipv4
// [1:2:3]:10000 for ipv6
// or just the address when set by a proxy-aware middleware.
func peerAddress(r *http.Request) (string, error) {
	if r.RemoteAddr == "" {
		return "", MissingSignalError{Signal: "peer address"}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host, nil
	}
	return r.RemoteAddr, nil
}

// pathParam returns the unescaped value of a URL parameter.
// The router matches on the escaped path when the path has escapes,
// and the parameters are then escaped as well.
func pathParam(r *http.Request, name string) (string, error) {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value, nil
	}
	unescaped, err := url.PathUnescape(value)
	if err != nil {
		return "", ClientInputError{Err: fmt.Errorf("invalid path parameter %q: %w", name, err)}
	}
	return unescaped, nil
}

type serverLoggerKey struct{}

// getLogger returns the logger from the request context.
// hlog does not put a disabled logger in the context, so the server's own
// logger is used next. If neither is found, it will return the default logger.
func getLogger(r *http.Request) *zerolog.Logger {
	logger := hlog.FromRequest(r)
	if logger != zerolog.Ctx(context.Background()) {
		return logger
	}
	if logger, ok := r.Context().Value(serverLoggerKey{}).(*zerolog.Logger); ok {
		return logger
	}
	return &log.Logger
}
