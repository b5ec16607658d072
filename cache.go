package httpecho

import (
	"net/http"
	"strconv"

	"github.com/always-cache/httpecho/rfc9110"
	"github.com/always-cache/httpecho/rfc9111"

	"github.com/google/uuid"
)

// CacheDecision is the outcome of the cache probe.
// NotModified is set for conditional requests, which never get a payload.
type CacheDecision struct {
	Conditional bool
	NotModified bool
	Fresh       HttpInfo
}

// DecideCache answers every conditional request with Not Modified,
// whatever the validators say, and anything else with the echo.
func DecideCache(view RequestView) CacheDecision {
	if rfc9110.Conditional(view.header) {
		return CacheDecision{Conditional: true, NotModified: true}
	}
	return CacheDecision{Fresh: NewHttpInfo(view, false)}
}

func (s *Server) cache(w http.ResponseWriter, r *http.Request) error {
	view, err := s.describe(r)
	if err != nil {
		return err
	}
	d := DecideCache(view)
	if d.NotModified {
		getLogger(r).Trace().Msg("Conditional request, not modified")
		write(w, r, http.StatusNotModified, nil)
		return nil
	}
	w.Header().Set("Last-Modified", rfc9110.Now())
	w.Header().Set("ETag", strconv.Quote(uuid.NewString()))
	writeJSON(w, r, http.StatusOK, d.Fresh)
	return nil
}

func (s *Server) cacheFor(w http.ResponseWriter, r *http.Request) error {
	param, err := pathParam(r, "seconds")
	if err != nil {
		return err
	}
	seconds, err := rfc9111.ParseDeltaSeconds(param)
	if err != nil {
		return ClientInputError{Err: err}
	}
	view, err := s.describe(r)
	if err != nil {
		return err
	}
	w.Header().Set("Cache-Control", rfc9111.MaxAge(seconds).String())
	writeJSON(w, r, http.StatusOK, NewHttpInfo(view, false))
	return nil
}

func (s *Server) etag(w http.ResponseWriter, r *http.Request) error {
	value, err := pathParam(r, "value")
	if err != nil {
		return err
	}
	view, err := s.describe(r)
	if err != nil {
		return err
	}
	w.Header().Set("ETag", value)
	writeJSON(w, r, http.StatusOK, NewHttpInfo(view, false))
	return nil
}
