package httpecho

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/always-cache/httpecho/journal"
	serializer "github.com/always-cache/httpecho/pkg/response-serializer"
	tee "github.com/always-cache/httpecho/pkg/response-writer-tee"

	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"
)

func (s *Server) accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("url", r.URL.String()).
		Str("route", routePattern(r)).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("Sending response to client")
}

// withLogger makes the server logger available to handlers even when hlog has none.
func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), serverLoggerKey{}, &s.log)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// limitBody caps the number of body bytes a handler can read.
func (s *Server) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.maxBodyBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

// recoverer answers a panicking handler with 500 instead of dropping the connection.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				getLogger(r).Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("Handler panicked")
				writeText(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// bodyRecorder keeps a copy of the request body as the handler reads it.
type bodyRecorder struct {
	io.ReadCloser
	b bytes.Buffer
}

func (b *bodyRecorder) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	b.b.Write(p[:n])
	return n, err
}

// observe counts every exchange and records it in the journal if there is one.
func (s *Server) observe(next http.Handler) http.Handler {
	if s.metrics == nil && s.journal == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs := tee.NewResponseSaver(w, s.journal != nil)
		var body *bodyRecorder
		if s.journal != nil {
			body = &bodyRecorder{ReadCloser: r.Body}
			r.Body = body
		}

		next.ServeHTTP(rs, r)
		respondedAt := time.Now()

		if s.metrics != nil {
			s.metrics.observe(r, rs.StatusCode(), respondedAt.Sub(rs.CreatedAt))
		}
		if s.journal != nil {
			s.record(r, body.b.Bytes(), rs, respondedAt)
		}
	})
}

// record writes the exchange to the journal.
// Failures are logged only; the response has already been sent.
func (s *Server) record(r *http.Request, body []byte, rs *tee.ResponseSaver, respondedAt time.Time) {
	logger := getLogger(r)
	ex, err := serializer.NewExchange(r, body, rs.Response(), rs.CreatedAt, respondedAt)
	if err != nil {
		logger.Warn().Err(err).Msg("Could not read recorded response")
		return
	}
	bts, err := serializer.ExchangeToBytes(ex)
	if err != nil {
		logger.Warn().Err(err).Msg("Could not serialize exchange")
		return
	}
	id := uuid.NewString()
	if reqID, ok := hlog.IDFromRequest(r); ok {
		id = reqID.String()
	}
	entry := journal.Entry{
		Key:         journal.Key(r, id),
		RequestedAt: rs.CreatedAt,
		RespondedAt: respondedAt,
		Bytes:       bts,
	}
	logger.Trace().Str("key", entry.Key).Msg("Writing to journal")
	if err := s.journal.Put(entry); err != nil {
		logger.Error().Err(err).Msg("Could not write to journal")
	}
}
