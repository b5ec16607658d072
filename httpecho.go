// Package httpecho is an HTTP request inspection service. Its endpoints
// report back what the server observed of a request, and produce
// deterministic responses for exercising status codes, cookies, cache
// validation and authentication.
package httpecho

import (
	"net/http"

	"github.com/always-cache/httpecho/journal"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// DefaultMaxBodyBytes is the request body limit used when none is configured.
const DefaultMaxBodyBytes = 256 << 10

type Config struct {
	// Logger to use. The global zerolog logger is used if nil.
	Logger *zerolog.Logger
	// Placed between the values of a header field that occurs more than once.
	// Values are concatenated as they are if empty.
	HeaderSeparator string
	// Largest request body accepted. DefaultMaxBodyBytes if zero, unlimited if negative.
	MaxBodyBytes int64
	// Take the client address from X-Forwarded-For and X-Real-IP.
	// Only enable behind a proxy that sets them.
	TrustProxy bool
	// Serve Prometheus metrics on /metrics.
	EnableMetrics bool
	// Optional storage for recording every exchange.
	Journal journal.Provider
}

type Server struct {
	router          chi.Router
	log             zerolog.Logger
	headerSeparator string
	maxBodyBytes    int64
	metrics         *metrics
	journal         journal.Provider
}

// New creates the server and its routes.
func New(config Config) *Server {
	var logger zerolog.Logger
	if config.Logger == nil {
		logger = zerolog.New(zerolog.NewConsoleWriter())
	} else {
		logger = *config.Logger
	}

	s := &Server{
		log:             logger,
		headerSeparator: config.HeaderSeparator,
		maxBodyBytes:    config.MaxBodyBytes,
		journal:         config.Journal,
	}
	if s.maxBodyBytes == 0 {
		s.maxBodyBytes = DefaultMaxBodyBytes
	}
	if config.EnableMetrics {
		s.metrics = newMetrics()
	}

	r := chi.NewRouter()
	if config.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(s.withLogger)
	r.Use(hlog.NewHandler(s.log))
	r.Use(hlog.RequestIDHandler("req_id", "X-Request-Id"))
	r.Use(hlog.RemoteAddrHandler("ip"))
	r.Use(hlog.AccessHandler(s.accessLog))
	r.Use(s.observe)
	r.Use(s.recoverer)
	r.Use(s.limitBody)
	s.routes(r)
	s.router = r

	return s
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
