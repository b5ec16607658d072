package httpecho

import (
	"errors"
	"net/http"
)

// handlerFunc is a handler that leaves error responses to the server.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func handle(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			writeError(w, r, err)
		}
	}
}

// writeError maps an error to its response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := getLogger(r)

	var clientErr ClientInputError
	var missingErr MissingSignalError
	var tooLargeErr *http.MaxBytesError
	switch {
	case errors.As(err, &tooLargeErr):
		logger.Debug().Err(err).Int64("limit", tooLargeErr.Limit).Msg("Request body too large")
		writeText(w, r, http.StatusRequestEntityTooLarge, err.Error())
	case errors.As(err, &clientErr):
		logger.Debug().Err(err).Msg("Rejecting request")
		writeText(w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &missingErr):
		logger.Error().Err(err).Msg("Cannot handle request")
		writeText(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	default:
		logger.Error().Err(err).Msg("Handler failed")
		writeText(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

// writeJSON writes v as the JSON body of the response.
// A Content-Type already set by the handler is kept.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	write(w, r, status, body)
}

func writeText(w http.ResponseWriter, r *http.Request, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	write(w, r, status, []byte(text))
}

func write(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	w.WriteHeader(status)
	// 204 and 304 responses cannot have a body
	if _, err := w.Write(body); err != nil && !errors.Is(err, http.ErrBodyNotAllowed) {
		getLogger(r).Warn().Err(err).Msg("Could not write response body to client")
	}
}
