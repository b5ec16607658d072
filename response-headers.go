package httpecho

import (
	"net/http"

	"golang.org/x/net/http/httpguts"
)

// framingFields describe the body the server writes and cannot be set by the client.
var framingFields = map[string]bool{
	"Content-Length":    true,
	"Transfer-Encoding": true,
}

// responseHeaders sets every query pair as a response header field and
// reports the fields in the body. Pairs that cannot form a field are skipped.
func (s *Server) responseHeaders(w http.ResponseWriter, r *http.Request) error {
	view, err := s.describe(r)
	if err != nil {
		return err
	}
	logger := getLogger(r)
	fields := make(map[string][]string)
	for _, p := range view.LenientQuery() {
		if !httpguts.ValidHeaderFieldName(p.Key) || !httpguts.ValidHeaderFieldValue(p.Value) ||
			framingFields[http.CanonicalHeaderKey(p.Key)] {
			logger.Debug().Str("name", p.Key).Msg("Skipping invalid response header")
			continue
		}
		w.Header().Add(p.Key, p.Value)
		fields[p.Key] = append(fields[p.Key], p.Value)
	}
	body := make(map[string]interface{}, len(fields))
	for name, values := range fields {
		if len(values) == 1 {
			body[name] = values[0]
		} else {
			body[name] = values
		}
	}
	writeJSON(w, r, http.StatusOK, body)
	return nil
}
