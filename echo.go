package httpecho

import "net/http"

// HttpInfo is the generic echo of a request.
type HttpInfo struct {
	Data    string            `json:"data"`
	Headers map[string]string `json:"headers"`
	// Body decoded as JSON, null if it is not JSON.
	JSON interface{} `json:"json"`
	// Only reported by the catch-all endpoints.
	Method string `json:"method,omitempty"`
	Origin string `json:"origin"`
	URL    string `json:"url"`
}

// NewHttpInfo assembles the echo of a request.
func NewHttpInfo(view RequestView, withMethod bool) HttpInfo {
	info := HttpInfo{
		Data:    string(view.Body),
		Headers: view.Headers,
		JSON:    parseJSON(view.Body),
		Origin:  view.PeerAddress,
		URL:     view.URL,
	}
	if withMethod {
		info.Method = view.Method
	}
	return info
}

func (s *Server) echo(w http.ResponseWriter, r *http.Request) error {
	view, err := s.describe(r)
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusOK, NewHttpInfo(view, false))
	return nil
}

func (s *Server) anything(w http.ResponseWriter, r *http.Request) error {
	view, err := s.describe(r)
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusOK, NewHttpInfo(view, true))
	return nil
}

func (s *Server) headers(w http.ResponseWriter, r *http.Request) error {
	view, err := s.describe(r)
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"headers": view.Headers,
	})
	return nil
}

func (s *Server) ip(w http.ResponseWriter, r *http.Request) error {
	origin, err := peerAddress(r)
	if err != nil {
		return err
	}
	writeJSON(w, r, http.StatusOK, map[string]string{
		"origin": origin,
	})
	return nil
}

func (s *Server) userAgent(w http.ResponseWriter, r *http.Request) error {
	values, ok := r.Header["User-Agent"]
	if !ok {
		return MissingSignalError{Signal: "User-Agent header"}
	}
	writeJSON(w, r, http.StatusOK, map[string]string{
		"user-agent": values[0],
	})
	return nil
}
