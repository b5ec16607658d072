package httpecho

import (
	"bytes"
	stdjson "encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func newTestServer(config Config) *Server {
	logger := zerolog.Nop()
	config.Logger = &logger
	return New(config)
}

func serve(s *Server, req *http.Request) (*http.Response, string) {
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)
	res := rr.Result()
	body, _ := io.ReadAll(res.Body)
	return res, string(body)
}

func decode(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var v map[string]interface{}
	if err := stdjson.NewDecoder(strings.NewReader(body)).Decode(&v); err != nil {
		t.Fatalf("Body is not a JSON object: %s", body)
	}
	return v
}

func TestRequestURL(t *testing.T) {
	tests := map[string]string{
		"/get":              "http://example.com/get",
		"/get?a=1&b":        "http://example.com/get?a=1&b",
		"/anything/a%2Fb?x": "http://example.com/anything/a%2Fb?x",
	}
	for target, expected := range tests {
		if u := requestURL(httptest.NewRequest("GET", target, nil)); u != expected {
			t.Fatalf("URL for %s is %s", target, u)
		}
	}
}

func TestPeerAddress(t *testing.T) {
	tests := map[string]string{
		"192.0.2.1:1234":   "192.0.2.1",
		"[2001:db8::1]:80": "2001:db8::1",
		"192.0.2.1":        "192.0.2.1",
	}
	for remoteAddr, expected := range tests {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = remoteAddr
		if peer, err := peerAddress(req); err != nil || peer != expected {
			t.Fatalf("Peer of %s is %s (%v)", remoteAddr, peer, err)
		}
	}
}

func TestMissingPeerAddressIsServerError(t *testing.T) {
	req := httptest.NewRequest("GET", "/get", nil)
	req.RemoteAddr = ""
	res, _ := serve(newTestServer(Config{}), req)
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("Status code is %d", res.StatusCode)
	}
}

func TestBodyTooLarge(t *testing.T) {
	s := newTestServer(Config{MaxBodyBytes: 4})
	res, _ := serve(s, httptest.NewRequest("POST", "/post", strings.NewReader("too large")))
	if res.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("Status code is %d", res.StatusCode)
	}
}

func TestRecovererAnswersPanics(t *testing.T) {
	s := newTestServer(Config{})
	s.router.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("at the disco")
	})
	res, _ := serve(s, httptest.NewRequest("GET", "/panic", nil))
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("Status code is %d", res.StatusCode)
	}
}

func TestRequestIDHeader(t *testing.T) {
	res, _ := serve(newTestServer(Config{}), httptest.NewRequest("GET", "/ip", nil))
	if res.Header.Get("X-Request-Id") == "" {
		t.Fatalf("No request id in %v", res.Header)
	}
}

func TestTrustProxy(t *testing.T) {
	req := httptest.NewRequest("GET", "/ip", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")

	_, body := serve(newTestServer(Config{}), req)
	if origin := decode(t, body)["origin"]; origin != "192.0.2.1" {
		t.Fatalf("Untrusted origin is %v", origin)
	}

	_, body = serve(newTestServer(Config{TrustProxy: true}), req)
	if origin := decode(t, body)["origin"]; origin != "203.0.113.9" {
		t.Fatalf("Trusted origin is %v", origin)
	}
}

func TestDisabledLoggerStaysSilent(t *testing.T) {
	global := &bytes.Buffer{}
	saved := log.Logger
	log.Logger = zerolog.New(global)
	defer func() { log.Logger = saved }()

	req := httptest.NewRequest("GET", "/cookies", nil)
	req.Header.Set("Cookie", "broken")
	if res, _ := serve(newTestServer(Config{}), req); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("Status code is %d", res.StatusCode)
	}
	if global.Len() != 0 {
		t.Fatalf("Global logger used: %s", global.String())
	}
}

func TestConfiguredLoggerGetsRequestLogs(t *testing.T) {
	out := &bytes.Buffer{}
	logger := zerolog.New(out)
	s := New(Config{Logger: &logger})

	req := httptest.NewRequest("GET", "/cookies", nil)
	req.Header.Set("Cookie", "broken")
	serve(s, req)

	if !strings.Contains(out.String(), "Rejecting request") || !strings.Contains(out.String(), `"req_id"`) {
		t.Fatalf("Log is %s", out.String())
	}
}
