package httpecho

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveStatus(t *testing.T) {
	tests := []struct {
		code    uint16
		emitted uint16
		reason  string
		valid   bool
	}{
		{200, 200, "OK", true},
		{418, 418, "I'm a teapot", true},
		{503, 503, "Service Unavailable", true},
		{100, 200, "Continue", true},
		{199, 200, unknownReasonPhrase, false},
		{299, 299, unknownReasonPhrase, false},
		{999, 999, unknownReasonPhrase, false},
	}
	for _, test := range tests {
		d, err := ResolveStatus(test.code)
		if err != nil {
			t.Fatalf("Error resolving %d: %v", test.code, err)
		}
		if d.RequestedCode != test.code || d.EmittedCode != test.emitted ||
			d.ReasonPhrase != test.reason || d.ValidLookup != test.valid {
			t.Fatalf("Decision for %d is %+v", test.code, d)
		}
	}
}

func TestResolveStatusInvalid(t *testing.T) {
	for _, code := range []uint16{0, 99, 1000, 65535} {
		_, err := ResolveStatus(code)
		var clientErr ClientInputError
		if !errors.As(err, &clientErr) {
			t.Fatalf("Error for %d is %v", code, err)
		}
	}
}

func TestStatusEndpoint(t *testing.T) {
	s := newTestServer(Config{})
	for _, method := range anyMethod {
		res, body := serve(s, httptest.NewRequest(method, "/status/418", nil))
		if res.StatusCode != http.StatusTeapot || body != "I'm a teapot" {
			t.Fatalf("%s: status %d body %s", method, res.StatusCode, body)
		}
	}

	res, body := serve(s, httptest.NewRequest("GET", "/status/101", nil))
	if res.StatusCode != http.StatusOK || body != "Switching Protocols" {
		t.Fatalf("Interim: status %d body %s", res.StatusCode, body)
	}

	res, body = serve(s, httptest.NewRequest("GET", "/status/799", nil))
	if res.StatusCode != 799 || body != unknownReasonPhrase {
		t.Fatalf("Unregistered: status %d body %s", res.StatusCode, body)
	}
}

func TestStatusEndpointInvalid(t *testing.T) {
	s := newTestServer(Config{})
	for _, code := range []string{"0", "99", "1000", "65535", "70000", "-1", "abc"} {
		res, body := serve(s, httptest.NewRequest("GET", "/status/"+code, nil))
		if res.StatusCode != http.StatusBadRequest || body == "" {
			t.Fatalf("%s: status %d body %s", code, res.StatusCode, body)
		}
		if ct := res.Header.Get("Content-Type"); ct != "text/plain; charset=utf-8" {
			t.Fatalf("%s: Content-Type %s", code, ct)
		}
	}
}
