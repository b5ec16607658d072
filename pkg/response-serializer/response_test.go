package serializer

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const rawResponse = "HTTP/1.1 201 Created\r\nContent-Type: text/plain\r\n\r\nThis is the body"

func TestExchangeRoundTrip(t *testing.T) {
	req := httptest.NewRequest("POST", "http://example.com/anything?a=1", nil)
	req.Header.Set("X-Test", "-ing")
	reqTime := time.Now()
	resTime := reqTime.Add(time.Second)

	ex, err := NewExchange(req, []byte("hello"), []byte(rawResponse), reqTime, resTime)
	if err != nil {
		t.Fatalf("Error creating exchange: %+v", err)
	}
	bts, err := ExchangeToBytes(ex)
	if err != nil {
		t.Fatalf("Error creating bytes: %+v", err)
	}

	ex2, err := BytesToExchange(bts)
	if err != nil {
		t.Fatalf("Error reading exchange: %+v", err)
	}
	if ex2.Request.Method != "POST" || ex2.Request.URL.RequestURI() != "/anything?a=1" {
		t.Fatalf("Request is %s %s", ex2.Request.Method, ex2.Request.URL)
	}
	if ex2.Request.Header.Get("X-Test") != "-ing" {
		t.Fatalf("Request header %+v", ex2.Request.Header)
	}
	if _, ok := ex2.Request.Header["User-Agent"]; ok {
		t.Fatalf("User-Agent added: %+v", ex2.Request.Header)
	}
	if string(ex2.RequestBody) != "hello" {
		t.Fatalf("Request body is %s", ex2.RequestBody)
	}
	if ex2.Response.StatusCode != 201 {
		t.Fatalf("Status code is %d", ex2.Response.StatusCode)
	}
	if body, _ := io.ReadAll(ex2.Response.Body); string(body) != "This is the body" {
		t.Fatalf("Response body is %s", body)
	}
	if ex2.Response.Header.Get(responseTimeHeaderName) != "" || ex2.Response.Header.Get(requestTimeHeaderName) != "" {
		t.Fatalf("Time headers left in %+v", ex2.Response.Header)
	}
	if !ex2.RequestTime.Equal(reqTime) || !ex2.ResponseTime.Equal(resTime) {
		t.Fatalf("Times are %s and %s", ex2.RequestTime, ex2.ResponseTime)
	}
}

func TestBytesToExchangeWithoutDelimiter(t *testing.T) {
	if _, err := BytesToExchange([]byte("GET / HTTP/1.1\r\n\r\n")); err == nil {
		t.Fatal("Expected error")
	}
}

func TestNewExchangeInvalidResponse(t *testing.T) {
	req, _ := http.NewRequest("GET", "/", nil)
	if _, err := NewExchange(req, nil, []byte("not http"), time.Now(), time.Now()); err == nil {
		t.Fatal("Expected error")
	}
}

func TestRequestToWireKeepsOriginal(t *testing.T) {
	req := httptest.NewRequest("GET", "/get", strings.NewReader("body"))
	wire := requestToWire(req, []byte("body"))
	if _, ok := req.Header["User-Agent"]; ok {
		t.Fatal("Original request header changed")
	}
	if wire.ContentLength != 4 {
		t.Fatalf("Content length is %d", wire.ContentLength)
	}
}
