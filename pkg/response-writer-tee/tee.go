package tee

import (
	"bytes"
	"fmt"
	"net/http"
	"time"
)

// ResponseSaver is a wrapper around http.ResponseWriter that records what was written.
// It always keeps the status code and body size, and optionally saves the
// whole response (status line, header and body) to a buffer.
type ResponseSaver struct {
	rw           http.ResponseWriter
	b            *bytes.Buffer
	status       int
	written      int64
	wroteHeaders bool
	CreatedAt    time.Time
}

// Implementation of http.ResponseWriter
func (t *ResponseSaver) Header() http.Header {
	return t.rw.Header()
}

// Implementation of http.ResponseWriter
func (t *ResponseSaver) WriteHeader(statusCode int) {
	// the first status code wins, like in net/http
	if t.wroteHeaders {
		t.rw.WriteHeader(statusCode)
		return
	}
	t.wroteHeaders = true
	t.status = statusCode
	// write http status, headers, and separator to buffer
	// this uses HTTP 1.1 format only
	if t.b != nil {
		t.b.WriteString(fmt.Sprintf("HTTP/1.1 %d %s\r\n", statusCode, http.StatusText(statusCode)))
		t.rw.Header().Write(t.b)
		t.b.WriteString("\r\n")
	}
	t.rw.WriteHeader(statusCode)
}

// Implementation of http.ResponseWriter
func (t *ResponseSaver) Write(b []byte) (int, error) {
	// write headers if not already written
	if !t.wroteHeaders {
		t.WriteHeader(http.StatusOK)
	}
	n, err := t.rw.Write(b)
	t.written += int64(n)
	// save only what the client got
	if t.b != nil {
		t.b.Write(b[:n])
	}
	return n, err
}

// Flush implements http.Flusher if the underlying writer does.
func (t *ResponseSaver) Flush() {
	if f, ok := t.rw.(http.Flusher); ok {
		if !t.wroteHeaders {
			t.WriteHeader(http.StatusOK)
		}
		f.Flush()
	}
}

// Response returns the recorded response as a byte slice.
// It is nil if the saver was created without recording.
// A handler that wrote nothing is recorded as an empty 200 response.
func (t *ResponseSaver) Response() []byte {
	if t.b == nil {
		return nil
	}
	if !t.wroteHeaders {
		b := &bytes.Buffer{}
		b.WriteString("HTTP/1.1 200 OK\r\n")
		t.rw.Header().Write(b)
		b.WriteString("\r\n")
		return b.Bytes()
	}
	return t.b.Bytes()
}

// StatusCode returns the status code of the response.
// A handler that never wrote a status code sent 200.
func (t *ResponseSaver) StatusCode() int {
	if !t.wroteHeaders {
		return http.StatusOK
	}
	return t.status
}

// BytesWritten returns the number of body bytes accepted by the underlying writer.
func (t *ResponseSaver) BytesWritten() int64 {
	return t.written
}

// NewResponseSaver returns a new ResponseSaver writing through to w.
// If record is true, the response is also saved to a buffer.
func NewResponseSaver(w http.ResponseWriter, record bool) *ResponseSaver {
	rs := &ResponseSaver{
		CreatedAt: time.Now(),
		rw:        w,
	}
	if record {
		rs.b = &bytes.Buffer{}
	}
	return rs
}
