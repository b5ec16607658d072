package rfc9110

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFoldFieldsConcatenatesInArrivalOrder(t *testing.T) {
	header := http.Header{}
	header.Add("X-Thing", "one")
	header.Add("X-Thing", "two")
	header.Add("Accept", "*/*")

	got := FoldFields(header, "example.com", "")
	want := map[string]string{
		"host":    "example.com",
		"x-thing": "onetwo",
		"accept":  "*/*",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Folded fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFoldFieldsSeparator(t *testing.T) {
	header := http.Header{"X-Thing": {"one", "two"}}
	if v := FoldFields(header, "", ", ")["x-thing"]; v != "one, two" {
		t.Fatalf("Folded value is '%s'", v)
	}
}

func TestFoldFieldsMixedCaseNames(t *testing.T) {
	header := http.Header{"X-Thing": {"a"}, "x-thing": {"b"}}
	// "X-Thing" sorts before "x-thing"
	if v := FoldFields(header, "", "")["x-thing"]; v != "ab" {
		t.Fatalf("Folded value is '%s'", v)
	}
}

func TestFoldFieldsHostFromHeader(t *testing.T) {
	header := http.Header{"Host": {"from-header"}}
	if v := FoldFields(header, "", "")["host"]; v != "from-header" {
		t.Fatalf("Host is '%s'", v)
	}
	if v := FoldFields(header, "from-request", "")["host"]; v != "from-request" {
		t.Fatalf("Host is '%s'", v)
	}
}

func TestHttpDateRFC850(t *testing.T) {
	_, err := HttpDate("Thursday, 18-Aug-50 02:01:18 GMT")
	if err != nil {
		t.Fatalf("Error parsing date %+v", err)
	}
}

func TestHttpDateTZCase(t *testing.T) {
	_, err := HttpDate("Thu, 18 Aug 2050 02:01:18 gMT")
	if err != nil {
		t.Fatalf("Error parsing date %+v", err)
	}
}

func TestHttpDateRoundTrip(t *testing.T) {
	date := time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC)
	str := FormatHttpDate(date)
	if str != "Sun, 06 Nov 1994 08:49:37 GMT" {
		t.Fatalf("Formatted date is %s", str)
	}
	parsed, err := HttpDate(str)
	if err != nil {
		t.Fatalf("Error parsing date %+v", err)
	}
	if !parsed.Equal(date) {
		t.Fatalf("Parsed date is %s", parsed)
	}
}

func TestHttpDateInvalid(t *testing.T) {
	if _, err := HttpDate("yesterday"); err == nil {
		t.Fatal("Expected error")
	}
}

func TestPreconditions(t *testing.T) {
	header := http.Header{}
	if Conditional(header) {
		t.Fatal("Empty header is conditional")
	}

	header.Set("If-None-Match", `"x"`)
	p := ParsePreconditions(header)
	if !p.Conditional() || p.IfNoneMatch != `"x"` {
		t.Fatalf("Preconditions %+v", p)
	}

	header = http.Header{}
	header.Set("If-Modified-Since", "Sun, 06 Nov 1994 08:49:37 GMT")
	p = ParsePreconditions(header)
	if !p.Conditional() || p.IfModifiedSince.Year() != 1994 {
		t.Fatalf("Preconditions %+v", p)
	}
}

func TestPreconditionsUnparseableDateStillConditional(t *testing.T) {
	header := http.Header{}
	header.Set("If-Modified-Since", "not a date")
	p := ParsePreconditions(header)
	if !p.Conditional() {
		t.Fatal("If-Modified-Since alone must be sufficient")
	}
	if !p.IfModifiedSince.IsZero() {
		t.Fatalf("Date is %s", p.IfModifiedSince)
	}
}

func TestPreconditionsEmptyValue(t *testing.T) {
	header := http.Header{"If-None-Match": {""}}
	if !Conditional(header) {
		t.Fatal("Present but empty field must count")
	}
}

func TestStatusReason(t *testing.T) {
	tests := []struct {
		code   uint16
		reason string
		known  bool
	}{
		{100, "Continue", true},
		{200, "OK", true},
		{418, "I'm a teapot", true},
		{599, "", false},
		{999, "", false},
	}
	for _, tt := range tests {
		reason, known, err := StatusReason(tt.code)
		if err != nil {
			t.Fatalf("%d: %v", tt.code, err)
		}
		if reason != tt.reason || known != tt.known {
			t.Fatalf("%d: reason '%s' known %v", tt.code, reason, known)
		}
	}
}

func TestStatusReasonInvalid(t *testing.T) {
	for _, code := range []uint16{0, 99, 1000, 65535} {
		if _, _, err := StatusReason(code); err != ErrInvalidStatusCode {
			t.Fatalf("%d: error is %v", code, err)
		}
	}
}

func TestInterim(t *testing.T) {
	if !Interim(100) || !Interim(199) || Interim(200) {
		t.Fatal("Interim class boundaries wrong")
	}
}
