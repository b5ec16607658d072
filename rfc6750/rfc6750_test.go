package rfc6750

import "testing"

func TestToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc123", "abc123", true},
		{"  Bearer abc123  ", "abc123", true},
		{"Bearer  abc", " abc", true},
		{"Bearer x y", "x y", true},
		{"Beare", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"bearer abc123", "", false},
		{"Basic abc123", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		token, ok := Token(tt.header)
		if token != tt.token || ok != tt.ok {
			t.Fatalf("'%s': token '%s' ok %v", tt.header, token, ok)
		}
	}
}
