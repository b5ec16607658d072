package main

import (
	"bytes"
	"flag"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/always-cache/httpecho/journal"
	serializer "github.com/always-cache/httpecho/pkg/response-serializer"

	"github.com/google/go-cmp/cmp"
)

func TestGetConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.yml")
	configYaml := `
port: 9000
headerSeparator: ", "
trustProxy: true
journal: memory
readTimeout: 3s
idleTimeout: 2m
`
	if err := os.WriteFile(filename, []byte(configYaml), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := getConfig(filename)
	if err != nil {
		t.Fatalf("Error reading config: %v", err)
	}

	expected := defaultConfig()
	expected.Port = 9000
	expected.HeaderSeparator = ", "
	expected.TrustProxy = true
	expected.Journal = "memory"
	expected.ReadTimeout = 3 * time.Second
	expected.IdleTimeout = 2 * time.Minute
	if diff := cmp.Diff(expected, config); diff != "" {
		t.Fatalf("Unexpected config (-want +got):\n%s", diff)
	}
}

func TestGetConfigMissingFile(t *testing.T) {
	if _, err := getConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("Expected error")
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	config := defaultConfig()
	config.Port = 9000
	config.Journal = "journal.db"

	flag.Set("port", "9001")
	flag.Set("metrics", "true")
	flag.Set("read-header-timeout", "1s")
	config = overrideWithFlags(config)

	if config.Port != 9001 || !config.Metrics || config.ReadHeaderTimeout != time.Second {
		t.Fatalf("Flags not applied: %+v", config)
	}
	if config.Journal != "journal.db" {
		t.Fatalf("Unset flag overrode config: %+v", config)
	}
}

func TestDumpJournal(t *testing.T) {
	j := journal.NewMemJournal()
	req := httptest.NewRequest("GET", "/get", nil)
	now := time.Now()
	ex, err := serializer.NewExchange(req, nil, []byte("HTTP/1.1 200 OK\r\n\r\n{}"), now, now.Add(time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	bts, err := serializer.ExchangeToBytes(ex)
	if err != nil {
		t.Fatal(err)
	}
	j.Put(journal.Entry{Key: journal.Key(req, "1"), RequestedAt: now, RespondedAt: now, Bytes: bts})
	j.Put(journal.Entry{Key: "GET:/broken\t2", RequestedAt: now, RespondedAt: now, Bytes: []byte("garbage")})

	out := &bytes.Buffer{}
	if err := dumpJournal(out, j, journal.KeyPrefix(req)); err != nil {
		t.Fatalf("Error dumping: %v", err)
	}
	if !strings.Contains(out.String(), " 200 GET:/get\t1 (1ms)") {
		t.Fatalf("Dump is %s", out.String())
	}
	if !strings.Contains(out.String(), "GET /get HTTP/1.1") {
		t.Fatalf("Dump is missing the request: %s", out.String())
	}
	if strings.Contains(out.String(), "broken") {
		t.Fatalf("Dump has entries outside the prefix: %s", out.String())
	}
}
