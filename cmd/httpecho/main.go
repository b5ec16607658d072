package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/always-cache/httpecho"
	"github.com/always-cache/httpecho/journal"
	serializer "github.com/always-cache/httpecho/pkg/response-serializer"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// CLI flags
	configFilenameFlag    string
	portFlag              int
	addrFlag              string
	logFilenameFlag       string
	verbosityTraceFlag    bool
	headerSeparatorFlag   string
	maxBodyBytesFlag      int64
	trustProxyFlag        bool
	metricsFlag           bool
	journalFlag           string
	readHeaderTimeoutFlag time.Duration
	readTimeoutFlag       time.Duration
	idleTimeoutFlag       time.Duration
	writeTimeoutFlag      time.Duration
	shutdownTimeoutFlag   time.Duration
	dumpJournalFlag       bool
	dumpPrefixFlag        string

	// this is set by goreleaser
	version string
)

func init() {
	defaults := defaultConfig()
	flag.StringVar(&configFilenameFlag, "config", "", "Path to config file (flags override it)")
	flag.IntVar(&portFlag, "port", defaults.Port, "Port to listen on")
	flag.StringVar(&addrFlag, "addr", "", "Address to listen on")
	flag.StringVar(&logFilenameFlag, "log-file", "", "Log file to use (in addition to stdout)")
	flag.BoolVar(&verbosityTraceFlag, "vv", false, "Verbosity: trace logging")
	flag.StringVar(&headerSeparatorFlag, "header-separator", "", "Separator between values of repeated header fields")
	flag.Int64Var(&maxBodyBytesFlag, "max-body-bytes", defaults.MaxBodyBytes, "Largest request body accepted (negative for no limit)")
	flag.BoolVar(&trustProxyFlag, "trust-proxy", false, "Take the client address from X-Forwarded-For and X-Real-IP")
	flag.BoolVar(&metricsFlag, "metrics", false, "Serve Prometheus metrics on /metrics")
	flag.StringVar(&journalFlag, "journal", "", "Journal DB file name to record exchanges in (use 'memory' for in-memory db)")
	flag.DurationVar(&readHeaderTimeoutFlag, "read-header-timeout", defaults.ReadHeaderTimeout, "Timeout for reading request headers")
	flag.DurationVar(&idleTimeoutFlag, "idle-timeout", defaults.IdleTimeout, "Time to keep idle connections open")
	flag.DurationVar(&readTimeoutFlag, "read-timeout", defaults.ReadTimeout, "Timeout for reading a request")
	flag.DurationVar(&writeTimeoutFlag, "write-timeout", defaults.WriteTimeout, "Timeout for writing a response")
	flag.DurationVar(&shutdownTimeoutFlag, "shutdown-timeout", defaults.ShutdownTimeout, "Time given to open requests on shutdown")
	flag.BoolVar(&dumpJournalFlag, "dump-journal", false, "Print the exchanges recorded in the journal and exit")
	flag.StringVar(&dumpPrefixFlag, "dump-prefix", "", "Only dump exchanges with this key prefix, e.g. 'GET:/anything'")

	if version == "" {
		version = "DEV"
	}
}

func main() {
	flag.Parse()

	config := defaultConfig()
	if configFilenameFlag != "" {
		var err error
		if config, err = getConfig(configFilenameFlag); err != nil {
			log.Fatal().Err(err).Str("file", configFilenameFlag).Msg("Cannot read config file")
		}
	}
	config = overrideWithFlags(config)

	// set log level
	logLevel := zerolog.DebugLevel
	if config.Trace {
		logLevel = zerolog.TraceLevel
	}

	// set up log output to stdout
	// also output to logfile if specified
	logOutputs := make([]io.Writer, 0)
	logOutputs = append(logOutputs, zerolog.ConsoleWriter{Out: os.Stdout})
	if config.LogFile != "" {
		if logFileOutput, err := os.OpenFile(config.LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644); err != nil {
			log.Fatal().Err(err).Msg("Cannot open log file")
		} else {
			logOutputs = append(logOutputs, logFileOutput)
		}
	}
	multiWriter := zerolog.MultiLevelWriter(logOutputs...)
	log.Logger = log.Level(logLevel).Output(multiWriter).
		With().Str("version", version).Logger()

	var exchanges journal.Provider
	if config.Journal != "" {
		var err error
		if exchanges, err = journal.Open(config.Journal); err != nil {
			log.Fatal().Err(err).Str("journal", config.Journal).Msg("Cannot open journal")
		}
		defer exchanges.Close()
	}

	if dumpJournalFlag {
		if exchanges == nil {
			log.Fatal().Msg("Please specify the journal to dump")
		}
		if err := dumpJournal(os.Stdout, exchanges, dumpPrefixFlag); err != nil {
			log.Fatal().Err(err).Msg("Cannot dump journal")
		}
		return
	}

	echo := httpecho.New(httpecho.Config{
		Logger:          &log.Logger,
		HeaderSeparator: config.HeaderSeparator,
		MaxBodyBytes:    config.MaxBodyBytes,
		TrustProxy:      config.TrustProxy,
		EnableMetrics:   config.Metrics,
		Journal:         exchanges,
	})
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Addr, config.Port),
		Handler:           echo,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
		ReadTimeout:       config.ReadTimeout,
		WriteTimeout:      config.WriteTimeout,
		IdleTimeout:       config.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Could not shut down gracefully")
		}
	}()

	log.Info().Msgf("Listening on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

// dumpJournal prints every recorded exchange with the key prefix, oldest first.
func dumpJournal(w io.Writer, exchanges journal.Provider, prefix string) error {
	entries, err := exchanges.All(prefix)
	if err != nil {
		return err
	}
	for _, e := range entries {
		ex, err := serializer.BytesToExchange(e.Bytes)
		if err != nil {
			log.Warn().Err(err).Str("key", e.Key).Msg("Skipping unreadable exchange")
			continue
		}
		fmt.Fprintf(w, "### %s %d %s (%s)\n", e.RequestedAt.Format(time.RFC3339Nano),
			ex.Response.StatusCode, e.Key, ex.ResponseTime.Sub(ex.RequestTime))
		w.Write(e.Bytes)
		fmt.Fprintln(w)
	}
	return nil
}
