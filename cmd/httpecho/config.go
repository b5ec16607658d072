package main

import (
	"flag"
	"os"
	"time"

	"github.com/always-cache/httpecho"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port              int           `yaml:"port"`
	Addr              string        `yaml:"addr"`
	LogFile           string        `yaml:"logFile"`
	Trace             bool          `yaml:"trace"`
	HeaderSeparator   string        `yaml:"headerSeparator"`
	MaxBodyBytes      int64         `yaml:"maxBodyBytes"`
	TrustProxy        bool          `yaml:"trustProxy"`
	Metrics           bool          `yaml:"metrics"`
	Journal           string        `yaml:"journal"`
	ReadHeaderTimeout time.Duration `yaml:"readHeaderTimeout"`
	ReadTimeout       time.Duration `yaml:"readTimeout"`
	WriteTimeout      time.Duration `yaml:"writeTimeout"`
	IdleTimeout       time.Duration `yaml:"idleTimeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdownTimeout"`
}

func defaultConfig() Config {
	return Config{
		Port:              8080,
		MaxBodyBytes:      httpecho.DefaultMaxBodyBytes,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ShutdownTimeout:   5 * time.Second,
	}
}

// getConfig reads a config file on top of the defaults.
func getConfig(filename string) (Config, error) {
	config := defaultConfig()
	configBytes, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = yaml.Unmarshal(configBytes, &config)
	return config, err
}

// overrideWithFlags replaces config values with the flags given on the command line.
func overrideWithFlags(config Config) Config {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			config.Port = portFlag
		case "addr":
			config.Addr = addrFlag
		case "log-file":
			config.LogFile = logFilenameFlag
		case "vv":
			config.Trace = verbosityTraceFlag
		case "header-separator":
			config.HeaderSeparator = headerSeparatorFlag
		case "max-body-bytes":
			config.MaxBodyBytes = maxBodyBytesFlag
		case "trust-proxy":
			config.TrustProxy = trustProxyFlag
		case "metrics":
			config.Metrics = metricsFlag
		case "journal":
			config.Journal = journalFlag
		case "read-header-timeout":
			config.ReadHeaderTimeout = readHeaderTimeoutFlag
		case "idle-timeout":
			config.IdleTimeout = idleTimeoutFlag
		case "read-timeout":
			config.ReadTimeout = readTimeoutFlag
		case "write-timeout":
			config.WriteTimeout = writeTimeoutFlag
		case "shutdown-timeout":
			config.ShutdownTimeout = shutdownTimeoutFlag
		}
	})
	return config
}
