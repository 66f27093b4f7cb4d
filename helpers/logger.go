package helpers

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"code.cloudfoundry.org/lager/v3"
)

type LoggingConfig struct {
	Level         string `yaml:"level" json:"level"`
	PlainTextSink bool   `yaml:"plaintext_sink" json:"plaintext_sink"`
}

var (
	redactedKeyPatterns   = []string{"[Pp]wd", "[Pp]ass", "[Ss]ecret", "[Tt]oken", "[Aa]ccess_?[Kk]ey"}
	redactedValuePatterns = []string{`AKIA[A-Z0-9]{16}`, `ASIA[A-Z0-9]{16}`}
)

func InitLoggerFromConfig(conf *LoggingConfig, name string) lager.Logger {
	logLevel, err := parseLogLevel(conf.Level)
	if err != nil {
		handleError("failed to initialize logger", err)
	}

	logger := lager.NewLogger(name)
	if conf.PlainTextSink {
		logger.RegisterSink(lager.NewSlogSink(slog.New(slog.NewTextHandler(os.Stdout, nil))))
		return logger
	}

	sink, err := NewRedactingSink(os.Stdout, logLevel, redactedKeyPatterns, redactedValuePatterns)
	if err != nil {
		handleError("failed to create redacted sink", err)
	}
	logger.RegisterSink(sink)
	return logger
}

func parseLogLevel(level string) (lager.LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return lager.DEBUG, nil
	case "info", "":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return -1, fmt.Errorf("unsupported log level: %s", level)
	}
}

func handleError(message string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", message, err.Error())
	os.Exit(1)
}
