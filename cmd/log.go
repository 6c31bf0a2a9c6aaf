package main

import (
	"log/slog"
	"strings"

	"github.com/pterm/pterm"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/luca-patrignani/pow-ledger/config"
)

func logLevel(level string) pterm.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}

// newLogger logs to the terminal through pterm, or as JSON into a rotating
// file when cfg.File is set. The returned func closes the file.
func newLogger(cfg config.LogConfig) (*slog.Logger, func() error) {
	plogger := pterm.DefaultLogger.WithLevel(logLevel(cfg.Level))
	if cfg.File == "" {
		return slog.New(pterm.NewSlogHandler(plogger)), func() error { return nil }
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	plogger = plogger.WithWriter(file).WithFormatter(pterm.LogFormatterJSON)
	return slog.New(pterm.NewSlogHandler(plogger)), file.Close
}
