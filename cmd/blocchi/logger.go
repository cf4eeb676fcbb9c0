package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/blocchi/internal/config"
)

// newLogger returns the process logger at the configured level. Output is
// human readable on a terminal and JSON otherwise.
func newLogger(w io.Writer, cfg config.LogConfig) (*log.Logger, error) {
	level, err := cfg.ParseLevel()
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blocchi",
		Level:           level,
	})
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger, nil
}
