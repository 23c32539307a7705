package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger discards everything until one of the Init functions runs.
var Logger = log.New(io.Discard)

const DefaultLogPath = "steam-librarian.log"

func InitLoggingWithDefaultPath(verbose bool) error {
	path, err := os.UserCacheDir()
	if err != nil {
		return err
	}

	return InitLoggingWithPath(filepath.Join(path, DefaultLogPath), verbose)
}

func InitLoggingWithPath(path string, verbose bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     30,
	}

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	Logger = log.NewWithOptions(file, log.Options{
		ReportTimestamp: true,
		Prefix:          APP_NAME,
		Level:           level,
	})
	return nil
}
