package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	logFileName = "culture-catch.log"
	maxLogSize  = 10 * 1024 * 1024
)

// logDir is relative to the working directory
var logDir = "logs"

// setupLogging routes the global logger to a rotated file when debug is set
// Without debug all output is discarded so nothing draws over the screen
func setupLogging(debug bool, level zerolog.Level) *os.File {
	log.Logger = zerolog.Nop()
	if !debug {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("culture-catch-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil
	}

	log.Logger = zerolog.New(f).Level(level).With().Timestamp().Logger()
	return f
}
