package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logDir      = "logs"
	logFileName = "math-snake.log"
	oldLogName  = logFileName + ".old" // Single rotated generation, replaced on each rotation
	maxLogSize  = 10 * 1024 * 1024 // Rotate beyond 10MB
)

// setupLogging routes the standard logger to logs/math-snake.log when debug is set and
// discards it otherwise. The terminal is owned by tcell, so logs never go to stdout or stderr.
// Returns the open file, or nil when logging is disabled or the file cannot be opened.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(logPath, filepath.Join(logDir, oldLogName)); err != nil {
			log.SetOutput(io.Discard)
			return nil
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("logging started, pid %d", os.Getpid())
	return f
}
