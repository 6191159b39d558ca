package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/regroup/constant"
)

const (
	logDir      = constant.LogDir
	logFileName = constant.LogFileName
	maxLogSize  = constant.LogMaxSize
)

// setupLogging routes the standard logger to logs/regroup.log when debug is
// set and discards it otherwise; the terminal belongs to the UI
// An oversized previous log is renamed with a timestamp suffix first
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
		ext := filepath.Ext(logFileName)
		stem := logFileName[:len(logFileName)-len(ext)]
		rotated := filepath.Join(logDir, fmt.Sprintf("%s-%s%s", stem, time.Now().Format("20060102-150405"), ext))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("regroup started, pid %d", os.Getpid())
	return f
}
