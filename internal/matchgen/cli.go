package matchgen

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/courtside/deuce/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "matchgen_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the match generation tool.
func ShowHelp() {
	os.Stdout.WriteString(`Deuce Match Generation Tool
===========================

A concurrent tool for load-testing the Deuce adjustment endpoint with
randomized match submissions, including deliberately malformed scores.

Usage:
  go run cmd/matchgen/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -matches int
        Number of matches to generate and submit (default 1000)
  -workers int
        Number of concurrent workers (default NumCPU*2)
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Log file for run output (default matchgen_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help
`)
}
