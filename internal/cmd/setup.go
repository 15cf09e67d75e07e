package cmd

import (
	"fmt"
	"os"

	"github.com/harrison/dotsync/internal/logger"
	"github.com/harrison/dotsync/internal/platform"
	"github.com/harrison/dotsync/internal/prompt"
	"github.com/harrison/dotsync/internal/structure"
	"github.com/harrison/dotsync/internal/sync"
	"github.com/spf13/cobra"
)

// discoverStructure resolves the dotfiles repository containing the
// current working directory.
func discoverStructure() (*structure.Structure, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	return structure.Discover(cwd)
}

// newSyncLogger builds the logger stack for a sync command: a console
// logger, plus a file logger when --log-dir is set. The returned cleanup
// function closes the file logger and must run when the command finishes.
func newSyncLogger(cmd *cobra.Command) (sync.Logger, func(), error) {
	// Determine log level: verbose flag overrides the default
	logLevel := "info"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logLevel = "debug"
	}

	consoleLog := logger.NewConsoleLogger(cmd.OutOrStdout(), logLevel)

	logDir, _ := cmd.Flags().GetString("log-dir")
	if logDir == "" {
		return consoleLog, func() {}, nil
	}

	fileLog, err := logger.NewFileLoggerWithDirAndLevel(logDir, logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file logger: %w", err)
	}

	// Multi-logger that writes to both console and file
	multiLog := &multiLogger{
		loggers: []sync.Logger{consoleLog, fileLog},
	}
	return multiLog, func() { _ = fileLog.Close() }, nil
}

// newEngine wires a sync engine for the repository containing the
// current working directory. Previews go to the command's stdout and
// confirmations are read from stdin.
func newEngine(cmd *cobra.Command) (*sync.Engine, func(), error) {
	s, err := discoverStructure()
	if err != nil {
		return nil, nil, err
	}

	p, err := platform.Current()
	if err != nil {
		return nil, nil, err
	}

	log, closeLogs, err := newSyncLogger(cmd)
	if err != nil {
		return nil, nil, err
	}

	gate := prompt.NewGate(cmd.OutOrStdout())
	engine := sync.NewEngine(s, p, cmd.OutOrStdout(), gate, log)
	return engine, closeLogs, nil
}

// multiLogger implements sync.Logger by delegating to multiple loggers
type multiLogger struct {
	loggers []sync.Logger
}

// LogTrace forwards to all loggers
func (ml *multiLogger) LogTrace(message string) {
	for _, logger := range ml.loggers {
		logger.LogTrace(message)
	}
}

// LogDebug forwards to all loggers
func (ml *multiLogger) LogDebug(message string) {
	for _, logger := range ml.loggers {
		logger.LogDebug(message)
	}
}

// LogInfo forwards to all loggers
func (ml *multiLogger) LogInfo(message string) {
	for _, logger := range ml.loggers {
		logger.LogInfo(message)
	}
}

// LogWarn forwards to all loggers
func (ml *multiLogger) LogWarn(message string) {
	for _, logger := range ml.loggers {
		logger.LogWarn(message)
	}
}

// LogError forwards to all loggers
func (ml *multiLogger) LogError(message string) {
	for _, logger := range ml.loggers {
		logger.LogError(message)
	}
}
