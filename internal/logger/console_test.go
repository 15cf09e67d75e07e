package logger

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"
)

// TestNewConsoleLogger verifies the constructor creates a ConsoleLogger with the provided writer.
func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")

		if logger == nil {
			t.Fatal("expected non-nil logger")
		}
		if logger.writer != buf {
			t.Error("writer not set correctly")
		}
		if logger.logLevel != "info" {
			t.Errorf("expected log level %q, got %q", "info", logger.logLevel)
		}
	})

	t.Run("with nil writer", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "info")
		if logger == nil {
			t.Fatal("expected non-nil logger even with nil writer")
		}

		// All methods must be safe to call without a writer.
		logger.LogTrace("trace")
		logger.LogDebug("debug")
		logger.LogInfo("info")
		logger.LogWarn("warn")
		logger.LogError("error")
	})
}

// TestConsoleLoggerFormat verifies the "[HH:MM:SS] [LEVEL] message" line format.
func TestConsoleLoggerFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "trace")

	logger.LogInfo("deploying nvim")

	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[INFO\] deploying nvim\n$`)
	if !pattern.MatchString(buf.String()) {
		t.Errorf("unexpected line format: %q", buf.String())
	}
}

// TestLogLevelFiltering verifies that messages are filtered based on log level.
func TestLogLevelFiltering(t *testing.T) {
	levels := []string{"trace", "debug", "info", "warn", "error"}

	log := func(logger *ConsoleLogger, level, message string) {
		switch level {
		case "trace":
			logger.LogTrace(message)
		case "debug":
			logger.LogDebug(message)
		case "info":
			logger.LogInfo(message)
		case "warn":
			logger.LogWarn(message)
		case "error":
			logger.LogError(message)
		}
	}

	for configured, configuredLevel := range levels {
		for message, messageLevel := range levels {
			name := fmt.Sprintf("%s logger gets %s message", configuredLevel, messageLevel)
			shouldAppear := message >= configured

			t.Run(name, func(t *testing.T) {
				buf := &bytes.Buffer{}
				logger := NewConsoleLogger(buf, configuredLevel)

				log(logger, messageLevel, "probe message")

				contains := strings.Contains(buf.String(), "probe message")
				if shouldAppear && !contains {
					t.Errorf("expected message to appear, output: %q", buf.String())
				}
				if !shouldAppear && contains {
					t.Errorf("expected message to be filtered, output: %q", buf.String())
				}
			})
		}
	}
}

// TestLogLevelEdgeCases verifies handling of invalid/unknown log levels.
func TestLogLevelEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "empty string defaults to info", logLevel: ""},
		{name: "unknown level defaults to info", logLevel: "unknown"},
		{name: "whitespace defaults to info", logLevel: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.logLevel)

			logger.LogDebug("debug message")
			logger.LogInfo("info message")

			output := buf.String()
			if strings.Contains(output, "debug message") {
				t.Error("debug message should be filtered when defaulting to info level")
			}
			if !strings.Contains(output, "info message") {
				t.Error("info message should appear when defaulting to info level")
			}
		})
	}
}

// TestNormalizeLogLevel verifies level normalization rules.
func TestNormalizeLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "trace", want: "trace"},
		{input: "DEBUG", want: "debug"},
		{input: "WaRn", want: "warn"},
		{input: " error ", want: "error"},
		{input: "", want: "info"},
		{input: "verbose", want: "info"},
	}

	for _, tt := range tests {
		if got := normalizeLogLevel(tt.input); got != tt.want {
			t.Errorf("normalizeLogLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// TestConsoleLoggerConcurrentWrites verifies whole lines under concurrent logging.
func TestConsoleLoggerConcurrentWrites(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "trace")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				logger.LogInfo(fmt.Sprintf("worker %d message %d", n, j))
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 100 {
		t.Fatalf("expected 100 log lines, got %d", len(lines))
	}

	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[INFO\] worker \d+ message \d+$`)
	for _, line := range lines {
		if !pattern.MatchString(line) {
			t.Errorf("interleaved or malformed line: %q", line)
		}
	}
}

// TestNoOpLogger verifies the no-op implementation accepts every level.
func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()

	logger.LogTrace("trace")
	logger.LogDebug("debug")
	logger.LogInfo("info")
	logger.LogWarn("warn")
	logger.LogError("error")
}
