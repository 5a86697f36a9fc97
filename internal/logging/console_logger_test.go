package logging

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/replmeta/pkg/replmeta"
)

var (
	_ replmeta.Logger = (*ConsoleLogger)(nil)
	_ replmeta.Logger = (*NullLogger)(nil)
	_ replmeta.Logger = (*Recorder)(nil)
)

func TestConsoleLogger_Prefixes(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		log      func(l *ConsoleLogger)
		expected string
	}{
		{
			name:     "verbose enabled",
			verbose:  true,
			log:      func(l *ConsoleLogger) { l.Verbose("tracking %s", "/content/a") },
			expected: "[VERBOSE] tracking /content/a\n",
		},
		{
			name:     "verbose disabled",
			verbose:  false,
			log:      func(l *ConsoleLogger) { l.Verbose("tracking %s", "/content/a") },
			expected: "",
		},
		{
			name:     "info without args",
			log:      func(l *ConsoleLogger) { l.Info("100% done") },
			expected: "100% done\n",
		},
		{
			name:     "error",
			log:      func(l *ConsoleLogger) { l.Error("cannot read %s", "a.xml") },
			expected: "[ERROR] cannot read a.xml\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewConsoleLoggerTo(&buf, tt.verbose)
			tt.log(logger)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 30)
	for i, line := range lines {
		if !strings.Contains(line, "message") && !strings.Contains(line, "verbose") && !strings.Contains(line, "error") {
			t.Errorf("Line %d appears corrupted: %q", i, line)
		}
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Verbose("closing %s", "/content/a")
	r.Info("validated %d files", 3)
	r.Error("boom")

	assert.Equal(t, []Entry{
		{Level: LevelVerbose, Message: "closing /content/a"},
		{Level: LevelInfo, Message: "validated 3 files"},
		{Level: LevelError, Message: "boom"},
	}, r.Entries())
	assert.Equal(t, []string{"boom"}, r.Messages(LevelError))
	assert.True(t, r.Contains("3 files"))
	assert.False(t, r.Contains("missing"))
}

func BenchmarkConsoleLogger_VerboseDisabled(b *testing.B) {
	logger := NewConsoleLogger(false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Verbose("benchmark message %d", i)
	}
}

func ExampleConsoleLogger() {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true)
	logger.Info("Validating package")
	logger.Verbose("Closing /content/site/jcr:content")
	logger.Error("Validation failed")
	fmt.Print(buf.String())
	// Output:
	// Validating package
	// [VERBOSE] Closing /content/site/jcr:content
	// [ERROR] Validation failed
}

func ExampleNullLogger() {
	logger := NewNullLogger()
	logger.Info("This message is discarded")
	fmt.Println("Done")
	// Output:
	// Done
}
