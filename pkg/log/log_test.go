package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(false, &buf)

	logger.Info("fetching %s", "acme/widgets")
	logger.Warning("README content not found")
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "fetching acme/widgets") {
		t.Errorf("output %q missing info message", out)
	}
	if !strings.Contains(out, "README content not found") {
		t.Errorf("output %q missing warning message", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written with debug disabled: %q", out)
	}
}

func TestLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(true, &buf)
	if !logger.IsDebug() {
		t.Fatal("IsDebug() = false, want true")
	}

	logger.Debug("listing has %d entries", 3)
	if !strings.Contains(buf.String(), "listing has 3 entries") {
		t.Errorf("output %q missing debug message", buf.String())
	}
}

func TestFormatMessageWrapsLongLines(t *testing.T) {
	long := strings.Repeat("word ", 40)
	for _, line := range strings.Split(formatMessage(long), "\n") {
		if len(line) > 80 {
			t.Errorf("line longer than 80 columns: %q", line)
		}
	}
}
