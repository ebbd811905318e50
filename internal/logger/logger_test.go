package logger

import (
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	var buf strings.Builder
	l := New(&buf)
	l.Infof("encoded %d bytes", 12)
	l.Errorf("failed: %s", "boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("wrong number of lines:\n\texpect: %d\n\tactual: %d", 2, len(lines))
	}
	if !strings.HasSuffix(lines[0], "[INFO] encoded 12 bytes") {
		t.Errorf("wrong info line: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "[ERROR] failed: boom") {
		t.Errorf("wrong error line: %q", lines[1])
	}
}
