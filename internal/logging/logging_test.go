package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/pion/logging"
)

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("raw2rgbpnm/test")
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(logging.LogLevelError)

	SetLevel(logging.LogLevelError)
	l.Warn("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output at error level, got %q", buf.String())
	}

	SetLevel(logging.LogLevelWarn)
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected warning in output, got %q", buf.String())
	}
}
