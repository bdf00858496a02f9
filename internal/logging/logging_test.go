package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSetVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})

	Logger().Debug("hidden", "step", 1)
	if buf.Len() != 0 {
		t.Errorf("debug output written at default level: %q", buf.String())
	}

	SetVerbose(true)
	Logger().Debug("parsed descriptor", "raw", "v1.2.3")
	out := buf.String()
	if !strings.Contains(out, "parsed descriptor") || !strings.Contains(out, "v1.2.3") {
		t.Errorf("expected debug line, got %q", out)
	}
	if !strings.Contains(out, "genversion") {
		t.Errorf("expected prefix in %q", out)
	}
}
