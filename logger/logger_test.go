package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelsGoToTheirStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	l := New(&out, &errOut)

	l.Info("hello")
	l.Warn("careful")
	l.Error("broken")

	if !strings.Contains(out.String(), "[SNAKE-INFO] ") || !strings.Contains(out.String(), "hello") {
		t.Errorf("info line missing: %q", out.String())
	}
	if !strings.Contains(out.String(), "[SNAKE-WARN] ") {
		t.Errorf("warn line missing: %q", out.String())
	}
	if strings.Contains(out.String(), "broken") {
		t.Errorf("error leaked to stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[SNAKE-ERROR] ") || !strings.Contains(errOut.String(), "broken") {
		t.Errorf("error line missing: %q", errOut.String())
	}
}

func TestEvent(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, &out)

	l.Event("round_end", "abc", "score=3")

	want := "[EVENT:round_end] Round:abc | score=3"
	if !strings.Contains(out.String(), want) {
		t.Errorf("expected %q in %q", want, out.String())
	}
}
