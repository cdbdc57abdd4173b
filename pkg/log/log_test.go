package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(
		WithLevel(DebugLevel),
		WithFormatter(&TextFormatter{DisableTimestamp: true}),
		WithOutput(NewWriterOutput(&buf)),
	)

	logger.WithComponent("engine").Info("started", Str("file", "a.txt"), Int("count", 3))

	got := buf.String()
	want := "INFO started component=engine count=3 file=a.txt\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(
		WithLevel(WarnLevel),
		WithFormatter(&TextFormatter{DisableTimestamp: true}),
		WithOutput(NewWriterOutput(&buf)),
	)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.SetLevel(DebugLevel)
	logger.Debug("shown too")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Fatalf("suppressed levels leaked: %q", got)
	}
	if !strings.Contains(got, "shown") || !strings.Contains(got, "shown too") {
		t.Fatalf("expected both records, got %q", got)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(
		WithLevel(InfoLevel),
		WithFormatter(&JSONFormatter{}),
		WithOutput(NewWriterOutput(&buf)),
	)

	logger.Error("boom", Err(errors.New("device gone")))

	var obj map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &obj); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if obj["level"] != "ERROR" || obj["msg"] != "boom" || obj["error"] != "device gone" {
		t.Fatalf("unexpected record: %v", obj)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"debug": DebugLevel, "info": InfoLevel, "": InfoLevel,
		"warning": WarnLevel, "ERROR": ErrorLevel,
	} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = (%v, %v), want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
