package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestInitJSONOutputWritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: InfoLevel, JSONOutput: true, Output: &buf})

	WithComponent("blockstore").Info().Msg("reader opened")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, output = %q", err, buf.String())
	}
	if line["component"] != "blockstore" {
		t.Errorf("component = %v, want blockstore", line["component"])
	}
	if line["message"] != "reader opened" {
		t.Errorf("message = %v, want %q", line["message"], "reader opened")
	}
}

func TestInitRespectsLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: ErrorLevel, JSONOutput: true, Output: &buf})

	Info("should not appear")
	if buf.Len() != 0 {
		t.Errorf("expected no output below configured level, got %q", buf.String())
	}

	Error("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("expected error-level message in output, got %q", buf.String())
	}
}

func TestWithSlotAttachesField(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: InfoLevel, JSONOutput: true, Output: &buf})

	WithSlot(42).Info().Msg("slot logged")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if line["slot"] != float64(42) {
		t.Errorf("slot = %v, want 42", line["slot"])
	}
}
