package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", "text", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "line", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %s", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "line=3") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	New("debug", "JSON", &buf).Debug("parsed", "shapes", 2)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if rec["msg"] != "parsed" || rec["shapes"] != float64(2) {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestValid(t *testing.T) {
	if !ValidLevel("Debug") || ValidLevel("trace") {
		t.Error("ValidLevel")
	}
	if !ValidFormat("json") || ValidFormat("xml") {
		t.Error("ValidFormat")
	}
}
