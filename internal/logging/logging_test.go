package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
		{"bogus", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.level, "text", &buf)
			logger.Debug("debug-line")
			logger.Info("info-line")

			if got := strings.Contains(buf.String(), "debug-line"); got != tt.debugSeen {
				t.Errorf("debug logged = %v, want %v", got, tt.debugSeen)
			}
			if got := strings.Contains(buf.String(), "info-line"); got != tt.infoSeen {
				t.Errorf("info logged = %v, want %v", got, tt.infoSeen)
			}
		})
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	New("info", "json", &buf).Info("hello", "request_id", "01ABC")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if rec["msg"] != "hello" || rec["request_id"] != "01ABC" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := Discard()
	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Error("FromContext did not return the stored logger")
	}
	if FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext without a logger should return slog.Default()")
	}
}
