package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func newBufferedLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	log, err := NewLogger(&Config{Level: DebugLevel, Format: "json", AppName: "ridehail", Version: "test"})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	return log, buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	return line
}

func TestJSONFormatterStampsAppAndFields(t *testing.T) {
	log, buf := newBufferedLogger(t)

	log.WithRequestID("req-1").WithField("driver_id", "abc").Info("hello")

	line := decodeLine(t, buf)
	checks := map[string]string{
		"message":    "hello",
		"level":      "info",
		"app":        "ridehail",
		"version":    "test",
		"request_id": "req-1",
		"driver_id":  "abc",
	}
	for key, want := range checks {
		if got, _ := line[key].(string); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	log, buf := newBufferedLogger(t)

	_ = log.WithField("child", true)
	log.Info("parent")

	line := decodeLine(t, buf)
	if _, ok := line["child"]; ok {
		t.Fatal("child field leaked into parent logger")
	}
}

func TestWithContextPicksRequestID(t *testing.T) {
	log, buf := newBufferedLogger(t)
	ctx := context.WithValue(context.Background(), RequestIDKey, "ctx-req")

	log.WithContext(ctx).Warn("from context")

	line := decodeLine(t, buf)
	if line["request_id"] != "ctx-req" {
		t.Fatalf("request_id = %v, want ctx-req", line["request_id"])
	}
	if line["level"] != "warning" {
		t.Fatalf("level = %v, want warning", line["level"])
	}
}

func TestLogAPIRequestLevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{200, "info"},
		{404, "warning"},
		{500, "error"},
	}

	for _, tt := range tests {
		log, buf := newBufferedLogger(t)
		log.LogAPIRequest("GET", "/health", tt.status, 0, "r")
		line := decodeLine(t, buf)
		if line["level"] != tt.level {
			t.Errorf("status %d: level = %v, want %s", tt.status, line["level"], tt.level)
		}
	}
}

func TestJSONFormatterKeepsReservedKeys(t *testing.T) {
	log, buf := newBufferedLogger(t)

	log.WithFields(map[string]interface{}{
		"message": "spoofed",
		"cause":   errors.New("boom"),
	}).Error("real")

	line := decodeLine(t, buf)
	if line["message"] != "real" {
		t.Fatalf("message = %v, want real", line["message"])
	}
	if line["cause"] != "boom" {
		t.Fatalf("cause = %v, want boom", line["cause"])
	}
}
