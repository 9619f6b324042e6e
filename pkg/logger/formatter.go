package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// CustomJSONFormatter writes one JSON object per entry with the app name and
// version stamped on every line. Entry fields never overwrite the reserved
// timestamp, level and message keys.
type CustomJSONFormatter struct {
	TimestampFormat string
	PrettyPrint     bool
	AppName         string
	Version         string
}

func (f *CustomJSONFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	record := make(map[string]interface{}, len(entry.Data)+6)
	for key, value := range entry.Data {
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		record[key] = value
	}

	layout := f.TimestampFormat
	if layout == "" {
		layout = time.RFC3339
	}
	record["timestamp"] = entry.Time.Format(layout)
	record["level"] = entry.Level.String()
	record["message"] = entry.Message
	if f.AppName != "" {
		record["app"] = f.AppName
	}
	if f.Version != "" {
		record["version"] = f.Version
	}
	if entry.HasCaller() {
		record["caller"] = fmt.Sprintf("%s:%d %s", entry.Caller.File, entry.Caller.Line, entry.Caller.Function)
	}

	buf := entry.Buffer
	if buf == nil {
		buf = new(bytes.Buffer)
	}
	enc := json.NewEncoder(buf)
	if f.PrettyPrint {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(record); err != nil {
		return nil, fmt.Errorf("encode log entry: %w", err)
	}
	return buf.Bytes(), nil
}
