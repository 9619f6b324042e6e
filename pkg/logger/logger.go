package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is an immutable set of fields bound to a shared logrus instance.
// The With* methods return a derived Logger and never modify the receiver.
type Logger struct {
	logger *logrus.Logger
	fields logrus.Fields
}

type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

type Config struct {
	Level      LogLevel
	Format     string // json or text
	Output     string // stdout, stderr or a file path
	TimeFormat string
	Caller     bool
	AppName    string
	Version    string
}

type contextKey string

// RequestIDKey is the context key the request id middleware stores under.
const RequestIDKey contextKey = "request_id"

func NewLogger(config *Config) (*Logger, error) {
	output, err := openOutput(config.Output)
	if err != nil {
		return nil, err
	}

	base := logrus.New()
	base.SetLevel(parseLevel(config.Level))
	base.SetFormatter(newFormatter(config))
	base.SetOutput(output)
	base.SetReportCaller(config.Caller)

	return &Logger{logger: base, fields: logrus.Fields{}}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)
	return &Logger{logger: base, fields: logrus.Fields{}}
}

func parseLevel(level LogLevel) logrus.Level {
	parsed, err := logrus.ParseLevel(string(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

func newFormatter(config *Config) logrus.Formatter {
	if config.Format == "json" {
		return &CustomJSONFormatter{
			TimestampFormat: config.TimeFormat,
			AppName:         config.AppName,
			Version:         config.Version,
		}
	}
	return &logrus.TextFormatter{
		TimestampFormat: config.TimeFormat,
		FullTimestamp:   true,
		DisableColors:   true,
	}
}

func openOutput(target string) (io.Writer, error) {
	switch target {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	return os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
}

func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	merged := make(logrus.Fields, len(l.fields)+len(fields))
	for key, value := range l.fields {
		merged[key] = value
	}
	for key, value := range fields {
		merged[key] = value
	}
	return &Logger{logger: l.logger, fields: merged}
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// WithContext picks up the request id stored by the HTTP middleware.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		return l.WithRequestID(requestID)
	}
	return l
}

func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return l.WithField("error", err.Error())
}

func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithField("request_id", requestID)
}

func (l *Logger) WithRideID(rideID string) *Logger {
	return l.WithField("ride_id", rideID)
}

func (l *Logger) entry() *logrus.Entry {
	return l.logger.WithFields(l.fields)
}

func (l *Logger) Debug(msg string) { l.entry().Debug(msg) }
func (l *Logger) Info(msg string)  { l.entry().Info(msg) }
func (l *Logger) Warn(msg string)  { l.entry().Warn(msg) }
func (l *Logger) Error(msg string) { l.entry().Error(msg) }

// Fatal logs and exits the process.
func (l *Logger) Fatal(msg string) { l.entry().Fatal(msg) }

// LogRideEvent records a ride state transition. details are merged into the entry.
func (l *Logger) LogRideEvent(rideID, event string, details map[string]interface{}) {
	fields := make(map[string]interface{}, len(details)+3)
	for key, value := range details {
		fields[key] = value
	}
	fields["ride_id"] = rideID
	fields["event"] = event
	fields["type"] = "ride_event"

	l.WithFields(fields).Info("Ride " + event)
}

func (l *Logger) LogPaymentEvent(rideID, event string, amount float64, method string) {
	l.WithFields(map[string]interface{}{
		"ride_id": rideID,
		"event":   event,
		"amount":  amount,
		"method":  method,
		"type":    "payment_event",
	}).Info("Payment " + event)
}

// LogAPIRequest logs one served request at a level chosen by its status:
// 5xx as error, 4xx as warning, anything else as info.
func (l *Logger) LogAPIRequest(method, endpoint string, status int, duration time.Duration, requestID string) {
	log := l.WithFields(map[string]interface{}{
		"method":      method,
		"endpoint":    endpoint,
		"status_code": status,
		"duration_ms": duration.Milliseconds(),
		"type":        "api_request",
	})
	if requestID != "" {
		log = log.WithRequestID(requestID)
	}

	const msg = "API request processed"
	switch {
	case status >= 500:
		log.Error(msg)
	case status >= 400:
		log.Warn(msg)
	default:
		log.Info(msg)
	}
}

func (l *Logger) SetOutput(output io.Writer) {
	l.logger.SetOutput(output)
}
