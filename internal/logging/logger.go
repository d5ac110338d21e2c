// Package logging owns the process-wide zerolog logger.
//
// Call Init once from main; until then a JSON logger at info level writes to
// stderr so packages can log during startup.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	// Level is one of trace, debug, info, warn, error, fatal, panic, disabled.
	Level string
	// Format is json or console.
	Format string
	// LogstashAddr mirrors every entry to a Logstash TCP input when set.
	LogstashAddr string
	Output       io.Writer
}

var (
	mu       sync.RWMutex
	log      zerolog.Logger
	logstash *LogstashWriter
)

func init() {
	configure(Config{})
}

// Init reconfigures the global logger. It is safe to call more than once.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	if logstash != nil {
		_ = logstash.Close()
		logstash = nil
	}
	if addr := strings.TrimSpace(cfg.LogstashAddr); addr != "" {
		w, err := NewLogstashWriter(addr)
		if err != nil {
			return err
		}
		logstash = w
	}
	configure(cfg)
	return nil
}

// Close flushes and disconnects the Logstash mirror, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logstash == nil {
		return nil
	}
	err := logstash.Close()
	logstash = nil
	return err
}

func configure(cfg Config) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	if logstash != nil {
		// Logstash always receives JSON regardless of the local format.
		out = io.MultiWriter(out, logstash)
	}

	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.MessageFieldName = "message"

	log = zerolog.New(out).With().Timestamp().Str("service", "starwars-api").Logger()
}

func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug() *zerolog.Event { l := Logger(); return l.Debug() }
func Info() *zerolog.Event  { l := Logger(); return l.Info() }
func Warn() *zerolog.Event  { l := Logger(); return l.Warn() }
func Error() *zerolog.Event { l := Logger(); return l.Error() }
func Fatal() *zerolog.Event { l := Logger(); return l.Fatal() }

type requestIDKey struct{}

// WithRequestID stores the request id so Ctx can attach it to entries.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// Ctx returns the global logger enriched with the request id carried by ctx.
func Ctx(ctx context.Context) *zerolog.Logger {
	l := Logger()
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		l = l.With().Str("request_id", id).Logger()
	}
	return &l
}
