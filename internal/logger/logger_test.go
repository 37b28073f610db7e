package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/deppfellow/music-catalog/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := map[zerolog.Level]tracelog.LogLevel{
		zerolog.DebugLevel: tracelog.LogLevelDebug,
		zerolog.InfoLevel:  tracelog.LogLevelInfo,
		zerolog.WarnLevel:  tracelog.LogLevelWarn,
		zerolog.ErrorLevel: tracelog.LogLevelError,
		zerolog.Disabled:   tracelog.LogLevelNone,
	}
	for in, want := range tests {
		if got := GetPgxTraceLogLevel(in); got != want {
			t.Errorf("GetPgxTraceLogLevel(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if got := parseLevel("WARN"); got != zerolog.WarnLevel {
		t.Errorf("parseLevel(WARN) = %v", got)
	}
	if got := parseLevel("verbose"); got != zerolog.InfoLevel {
		t.Errorf("unknown level = %v, want info", got)
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).With().Str("request_id", "r-1").Logger()

	ctx := IntoContext(context.Background(), &l)
	FromContext(ctx).Info().Msg("hello")

	if !strings.Contains(buf.String(), `"request_id":"r-1"`) {
		t.Fatalf("log line = %s", buf.String())
	}

	// A bare context yields a usable no-op logger.
	FromContext(context.Background()).Info().Msg("dropped")
}

func TestLoggerServiceWithoutLicense(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	svc := NewLoggerService(cfg)

	if svc.GetApplication() != nil {
		t.Fatal("New Relic started without a license key")
	}
	svc.Shutdown()

	l := NewLoggerWithService(cfg, svc)
	if l.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("level = %v, want info", l.GetLevel())
	}
}
