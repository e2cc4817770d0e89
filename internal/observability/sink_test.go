package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapSink_RawResponse(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := NewZapSink(zap.New(core))

	sink.RawResponse("llama3.1", "Sure! {\"a\":1}", `{"a":1}`)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "model response", entry.Message)
	assert.Equal(t, "llm", entry.LoggerName)

	fields := entry.ContextMap()
	assert.Equal(t, "llama3.1", fields["model"])
	assert.Equal(t, `{"a":1}`, fields["recovered"])
	assert.Equal(t, true, fields["recovered_changed"])
	assert.Equal(t, int64(14), fields["raw_chars"])
}

func TestZapSink_ClipsLongResponses(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := NewZapSink(zap.New(core))

	long := strings.Repeat("x", maxLoggedResponse+10)
	sink.RawResponse("m", long, long)

	raw := logs.All()[0].ContextMap()["raw"].(string)
	assert.True(t, strings.HasSuffix(raw, "...(truncated)"))
	assert.Len(t, raw, maxLoggedResponse+len("...(truncated)"))
}

func TestZapSink_InfoLevelDropsDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	NewZapSink(zap.New(core)).RawResponse("m", "{}", "{}")
	assert.Zero(t, logs.Len())
}

func TestNewZapSink_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NewZapSink(nil).RawResponse("m", "{}", "{}")
	})
}

func TestNopSink(t *testing.T) {
	var sink ResponseSink = NopSink{}
	assert.NotPanics(t, func() { sink.RawResponse("m", "raw", "rec") })
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := NewLogger(tt.level, "json")
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}
