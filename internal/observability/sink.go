package observability

import (
	"go.uber.org/zap"
)

// maxLoggedResponse bounds the raw response stored in a single log entry.
const maxLoggedResponse = 4000

// ResponseSink receives raw model output and the text recovered from it.
// Implementations must not block and must tolerate concurrent calls.
type ResponseSink interface {
	RawResponse(model string, raw string, recovered string)
}

// NopSink discards everything.
type NopSink struct{}

// RawResponse implements ResponseSink.
func (NopSink) RawResponse(string, string, string) {}

// ZapSink writes model responses as debug entries.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink returns a sink backed by logger. A nil logger yields a no-op zap logger.
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger.Named("llm")}
}

// RawResponse implements ResponseSink.
func (s *ZapSink) RawResponse(model string, raw string, recovered string) {
	s.logger.Debug("model response",
		zap.String("model", model),
		zap.Int("raw_chars", len(raw)),
		zap.String("raw", clip(raw, maxLoggedResponse)),
		zap.Bool("recovered_changed", raw != recovered),
		zap.String("recovered", clip(recovered, maxLoggedResponse)),
	)
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "...(truncated)"
}
