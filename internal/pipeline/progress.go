package pipeline

import "go.uber.org/zap"

// Sink receives progress events from the pipeline. The core emits events and
// never formats output itself; the default sink logs through zap.
type Sink interface {
	PageFetched(page, added, total int)
	BatchCompleted(batch, batches, accepted, leads int)
	RetryScheduled(placeID string, attempt int, reason string)
	SearchTruncated(reason string, collected int)
}

type zapSink struct {
	log *zap.Logger
}

// NewZapSink returns a Sink that logs progress events.
func NewZapSink() Sink {
	return &zapSink{log: zap.L().With(zap.String("component", "pipeline"))}
}

func (s *zapSink) PageFetched(page, added, total int) {
	s.log.Info("page fetched",
		zap.Int("page", page),
		zap.Int("added", added),
		zap.Int("total", total),
	)
}

func (s *zapSink) BatchCompleted(batch, batches, accepted, leads int) {
	s.log.Info("batch completed",
		zap.Int("batch", batch),
		zap.Int("batches", batches),
		zap.Int("accepted", accepted),
		zap.Int("leads", leads),
	)
}

func (s *zapSink) RetryScheduled(placeID string, attempt int, reason string) {
	s.log.Warn("retrying detail fetch",
		zap.String("place_id", placeID),
		zap.Int("attempt", attempt),
		zap.String("reason", reason),
	)
}

func (s *zapSink) SearchTruncated(reason string, collected int) {
	s.log.Warn("search truncated",
		zap.String("reason", reason),
		zap.Int("collected", collected),
	)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) PageFetched(int, int, int)          {}
func (NopSink) BatchCompleted(int, int, int, int)  {}
func (NopSink) RetryScheduled(string, int, string) {}
func (NopSink) SearchTruncated(string, int)        {}
