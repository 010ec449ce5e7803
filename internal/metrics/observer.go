package metrics

import "time"

// GeneratorObserver receives generation and write events.
type GeneratorObserver interface {
	RecordFeature(enabled bool)
	RecordStrategy(kind string)
	ObserveWrite(bytes int64, duration time.Duration)
}

type nopObserver struct{}

// NewNopObserver returns an observer that drops every event.
func NewNopObserver() GeneratorObserver {
	return nopObserver{}
}

func (nopObserver) RecordFeature(bool) {}
func (nopObserver) RecordStrategy(string) {}
func (nopObserver) ObserveWrite(int64, time.Duration) {}
