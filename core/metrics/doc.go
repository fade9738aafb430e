package metrics

// Package metrics defines interfaces and implementations for collecting
// feed metrics. Sinks like PromSink and InfluxSink record snapshot
// emissions and per-plant samples and can be combined with NewMultiSink.
// Helper functions expose Prometheus metrics and collect events from the
// internal event bus.
