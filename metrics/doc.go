// Package metrics reports signal activity to Prometheus.
//
// A [Collector] counts the dispatches of watched signals, and reports how many entries each tracked signal has and whether it's blocked when scraped.
//
// Metrics collected, with the default namespace:
//   - sigs_dispatches_total: Counter of unblocked invocations, by signal
//   - sigs_connections: Gauge of connected entries, by signal
//   - sigs_blocked: Gauge that is 1 while a signal is blocked, by signal
package metrics
