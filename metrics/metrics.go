package metrics

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/saylorsolutions/sigs"
	"github.com/saylorsolutions/sigs/internal/syncx"
)

const signalLabel = "signal"

// Config configures a [Collector].
type Config struct {
	// Namespace is the metrics namespace (default: "sigs").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	// A nil Registry creates metrics without registering them.
	Registry prometheus.Registerer
}

// Option configures a [Collector].
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "sigs",
		Registry:  prometheus.DefaultRegisterer,
	}
}

var _ prometheus.Collector = (*Collector)(nil)

type tracked struct {
	reg  sigs.Registry
	conn *sigs.Connection
	// owns reports whether the counting slot is still an entry of reg.
	owns func(conn *sigs.Connection) bool
}

// Collector instruments signals by name.
// It's a [prometheus.Collector] for the gauges it reports at scrape time, and is registered along with its dispatch counter by [NewCollector].
type Collector struct {
	dispatches  *prometheus.CounterVec
	connections *prometheus.Desc
	blocked     *prometheus.Desc

	mux     sync.RWMutex
	tracked map[string]tracked
}

// NewCollector creates a [Collector] and registers it with the configured registry.
// Registration panics if the metric names are already registered, as with [promauto].
func NewCollector(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)
	c := &Collector{
		dispatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dispatches_total",
			Help:        "Total number of unblocked signal invocations",
			ConstLabels: config.ConstLabels,
		}, []string{signalLabel}),
		connections: prometheus.NewDesc(
			prometheus.BuildFQName(config.Namespace, config.Subsystem, "connections"),
			"Number of entries connected to a signal",
			[]string{signalLabel},
			config.ConstLabels,
		),
		blocked: prometheus.NewDesc(
			prometheus.BuildFQName(config.Namespace, config.Subsystem, "blocked"),
			"Whether a signal is blocked",
			[]string{signalLabel},
			config.ConstLabels,
		),
		tracked: map[string]tracked{},
	}
	if config.Registry != nil {
		config.Registry.MustRegister(c)
	}
	return c
}

// Track reports the connection count and blocked state of reg under name.
// Tracking a name again replaces the previous signal.
func (c *Collector) Track(name string, reg sigs.Registry) {
	if reg == nil {
		return
	}
	c.Unwatch(name)
	syncx.LockFunc(&c.mux, func() {
		c.tracked[name] = tracked{reg: reg}
	})
}

// Watch tracks sig like [Collector.Track], and connects a slot counting every invocation that isn't blocked.
// The returned connection is for the counting slot, which is excluded from the reported connection count.
// The counting slot is pinned, so clones and copies of sig aren't counted under name.
// If sig is moved with [sigs.Signal.MoveFrom], then the counting slot moves with it, and dispatches of the destination are counted.
func Watch[A any](c *Collector, name string, sig *sigs.Signal[A]) *sigs.Connection {
	if sig == nil {
		return nil
	}
	c.Unwatch(name)
	counter := c.dispatches.WithLabelValues(name)
	conn := sig.ConnectPinned(func(A) {
		counter.Inc()
	})
	syncx.LockFunc(&c.mux, func() {
		c.tracked[name] = tracked{reg: sig, conn: conn, owns: sig.Owns}
	})
	return conn
}

// Unwatch stops reporting the signal tracked under name, disconnecting its counting slot if it has one.
// Returns false if nothing was tracked under name.
func (c *Collector) Unwatch(name string) bool {
	var (
		t     tracked
		found bool
	)
	syncx.LockFunc(&c.mux, func() {
		t, found = c.tracked[name]
		delete(c.tracked, name)
	})
	if !found {
		return false
	}
	t.conn.Disconnect()
	c.dispatches.DeleteLabelValues(name)
	return true
}

// Names returns the tracked signal names in sorted order.
func (c *Collector) Names() []string {
	names := syncx.RLockFuncT(&c.mux, func() []string {
		names := make([]string, 0, len(c.tracked))
		for name := range c.tracked {
			names = append(names, name)
		}
		return names
	})
	sort.Strings(names)
	return names
}

func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.connections
	descs <- c.blocked
}

func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	c.mux.RLock()
	defer c.mux.RUnlock()
	for name, t := range c.tracked {
		size := t.reg.Size()
		if t.owns != nil && t.owns(t.conn) {
			size--
		}
		var blocked float64
		if t.reg.Blocked() {
			blocked = 1
		}
		metrics <- prometheus.MustNewConstMetric(c.connections, prometheus.GaugeValue, float64(size), name)
		metrics <- prometheus.MustNewConstMetric(c.blocked, prometheus.GaugeValue, blocked, name)
	}
}
