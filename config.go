package vec

const defaultInitialCapacity = 16

// Config is a config of a [Vector].
//
// Configuration functions passed to [New] and [FromSlice] receive a Config with the defaults
// already applied:
//   - InitialCapacity: 16
//   - Prometheus: disabled
type Config struct {
	initialCapacity int
	metrics         *metrics
}

// InitialCapacity sets the number of elements the vector can hold before its first growth. It's
// also the capacity a released vector starts over from.
func (c *Config) InitialCapacity(capacity int) {
	if capacity < 1 {
		panic("initial capacity can't be < 1")
	}
	c.initialCapacity = capacity
}

// Prometheus enables metrics reporting. The same config can be shared by any number of vectors.
func (c *Config) Prometheus(prometheus *PrometheusConfig) {
	if prometheus == nil {
		panic("prometheus config can't be nil")
	}
	c.metrics = prometheus.metrics
}

func newConfig(configFuncs ...func(*Config)) *Config {
	cfg := &Config{}
	cfg.InitialCapacity(defaultInitialCapacity)
	for _, cf := range configFuncs {
		if cf != nil {
			cf(cfg)
		}
	}
	return cfg
}
