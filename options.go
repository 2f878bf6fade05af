package hashtable

// Config defines configurable HashTable options.
type Config struct {
	growthThreshold int
}

// WithGrowthThreshold configures the load factor, in percent of capacity, at
// which an insertion doubles the table. Values outside 1..100 are ignored
// and the default of 80 is kept.
func WithGrowthThreshold(percent int) func(*Config) {
	return func(c *Config) {
		c.growthThreshold = percent
	}
}

func (c *Config) threshold() int {
	if c.growthThreshold < 1 || c.growthThreshold > 100 {
		return defaultGrowthThreshold
	}
	return c.growthThreshold
}
