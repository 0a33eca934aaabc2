package optimizer

import "runtime"

// Config holds search tuning parameters. None of them change the result,
// only how fast it is found.
type Config struct {
	// Workers caps the goroutines the top-level search call runs at once.
	// Zero or less means GOMAXPROCS.
	Workers int
	// Memoize caches scorer rankings per reference profile for one run.
	Memoize bool
}

// DefaultConfig returns the tuning used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.GOMAXPROCS(0),
		Memoize: true,
	}
}

func (c Config) workers() int {
	if c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}
