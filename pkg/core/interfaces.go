package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Sampler provides the random numbers used for pixel jitter.
// Renders take one explicitly instead of reaching for a global generator.
type Sampler interface {
	Get1D() float64
}
