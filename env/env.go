// Package env abstracts environment lookups so that terminal-dependent behaviour
// (the Linux VT dash, NO_COLOR) can be controlled in tests.
package env

import "os"

// Resolver defines an interface for environment resolution.
type Resolver interface {
	// Get returns the value of the environment variable named by the key.
	// It returns an empty string if the variable is not present.
	Get(key string) string

	// Lookup returns the value of the environment variable named by the key and
	// whether the variable is present.
	Lookup(key string) (string, bool)
}

// DefaultEnvResolver is the default implementation of the Resolver interface
// that encapsulates environment resolution using the os package.
type DefaultEnvResolver struct{}

// Get returns the value of the environment variable associated with the given key.
func (r *DefaultEnvResolver) Get(key string) string {
	return os.Getenv(key)
}

// Lookup returns the value of the environment variable associated with the given key
// and true when it is set.
func (r *DefaultEnvResolver) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapResolver resolves variables from a fixed map
type MapResolver map[string]string

// Get returns the value stored under key, or an empty string
func (m MapResolver) Get(key string) string {
	return m[key]
}

// Lookup returns the value stored under key and whether it exists
func (m MapResolver) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// IsLinuxVT reports whether the process runs on the Linux virtual terminal, which
// cannot display characters outside of its console font such as the em dash.
func IsLinuxVT(r Resolver) bool {
	return r.Get("TERM") == "linux"
}

// NoColour reports whether the NO_COLOR convention asks for unstyled output
func NoColour(r Resolver) bool {
	v, ok := r.Lookup("NO_COLOR")
	return ok && v != ""
}
