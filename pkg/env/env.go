// Package env reads individual environment variables with defaults, for
// the few spots that run before the config struct is loaded.
package env

import "os"

// Get returns the variable's value, or fallback when unset or empty.
func Get(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
