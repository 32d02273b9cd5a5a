package env

import "os"

// Get returns the value of the given environment variable or a fallback.
// The COURSES_ prefixed form of the name wins over the bare one, so ad-hoc
// variables follow the same convention as the typed config.
func Get(key, fallback string) string {
	if val := os.Getenv("COURSES_" + key); val != "" {
		return val
	}
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
