// Package raw reads env during bootstrap, before the logger exists
// it must never import the logger package
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a namespaced view over environment variables
// Fallback names a second prefix consulted when the first has no value
type Conf struct {
	prefix   string
	fallback []string
}

// New returns a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix returns a child Conf with an additional prefix (e.g. "LOG_")
func (c Conf) Prefix(p string) Conf {
	fb := make([]string, 0, len(c.fallback))
	for _, f := range c.fallback {
		fb = append(fb, f+p)
	}
	return Conf{prefix: c.prefix + p, fallback: fb}
}

// Or adds an alternate prefix read when the primary key is unset
// raw.New().Prefix("GDPCHART_").Or("") reads GDPCHART_LOG_LEVEL, then LOG_LEVEL
func (c Conf) Or(prefix string) Conf {
	fb := append(append([]string(nil), c.fallback...), prefix)
	return Conf{prefix: c.prefix, fallback: fb}
}

func (c Conf) lookup(k string) string {
	if v := strings.TrimSpace(os.Getenv(c.prefix + k)); v != "" {
		return v
	}
	for _, p := range c.fallback {
		if v := strings.TrimSpace(os.Getenv(p + k)); v != "" {
			return v
		}
	}
	return ""
}

// Get returns the trimmed env var or the provided default if empty
func (c Conf) Get(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// GetBool parses a bool-like env ("1|true|yes|on") with default fallback
func (c Conf) GetBool(key string, def bool) bool {
	switch strings.ToLower(c.lookup(key)) {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// GetInt parses a non negative integer, anything else yields def
func (c Conf) GetInt(key string, def int) int {
	n, err := strconv.Atoi(c.lookup(key))
	if err != nil || n < 0 {
		return def
	}
	return n
}
