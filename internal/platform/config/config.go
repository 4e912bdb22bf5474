// Package config reads process configuration from environment variables
package config

import (
	"encoding"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gdpchart/internal/platform/logger"

	"github.com/rs/zerolog"
)

// AppPrefix namespaces every setting of the service, e.g. GDPCHART_API_PORT
const AppPrefix = "GDPCHART_"

// Conf is a namespaced view over environment variables
// New() reads unprefixed keys, App() reads GDPCHART_ keys, Prefix narrows further
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// App creates the Conf every module should start from
func App() Conf { return Conf{prefix: AppPrefix} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("SOURCE_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the fully qualified env var name for k
func (c Conf) Key(k string) string { return c.prefix + k }

func (c Conf) lookup(key string) string { return strings.TrimSpace(os.Getenv(c.Key(key))) }

func (c Conf) missing(key string) {
	logger.Get().Panic().Str("key", c.Key(key)).Msg("missing required env")
}

func (c Conf) invalid(key, value, want string) {
	logger.Get().Panic().Str("key", c.Key(key)).Str("value", value).Msg("invalid " + want)
}

// fallback starts a warning that an invalid value was replaced by its default
func (c Conf) fallback(key, value, want string) *zerolog.Event {
	return logger.Get().Warn().Str("key", c.Key(key)).Str("value", value).Str("want", want)
}

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		c.missing(key)
	}
	return v
}

// MustURL panics if the given key is missing or not an absolute http(s) URL
func (c Conf) MustURL(key string) *url.URL {
	s := c.MustString(key)
	u, ok := parseHTTPURL(s)
	if !ok {
		c.invalid(key, s, "absolute http(s) URL")
	}
	return u
}

// Require ensures that all given keys are present, panics otherwise
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		if c.lookup(k) == "" {
			c.missing(k)
		}
	}
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	c.fallback(key, s, "int").Int("default", def).Msg("invalid value; using default")
	return def
}

// MayFloat64 returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayFloat64(key string, def float64) float64 {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	c.fallback(key, s, "float64").Float64("default", def).Msg("invalid value; using default")
	return def
}

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	c.fallback(key, s, "bool").Bool("default", def).Msg("invalid value; using default")
	return def
}

// MayDuration returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	c.fallback(key, s, "positive duration").Dur("default", def).Msg("invalid value; using default")
	return def
}

// MayPort returns a listen addr like ":4000"
// accepts "4000" or ":4000"; panics on anything outside 1..65535
func (c Conf) MayPort(key, def string) string {
	s := strings.TrimPrefix(c.MayString(key, def), ":")
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		c.invalid(key, s, "TCP port; expected 1..65535")
	}
	return ":" + s
}

// MayURL returns the parsed URL or def if missing/empty; panics if invalid
func (c Conf) MayURL(key, def string) *url.URL {
	s := c.MayString(key, def)
	u, ok := parseHTTPURL(s)
	if !ok {
		c.invalid(key, s, "absolute http(s) URL")
	}
	return u
}

// MayCSV returns a slice of strings from a comma separated env var; def if missing/empty
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum ensures value is one of allowed; returns def if empty; panics if invalid
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	logger.Get().Panic().Str("key", c.Key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}

// MayText decodes the value into dst via UnmarshalText; dst is left untouched when empty
// panics when the value is rejected
func (c Conf) MayText(key string, dst encoding.TextUnmarshaler) {
	s := c.lookup(key)
	if s == "" {
		return
	}
	if err := dst.UnmarshalText([]byte(s)); err != nil {
		logger.Get().Panic().Err(err).Str("key", c.Key(key)).Str("value", s).Msg("invalid value")
	}
}

func parseHTTPURL(s string) (*url.URL, bool) {
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, false
	}
	return u, true
}
