package gdp

import (
	"context"
	"io"
	"net/http"
	"time"

	"gdpchart/internal/platform/config"
	perr "gdpchart/internal/platform/errors"
	"gdpchart/internal/platform/logger"
)

const (
	// DefaultURL is the public GDP document
	DefaultURL = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/GDP-data.json"

	defaultTimeout = 10 * time.Second
	defaultUA      = "gdpchart"
	maxBodyBytes   = 8 << 20
)

// Fetcher returns one complete dataset per call
type Fetcher interface {
	Fetch(ctx context.Context) (Dataset, error)
}

// Options configures where the dataset comes from
// File wins over URL when both are set
type Options struct {
	URL       string
	File      string
	UserAgent string
	Timeout   time.Duration
}

// OptionsFrom reads SOURCE_* keys of cfg
func OptionsFrom(cfg config.Conf) Options {
	src := cfg.Prefix("SOURCE_")
	return Options{
		URL:       src.MayURL("URL", DefaultURL).String(),
		File:      src.MayString("FILE", ""),
		UserAgent: src.MayString("USER_AGENT", defaultUA),
		Timeout:   src.MayDuration("TIMEOUT", defaultTimeout),
	}
}

// Open returns the Fetcher o describes
func Open(o Options) Fetcher {
	if o.File != "" {
		return FileSource{Path: o.File}
	}
	return NewClient(o)
}

// Client fetches the dataset over HTTP, one attempt per call
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a Client with sane defaults
func NewClient(o Options) *Client {
	if o.URL == "" {
		o.URL = DefaultURL
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("gdp"),
		now:  time.Now,
	}
}

// URL returns the document location
func (c *Client) URL() string { return c.opts.URL }

// Fetch downloads and decodes the document
// every failure is an upstream *perr.Error wrapping a *FetchError
func (c *Client) Fetch(ctx context.Context) (Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.URL, nil)
	if err != nil {
		return Dataset{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "gdp new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		c.log.Warn().Err(err).Str("url", c.opts.URL).Dur("latency", lat).Msg("gdp transport error")
		return Dataset{}, upstream(&FetchError{Source: c.opts.URL, Err: err})
	}
	defer func() { _ = drainAndClose(resp.Body) }()

	c.log.Debug().
		Str("url", c.opts.URL).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Int64("content_length", resp.ContentLength).
		Msg("gdp http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Str("url", c.opts.URL).Msg("gdp request failed")
		return Dataset{}, upstream(&FetchError{Source: c.opts.URL, Status: resp.StatusCode})
	}

	ds, err := Decode(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.log.Warn().Err(err).Str("url", c.opts.URL).Msg("gdp document rejected")
		return Dataset{}, upstream(&FetchError{Source: c.opts.URL, Err: err})
	}
	return ds, nil
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 64<<10))
	return rc.Close()
}
