package service

import (
	"context"
	"sync"
	"time"

	"gdpchart/internal/adapters/source/gdp"
	"gdpchart/internal/core/chart"
	perr "gdpchart/internal/platform/errors"
	"gdpchart/internal/platform/logger"
	"gdpchart/internal/platform/metrics"
	"gdpchart/internal/services/chart/domain"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const defaultLoadTimeout = 30 * time.Second

// Loader owns the dataset lifecycle
// every Start opens a new generation; a fetch whose generation was superseded
// never touches the state, so the latest Start always wins
type Loader struct {
	src     domain.Source
	m       *metrics.Metrics
	log     logger.Logger
	timeout time.Duration

	now    func() time.Time
	newGen func() string

	group singleflight.Group

	mu    sync.Mutex
	gen   string
	state domain.LoadState
}

// LoaderOption tweaks a Loader
type LoaderOption func(*Loader)

// WithTimeout bounds each fetch
func WithTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) LoaderOption {
	return func(l *Loader) { l.now = now }
}

// WithGenerations replaces the generation id source
func WithGenerations(next func() string) LoaderOption {
	return func(l *Loader) { l.newGen = next }
}

// NewLoader creates an Idle loader over src
func NewLoader(src domain.Source, m *metrics.Metrics, opts ...LoaderOption) *Loader {
	if src == nil {
		panic("chart.Loader requires a non nil Source")
	}
	if m == nil {
		m = metrics.Nop()
	}
	l := &Loader{
		src:     src,
		m:       m,
		log:     *logger.Named("chart.loader"),
		timeout: defaultLoadTimeout,
		now:     time.Now,
		newGen:  uuid.NewString,
	}
	for _, o := range opts {
		o(l)
	}
	l.mu.Lock()
	l.setState(domain.Idle{})
	l.mu.Unlock()
	return l
}

// State returns the current state
func (l *Loader) State() domain.LoadState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Start opens a new generation and fetches in the background, returning its id
// an in flight fetch of an older generation keeps running but its result is dropped
func (l *Loader) Start() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	gen, _ := l.startLocked()
	return gen
}

// Load returns the Ready dataset, joining or starting a fetch as needed
// a Failed state is returned as is, use Reload to retry
func (l *Loader) Load(ctx context.Context) (gdp.Dataset, error) {
	for {
		l.mu.Lock()
		var ch <-chan singleflight.Result
		switch s := l.state.(type) {
		case domain.Ready:
			l.mu.Unlock()
			return s.Dataset, nil
		case domain.Failed:
			l.mu.Unlock()
			return gdp.Dataset{}, s.Err
		case domain.Loading:
			// the flight for s.Generation is still registered while the state says so
			ch = l.join(s.Generation)
		default:
			_, ch = l.startLocked()
		}
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return gdp.Dataset{}, ctx.Err()
		case <-ch:
			// loop and read whatever the latest generation settled on
		}
	}
}

// Reload starts a new generation and waits for it
func (l *Loader) Reload(ctx context.Context) (gdp.Dataset, error) {
	l.Start()
	return l.Load(ctx)
}

// Ping reports readiness, nil only once a dataset is Ready
func (l *Loader) Ping(context.Context) error {
	switch s := l.State().(type) {
	case domain.Ready:
		return nil
	case domain.Failed:
		return s.Err
	default:
		return perr.NotReadyf("GDP data is %s", s.Kind())
	}
}

// startLocked needs l.mu held
func (l *Loader) startLocked() (string, <-chan singleflight.Result) {
	gen := l.newGen()
	l.gen = gen
	l.setState(domain.Loading{Generation: gen, Since: l.now()})
	l.log.Info().Str("generation", gen).Msg("dataset load started")
	return gen, l.join(gen)
}

func (l *Loader) join(gen string) <-chan singleflight.Result {
	return l.group.DoChan(gen, func() (any, error) { return l.fetch(gen) })
}

// fetch runs detached from any caller so one cancelled request cannot fail the shared load
func (l *Loader) fetch(gen string) (any, error) {
	ctx := logger.WithGeneration(context.Background(), gen)
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	log := logger.C(ctx)

	start := l.now()
	ds, err := l.src.Fetch(ctx)
	if err == nil {
		err = checkDataset(ds)
	} else if perr.CodeOf(err) == perr.ErrorCodeUnknown {
		err = perr.Wrap(err, perr.ErrorCodeUpstream, "Failed to load GDP data")
	}
	elapsed := l.now().Sub(start)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		l.m.Fetch(metrics.Stale, elapsed)
		log.Warn().Str("current", l.gen).Dur("elapsed", elapsed).Msg("discarding superseded dataset")
		return nil, err
	}
	if err != nil {
		l.m.Fetch(metrics.Error, elapsed)
		l.setState(domain.Failed{Generation: gen, Err: err, At: l.now()})
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("dataset load failed")
		return nil, err
	}
	l.m.Fetch(metrics.OK, elapsed)
	l.setState(domain.Ready{Generation: gen, Dataset: ds, At: l.now()})
	log.Info().Int("observations", len(ds.Observations)).Dur("elapsed", elapsed).Msg("dataset ready")
	return ds, nil
}

// setState needs l.mu held
func (l *Loader) setState(s domain.LoadState) {
	l.state = s
	l.m.LoaderState(string(s.Kind()), domain.Kinds()...)
}

// checkDataset rejects what no projection could draw
func checkDataset(ds gdp.Dataset) error {
	if len(ds.Observations) == 0 {
		return classify(chart.ErrEmptyDataset)
	}
	if _, err := chart.ParseObservations(ds.Observations); err != nil {
		return classify(err)
	}
	return nil
}
