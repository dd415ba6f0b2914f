package mirror

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"briq-utils/core/storage"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	dirPerm = 0o755
	partExt = ".part"
)

// Outcome is the result of mirroring one URL.
type Outcome int

const (
	// Fetched means the URL was downloaded into the cache.
	Fetched Outcome = iota
	// Skipped means the cache already had the file.
	Skipped
	// Failed means the fetch or the write failed.
	Failed
	// Cancelled means the run was cancelled before the fetch started.
	Cancelled
)

// Failure records a URL that could not be mirrored.
type Failure struct {
	URL string
	Err error
}

// Report summarizes a mirror run.
type Report struct {
	Total     int
	Fetched   int
	Skipped   int
	Failed    int
	// Cancelled counts URLs not fetched because the run was cancelled.
	Cancelled int
	Bytes     int64
	Failures  []Failure
	Elapsed   time.Duration
}

func (r *Report) String() string {
	s := fmt.Sprintf("%d urls: %d fetched (%s), %d already cached, %d failed",
		r.Total, r.Fetched, humanize.Bytes(uint64(r.Bytes)), r.Skipped, r.Failed)
	if r.Cancelled > 0 {
		s += fmt.Sprintf(", %d not started", r.Cancelled)
	}
	return s + " in " + r.Elapsed.Round(time.Millisecond).String()
}

// Option configures a Mirror.
type Option func(*Mirror)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(m *Mirror) { m.http = c }
}

// WithProgress registers a callback invoked after each URL with the number of
// URLs done so far and the total.
func WithProgress(fn func(done, total int)) Option {
	return func(m *Mirror) { m.progress = fn }
}

// Mirror fetches asset URLs into the cache directory.
type Mirror struct {
	cfg      Config
	http     *http.Client
	limiter  *rate.Limiter
	logger   *zap.Logger
	progress func(done, total int)
}

// New creates a Mirror.
func New(cfg Config, logger *zap.Logger, opts ...Option) *Mirror {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	m := &Mirror{
		cfg: cfg,
		http: &http.Client{
			Transport: storage.NewTransport(time.Duration(cfg.TimeoutSeconds) * time.Second),
		},
		logger: logger,
	}
	if cfg.RatePerSecond > 0 {
		m.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run mirrors every URL. Individual failures are recorded in the report.
// Cancelling ctx stops scheduling: fetches already started run to completion,
// bounded by the per-fetch timeout, and URLs not yet started are counted as
// Cancelled. The returned error is non-nil only when ctx was cancelled.
func (m *Mirror) Run(ctx context.Context, urls []string) (*Report, error) {
	start := time.Now()
	report := &Report{Total: len(urls)}

	var (
		mu   sync.Mutex
		done atomic.Int64
		g    errgroup.Group
	)
	g.SetLimit(m.cfg.Workers)

	scheduled := 0
	for _, url := range urls {
		if ctx.Err() != nil {
			break
		}
		scheduled++
		g.Go(func() error {
			outcome, n, err := m.Fetch(ctx, url)

			mu.Lock()
			switch outcome {
			case Fetched:
				report.Fetched++
				report.Bytes += n
			case Skipped:
				report.Skipped++
			case Failed:
				report.Failed++
				report.Failures = append(report.Failures, Failure{URL: url, Err: err})
			case Cancelled:
				report.Cancelled++
			}
			mu.Unlock()

			if outcome == Cancelled {
				return nil
			}
			if outcome == Failed {
				m.logger.Warn("Failed to mirror asset", zap.String("url", url), zap.Error(err))
			} else {
				m.logger.Debug("Mirrored asset", zap.String("url", url), zap.Bool("cached", outcome == Skipped))
			}
			if m.progress != nil {
				m.progress(int(done.Add(1)), len(urls))
			}
			return nil
		})
	}
	_ = g.Wait()
	report.Cancelled += len(urls) - scheduled

	report.Elapsed = time.Since(start)
	return report, ctx.Err()
}

// Fetch mirrors a single URL and returns the number of bytes written. ctx only
// gates the start of the fetch: once the rate limiter admits it, the download
// is detached from ctx cancellation and bounded by the transport timeouts.
func (m *Mirror) Fetch(ctx context.Context, url string) (Outcome, int64, error) {
	dst, err := CachePath(m.cfg.CacheDir, url)
	if err != nil {
		return Failed, 0, err
	}

	if _, err := os.Stat(dst); err == nil {
		return Skipped, 0, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return Failed, 0, fmt.Errorf("failed to stat %s: %w", dst, err)
	}

	if m.limiter != nil {
		// Wait only fails when ctx is done or its deadline comes before the
		// next token.
		if err := m.limiter.Wait(ctx); err != nil {
			return Cancelled, 0, err
		}
	}
	if err := ctx.Err(); err != nil {
		return Cancelled, 0, err
	}

	n, err := m.download(context.WithoutCancel(ctx), url, dst)
	if err != nil {
		return Failed, 0, err
	}
	return Fetched, n, nil
}

func (m *Mirror) download(ctx context.Context, url, dst string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	resp, err := m.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("request failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	tmp := dst + partExt
	f, err := os.Create(tmp)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	n, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("failed to write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("failed to move %s into place: %w", dst, err)
	}
	return n, nil
}
