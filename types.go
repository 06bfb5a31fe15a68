package svgembed

import (
	"io"
	"net/http"
	"time"
)

// Input contains the paths for one embedding run. All fields are required.
type Input struct {
	SourcePath string // SVG document to transform
	OutputPath string // where the embedded document is written
	AssetsDir  string // directory that qualifying hrefs must lie under
}

// Validate checks that all required paths are present.
func (in Input) Validate() error {
	if in.SourcePath == "" {
		return ErrNoSource
	}
	if in.OutputPath == "" {
		return ErrNoOutput
	}
	if in.AssetsDir == "" {
		return ErrNoAssetsDir
	}
	return nil
}

// Report summarizes one embedding run.
type Report struct {
	Found    int // image references under the assets directory
	Embedded int // references resolved into inline content
	Warnings int // per-asset soft failures
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	logWriter io.Writer
}

// WithLogOutput sets the destination for per-asset diagnostics.
// Defaults to os.Stderr; pass io.Discard to silence them.
// Panics if w is nil (programmer error).
func WithLogOutput(w io.Writer) Option {
	if w == nil {
		panic("svgembed: WithLogOutput writer must not be nil")
	}
	return func(s *Service) {
		s.cfg.logWriter = w
	}
}

// Refresher defaults.
const (
	DefaultRefreshTimeout = 15 * time.Second
	DefaultRefreshDelay   = time.Second

	// defaultUserAgent mimics a desktop browser; some image CDNs refuse
	// requests with a bare Go user agent.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// RefresherOption configures a Refresher.
type RefresherOption func(*Refresher)

// WithRefreshTimeout sets the per-request timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithRefreshTimeout(d time.Duration) RefresherOption {
	if d <= 0 {
		panic("svgembed: WithRefreshTimeout duration must be positive")
	}
	return func(r *Refresher) {
		r.client.Timeout = d
	}
}

// WithRefreshDelay sets the pause between consecutive fetches.
// Zero disables the pause. Panics if d < 0.
func WithRefreshDelay(d time.Duration) RefresherOption {
	if d < 0 {
		panic("svgembed: WithRefreshDelay duration must not be negative")
	}
	return func(r *Refresher) {
		r.delay = d
	}
}

// WithUserAgent sets the User-Agent header sent with each fetch.
func WithUserAgent(ua string) RefresherOption {
	return func(r *Refresher) {
		r.userAgent = ua
	}
}

// WithHTTPClient replaces the underlying HTTP client. The client's own
// timeout is used as-is; combine with WithRefreshTimeout if needed.
// Panics if c is nil.
func WithHTTPClient(c *http.Client) RefresherOption {
	if c == nil {
		panic("svgembed: WithHTTPClient client must not be nil")
	}
	return func(r *Refresher) {
		r.client = c
	}
}

// WithRefreshLogOutput sets the destination for per-fetch diagnostics.
// Defaults to os.Stderr. Panics if w is nil.
func WithRefreshLogOutput(w io.Writer) RefresherOption {
	if w == nil {
		panic("svgembed: WithRefreshLogOutput writer must not be nil")
	}
	return func(r *Refresher) {
		r.logWriter = w
	}
}
