// Package diagnostics implements the self-reporting behind GET /test.
//
// The probe looks for an optional database collaborator, tries to list a few of its
// collections/tables, and checks whether DATABASE_URL and DATABASE_NAME are set. Every failure
// along the way becomes a human-readable status string in the Report; nothing here ever returns
// an error to the HTTP layer.
//
// Each probing step produces an explicit Outcome, and a single switch (describe) turns the
// outcome into the status text, so there is exactly one place that decides what a client sees.
package diagnostics

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/trentd187/soccer-data-api/internal/metrics"
)

// Limits applied to what the report echoes back. They can be overridden with options.
const (
	MaxCollections = 10              // At most this many collection names are reported
	MaxErrorLength = 50              // Error messages are cut to this many characters
	DefaultTimeout = 5 * time.Second // Upper bound on listing collections
)

// Status strings shown in the report.
const (
	statusRunning        = "✅ Running"
	statusNotAvailable   = "❌ Not Available"
	statusNotFound       = "❌ Database module not found (set DATABASE_URL to enable)"
	statusResolveError   = "❌ Error: "
	statusNotInitialized = "⚠️  Available but not initialized"
	statusWorking        = "✅ Connected & Working"
	statusProbeError     = "⚠️  Connected but Error: "
	statusConnected      = "Connected"
	statusNotConnected   = "Not Connected"
	statusEnvSet         = "✅ Set"
	statusEnvNotSet      = "❌ Not Set"
	envDatabaseURL       = "DATABASE_URL"
	envDatabaseName      = "DATABASE_NAME"
)

var (
	// ErrCollaboratorUnavailable means the database collaborator could not be located at all.
	ErrCollaboratorUnavailable = errors.New("database collaborator unavailable")

	// ErrProbeFailure matches any error raised while listing collections.
	ErrProbeFailure = errors.New("database probe failed")
)

// Collaborator is the optional database handle the probe inspects.
type Collaborator interface {
	// Name returns the database name, if the collaborator knows it.
	Name() (string, bool)

	// ListCollections returns up to limit collection/table names.
	ListCollections(ctx context.Context, limit int) ([]string, error)
}

// Resolver locates the collaborator.
//
//   - an error wrapping ErrCollaboratorUnavailable: no collaborator exists
//   - (nil, nil): the collaborator exists but its handle is not initialised
//   - (c, nil): a usable handle
//
// Any other error is reported as an unexpected resolution failure.
type Resolver interface {
	Resolve() (Collaborator, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func() (Collaborator, error)

// Resolve calls f.
func (f ResolverFunc) Resolve() (Collaborator, error) { return f() }

// Unavailable is a Resolver for deployments that have no database collaborator.
var Unavailable Resolver = ResolverFunc(func() (Collaborator, error) {
	return nil, ErrCollaboratorUnavailable
})

// ProbeError wraps a failure from Collaborator.ListCollections.
// Its message is the underlying message unchanged; errors.Is matches both ErrProbeFailure and
// the wrapped cause (for example context.DeadlineExceeded).
type ProbeError struct {
	Err error
}

func (e *ProbeError) Error() string { return e.Err.Error() }

func (e *ProbeError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrProbeFailure) true for every ProbeError.
func (e *ProbeError) Is(target error) bool { return target == ErrProbeFailure }

// Report is the JSON body of GET /test. Field order is the response key order.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Prober runs the diagnostic. It holds no per-request state and is safe for concurrent use.
type Prober struct {
	resolver       Resolver
	timeout        time.Duration
	maxCollections int
	maxErrorLength int
	lookupEnv      func(string) (string, bool)
	metrics        *metrics.Recorder
}

// Option configures a Prober.
type Option func(*Prober)

// WithTimeout bounds how long listing collections may take.
func WithTimeout(d time.Duration) Option {
	return func(p *Prober) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithLimits overrides MaxCollections and MaxErrorLength. Non-positive values are ignored.
func WithLimits(maxCollections, maxErrorLength int) Option {
	return func(p *Prober) {
		if maxCollections > 0 {
			p.maxCollections = maxCollections
		}
		if maxErrorLength > 0 {
			p.maxErrorLength = maxErrorLength
		}
	}
}

// WithLookupEnv replaces os.LookupEnv, mainly for tests.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(p *Prober) {
		if fn != nil {
			p.lookupEnv = fn
		}
	}
}

// WithMetrics counts probe outcomes on the given recorder.
func WithMetrics(m *metrics.Recorder) Option {
	return func(p *Prober) { p.metrics = m }
}

// NewProber creates a Prober. A nil resolver behaves like Unavailable.
func NewProber(resolver Resolver, opts ...Option) *Prober {
	if resolver == nil {
		resolver = Unavailable
	}
	p := &Prober{
		resolver:       resolver,
		timeout:        DefaultTimeout,
		maxCollections: MaxCollections,
		maxErrorLength: MaxErrorLength,
		lookupEnv:      os.LookupEnv,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe runs every check and returns the report. It never fails.
func (p *Prober) Probe(ctx context.Context) Report {
	res := p.check(ctx)
	p.metrics.ObserveProbe(res.Outcome.String())

	if res.Err != nil {
		log.Warnw("database diagnostic degraded", "outcome", res.Outcome.String(), "error", res.Err)
	}

	report := Report{
		Backend:          statusRunning,
		Database:         p.describe(res),
		ConnectionStatus: statusNotConnected,
		Collections:      []string{},
		DatabaseURL:      p.envStatus(envDatabaseURL),
		DatabaseName:     p.envStatus(envDatabaseName),
	}
	if res.Outcome.connected() {
		report.ConnectionStatus = statusConnected
	}
	if res.Outcome == OutcomeWorking {
		report.Collections = res.Collections
	}
	return report
}

// check resolves the collaborator and, if there is a handle, lists its collections.
func (p *Prober) check(ctx context.Context) Result {
	handle, err := p.resolver.Resolve()
	switch {
	case errors.Is(err, ErrCollaboratorUnavailable):
		return Result{Outcome: OutcomeNotFound}
	case err != nil:
		return Result{Outcome: OutcomeResolveError, Err: err}
	case handle == nil:
		return Result{Outcome: OutcomeNotInitialized}
	}

	if name, ok := handle.Name(); ok {
		log.Debugw("probing database", "name", name)
	}

	names, err := p.listCollections(ctx, handle)
	if err != nil {
		return Result{Outcome: OutcomeProbeError, Err: &ProbeError{Err: err}}
	}
	return Result{Outcome: OutcomeWorking, Collections: names}
}

// listCollections calls the collaborator in its own goroutine so that a handle which ignores
// its context still cannot hold the request past the timeout.
func (p *Prober) listCollections(ctx context.Context, c Collaborator) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	type listing struct {
		names []string
		err   error
	}
	done := make(chan listing, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- listing{err: fmt.Errorf("collaborator panicked: %v", r)}
			}
		}()
		names, err := c.ListCollections(ctx, p.maxCollections)
		done <- listing{names: names, err: err}
	}()

	select {
	case l := <-done:
		if l.err != nil {
			return nil, l.err
		}
		if len(l.names) > p.maxCollections {
			l.names = l.names[:p.maxCollections]
		}
		if l.names == nil {
			l.names = []string{}
		}
		return l.names, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// describe maps a Result onto the "database" status string.
func (p *Prober) describe(res Result) string {
	switch res.Outcome {
	case OutcomeNotFound:
		return statusNotFound
	case OutcomeResolveError:
		return statusResolveError + truncate(errMessage(res.Err), p.maxErrorLength)
	case OutcomeNotInitialized:
		return statusNotInitialized
	case OutcomeWorking:
		return statusWorking
	case OutcomeProbeError:
		return statusProbeError + truncate(errMessage(res.Err), p.maxErrorLength)
	default:
		return statusNotAvailable
	}
}

// envStatus reports whether key is present and non-empty. The value itself is never echoed.
func (p *Prober) envStatus(key string) string {
	if v, ok := p.lookupEnv(key); ok && v != "" {
		return statusEnvSet
	}
	return statusEnvNotSet
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// truncate cuts s to at most n characters (runes, not bytes).
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
