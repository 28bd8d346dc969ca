package replay

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/blackcoderx/reqmd/pkg/storage"
)

// Result records the outcome of replaying a single request.
type Result struct {
	Name   string        // request name
	Path   []string      // group path, empty for ungrouped requests
	Status int           // HTTP status, zero on failure
	Took   time.Duration // round-trip duration
	Err    error         // non-nil when the replay failed
}

// Runner replays every request in a collection, refreshing each
// request's last exchange in place.
type Runner struct {
	executor *Executor
	limiter  *rate.Limiter
}

// NewRunner builds a runner capped at rps requests per second. Zero or
// negative rps disables the limit.
func NewRunner(executor *Executor, rps int) *Runner {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), rps)
	}
	return &Runner{
		executor: executor,
		limiter:  limiter,
	}
}

// CaptureAll replays every request in collection order, waiting on the
// rate limiter between sends. Failures are recorded per request and do
// not stop the run.
func (r *Runner) CaptureAll(ctx context.Context, c *storage.Collection) []Result {
	var results []Result
	c.WalkRequests(func(path []string, req *storage.Request) {
		if err := r.limiter.Wait(ctx); err != nil {
			results = append(results, Result{Name: req.Name, Path: path, Err: err})
			return
		}

		start := time.Now()
		exchange, err := r.executor.Execute(ctx, req)
		took := time.Since(start)
		if err != nil {
			results = append(results, Result{Name: req.Name, Path: path, Took: took, Err: err})
			return
		}

		req.LastExchange = exchange
		results = append(results, Result{Name: req.Name, Path: path, Status: exchange.Status, Took: took})
	})
	return results
}

// FormatResults renders a capture summary, one line per request.
func FormatResults(results []Result) string {
	var sb strings.Builder
	captured := 0
	for _, res := range results {
		name := res.Name
		if len(res.Path) > 0 {
			name = strings.Join(res.Path, "/") + "/" + name
		}
		if res.Err != nil {
			sb.WriteString(fmt.Sprintf("✗ %s: %v\n", name, res.Err))
			continue
		}
		captured++
		sb.WriteString(fmt.Sprintf("✓ %s: %d (%dms)\n", name, res.Status, res.Took.Milliseconds()))
	}
	sb.WriteString(fmt.Sprintf("\n%d/%d requests captured\n", captured, len(results)))
	return sb.String()
}
