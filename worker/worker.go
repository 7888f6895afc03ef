// Package worker runs independent, CPU bound jobs such as scenario simulations on a bounded pool.
package worker

import (
	"context"
	"runtime"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/kinetic/oerror"
	"golang.org/x/sync/errgroup"
)

// Job is a unit of work. A job should return early once ctx is cancelled.
type Job func(ctx context.Context) error

// Run runs every job with at most limit jobs at once and waits for them to finish. A limit of zero or less
// uses the amount of CPUs. The first job to fail cancels the others, and its error is returned. A panicking
// job is reported to Sentry and turned into an error.
func Run(ctx context.Context, limit int, jobs ...Job) error {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, job := range jobs {
		g.Go(func() (err error) {
			defer func() {
				if v := recover(); v != nil {
					err = oerror.New("job %d panicked: %v", i, v)
					hub := sentry.CurrentHub().Clone()
					hub.ConfigureScope(func(scope *sentry.Scope) {
						scope.SetTag("job", strconv.Itoa(i))
					})
					hub.Recover(err)
					hub.Flush(time.Second * 5)
				}
			}()
			return job(ctx)
		})
	}
	return g.Wait()
}
