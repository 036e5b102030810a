package runner

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Runner executes harness checks in order.
type Runner struct {
	checks []Check
	store  *StateStore
	deps   *Deps
	out    io.Writer
}

// NewRunner creates a runner over the given checks and dependencies.
func NewRunner(checks []Check, store *StateStore, deps *Deps) *Runner {
	return &Runner{
		checks: checks,
		store:  store,
		deps:   deps,
		out:    os.Stdout,
	}
}

// SetOutput redirects the runner's progress output (used by tests and the
// --json report path).
func (r *Runner) SetOutput(w io.Writer) { r.out = w }

// RunAll executes every registered check in order. Execution continues
// past failures so one run yields complete diagnostics; the returned
// error is non-nil iff at least one check definitively failed. Skipped
// checks never fail a run.
func (r *Runner) RunAll(ctx context.Context) error {
	return r.executeSequence(ctx, r.checks)
}

// Resume re-runs only the checks that failed in the last recorded run.
func (r *Runner) Resume(ctx context.Context) error {
	failed, err := r.store.LoadFailedChecks()
	if err != nil {
		return fmt.Errorf("loading failed checks: %w", err)
	}
	if len(failed) == 0 {
		return nil
	}

	var toRun []Check
	for _, id := range failed {
		if c := r.findCheck(id); c != nil {
			toRun = append(toRun, c)
		}
	}
	return r.executeSequence(ctx, toRun)
}

// RunList executes a specific list of check IDs.
func (r *Runner) RunList(ctx context.Context, checkIDs []string) error {
	var toRun []Check
	for _, id := range checkIDs {
		c := r.findCheck(id)
		if c == nil {
			return fmt.Errorf("check not found: %s", id)
		}
		toRun = append(toRun, c)
	}
	return r.executeSequence(ctx, toRun)
}

func (r *Runner) findCheck(id string) Check {
	for _, c := range r.checks {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

// executeSequence runs checks in order, recording each result and the
// run summary. It returns an error if any check failed.
func (r *Runner) executeSequence(ctx context.Context, checks []Check) error {
	var checkIDs, failed, skipped []string

	for _, check := range checks {
		id := check.ID()
		checkIDs = append(checkIDs, id)

		r.deps.Log().Debug("running check", "check", id)
		res := check.Run(ctx, r.deps)

		if err := r.store.WriteCheckResult(res); err != nil {
			return fmt.Errorf("writing result for %s: %w", id, err)
		}

		switch res.Status {
		case StatusSkip:
			skipped = append(skipped, id)
			fmt.Fprintf(r.out, "SKIP %s", id)
		case StatusFail:
			failed = append(failed, id)
			fmt.Fprintf(r.out, "FAIL %s", id)
		default:
			fmt.Fprintf(r.out, "PASS %s", id)
		}
		if res.Note != "" {
			fmt.Fprintf(r.out, ": %s", firstLine(res.Note))
		}
		fmt.Fprintln(r.out)
	}

	last := LastRun{
		Status:  "pass",
		Checks:  checkIDs,
		Failed:  failed,
		Skipped: skipped,
	}
	if len(failed) > 0 {
		last.Status = "fail"
	}
	if err := r.store.WriteLastRun(last); err != nil {
		return fmt.Errorf("writing last run: %w", err)
	}

	if len(failed) > 0 {
		return fmt.Errorf("run failed: %v", failed)
	}
	return nil
}

func firstLine(s string) string {
	for i, c := range s {
		if c == '\n' {
			return s[:i] + " ..."
		}
	}
	return s
}
