package nextflow

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// OutcomeKind is the tri-state result of a module syntax check.
type OutcomeKind string

const (
	OutcomeValid   OutcomeKind = "valid"
	OutcomeInvalid OutcomeKind = "invalid"
	// OutcomeSkipped covers tool-unavailable and timeout. Skips are
	// deliberately excluded from pass/fail accounting upstream.
	OutcomeSkipped OutcomeKind = "skipped"
)

// Outcome is the result of checking one module file.
type Outcome struct {
	Kind       OutcomeKind
	Diagnostic string
}

// SyntaxChecker validates workflow module syntax. The runner only depends
// on this interface, not on how the check is performed.
type SyntaxChecker interface {
	Check(ctx context.Context, modulePath string) Outcome
}

// DefaultTimeout bounds a single nextflow invocation.
const DefaultTimeout = 30 * time.Second

// CLIChecker shells out to the nextflow binary.
type CLIChecker struct {
	Binary  string
	Timeout time.Duration
	WorkDir string
}

// NewCLIChecker returns a checker using the nextflow binary on PATH.
func NewCLIChecker(workDir string) *CLIChecker {
	return &CLIChecker{Binary: "nextflow", Timeout: DefaultTimeout, WorkDir: workDir}
}

// Check runs `nextflow inspect <module>` with a bounded timeout.
// A missing binary or a timeout yields OutcomeSkipped, never a failure.
func (c *CLIChecker) Check(ctx context.Context, modulePath string) Outcome {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Binary, "inspect", modulePath)
	cmd.Dir = c.WorkDir

	out, err := cmd.CombinedOutput()
	if err == nil {
		return Outcome{Kind: OutcomeValid}
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Outcome{Kind: OutcomeSkipped, Diagnostic: "timed out after " + timeout.String()}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return Outcome{Kind: OutcomeSkipped, Diagnostic: c.Binary + " not found on PATH"}
	}

	return Outcome{Kind: OutcomeInvalid, Diagnostic: tail(string(out), 20)}
}

// tail keeps the last n lines of subprocess output for diagnostics.
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
		return "...(truncated)...\n" + strings.Join(lines, "\n")
	}
	return s
}
