package runner

// Status is the outcome of one harness check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	// StatusSkip marks checks that could not run (tool unavailable,
	// timeout). Skips never count against the run verdict.
	StatusSkip Status = "skip"
)

// CheckResult is the recorded outcome of a single check execution.
// Matches the .stagecheck/run/checks/<check>.json schema.
type CheckResult struct {
	Check    string `json:"check"`
	Status   Status `json:"status"`
	ExitCode int    `json:"exit_code"`
	Note     string `json:"note,omitempty"`
}

// LastRun summarizes the most recent harness run.
// Matches the .stagecheck/run/last-run.json schema.
type LastRun struct {
	Status  string   `json:"status"` // "pass" or "fail"
	Checks  []string `json:"checks"` // ordered list of checks run
	Failed  []string `json:"failed"` // checks that definitively failed
	Skipped []string `json:"skipped,omitempty"`
}
