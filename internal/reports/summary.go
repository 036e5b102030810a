package reports

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ovinelab/stagecheck/internal/runner"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	skipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Summary renders the aggregate outcome of one harness run.
type Summary struct {
	// Color toggles lipgloss styling. Tests and --json callers render
	// plain text; the CLI enables it on a terminal unless NO_COLOR is set.
	Color bool
}

// Render formats the last-run summary plus per-check results.
// Results appear in run order; skipped checks are excluded from the
// pass tally, matching the runner's accounting.
func (s Summary) Render(last *runner.LastRun, results []runner.CheckResult) string {
	var b strings.Builder

	b.WriteString(s.style(headerStyle, "STAGE 1 TEST SUMMARY"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 40))
	b.WriteString("\n")

	if last == nil {
		b.WriteString("No run state found. Run `stagecheck run all` first.\n")
		return b.String()
	}

	passed, counted := 0, 0
	for _, res := range results {
		switch res.Status {
		case runner.StatusPass:
			passed++
			counted++
			b.WriteString(s.style(passStyle, "PASS"))
		case runner.StatusFail:
			counted++
			b.WriteString(s.style(failStyle, "FAIL"))
		case runner.StatusSkip:
			b.WriteString(s.style(skipStyle, "SKIP"))
		}
		b.WriteString(" ")
		b.WriteString(res.Check)
		if res.Note != "" {
			b.WriteString(" - ")
			b.WriteString(res.Note)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%d/%d checks passed", passed, counted)
	if skipped := len(last.Skipped); skipped > 0 {
		fmt.Fprintf(&b, " (%d skipped)", skipped)
	}
	b.WriteString("\n")

	if last.Status == "pass" {
		b.WriteString(s.style(passStyle, "Stage 1 implementation ready for testing."))
	} else {
		b.WriteString(s.style(failStyle, "Stage 1 needs fixes before proceeding."))
	}
	b.WriteString("\n")
	return b.String()
}

func (s Summary) style(st lipgloss.Style, text string) string {
	if !s.Color {
		return text
	}
	return st.Render(text)
}

// Collect reads the recorded result for each check of the last run.
// Checks whose result file is missing are silently dropped; the summary
// reflects what the store actually holds.
func Collect(store *runner.StateStore, last *runner.LastRun) ([]runner.CheckResult, error) {
	if last == nil {
		return nil, nil
	}
	var results []runner.CheckResult
	for _, id := range last.Checks {
		res, err := store.ReadCheck(id)
		if err != nil {
			return nil, err
		}
		if res != nil {
			results = append(results, *res)
		}
	}
	return results, nil
}
