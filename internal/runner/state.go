package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// StateStore handles reading and writing run state.
type StateStore struct {
	baseDir string
}

// NewStateStore creates a store at the given base directory
// (e.g. .stagecheck/run).
func NewStateStore(baseDir string) *StateStore {
	return &StateStore{baseDir: baseDir}
}

// Dir returns the store's base directory.
func (s *StateStore) Dir() string { return s.baseDir }

func (s *StateStore) lastRunPath() string {
	return filepath.Join(s.baseDir, "last-run.json")
}

func (s *StateStore) checkPath(checkID string) string {
	return filepath.Join(s.baseDir, "checks", checkID+".json")
}

// ReadLastRun loads the last run summary. A missing file is clean state,
// not an error.
func (s *StateStore) ReadLastRun() (*LastRun, error) {
	f, err := os.Open(s.lastRunPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening last run file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var last LastRun
	if err := json.NewDecoder(f).Decode(&last); err != nil {
		return nil, fmt.Errorf("decoding last run: %w", err)
	}
	return &last, nil
}

// ReadCheck loads one check's recorded result, nil if absent.
func (s *StateStore) ReadCheck(checkID string) (*CheckResult, error) {
	f, err := os.Open(s.checkPath(checkID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var res CheckResult
	if err := json.NewDecoder(f).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

// WriteLastRun saves the run summary.
func (s *StateStore) WriteLastRun(last LastRun) (err error) {
	return s.writeJSON(s.lastRunPath(), last)
}

// WriteCheckResult saves a check's result.
func (s *StateStore) WriteCheckResult(res CheckResult) error {
	return s.writeJSON(s.checkPath(res.Check), res)
}

func (s *StateStore) writeJSON(path string, v any) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Reset clears the state directory.
func (s *StateStore) Reset() error {
	return os.RemoveAll(s.baseDir)
}

// LoadFailedChecks returns the checks that failed in the last run.
func (s *StateStore) LoadFailedChecks() ([]string, error) {
	last, err := s.ReadLastRun()
	if err != nil {
		return nil, err
	}
	if last == nil {
		return nil, nil
	}
	return last.Failed, nil
}
