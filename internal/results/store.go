package results

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store serializes progressive updates to one results file. Workers call
// UpsertSample concurrently; each call rewrites the file so a killed run
// loses at most the sample in flight.
type Store struct {
	path string

	mu sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (st *Store) Path() string { return st.path }

// EnsureHeader creates the run record for model if missing and returns its
// run id. An existing record keeps its samples, so an interrupted run can be
// resumed against the same file.
func (st *Store) EnsureHeader(model, endpoint string, params map[string]any) (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	f, err := Load(st.path)
	if err != nil {
		return "", err
	}
	run, ok := f[model]
	if !ok {
		run = &ModelRun{
			TestModel: model,
			Endpoint:  endpoint,
			RunID:     uuid.NewString(),
			Params:    params,
			StartedAt: time.Now().UTC().Format(time.RFC3339),
			Samples:   []Sample{},
		}
		f[model] = run
	}
	if err := Save(st.path, f); err != nil {
		return "", err
	}
	return run.RunID, nil
}

// UpsertSample inserts or replaces the sample with the same prompt index and
// recomputes the run summary.
func (st *Store) UpsertSample(model string, sample Sample) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	f, err := Load(st.path)
	if err != nil {
		return err
	}
	run, ok := f[model]
	if !ok {
		return fmt.Errorf("results: no run for model %q in %s", model, st.path)
	}

	replaced := false
	for i := range run.Samples {
		if run.Samples[i].PromptIndex == sample.PromptIndex {
			run.Samples[i] = sample
			replaced = true
			break
		}
	}
	if !replaced {
		run.Samples = append(run.Samples, sample)
		sort.Slice(run.Samples, func(i, j int) bool {
			return run.Samples[i].PromptIndex < run.Samples[j].PromptIndex
		})
	}
	Recompute(run)

	return Save(st.path, f)
}

// Complete stamps the run as finished and returns its final summary.
func (st *Store) Complete(model string) (Summary, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	f, err := Load(st.path)
	if err != nil {
		return Summary{}, err
	}
	run, ok := f[model]
	if !ok {
		return Summary{}, fmt.Errorf("results: no run for model %q in %s", model, st.path)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	run.CompletedAt = &now
	Recompute(run)

	if err := Save(st.path, f); err != nil {
		return Summary{}, err
	}
	return run.Summary, nil
}

// Get returns the run record for model, or nil if absent.
func (st *Store) Get(model string) (*ModelRun, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	f, err := Load(st.path)
	if err != nil {
		return nil, err
	}
	return f[model], nil
}
