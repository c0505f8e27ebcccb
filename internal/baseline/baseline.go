// Package baseline scores a directory of human-written texts to anchor what
// a normal contrast rate looks like.
package baseline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"

	"sloprate/internal/ingest"
	"sloprate/internal/pipeline"
	"sloprate/internal/scorer"
)

type Options struct {
	Window  int
	Overlap int
	Workers int
}

type FileReport struct {
	Path      string  `json:"path"`
	Chars     int     `json:"chars"`
	Hits      int     `json:"hits"`
	RatePer1K float64 `json:"rate_per_1k"`
}

type Report struct {
	Files     []FileReport `json:"files"`
	Chars     int          `json:"chars"`
	Hits      int          `json:"hits"`
	RatePer1K float64      `json:"rate_per_1k"`
}

// Compute scores every supported file under dir. A file that cannot be read
// or scored is logged and skipped; the aggregate rate weights every file by
// its length, it is not a mean of per-file rates.
func Compute(dir string, sc *scorer.Scorer, opts Options, log *zap.Logger) (*Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Window <= 0 {
		opts.Window = scorer.DefaultWindow
	}
	if opts.Overlap < 0 {
		opts.Overlap = scorer.DefaultOverlap
	}

	paths, err := collect(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("baseline: no supported files under %s", dir)
	}

	jobs := make([]pipeline.Job, len(paths))
	for i, p := range paths {
		jobs[i] = pipeline.Job{Index: i, Text: p}
	}

	var mu sync.Mutex
	reports := make([]*FileReport, len(paths))

	pipeline.Run(jobs, opts.Workers, func(job pipeline.Job) error {
		path := job.Text
		text, err := ingest.ReadText(path)
		if err != nil {
			log.Warn("skipping unreadable file", zap.String("path", path), zap.Error(err))
			return nil
		}
		res, err := sc.ScoreChunked(text, opts.Window, opts.Overlap)
		if err != nil {
			log.Warn("skipping unscorable file", zap.String("path", path), zap.Error(err))
			return nil
		}
		mu.Lock()
		reports[job.Index] = &FileReport{
			Path:      path,
			Chars:     res.Chars,
			Hits:      len(res.Hits),
			RatePer1K: res.RatePer1K,
		}
		mu.Unlock()
		log.Info("scored file",
			zap.String("path", path),
			zap.Int("chars", res.Chars),
			zap.Int("hits", len(res.Hits)),
			zap.Float64("rate_per_1k", res.RatePer1K))
		return nil
	})

	out := &Report{}
	for _, r := range reports {
		if r == nil {
			continue
		}
		out.Files = append(out.Files, *r)
		out.Chars += r.Chars
		out.Hits += r.Hits
	}
	if len(out.Files) == 0 {
		return nil, fmt.Errorf("baseline: no file under %s could be scored", dir)
	}
	out.RatePer1K = scorer.Rate(out.Hits, out.Chars)
	return out, nil
}

func collect(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && ingest.Supported(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("baseline: walk %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}
