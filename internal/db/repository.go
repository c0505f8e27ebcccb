package db

import (
	"database/sql"
	"fmt"
	"sort"

	"sloprate/internal/results"
)

// ExportResults replaces the database contents with the runs and samples
// from a results file. Export is a full snapshot, not an incremental sync.
func ExportResults(dbPath string, f results.File) error {
	conn, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM samples`); err != nil {
		return fmt.Errorf("clear samples: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM runs`); err != nil {
		return fmt.Errorf("clear runs: %w", err)
	}

	models := make([]string, 0, len(f))
	for model := range f {
		models = append(models, model)
	}
	sort.Strings(models)

	for _, model := range models {
		run := f[model]
		res, err := tx.Exec(
			`INSERT INTO runs(model, endpoint, run_id, started_at, completed_at, total_prompts, total_chars, total_hits, rate_per_1k)
			 VALUES(?,?,?,?,?,?,?,?,?)`,
			model,
			run.Endpoint,
			run.RunID,
			run.StartedAt,
			completedAt(run),
			run.Summary.TotalPrompts,
			run.Summary.TotalChars,
			run.Summary.TotalHits,
			run.Summary.RatePer1K,
		)
		if err != nil {
			return fmt.Errorf("insert run %q: %w", model, err)
		}
		runID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("run last insert id: %w", err)
		}

		for _, s := range run.Samples {
			if _, err := tx.Exec(
				`INSERT INTO samples(run_id, prompt_index, prompt, output, chars, hits, rate_per_1k, error)
				 VALUES(?,?,?,?,?,?,?,?)`,
				runID,
				s.PromptIndex,
				s.Prompt,
				s.Output,
				s.Chars,
				s.Hits,
				s.RatePer1K,
				s.Error,
			); err != nil {
				return fmt.Errorf("insert sample %d for %q: %w", s.PromptIndex, model, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func completedAt(run *results.ModelRun) any {
	if run.CompletedAt == nil {
		return nil
	}
	return *run.CompletedAt
}

func CountRows(dbPath, table string) (int, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	return countRowsConn(conn, table)
}

func countRowsConn(conn *sql.DB, table string) (int, error) {
	row := conn.QueryRow(`SELECT COUNT(*) FROM ` + table)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
