package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
	"github.com/chinng-inta/gemini-file-search-tool/sqlite"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies, m *Main) error {
	// Run history lives in SQLite; open it here since the crawl wiring is
	// not active for this command.
	if deps.Runs == nil {
		db := sqlite.NewDB(m.DBPath)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer db.Close()
		deps.Runs = sqlite.NewRunService(db)
	}

	filter := docsearch.RunFilter{Limit: c.Limit}
	if c.Target != "" {
		target, err := deps.Targets.Resolve(c.Target)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
			return err
		}
		filter.DocType = &target.Keyword
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No crawl runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tTYPE\tSAVED\tFAILED\tDURATION")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			run.StartedAt.UTC().Format(time.RFC3339),
			run.DocType,
			run.Saved,
			run.Failed,
			run.FinishedAt.Sub(run.StartedAt).Round(time.Second),
		)
	}
	return w.Flush()
}
