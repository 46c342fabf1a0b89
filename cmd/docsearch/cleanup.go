package main

import (
	"fmt"
	"time"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// Run executes the cleanup command.
func (c *CleanupCmd) Run(deps *Dependencies) error {
	maxAge := time.Duration(c.MaxAgeDays) * 24 * time.Hour

	result, err := deps.Cleaner.Cleanup(deps.Ctx, maxAge, c.Force)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	if len(result.Removed) == 0 && len(result.Failures) == 0 {
		fmt.Fprintf(deps.Stdout, "No stores older than %d days.\n", c.MaxAgeDays)
		return nil
	}
	for _, s := range result.Removed {
		fmt.Fprintf(deps.Stdout, "  removed %s (%s, created %s)\n",
			s.ID, s.DocType, s.CreatedAt.UTC().Format(time.RFC3339))
	}
	for _, f := range result.Failures {
		fmt.Fprintf(deps.Stderr, "  failed %s (%s): %s\n", f.StoreID, f.DocType, f.Err)
	}
	if len(result.Failures) > 0 {
		return fmt.Errorf("%d stores could not be removed", len(result.Failures))
	}
	return nil
}
