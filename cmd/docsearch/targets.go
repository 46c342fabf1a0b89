package main

import (
	"fmt"
	"text/tabwriter"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// Run executes the targets command.
func (c *TargetsCmd) Run(deps *Dependencies) error {
	targets, err := deps.Targets.List()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}
	if len(targets) == 0 {
		fmt.Fprintln(deps.Stdout, "No crawl targets registered.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "KEYWORD\tURL\tDESCRIPTION")
	for _, t := range targets {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Keyword, t.URL, t.Description)
	}
	return w.Flush()
}
