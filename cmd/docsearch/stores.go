package main

import (
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// Run executes the stores command.
func (c *StoresCmd) Run(deps *Dependencies) error {
	var byType map[string][]*docsearch.Store
	if c.Target != "" {
		target, err := deps.Targets.Resolve(c.Target)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
			return err
		}
		records, err := deps.Registry.ByType(deps.Ctx, target.Keyword)
		if err != nil {
			return err
		}
		byType = map[string][]*docsearch.Store{target.Keyword: records}
	} else {
		all, err := deps.Registry.All(deps.Ctx)
		if err != nil {
			return err
		}
		byType = all
	}

	docTypes := make([]string, 0, len(byType))
	total := 0
	for docType, records := range byType {
		docTypes = append(docTypes, docType)
		total += len(records)
	}
	if total == 0 {
		fmt.Fprintln(deps.Stdout, "No retrieval stores registered.")
		return nil
	}
	sort.Strings(docTypes)

	w := tabwriter.NewWriter(deps.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tSTORE\tCREATED\tFILES\tSTATUS")
	for _, docType := range docTypes {
		records := byType[docType]
		active := activeID(records)
		for _, s := range records {
			status := ""
			if s.ID == active {
				status = "active"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				docType, s.ID, s.CreatedAt.UTC().Format(time.RFC3339), s.FileCount, status)
		}
	}
	return w.Flush()
}

// activeID returns the id of the most recently created record.
func activeID(records []*docsearch.Store) string {
	if len(records) == 0 {
		return ""
	}
	newest := records[0]
	for _, s := range records[1:] {
		if s.CreatedAt.After(newest.CreatedAt) {
			newest = s
		}
	}
	return newest.ID
}
