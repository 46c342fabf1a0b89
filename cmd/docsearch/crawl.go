package main

import (
	"fmt"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	target, err := deps.Targets.Resolve(c.Target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawling %q (%s)\n", target.Keyword, target.URL)

	result, err := deps.Engine.Crawl(deps.Ctx, docsearch.CrawlTarget{
		DocType:  target.Keyword,
		RootURL:  target.URL,
		MaxDepth: c.MaxDepth,
		MaxPages: c.MaxPages,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d pages, %d failed\n", result.Saved, result.Failed)
	return nil
}
