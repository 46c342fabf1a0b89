package main

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
	"github.com/chinng-inta/gemini-file-search-tool/crawl"
)

// Run executes the crawl-all command. Targets are crawled concurrently, each
// in its own run; one failing target does not stop the rest.
func (c *CrawlAllCmd) Run(deps *Dependencies) error {
	targets, err := deps.Targets.List()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}
	if len(targets) == 0 {
		fmt.Fprintln(deps.Stdout, "No crawl targets registered.")
		return nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	var mu sync.Mutex
	failed := 0

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for _, target := range targets {
		g.Go(func() error {
			result, err := deps.Engine.Crawl(ctx, docsearch.CrawlTarget{
				DocType: target.Keyword,
				RootURL: target.URL,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				fmt.Fprintf(deps.Stderr, "  %s: %s\n", target.Keyword, docsearch.ErrorMessage(err))
				// Context errors abort the whole batch; anything else only
				// this target.
				if ctx.Err() != nil {
					return err
				}
				return nil
			}
			printResult(deps, target.Keyword, result)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed", failed, len(targets))
	}
	return nil
}

func printResult(deps *Dependencies, keyword string, result *crawl.Result) {
	fmt.Fprintf(deps.Stdout, "  %s: saved %d pages, %d failed\n", keyword, result.Saved, result.Failed)
}
