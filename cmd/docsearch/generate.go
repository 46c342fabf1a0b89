package main

import (
	"fmt"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	target, err := deps.Targets.Resolve(c.Target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	answer, err := deps.Query.Query(deps.Ctx, target.Keyword, c.Prompt)
	if err != nil {
		if docsearch.ErrorCode(err) == docsearch.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "no retrieval store for %q; run 'docsearch upload %s' first\n", target.Keyword, target.Keyword)
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
