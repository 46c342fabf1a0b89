package main

import (
	"fmt"
	"path/filepath"
	"sort"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
	"github.com/chinng-inta/gemini-file-search-tool/fs"
)

// Run executes the upload command.
func (c *UploadCmd) Run(deps *Dependencies) error {
	target, err := deps.Targets.Resolve(c.Target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	dir := filepath.Join(deps.DocsRoot, fs.Sanitize(target.Keyword))
	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintf(deps.Stderr, "no artifacts found under %s; run 'docsearch crawl %s' first\n", dir, target.Keyword)
		return docsearch.Errorf(docsearch.ENOTFOUND, "no artifacts for document type %q", target.Keyword)
	}
	sort.Strings(paths)

	fmt.Fprintf(deps.Stdout, "Uploading %d artifacts for %q\n", len(paths), target.Keyword)

	result, err := deps.Uploader.Upload(deps.Ctx, target.Keyword, paths)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Store %s: %d files accepted\n", result.Store.ID, result.Store.FileCount)
	for _, rejected := range result.Rejected {
		fmt.Fprintf(deps.Stderr, "  rejected %s: %s\n", rejected.Path, rejected.Err)
	}
	return nil
}
