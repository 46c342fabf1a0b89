package main

import (
	"context"
	"io"
	"log/slog"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
	"github.com/chinng-inta/gemini-file-search-tool/crawl"
	"github.com/chinng-inta/gemini-file-search-tool/store"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// DocsRoot is the directory holding crawled artifacts.
	DocsRoot string

	Targets  docsearch.TargetResolver
	Registry docsearch.StoreRegistry
	Runs     docsearch.RunService

	// Engine is wired only for crawl commands.
	Engine *crawl.Engine

	// Upload, cleanup and query services are wired only when their command
	// runs; they need Gemini credentials.
	Uploader *store.Uploader
	Cleaner  *store.Cleaner
	Query    *store.QueryService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Crawl    CrawlCmd    `cmd:"" help:"Crawl a documentation site to local Markdown artifacts"`
	CrawlAll CrawlAllCmd `cmd:"" name:"crawl-all" help:"Crawl every registered target"`
	Upload   UploadCmd   `cmd:"" help:"Upload crawled artifacts to a new retrieval store"`
	Generate GenerateCmd `cmd:"" help:"Generate an answer grounded in a document type's active store"`
	Targets  TargetsCmd  `cmd:"" help:"List registered crawl targets"`
	Stores   StoresCmd   `cmd:"" help:"List registered retrieval stores"`
	Cleanup  CleanupCmd  `cmd:"" help:"Delete retrieval stores older than the age limit"`
	Runs     RunsCmd     `cmd:"" help:"Show crawl run history"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Target   string `arg:"" help:"Target keyword or documentation URL"`
	MaxDepth int    `help:"Maximum link depth from the root URL"`
	MaxPages int    `help:"Maximum number of saved pages"`
	Browser  bool   `short:"b" help:"Render dynamic pages with a local browser instead of the remote service"`
}

// CrawlAllCmd is the "crawl-all" subcommand.
type CrawlAllCmd struct {
	Concurrency int  `short:"c" default:"2" help:"Concurrent crawl runs"`
	Browser     bool `short:"b" help:"Render dynamic pages with a local browser instead of the remote service"`
}

// UploadCmd is the "upload" subcommand.
type UploadCmd struct {
	Target string `arg:"" help:"Target keyword"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Target string `arg:"" help:"Target keyword"`
	Prompt string `arg:"" help:"Prompt to answer from the documentation"`
}

// TargetsCmd is the "targets" subcommand.
type TargetsCmd struct{}

// StoresCmd is the "stores" subcommand.
type StoresCmd struct {
	Target string `arg:"" optional:"" help:"Limit output to one target keyword"`
}

// CleanupCmd is the "cleanup" subcommand.
type CleanupCmd struct {
	MaxAgeDays int  `default:"90" help:"Age in days past which stores are removed"`
	Force      bool `help:"Remove even the newest store of each document type"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Target string `arg:"" optional:"" help:"Limit output to one target keyword"`
	Limit  int    `default:"20" help:"Maximum number of runs to show"`
}
