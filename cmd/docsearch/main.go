package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
	"github.com/chinng-inta/gemini-file-search-tool/cloudflare"
	"github.com/chinng-inta/gemini-file-search-tool/crawl"
	"github.com/chinng-inta/gemini-file-search-tool/fs"
	"github.com/chinng-inta/gemini-file-search-tool/gemini"
	"github.com/chinng-inta/gemini-file-search-tool/goquery"
	"github.com/chinng-inta/gemini-file-search-tool/htmltomarkdown"
	dshttp "github.com/chinng-inta/gemini-file-search-tool/http"
	"github.com/chinng-inta/gemini-file-search-tool/jsonfile"
	"github.com/chinng-inta/gemini-file-search-tool/readability"
	"github.com/chinng-inta/gemini-file-search-tool/rod"
	dsslog "github.com/chinng-inta/gemini-file-search-tool/slog"
	"github.com/chinng-inta/gemini-file-search-tool/sqlite"
	"github.com/chinng-inta/gemini-file-search-tool/store"
	"github.com/chinng-inta/gemini-file-search-tool/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Paths of the durable state. Set before calling Run().
	DocsRoot    string
	StoresPath  string
	TargetsPath string
	DBPath      string

	// SQLite database holding crawl run history.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults from the
// environment.
func NewMain() *Main {
	return &Main{
		DocsRoot:    envPath("DOCSEARCH_DOCS", "docs"),
		StoresPath:  envPath("DOCSEARCH_STORES", "stores.json"),
		TargetsPath: envPath("DOCSEARCH_TARGETS", "targets.json"),
		DBPath:      envPath("DOCSEARCH_DB", "docsearch.db"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		DocsRoot: m.DocsRoot,
		Targets:  jsonfile.NewTargetResolver(m.TargetsPath),
		Registry: jsonfile.NewRegistry(m.StoresPath),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsearch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps, m),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsearch --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := newLogger(stderr, cli.Verbose)
	deps.Logger = logger

	if cmd == "crawl" || cmd == "crawl-all" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set DOCSEARCH_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Runs = sqlite.NewRunService(m.DB)

		useBrowser := (cmd == "crawl" && cli.Crawl.Browser) || (cmd == "crawl-all" && cli.CrawlAll.Browser)
		engine, cleanup, err := m.buildEngine(deps, useBrowser)
		if err != nil {
			return err
		}
		defer cleanup()
		deps.Engine = engine
	}

	if cmd == "upload" || cmd == "generate" || cmd == "cleanup" {
		client, err := newGeminiClient(ctx, stderr)
		if err != nil {
			return err
		}
		remote := dsslog.NewLoggingFileSearchService(gemini.NewFileSearch(client), logger)
		deps.Uploader = store.NewUploader(deps.Registry, remote, logger)
		deps.Cleaner = store.NewCleaner(deps.Registry, remote, logger)
		deps.Query = store.NewQueryService(deps.Registry, gemini.NewGenerator(client), logger)
	}

	return kongCtx.Run(deps)
}

// buildEngine wires the crawl pipeline. The returned cleanup func releases
// fetcher and renderer resources.
func (m *Main) buildEngine(deps *Dependencies, useBrowser bool) (*crawl.Engine, func(), error) {
	logger := deps.Logger

	fetcher := dsslog.NewLoggingFetcher(dshttp.NewFetcher(), logger)

	var renderer docsearch.Renderer
	switch {
	case useBrowser:
		renderer = rod.NewRenderer()
	case os.Getenv("CLOUDFLARE_ACCOUNT_ID") != "" && os.Getenv("CLOUDFLARE_API_TOKEN") != "":
		renderer = cloudflare.NewRenderer(os.Getenv("CLOUDFLARE_ACCOUNT_ID"), os.Getenv("CLOUDFLARE_API_TOKEN"))
	default:
		logger.Info("no render capability configured, dynamic pages use static html")
	}
	if renderer != nil {
		renderer = dsslog.NewLoggingRenderer(renderer, logger)
	}

	engine := &crawl.Engine{
		Pages:     crawl.NewPageRenderer(fetcher, renderer, goquery.NewClassifier(), logger),
		Extractor: trafilatura.NewExtractor(readability.NewExtractor()),
		Converter: htmltomarkdown.NewConverter(),
		Links:     goquery.NewLinkExtractor(),
		Writer:    fs.NewWriter(m.DocsRoot),
		Sitemaps:  dsslog.NewLoggingSitemapService(dshttp.NewSitemapService(), logger),
		Runs:      deps.Runs,
		Logger:    logger,
	}

	cleanup := func() {
		fetcher.Close()
		if renderer != nil {
			renderer.Close()
		}
	}
	return engine, cleanup, nil
}

func newGeminiClient(ctx context.Context, stderr io.Writer) (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose || os.Getenv("DOCSEARCH_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// envPath reads a path from the environment, falling back to a file under
// ~/.docsearch.
func envPath(env, name string) string {
	if path := os.Getenv(env); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	dir := filepath.Join(home, ".docsearch")
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, name)
}
