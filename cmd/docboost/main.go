package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docboost"
	"github.com/fwojciec/docboost/book"
	"github.com/fwojciec/docboost/crawl"
	"github.com/fwojciec/docboost/goquery"
	"github.com/fwojciec/docboost/htmltomarkdown"
	dbhttp "github.com/fwojciec/docboost/http"
	"github.com/fwojciec/docboost/readability"
	dbslog "github.com/fwojciec/docboost/slog"
	"github.com/fwojciec/docboost/sqlite"
	"github.com/fwojciec/docboost/toml"
	"github.com/fwojciec/docboost/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read by the mcp command. Set before calling Run().
	Stdin io.Reader

	// Config is loaded from the config file during Run().
	Config *docboost.Config

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Fetcher used by the api source, closed with the program.
	Fetcher docboost.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		_ = m.Fetcher.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docboost"),
		kong.Description("Full-text search over CakePHP documentation, served to AI assistants over MCP."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docboost --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.Config, err = toml.LoadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config %q: %w", cli.Config, err)
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	dbPath := resolveDBPath(cli.DB, m.Config.DB, deps.Logger)
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCBOOST_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	deps.Store = dbslog.NewLoggingDocumentStore(sqlite.NewDocumentStore(m.DB), deps.Logger)
	deps.Search = dbslog.NewLoggingSearchService(sqlite.NewSearchService(m.DB), deps.Logger)
	deps.Schema = dbslog.NewLoggingSchemaInspector(sqlite.NewSchemaInspector(m.Config.Connections), deps.Logger)
	deps.Book = book.NewSource()

	if kongCtx.Command() == "index" && m.Config.API.URL != "" {
		deps.API = m.apiSource(deps)
	}

	return kongCtx.Run(deps)
}

// apiSource wires the crawler for the configured API documentation site.
func (m *Main) apiSource(deps *Dependencies) *crawl.Source {
	cfg := m.Config.API
	fetcher := dbhttp.NewFetcher(dbhttp.WithTimeout(time.Duration(cfg.Timeout)))
	m.Fetcher = fetcher

	return &crawl.Source{
		BaseURL:      cfg.URL,
		Tag:          cfg.Source,
		Sitemaps:     dbslog.NewLoggingSitemapService(dbhttp.NewSitemapService(nil), deps.Logger),
		Fetcher:      dbslog.NewLoggingFetcher(fetcher, deps.Logger),
		Extractor:    crawl.ExtractorChain{trafilatura.NewExtractor(), readability.NewExtractor()},
		Converter:    htmltomarkdown.NewConverter(),
		LinkSelector: goquery.NewLinkSelector(),
		RateLimiter:  crawl.NewDomainLimiter(cfg.RateLimit),
		Concurrency:  cfg.Concurrency,
		Progress:     crawlProgress(deps.Stderr),
		Logger:       deps.Logger,
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// resolveDBPath picks the flag or environment value, then the config value,
// then ~/.docboost/docboost.db, creating the default directory.
func resolveDBPath(flag, configured string, logger *slog.Logger) string {
	if flag != "" {
		return flag
	}
	if configured != "" {
		return configured
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docboost.db"
	}
	dir := filepath.Join(home, ".docboost")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("cannot create database directory", "dir", dir, "err", err)
	}
	return filepath.Join(dir, "docboost.db")
}
