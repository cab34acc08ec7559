package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobnotice"
	"github.com/fwojciec/jobnotice/crawl"
	"github.com/fwojciec/jobnotice/goquery"
	"github.com/fwojciec/jobnotice/htmltomarkdown"
	jnhttp "github.com/fwojciec/jobnotice/http"
	"github.com/fwojciec/jobnotice/linkcheck"
	"github.com/fwojciec/jobnotice/mongo"
	jnslog "github.com/fwojciec/jobnotice/slog"
	"github.com/fwojciec/jobnotice/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
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
	// Record store DSN: a mongodb:// URI or a SQLite file path.
	// Set before calling Run().
	DSN string

	// Records, if set, is used instead of opening the store named by DSN.
	Records jobnotice.RecordService

	closeStore func() error
}

// NewMain returns a new instance of Main configured from the environment.
func NewMain() *Main {
	return &Main{
		DSN: defaultDSN(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.closeStore != nil {
		return m.closeStore()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobnotice"),
		kong.Description("Extract employment notices from listing pages and store new ones."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobnotice --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.Verbose)

	if cmd != "extract" {
		records := m.Records
		if records == nil {
			if m.DSN == "" {
				fmt.Fprintln(stderr, "Hint: set JOBNOTICE_STORE to a mongodb:// URI or a SQLite file path")
				return jobnotice.Errorf(jobnotice.EINVALID, "no record store configured")
			}
			records, m.closeStore, err = openStore(ctx, m.DSN, cli.Database, cli.Collection)
			if err != nil {
				return err
			}
			defer m.Close()
		}
		deps.Records = jnslog.NewLoggingRecordService(records, deps.Logger)
	}

	switch cmd {
	case "scrape":
		deps.Scraper = newScraper(&cli.Scrape, deps)
	case "extract":
		deps.Fetcher, deps.Extractor = newPipeline(cli.Extract.Fetch, deps.Logger)
	case "show", "export":
		deps.Formatter = htmltomarkdown.NewFormatter(nil)
	}

	return kongCtx.Run(deps)
}

// newPipeline builds the fetcher and the extractor with its link validator.
func newPipeline(flags FetchFlags, logger *slog.Logger) (jobnotice.Fetcher, jobnotice.Extractor) {
	fetcher := jnslog.NewLoggingFetcher(jnhttp.NewFetcher(jnhttp.WithTimeout(flags.Timeout)), logger)

	prober := jnhttp.NewProber(jnhttp.WithTimeout(flags.ProbeTimeout))
	validator := jnslog.NewLoggingLinkValidator(linkcheck.NewValidator(prober), logger)

	extractor := jnslog.NewLoggingExtractor(goquery.NewExtractor(validator, goquery.WithCategory(flags.Category)), logger)
	return fetcher, extractor
}

func newScraper(c *ScrapeCmd, deps *Dependencies) *crawl.Scraper {
	fetcher, extractor := newPipeline(c.Fetch, deps.Logger)

	var source jobnotice.URLSource = goquery.NewListingScanner(fetcher)
	if c.Sitemap {
		sitemaps := jnhttp.NewSitemapService(jnhttp.WithTimeout(c.Fetch.Timeout))
		source = &crawl.SitemapSource{Sitemaps: jnslog.NewLoggingSitemapService(sitemaps, deps.Logger)}
	}

	return &crawl.Scraper{
		Source:      jnslog.NewLoggingURLSource(source, deps.Logger),
		Fetcher:     fetcher,
		Extractor:   extractor,
		Records:     deps.Records,
		RateLimiter: crawl.NewDomainLimiter(c.Delay),
		RetryLog:    retryLogger(deps.Logger),
		Limit:       c.Limit,
	}
}

// retryLogger adapts a slog.Logger to the retry callback.
func retryLogger(logger *slog.Logger) crawl.LogFunc {
	return func(format string, args ...any) {
		logger.Warn(fmt.Sprintf(format, args...))
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openStore opens the record store named by dsn. mongodb:// and
// mongodb+srv:// URIs select MongoDB; anything else is a SQLite file path.
func openStore(ctx context.Context, dsn, database, collection string) (jobnotice.RecordService, func() error, error) {
	if isMongoURI(dsn) {
		db := mongo.NewDB(dsn, mongo.WithDatabase(database), mongo.WithCollection(collection))
		if err := db.Open(ctx); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		return mongo.NewRecordService(db), func() error { return db.Close(context.Background()) }, nil
	}

	db := sqlite.NewDB(dsn)
	if err := db.Open(); err != nil {
		return nil, nil, fmt.Errorf("failed to open database at %q: %w", dsn, err)
	}
	return sqlite.NewRecordService(db), db.Close, nil
}

func isMongoURI(dsn string) bool {
	return strings.HasPrefix(dsn, "mongodb://") || strings.HasPrefix(dsn, "mongodb+srv://")
}

func defaultDSN() string {
	if dsn := os.Getenv("JOBNOTICE_STORE"); dsn != "" {
		return dsn
	}
	return os.Getenv("MONGO_URI")
}
