package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/newsdeck/pkg/aggregator"
	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/content"
	"github.com/umputun/newsdeck/pkg/deck"
	"github.com/umputun/newsdeck/pkg/domain"
	"github.com/umputun/newsdeck/pkg/feed"
	"github.com/umputun/newsdeck/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" description:"config file (yaml), built-in defaults used when not set"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting newsdeck version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run loads the config, wires the application and serves until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	srv, dk := makeServer(cfg, opts.Debug)

	// load all sources in the background, the server starts with an empty deck
	go func() {
		if err := dk.Refresh(ctx); err != nil {
			log.Printf("[WARN] initial load: %v", err)
		}
	}()

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeServer wires the fetch pipeline into the browsing deck and the HTTP server
func makeServer(cfg *config.Config, debug bool) (*server.Server, *deck.Deck) {
	sources := make([]domain.Source, len(cfg.Sources))
	for i, s := range cfg.Sources {
		sources[i] = domain.Source{ID: s.ID, Name: s.Name, URL: s.URL}
	}

	normalizer := &feed.Normalizer{SummaryLength: cfg.Display.SummaryLength}

	// strategies in priority order: the JSON proxy first, raw XML as fallback
	fetcher := feed.NewSourceFetcher(
		feed.NewJSONProxyStrategy(feed.StrategyOpts{
			Endpoint:  cfg.Fetch.JSONProxy,
			Timeout:   cfg.Fetch.Timeout,
			Attempts:  cfg.Fetch.Attempts,
			UserAgent: cfg.Fetch.UserAgent,
		}, normalizer),
		feed.NewXMLProxyStrategy(feed.StrategyOpts{
			Endpoint:  cfg.Fetch.XMLProxy,
			Timeout:   cfg.Fetch.Timeout,
			Attempts:  cfg.Fetch.Attempts,
			UserAgent: cfg.Fetch.UserAgent,
		}, normalizer),
	)

	dk := deck.New(aggregator.New(fetcher, cfg.Fetch.MaxWorkers), sources)

	var extractor server.Extractor
	if cfg.Preview.Enabled {
		extractor = content.NewHTTPExtractor(cfg.Preview.Timeout, cfg.Preview.UserAgent, cfg.Preview.MinTextLength)
	}

	return server.New(cfg, dk, extractor, revision, debug), dk
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
