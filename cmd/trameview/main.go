// Command trameview decodes bean XML frame captures. With --export it
// writes every FILE in the chosen format; otherwise it opens the first
// FILE in a line-driven frame viewer.
// Usage: trameview [flags] FILE...
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"trameview/internal/config"
	"trameview/internal/logging"
	"trameview/internal/service"
	"trameview/internal/trame"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("trameview", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.String("log-format", "", "log format: console or json")
	fs.Int64("max-size-mb", 0, "largest capture file accepted, in MB")
	fs.String("export", "", "export format: csv, xlsx, json or yaml (empty opens the viewer)")
	fs.String("out", "", "directory for exported files")
	fs.Int("concurrency", 0, "number of files exported in parallel")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: trameview [flags] FILE...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath, fs)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	decoder := service.NewDecodeService(trame.NewTransformer(), logger)

	if cfg.Export.Format != "" {
		return exportFiles(ctx, decoder, cfg, fs.Args(), stdout, logger)
	}
	return view(ctx, service.NewViewSession(service.NewLoader(decoder, logger), logger), cfg, fs.Args(), stdin, stdout)
}

func logFields(cfg *config.Config) []zap.Field {
	return []zap.Field{
		zap.String("export_format", cfg.Export.Format),
		zap.String("export_dir", cfg.Export.Dir),
		zap.Int("concurrency", cfg.Export.Concurrency),
	}
}
