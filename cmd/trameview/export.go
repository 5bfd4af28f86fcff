package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"trameview/internal/config"
	"trameview/internal/domain"
	"trameview/internal/export"
	"trameview/internal/filesource"
	"trameview/internal/port"
)

type exported struct {
	source string
	target string
	frames int
}

// exportFiles decodes every file and writes one export per file. The first
// failure stops the remaining work.
func exportFiles(ctx context.Context, decoder port.FrameDecoder, cfg *config.Config, files []string, stdout io.Writer, logger *zap.Logger) error {
	if len(files) == 0 {
		return errors.New("export needs at least one capture file")
	}
	format := domain.ExportFormat(cfg.Export.Format)
	if _, err := export.New(format); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	logger.Info("export: started", append(logFields(cfg), zap.Int("files", len(files)))...)

	results := make([]exported, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Export.Concurrency)
	for i, path := range files {
		g.Go(func() error {
			res, err := exportFile(gctx, decoder, cfg, format, path)
			if err != nil {
				return err
			}
			logger.Info("export: wrote", zap.String("source", res.source), zap.String("target", res.target), zap.Int("frames", res.frames))
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		fmt.Fprintf(stdout, "%s -> %s (%d frames)\n", res.source, res.target, res.frames)
	}
	return nil
}

func exportFile(ctx context.Context, decoder port.FrameDecoder, cfg *config.Config, format domain.ExportFormat, path string) (exported, error) {
	file, err := filesource.NewPathSource(path, cfg.Source.MaxBytes()).Fetch(ctx)
	if err != nil {
		return exported{}, err
	}
	frames, err := decoder.Decode(ctx, file.Name, file.Text)
	if err != nil {
		return exported{}, err
	}

	exporter, err := export.New(format)
	if err != nil {
		return exported{}, err
	}

	target := filepath.Join(cfg.Export.Dir, export.BuildFilename(path, format))
	out, err := os.Create(target)
	if err != nil {
		return exported{}, fmt.Errorf("create %s: %w", target, err)
	}
	if err := exporter.Export(out, frames); err != nil {
		_ = out.Close()
		return exported{}, fmt.Errorf("export %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return exported{}, fmt.Errorf("close %s: %w", target, err)
	}

	return exported{source: path, target: target, frames: len(frames)}, nil
}
