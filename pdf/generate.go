package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"pkt.systems/onboard"
	"pkt.systems/onboard/internal/fileutil"
)

// GenerateRequest describes one run over the whole catalog.
type GenerateRequest struct {
	Catalog *onboard.Catalog
	// Fonts maps a language code to its font.
	Fonts  map[string]FontSpec
	OutDir string
	Config Config
	// Parallel renders the languages concurrently. Each document owns its
	// own fpdf document, so nothing is shared.
	Parallel bool
	Logger   *zap.Logger
}

// Result describes one installed guide.
type Result struct {
	Lang string
	Name string
	Path string
	Size int64
}

// Generate validates the catalog, resolves every font, then renders and
// atomically installs one PDF per language. Validation, layout and font
// problems abort the run before any file is written. Results follow catalog
// order.
func Generate(ctx context.Context, req GenerateRequest) ([]Result, error) {
	if req.Catalog == nil {
		return nil, fmt.Errorf("generate: catalog is nil")
	}
	if req.OutDir == "" {
		return nil, fmt.Errorf("generate: output directory is empty")
	}
	logger := req.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)

	if err := req.Catalog.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	sets := req.Catalog.Sets
	var fitErrs []error
	for _, set := range sets {
		fitErrs = append(fitErrs, cfg.Geometry.CheckFit(set))
	}
	if err := errors.Join(fitErrs...); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	fonts := make([]Font, len(sets))
	for i, set := range sets {
		font, err := ResolveFont(set.Lang, req.Fonts[set.Lang])
		if err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}
		fonts[i] = font
		logger.Debug("font resolved", zap.String("lang", set.Lang), zap.String("family", font.Family), zap.String("path", font.Path))
	}

	if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("generate: %w", &onboard.WriteError{Op: "mkdir", Path: req.OutDir, Err: err})
	}

	results := make([]Result, len(sets))
	build := func(i int) error {
		set := sets[i]
		path := filepath.Join(req.OutDir, set.Output)
		start := time.Now()
		logger.Debug("rendering", zap.String("lang", set.Lang), zap.String("path", path))
		size, err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
			return Render(RenderRequest{
				Writer:  w,
				Content: set,
				Contact: req.Catalog.ContactLine(set),
				Font:    fonts[i],
				Config:  cfg,
				Logger:  logger,
			})
		})
		if err != nil {
			return fmt.Errorf("generate %s: %w", set.Lang, err)
		}
		installed, err := fileutil.FileSize(path)
		if err != nil {
			return fmt.Errorf("generate %s: %w", set.Lang, &onboard.WriteError{Op: "stat", Path: path, Err: err})
		}
		if installed != size {
			return fmt.Errorf("generate %s: %w", set.Lang, &onboard.WriteError{
				Op: "verify", Path: path, Err: fmt.Errorf("wrote %d bytes, file has %d", size, installed),
			})
		}
		results[i] = Result{Lang: set.Lang, Name: set.Output, Path: path, Size: size}
		logger.Info("installed",
			zap.String("lang", set.Lang),
			zap.String("path", path),
			zap.Int64("bytes", size),
			zap.Duration("took", time.Since(start)),
		)
		return nil
	}

	if req.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i := range sets {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return build(i)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return results, nil
	}
	for i := range sets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := build(i); err != nil {
			return nil, err
		}
	}
	return results, nil
}
