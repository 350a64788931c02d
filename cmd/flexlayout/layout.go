package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-flex/internal/config"
	"github.com/grindlemire/go-flex/internal/fixture"
	"github.com/grindlemire/go-flex/internal/layout"
	"github.com/grindlemire/go-flex/internal/report"
)

// layoutOptions are the per-run settings shared by every file.
type layoutOptions struct {
	width, height float64
	cull          bool
	viewport      layout.Rect
}

func newLayoutCmd(a *app) *cobra.Command {
	var cull bool
	cmd := &cobra.Command{
		Use:   "layout file...",
		Short: "Lay out fixture files and print the resolved boxes",
		Long: `Lay out fixture files and print the resolved boxes.

Files are laid out in parallel, each in its own tree. With --cull, every
container outside the viewport is deferred after the first pass and the
report shows which subtrees were skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := layoutOptions{
				width:  a.cfg.Layout.Width,
				height: a.cfg.Layout.Height,
				cull:   cull,
			}
			if cull {
				vp, err := resolveViewport(a.cfg.Layout.Viewport)
				if err != nil {
					return err
				}
				opts.viewport = vp
			}

			results, err := layoutFiles(cmd.Context(), a.log, args, a.cfg.Layout.Jobs, opts)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), a.cfg.Output.Format, results)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&cull, "cull", false, "defer containers outside the viewport")
	f.String("viewport", "", `viewport for --cull as "WxH" (default: terminal size)`)
	f.Float64("width", 0, "override the root width")
	f.Float64("height", 0, "override the root height")
	return cmd
}

// resolveViewport parses the configured viewport, falling back to the
// size of the terminal on stdout.
func resolveViewport(viewport string) (layout.Rect, error) {
	if viewport != "" {
		w, h, err := config.ParseViewport(viewport)
		if err != nil {
			return layout.Rect{}, err
		}
		return layout.NewRect(0, 0, w, h), nil
	}
	w, h, ok := terminalSize()
	if !ok {
		return layout.Rect{}, errors.New("no viewport: pass --viewport or run in a terminal")
	}
	return layout.NewRect(0, 0, float64(w), float64(h)), nil
}

// layoutFiles lays out every file with at most jobs running at once. The
// first failure cancels files that have not started.
func layoutFiles(ctx context.Context, log *zap.Logger, files []string, jobs int, opts layoutOptions) ([]report.Result, error) {
	results := make([]report.Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := layoutFile(log.With(zap.String("file", path)), path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func layoutFile(log *zap.Logger, path string, opts layoutOptions) (report.Result, error) {
	doc, err := fixture.Load(path)
	if err != nil {
		return report.Result{}, err
	}
	if opts.width > 0 {
		doc.Root.Width = opts.width
	}
	if opts.height > 0 {
		doc.Root.Height = opts.height
	}

	tr := layout.NewTree(layout.WithLogger(log.Named("layout")))
	built, err := fixture.Build(tr, doc)
	if err != nil {
		return report.Result{}, fmt.Errorf("%s: %w", path, err)
	}

	tr.LayoutTree(built.Root)
	res := report.Result{File: path}
	if opts.cull {
		res.Deferred, res.Revealed = tr.Cull(built.Root, opts.viewport)
	}
	res.Root = report.Collect(tr, built.Root, built)
	res.Stats = tr.Stats()

	log.Debug("file laid out",
		zap.Int("nodes", tr.Len()),
		zap.Int("main_layouts", res.Stats.MainLayouts),
		zap.Int("cache_hits", res.Stats.CacheHits))
	return res, nil
}

func writeResults(w io.Writer, format string, results []report.Result) error {
	if format == config.FormatJSON {
		return report.WriteJSON(w, results)
	}
	return report.WriteText(w, results)
}
