// Package pipeline runs one icon library build: walk, classify, load and
// publish.
package pipeline

import (
	"context"
	"sort"
	"time"

	"github.com/arthur-debert/iconlib/pkg/classify"
	"github.com/arthur-debert/iconlib/pkg/config"
	"github.com/arthur-debert/iconlib/pkg/hints"
	"github.com/arthur-debert/iconlib/pkg/loader"
	"github.com/arthur-debert/iconlib/pkg/logging"
	"github.com/arthur-debert/iconlib/pkg/manifest"
	"github.com/arthur-debert/iconlib/pkg/normalize"
	"github.com/arthur-debert/iconlib/pkg/types"
	"github.com/arthur-debert/iconlib/pkg/walker"
)

// Build scans cfg.Input.Dir and publishes the library to cfg.Output.Dir.
// Nothing is written unless every file was read; the manifest is written
// only after every collection file.
func Build(ctx context.Context, fsys types.FS, cfg *config.Config) (*types.BuildResult, error) {
	logger := logging.GetLogger("pipeline")
	done := logging.LogOperationStart(logger, "build")
	defer done()
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	files, err := walker.Walk(fsys, cfg.Input.Dir)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("input", cfg.Input.Dir).
		Int("files", len(files)).
		Msg("Discovered icon files")

	table, err := Table(fsys, cfg, files)
	if err != nil {
		return nil, err
	}

	opts := loader.Options{
		Concurrency: cfg.Loader.Concurrency,
		Table:       table,
	}
	if cfg.Normalize.Enabled {
		opts.Normalizer = normalize.New(cfg.Normalize.Token)
	}
	l, err := loader.New(fsys, opts)
	if err != nil {
		return nil, err
	}
	ev := logger.Debug().
		Int("concurrency", l.Concurrency()).
		Strs("bound", table.Collections())
	if opts.Normalizer != nil {
		ev = ev.Str("token", opts.Normalizer.Token())
	}
	ev.Msg("Loading icons")

	records, stats, err := l.Load(ctx, files)
	if err != nil {
		return nil, err
	}

	w := manifest.NewWriter(fsys, manifest.Options{
		Dir:          cfg.Output.Dir,
		ManifestName: cfg.Output.Manifest,
		Pretty:       cfg.Output.Pretty,
	})
	written, err := w.Write(records)
	if err != nil {
		return nil, err
	}

	summaries := types.Summarize(records)
	for i := range summaries {
		summaries[i].File = manifest.CollectionFile(summaries[i].Name)
	}

	return &types.BuildResult{
		InputDir:    cfg.Input.Dir,
		OutputDir:   cfg.Output.Dir,
		Files:       len(files),
		Icons:       len(records),
		Normalized:  stats.Normalized,
		Collections: summaries,
		Manifest:    written.Manifest,
		Duration:    time.Since(start),
	}, nil
}

// Table builds the classification table for files: the configured layout
// plus whatever hint files the collections carry.
func Table(fsys types.FS, cfg *config.Config, files []types.IconFile) (*classify.Table, error) {
	table, err := classify.NewTable(cfg.Layout)
	if err != nil {
		return nil, err
	}

	found, err := hints.Load(fsys, cfg.Input.Dir, cfg.Layout.HintFile, Collections(files))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		hint := found[name]
		if err := table.Bind(name, hint.Layout, hint.Styles); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// Collections returns the distinct collections of files, sorted. Files at
// the scan root belong to no collection directory and are left out.
func Collections(files []types.IconFile) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, f := range files {
		segments := classify.Split(f.RelPath)
		if len(segments) < 2 {
			continue
		}
		if _, ok := seen[segments[0]]; ok {
			continue
		}
		seen[segments[0]] = struct{}{}
		names = append(names, segments[0])
	}
	sort.Strings(names)
	return names
}
