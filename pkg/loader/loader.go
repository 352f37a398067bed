// Package loader reads icon files with a bounded number of reads in flight
// and turns them into icon records.
package loader

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/iconlib/pkg/classify"
	"github.com/arthur-debert/iconlib/pkg/config"
	"github.com/arthur-debert/iconlib/pkg/errors"
	"github.com/arthur-debert/iconlib/pkg/logging"
	"github.com/arthur-debert/iconlib/pkg/normalize"
	"github.com/arthur-debert/iconlib/pkg/types"
)

// Options configures a Loader.
type Options struct {
	// Concurrency is the maximum number of reads in flight. Must be >= 1.
	Concurrency int
	// Table classifies each file. Nil means a table with no bound collections.
	Table *classify.Table
	// Normalizer rewrites the root theme attribute. Nil disables the rewrite.
	Normalizer *normalize.Normalizer
}

// Loader turns IconFiles into IconRecords.
type Loader struct {
	fs          types.FS
	concurrency int
	table       *classify.Table
	normalizer  *normalize.Normalizer
}

// Stats reports what one Load call did.
type Stats struct {
	Read       int
	Normalized int
}

// New creates a Loader reading through fsys.
func New(fsys types.FS, opts Options) (*Loader, error) {
	if opts.Concurrency < 1 {
		return nil, errors.Newf(errors.ErrInvalidInput, "loader concurrency must be at least 1, got %d", opts.Concurrency).
			WithDetail("concurrency", opts.Concurrency)
	}
	table := opts.Table
	if table == nil {
		var err error
		if table, err = classify.NewTable(config.LayoutConfig{}); err != nil {
			return nil, err
		}
	}
	return &Loader{
		fs:          fsys,
		concurrency: opts.Concurrency,
		table:       table,
		normalizer:  opts.Normalizer,
	}, nil
}

// Concurrency returns the read ceiling.
func (l *Loader) Concurrency() int {
	return l.concurrency
}

// Load reads every file and returns one record per file, in input order.
// The first read failure cancels reads not yet started and is returned as a
// FILE_READ error naming the path.
func (l *Loader) Load(ctx context.Context, files []types.IconFile) ([]types.IconRecord, Stats, error) {
	logger := logging.GetLogger("loader")
	done := logging.LogOperationStart(logger, "load")
	defer done()

	records := make([]types.IconRecord, len(files))
	normalized := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, file := range files {
		// Go blocks while the limit is reached, so a cancelled group stops
		// scheduling here instead of queueing every remaining file.
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, changed, err := l.loadOne(file)
			if err != nil {
				return err
			}
			records[i] = rec
			normalized[i] = changed
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{Read: len(records)}
	for _, n := range normalized {
		if n {
			stats.Normalized++
		}
	}
	logger.Info().
		Int("files", stats.Read).
		Int("normalized", stats.Normalized).
		Int("concurrency", l.concurrency).
		Msg("Loaded icon files")
	return records, stats, nil
}

func (l *Loader) loadOne(file types.IconFile) (types.IconRecord, bool, error) {
	data, err := l.fs.ReadFile(file.AbsPath)
	if err != nil {
		return types.IconRecord{}, false, errors.Wrapf(err, errors.ErrFileRead, "cannot read icon %s", file.RelPath).
			WithDetail("path", file.AbsPath)
	}

	rec := l.table.Classify(file.RelPath)
	rec.Content = string(data)

	if l.normalizer == nil {
		return rec, false, nil
	}
	res := l.normalizer.Normalize(rec.Content)
	if res.Changed {
		rec.Content = res.Content
		logger := logging.GetLogger("loader")
		logger.Trace().
			Str("path", rec.Path).
			Str("attribute", res.Attribute).
			Msg("Normalized root theme attribute")
	}
	return rec, res.Changed, nil
}
