package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconlib/pkg/manifest"
	"github.com/arthur-debert/iconlib/pkg/types"
	"github.com/arthur-debert/iconlib/pkg/ui/display"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "inspect",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, outputOverride(cmd, nil))
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, opts)
			if err != nil {
				return err
			}

			summaries, err := readSummaries(newReader(cfg), nil)
			if err != nil {
				return err
			}
			list := &display.CollectionList{
				Output:      cfg.Output.Dir,
				Collections: summaries,
			}
			return renderer.RenderResult(list)
		},
	}
	cmd.Flags().StringP("output", "o", "", MsgFlagOutput)
	return cmd
}

// collectionReader is the part of manifest.Reader the inspect commands use.
type collectionReader interface {
	Manifest() (types.Manifest, error)
	Collection(name string) ([]types.IconRecord, error)
}

// readSummaries loads the named collections, or every collection in the
// manifest when names is empty, and counts their styles and categories.
func readSummaries(r collectionReader, names []string) ([]display.CollectionSummary, error) {
	names, err := resolveCollections(r, names)
	if err != nil {
		return nil, err
	}

	var records []types.IconRecord
	for _, name := range names {
		recs, err := r.Collection(name)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}

	// Summarize drops collections with no records; keep them listed.
	byName := make(map[string]types.CollectionSummary)
	for _, s := range types.Summarize(records) {
		byName[s.Name] = s
	}
	out := make([]display.CollectionSummary, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			s = types.CollectionSummary{Name: name}
		}
		s.File = manifest.CollectionFile(name)
		out = append(out, display.NewCollectionSummary(s))
	}
	return out, nil
}
