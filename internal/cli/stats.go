package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconlib/pkg/errors"
	"github.com/arthur-debert/iconlib/pkg/ui/display"
)

func newStatsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stats [collection...]",
		Short:   MsgStatsShort,
		Long:    MsgStatsLong,
		GroupID: "inspect",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, outputOverride(cmd, nil))
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, opts)
			if err != nil {
				return err
			}

			summaries, err := readSummaries(newReader(cfg), args)
			if err != nil {
				return err
			}
			return renderer.RenderResult(&display.StatsResult{Collections: summaries})
		},
	}
	cmd.Flags().StringP("output", "o", "", MsgFlagOutput)
	return cmd
}

// resolveCollections checks names against the manifest. No names means
// every collection, in manifest order.
func resolveCollections(r collectionReader, names []string) ([]string, error) {
	m, err := r.Manifest()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return m.Collections, nil
	}

	known := make(map[string]bool, len(m.Collections))
	for _, c := range m.Collections {
		known[c] = true
	}
	for _, name := range names {
		if !known[name] {
			return nil, errors.Newf(errors.ErrNotFound, MsgErrUnknownCollect, name).
				WithDetail("collection", name)
		}
	}
	return names, nil
}
