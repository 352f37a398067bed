package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconlib/pkg/manifest"
	"github.com/arthur-debert/iconlib/pkg/search"
	"github.com/arthur-debert/iconlib/pkg/types"
	"github.com/arthur-debert/iconlib/pkg/ui/display"
)

func newSearchCmd(opts *globalOptions) *cobra.Command {
	var query search.Query

	cmd := &cobra.Command{
		Use:     "search <query>",
		Short:   MsgSearchShort,
		Long:    MsgSearchLong,
		Example: MsgSearchExample,
		GroupID: "inspect",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, outputOverride(cmd, nil))
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, opts)
			if err != nil {
				return err
			}

			records, err := searchRecords(newReader(cfg), query.Collection)
			if err != nil {
				return err
			}

			query.Text = strings.Join(args, " ")
			hits := search.Search(records, query)
			result := display.NewSearchResult(query.Text, hits)
			result.Styles = search.Styles(records)
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().StringVarP(&query.Collection, "collection", "c", "", MsgFlagCollection)
	cmd.Flags().StringVarP(&query.Style, "style", "s", "", MsgFlagStyle)
	cmd.Flags().IntVarP(&query.Limit, "limit", "n", 20, MsgFlagLimit)
	cmd.Flags().StringP("output", "o", "", MsgFlagOutput)

	return cmd
}

// searchRecords loads one collection, or the whole library when collection
// is empty.
func searchRecords(r *manifest.Reader, collection string) ([]types.IconRecord, error) {
	if collection == "" {
		return r.All()
	}
	if _, err := resolveCollections(r, []string{collection}); err != nil {
		return nil, err
	}
	return r.Collection(collection)
}
