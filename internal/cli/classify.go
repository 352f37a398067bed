package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconlib/pkg/classify"
	"github.com/arthur-debert/iconlib/pkg/ui/display"
)

func newClassifyCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "classify <path>...",
		Short:   MsgClassifyShort,
		Long:    MsgClassifyLong,
		Example: MsgClassifyExample,
		GroupID: "inspect",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, nil)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, opts)
			if err != nil {
				return err
			}

			table, err := classify.NewTable(cfg.Layout)
			if err != nil {
				return err
			}

			result := &display.ClassifyResult{}
			for _, p := range args {
				rec := table.Classify(p)
				result.Entries = append(result.Entries, display.ClassifiedPath{
					Path:       rec.Path,
					Name:       rec.Name,
					Collection: rec.Collection,
					Category:   rec.Category,
					Style:      rec.Style,
					Strategy:   table.StrategyName(rec.Collection),
				})
			}
			return renderer.RenderResult(result)
		},
	}
}
