package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconlib/pkg/pipeline"
	"github.com/arthur-debert/iconlib/pkg/ui/display"
)

func newBuildCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		GroupID: "build",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, buildOverrides(cmd))
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, opts)
			if err != nil {
				return err
			}

			log.Info().
				Str("input", cfg.Input.Dir).
				Str("output", cfg.Output.Dir).
				Int("concurrency", cfg.Loader.Concurrency).
				Bool("normalize", cfg.Normalize.Enabled).
				Msg("Building icon library")

			res, err := pipeline.Build(cmd.Context(), newFS(), cfg)
			if err != nil {
				return err
			}
			return renderer.RenderResult(display.NewBuildSummary(res))
		},
	}

	cmd.Flags().StringP("input", "i", "", MsgFlagInput)
	cmd.Flags().StringP("output", "o", "", MsgFlagOutput)
	cmd.Flags().IntP("concurrency", "j", 0, MsgFlagConcurrency)
	cmd.Flags().Bool("no-normalize", false, MsgFlagNoNormalize)
	cmd.Flags().String("fill-token", "", MsgFlagFillToken)
	cmd.Flags().Bool("compact", false, MsgFlagCompact)

	return cmd
}

// buildOverrides turns the flags that were set into configuration keys.
func buildOverrides(cmd *cobra.Command) map[string]interface{} {
	flags := cmd.Flags()
	overrides := outputOverride(cmd, nil)

	if flags.Changed("input") {
		v, _ := flags.GetString("input")
		overrides["input.dir"] = v
	}
	if flags.Changed("concurrency") {
		v, _ := flags.GetInt("concurrency")
		overrides["loader.concurrency"] = v
	}
	if flags.Changed("no-normalize") {
		v, _ := flags.GetBool("no-normalize")
		overrides["normalize.enabled"] = !v
	}
	if flags.Changed("fill-token") {
		v, _ := flags.GetString("fill-token")
		overrides["normalize.token"] = v
	}
	if flags.Changed("compact") {
		v, _ := flags.GetBool("compact")
		overrides["output.pretty"] = !v
	}
	return overrides
}
