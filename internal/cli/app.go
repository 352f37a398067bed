package cli

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconlib/pkg/config"
	"github.com/arthur-debert/iconlib/pkg/filesystem"
	"github.com/arthur-debert/iconlib/pkg/manifest"
	"github.com/arthur-debert/iconlib/pkg/types"
	"github.com/arthur-debert/iconlib/pkg/ui"
)

// loadConfig layers the configuration sources with overrides taken from
// command flags.
func loadConfig(opts *globalOptions, overrides map[string]interface{}) (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		WorkDir:    wd,
		Overrides:  overrides,
	})
}

// newRenderer creates the renderer selected by --format, writing to the
// command's output.
func newRenderer(cmd *cobra.Command, opts *globalOptions) (ui.Renderer, error) {
	format, err := ui.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// outputOverride maps an --output flag onto output.dir when it was given.
func outputOverride(cmd *cobra.Command, overrides map[string]interface{}) map[string]interface{} {
	if overrides == nil {
		overrides = make(map[string]interface{})
	}
	if cmd.Flags().Changed("output") {
		dir, _ := cmd.Flags().GetString("output")
		overrides["output.dir"] = dir
	}
	return overrides
}

func newFS() types.FS {
	return filesystem.NewOS()
}

// newReader opens the library under output.dir without write access.
func newReader(cfg *config.Config) *manifest.Reader {
	fsys := filesystem.NewReadOnly(afero.NewOsFs())
	return manifest.NewReader(fsys, cfg.Output.Dir, cfg.Output.Manifest)
}
