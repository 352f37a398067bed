// Package cli implements the iconlib command line.
package cli

import (
	"context"
	"embed"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconlib/internal/version"
	"github.com/arthur-debert/iconlib/pkg/cobrax/topics"
	"github.com/arthur-debert/iconlib/pkg/errors"
	"github.com/arthur-debert/iconlib/pkg/logging"
	"github.com/arthur-debert/iconlib/pkg/ui"
)

//go:embed topics
var topicsFS embed.FS

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbosity  int
	configFile string
	format     string
}

// Execute runs the command line with os.Args and returns the exit code.
// Failures are reported on stderr in the format selected by --format.
func Execute(ctx context.Context) int {
	opts := &globalOptions{}
	cmd := newRootCmd(opts)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	reportError(cmd.ErrOrStderr(), opts.format, err)
	return 1
}

// reportError renders err; an unusable --format falls back to plain text.
func reportError(w io.Writer, format string, err error) {
	f, parseErr := ui.ParseFormat(format)
	if parseErr != nil {
		f = ui.FormatText
	}
	r, rendErr := ui.NewRenderer(f, w)
	if rendErr != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	if rendErr = r.RenderError(err); rendErr != nil {
		log.Error().Err(rendErr).Msg("Failed to render error")
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&globalOptions{})
}

func newRootCmd(opts *globalOptions) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "iconlib",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "build", Title: "BUILD:"})
	rootCmd.AddGroup(&cobra.Group{ID: "inspect", Title: "INSPECT:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newBuildCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newStatsCmd(opts))
	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newClassifyCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	topicOpts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(isTerminal(os.Stdout)),
	}
	if _, err := topics.Initialize(rootCmd, topicsFS, "topics", topicOpts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}
