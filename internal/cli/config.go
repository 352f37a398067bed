package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconlib/pkg/errors"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, nil)
			if err != nil {
				return err
			}
			data, err := cfg.ToTOML()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "cannot encode configuration")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
