package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gupio/tracker/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Permanently delete the persisted collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm("permanently delete all tasks?") {
				err := errors.New("reset aborted")
				ui.Fail(err.Error())
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.coord.Reset(); err != nil {
				ui.Fail(err.Error())
				return err
			}
			ui.OK("collection reset")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
