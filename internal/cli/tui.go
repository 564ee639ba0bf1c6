package cli

import (
	"github.com/spf13/cobra"

	"github.com/gupio/tracker/internal/tui"
	"github.com/gupio/tracker/internal/ui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive task list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
}

func runTUI() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := tui.Run(a.coord, a.cfg.Debounce()); err != nil {
		ui.Fail(err.Error())
		return err
	}
	return nil
}
