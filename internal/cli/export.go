package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gupio/tracker/internal/ui"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export the collection as JSON to stdout or a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.load(); err != nil {
				return err
			}

			b, err := a.coord.ExportJSON()
			if err != nil {
				ui.Fail(err.Error())
				return err
			}

			if len(args) == 0 {
				fmt.Println(string(b))
				return nil
			}
			if err := afero.WriteFile(a.fs, args[0], b, 0o644); err != nil {
				ui.Fail("write export: " + err.Error())
				return err
			}
			ui.OK("exported to " + args[0])
			return nil
		},
	}
}
