package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gupio/tracker/internal/model"
	"github.com/gupio/tracker/internal/ui"
)

func newAddCmd() *cobra.Command {
	var (
		desc     string
		priority string
		tags     string
		due      string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Create a task (backend must confirm before it counts)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			draft := model.Draft{
				Title:       strings.Join(args, " "),
				Description: desc,
				Tags:        model.ParseTags(tags),
			}
			if draft.Priority, err = model.ParsePriority(priority); err != nil {
				ui.Fail(err.Error())
				return err
			}
			if draft.Status, err = model.ParseStatus(status); err != nil {
				ui.Fail(err.Error())
				return err
			}
			if due != "" {
				d, err := model.ParseDate(due)
				if err != nil {
					ui.Fail(err.Error())
					return err
				}
				draft.DueDate = &d
			}

			created, err := a.coord.SubmitCreate(draft)
			if err != nil {
				ui.Fail(err.Error())
				return err
			}
			ui.OK(fmt.Sprintf("added %s (%s)", created.Title, created.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "description (max 200 characters)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "low, medium or high")
	cmd.Flags().StringVar(&tags, "tags", "", "comma separated tags")
	cmd.Flags().StringVar(&due, "due", "", "due date, YYYY-MM-DD")
	cmd.Flags().StringVar(&status, "status", "todo", "todo, in-progress or done")
	return cmd
}
