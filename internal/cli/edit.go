package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gupio/tracker/internal/model"
	"github.com/gupio/tracker/internal/ui"
)

func newEditCmd() *cobra.Command {
	var (
		title    string
		desc     string
		priority string
		tags     string
		due      string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Edit a task; unspecified flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				ui.Fail("edit: not a number: " + args[0])
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.load(); err != nil {
				return err
			}
			task, err := a.taskAt(n)
			if err != nil {
				return err
			}

			// start from the stored task, overlay only the changed flags
			draft := model.Draft{
				Title:       task.Title,
				Description: task.Description,
				Priority:    task.Priority,
				Tags:        task.Tags,
				DueDate:     task.DueDate,
				Status:      task.Status,
			}
			if cmd.Flags().Changed("title") {
				draft.Title = title
			}
			if cmd.Flags().Changed("desc") {
				draft.Description = desc
			}
			if cmd.Flags().Changed("priority") {
				if draft.Priority, err = model.ParsePriority(priority); err != nil {
					ui.Fail(err.Error())
					return err
				}
			}
			if cmd.Flags().Changed("tags") {
				draft.Tags = model.ParseTags(tags)
			}
			if cmd.Flags().Changed("due") {
				if due == "" || due == "none" {
					draft.DueDate = nil
				} else {
					d, err := model.ParseDate(due)
					if err != nil {
						ui.Fail(err.Error())
						return err
					}
					draft.DueDate = &d
				}
			}
			if cmd.Flags().Changed("status") {
				if draft.Status, err = model.ParseStatus(status); err != nil {
					ui.Fail(err.Error())
					return err
				}
			}

			updated, err := a.coord.SubmitUpdate(task.ID, draft)
			if err != nil {
				ui.Fail(err.Error())
				return err
			}
			ui.OK(fmt.Sprintf("updated %s (%s)", updated.Title, updated.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&desc, "desc", "", "new description")
	cmd.Flags().StringVar(&priority, "priority", "", "low, medium or high")
	cmd.Flags().StringVar(&tags, "tags", "", "comma separated tags (replaces the set)")
	cmd.Flags().StringVar(&due, "due", "", "due date YYYY-MM-DD, or none to clear")
	cmd.Flags().StringVar(&status, "status", "", "todo, in-progress or done")
	return cmd
}
