package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gupio/tracker/internal/model"
	"github.com/gupio/tracker/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <index> <todo|in-progress|done>",
		Short: "Change a task's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				ui.Fail("status: not a number: " + args[0])
				return err
			}
			st, err := model.ParseStatus(args[1])
			if err != nil {
				ui.Fail(err.Error())
				return err
			}
			return changeStatus(n, st)
		},
	}
}

// newDoneCmd is the short form for the common case.
func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <index>",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				ui.Fail("done: not a number: " + args[0])
				return err
			}
			return changeStatus(n, model.StatusDone)
		},
	}
}

func changeStatus(index int, st model.Status) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.load(); err != nil {
		return err
	}
	task, err := a.taskAt(index)
	if err != nil {
		return err
	}

	updated, err := a.coord.SubmitStatusChange(task.ID, st)
	if err != nil {
		ui.Fail(err.Error())
		return err
	}
	ui.OK(fmt.Sprintf("%s is now %s", updated.Title, updated.Status))
	return nil
}
