package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gupio/tracker/internal/ui"
)

func newRmCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <index>",
		Short: "Delete a task (asks first unless --yes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				ui.Fail("rm: not a number: " + args[0])
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

			if !yes && !confirm(fmt.Sprintf("delete %q?", task.Title)) {
				fmt.Println(ui.Current().Muted.Render("aborted"))
				return nil
			}

			if err := a.coord.SubmitDelete(task.ID); err != nil {
				ui.Fail(err.Error())
				return err
			}
			ui.OK("removed " + task.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")
}
