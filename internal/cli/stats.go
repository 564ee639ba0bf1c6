package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gupio/tracker/internal/model"
	"github.com/gupio/tracker/internal/tracker"
	"github.com/gupio/tracker/internal/ui"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show collection analytics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.load(); err != nil {
				return err
			}

			t := ui.Current()
			s := tracker.Summarize(a.coord.Store().Tasks(), model.DateOf(time.Now()))

			lines := []string{
				t.Title.Render("Analytics"),
				"",
				fmt.Sprintf("total        %d", s.Total),
				fmt.Sprintf("todo         %d", s.Todo),
				fmt.Sprintf("in-progress  %d", s.InProgress),
				fmt.Sprintf("done         %d", s.Done),
			}
			overdue := fmt.Sprintf("overdue      %d", s.Overdue)
			if s.Overdue > 0 {
				overdue = t.Error.Render(overdue)
			}
			lines = append(lines, overdue, "", t.Muted.Render(ui.ProgressBar(s.Done, s.Total, 28)))

			if s.TopTag != "" {
				lines = append(lines, "", fmt.Sprintf("top tag  %s", t.Accent.Render("#"+s.TopTag)))
				for _, tag := range s.Tags {
					lines = append(lines, fmt.Sprintf("  %-16s %d", "#"+tag, s.TagFreq[tag]))
				}
			}

			fmt.Println(ui.Panel(lines))
			return nil
		},
	}
}
