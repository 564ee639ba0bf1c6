package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gupio/tracker/internal/model"
	"github.com/gupio/tracker/internal/tracker"
	"github.com/gupio/tracker/internal/ui"
)

func newLsCmd() *cobra.Command {
	var (
		search   string
		status   string
		priority string
		tag      string
		sortFlag string
	)

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List tasks with the given filters applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.load(); err != nil {
				return err
			}

			store := a.coord.Store()
			store.SetSearch(search)
			if status != "" {
				if _, err := model.ParseStatus(status); err != nil && status != tracker.FilterAll {
					ui.Fail(err.Error())
					return err
				}
				store.SetStatusFilter(status)
			}
			if priority != "" && priority != tracker.FilterAll {
				p, err := model.ParsePriority(priority)
				if err != nil {
					ui.Fail(err.Error())
					return err
				}
				store.SetPriorityFilter(string(p))
			}
			if tag != "" {
				store.SetTagFilter(tag)
			}
			key, err := parseSortKey(sortFlag)
			if err != nil {
				ui.Fail(err.Error())
				return err
			}
			store.SetSort(key)

			printTaskPanel(store)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "substring match on title or description")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (todo, in-progress, done)")
	cmd.Flags().StringVar(&priority, "priority", "", "filter by priority (low, medium, high)")
	cmd.Flags().StringVar(&tag, "tag", "", "filter by tag")
	cmd.Flags().StringVar(&sortFlag, "sort", "newest", "sort order: newest, dueDate, priority or none")
	return cmd
}

func printTaskPanel(store *tracker.Store) {
	t := ui.Current()
	all := store.Tasks()
	view := store.View()
	today := model.DateOf(time.Now())
	s := tracker.Summarize(all, today)

	// displayed numbers always address the raw collection, so they stay
	// valid for `tracker done/rm/edit` whatever the sort
	position := make(map[string]int, len(all))
	for i, task := range all {
		position[task.ID] = i + 1
	}

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d  %s %d",
		t.Title.Render("Tasks"),
		t.Success.Render("✔"), s.Done,
		t.Pending.Render("~"), s.InProgress,
		t.Accent.Render("•"), s.Todo,
		t.Title.Render("Total"), s.Total,
	)

	lines := []string{header, t.Muted.Render(ui.ProgressBar(s.Done, s.Total, 28)), ""}
	lines = append(lines, taskLines(view, position, today)...)
	if s.Overdue > 0 {
		lines = append(lines, "", t.Error.Render(fmt.Sprintf("%d overdue", s.Overdue)))
	}
	lines = append(lines, "", t.Muted.Render(`Tip: add with `+"`tracker add \"Buy milk\" --due 2026-09-01`"))
	fmt.Println(ui.Panel(lines))
}

func taskLines(tasks []model.Task, position map[string]int, today model.Date) []string {
	t := ui.Current()
	if len(tasks) == 0 {
		return []string{t.Muted.Render("no matching tasks")}
	}
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		title := task.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		if task.Status == model.StatusDone {
			title = t.Done.Render(title)
		}

		line := fmt.Sprintf("%s %s %-6s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", position[task.ID])),
			ui.StatusBox(task.Status),
			ui.PriorityBadge(task.Priority),
			title,
		)
		for _, tag := range task.Tags {
			line += " " + t.Accent.Render("#"+tag)
		}
		if task.DueDate != nil {
			due := "due " + task.DueDate.String()
			if task.DueDate.Before(today) && task.Status != model.StatusDone {
				line += " " + t.Error.Render(due)
			} else {
				line += " " + t.Muted.Render(due)
			}
		}
		out = append(out, line)
	}
	return out
}
