package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gupio/tracker/internal/model"
	"github.com/gupio/tracker/internal/ui"
)

// taskItem adapts a Task to bubbles/list.Item.
type taskItem struct {
	task  model.Task
	today model.Date
}

func (i taskItem) Title() string       { return i.task.Title }
func (i taskItem) Description() string { return i.task.Description }
func (i taskItem) FilterValue() string { return i.task.Title + " " + i.task.Description }

// taskDelegate renders one task per line.
type taskDelegate struct{}

func (d taskDelegate) Height() int                               { return 1 }
func (d taskDelegate) Spacing() int                              { return 0 }
func (d taskDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	t := ui.Current()
	task := it.task

	title := task.Title
	if task.Status == model.StatusDone {
		title = t.Done.Render(title)
	}

	var b strings.Builder
	b.WriteString(ui.StatusBox(task.Status))
	b.WriteString(" ")
	b.WriteString(ui.PriorityBadge(task.Priority))
	b.WriteString(" ")
	b.WriteString(title)
	for _, tag := range task.Tags {
		b.WriteString(" ")
		b.WriteString(t.Accent.Render("#" + tag))
	}
	if task.DueDate != nil {
		due := "due " + task.DueDate.String()
		if task.DueDate.Before(it.today) && task.Status != model.StatusDone {
			b.WriteString(" " + t.Error.Render(due))
		} else {
			b.WriteString(" " + t.Muted.Render(due))
		}
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+b.String())
}
