package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gupio/tracker/internal/model"
	"github.com/gupio/tracker/internal/tracker"
	"github.com/gupio/tracker/internal/ui"
)

// The interactive surface. It never mutates tasks itself: every intent goes
// through the coordinator as a tea command, and the visible list is always
// re-derived from the store after the backend settles. A failed status
// change therefore snaps back on the next refresh.

const bannerVisible = 4 * time.Second

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeAdd
	modeEdit
	modeConfirmDelete
)

type (
	loadedMsg      struct{ err error }
	mutationMsg    struct{ err error }
	refreshMsg     struct{}
	clearBannerMsg struct{}
)

// Run wires the model to a program and blocks until the user quits.
func Run(coord *tracker.Coordinator, debounce time.Duration) error {
	var p *tea.Program
	m := newModel(coord, debounce, func(msg tea.Msg) {
		if p != nil {
			p.Send(msg)
		}
	})
	p = tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.deb.Stop()
	return err
}

type Model struct {
	coord *tracker.Coordinator
	deb   *tracker.Debouncer
	send  func(tea.Msg)

	list list.Model
	ti   textinput.Model
	spin spinner.Model

	mode     mode
	editID   string
	deleteID string
	formErr  string
	banner   string

	width  int
	height int
}

func newModel(coord *tracker.Coordinator, debounce time.Duration, send func(tea.Msg)) *Model {
	l := list.New(nil, taskDelegate{}, 0, 0)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false) // search runs through the store pipeline

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		coord: coord,
		deb:   tracker.NewDebouncer(debounce),
		send:  send,
		list:  l,
		ti:    ti,
		spin:  sp,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCmd())
}

func (m *Model) loadCmd() tea.Cmd {
	return func() tea.Msg { return loadedMsg{err: m.coord.Load()} }
}

func (m *Model) createCmd(draft model.Draft) tea.Cmd {
	return func() tea.Msg {
		_, err := m.coord.SubmitCreate(draft)
		return mutationMsg{err: err}
	}
}

func (m *Model) updateCmd(id string, draft model.Draft) tea.Cmd {
	return func() tea.Msg {
		_, err := m.coord.SubmitUpdate(id, draft)
		return mutationMsg{err: err}
	}
}

func (m *Model) statusCmd(id string, st model.Status) tea.Cmd {
	return func() tea.Msg {
		_, err := m.coord.SubmitStatusChange(id, st)
		return mutationMsg{err: err}
	}
}

func (m *Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg { return mutationMsg{err: m.coord.SubmitDelete(id)} }
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-7)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case loadedMsg:
		m.refresh()
		if msg.err != nil {
			return m, m.showBanner(msg.err)
		}
		return m, nil

	case mutationMsg:
		if msg.err != nil {
			var verr *model.ValidationError
			if errors.As(msg.err, &verr) {
				// inline next to the input, keep editing
				m.formErr = verr.Error()
				return m, nil
			}
			m.leaveInput()
			m.refresh()
			return m, m.showBanner(msg.err)
		}
		m.leaveInput()
		m.refresh()
		return m, nil

	case refreshMsg:
		m.refresh()
		return m, nil

	case clearBannerMsg:
		m.banner = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeAdd, modeEdit:
		return m.handleInputKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.mode = modeSearch
		m.ti.Placeholder = "search title and description..."
		m.ti.SetValue(m.coord.Store().Filters().Search)
		m.ti.CursorEnd()
		m.ti.Focus()
		return m, nil

	case "a":
		m.mode = modeAdd
		m.formErr = ""
		m.ti.Placeholder = "new task title..."
		m.ti.SetValue("")
		m.ti.Focus()
		return m, nil

	case "e":
		if task, ok := m.selected(); ok {
			m.mode = modeEdit
			m.editID = task.ID
			m.formErr = ""
			m.ti.Placeholder = "edit task title..."
			m.ti.SetValue(task.Title)
			m.ti.CursorEnd()
			m.ti.Focus()
		}
		return m, nil

	case "d":
		if task, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
			m.deleteID = task.ID
		}
		return m, nil

	case " ", "enter":
		if task, ok := m.selected(); ok {
			return m, m.statusCmd(task.ID, nextStatus(task.Status))
		}
		return m, nil

	case "f":
		s := m.coord.Store()
		s.SetStatusFilter(cycle(s.Filters().Status, statusOptions))
		m.refresh()
		return m, nil

	case "p":
		s := m.coord.Store()
		s.SetPriorityFilter(cycle(s.Filters().Priority, priorityOptions))
		m.refresh()
		return m, nil

	case "t":
		s := m.coord.Store()
		s.SetTagFilter(cycle(s.Filters().Tag, m.tagOptions()))
		m.refresh()
		return m, nil

	case "o":
		s := m.coord.Store()
		s.SetSort(tracker.SortKey(cycle(string(s.Filters().Sort), sortOptions)))
		m.refresh()
		return m, nil

	case "r":
		return m, m.loadCmd()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeBrowse
		m.ti.Blur()
		return m, nil
	case "esc":
		m.mode = modeBrowse
		m.ti.SetValue("")
		m.ti.Blur()
		m.coord.Store().SetSearch("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)

	// apply the search only once typing quiets down
	q := m.ti.Value()
	m.deb.Call(func() {
		m.coord.Store().SetSearch(q)
		m.send(refreshMsg{})
	})
	return m, cmd
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := m.ti.Value()
		if m.mode == modeAdd {
			return m, m.createCmd(model.Draft{Title: title})
		}
		if task, ok := m.taskByID(m.editID); ok {
			draft := model.Draft{
				Title:       title,
				Description: task.Description,
				Priority:    task.Priority,
				Tags:        task.Tags,
				DueDate:     task.DueDate,
				Status:      task.Status,
			}
			return m, m.updateCmd(task.ID, draft)
		}
		m.leaveInput()
		return m, nil
	case "esc":
		m.leaveInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		id := m.deleteID
		m.mode = modeBrowse
		m.deleteID = ""
		return m, m.deleteCmd(id)
	case "n", "esc":
		m.mode = modeBrowse
		m.deleteID = ""
	}
	return m, nil
}

func (m *Model) leaveInput() {
	m.mode = modeBrowse
	m.editID = ""
	m.formErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m *Model) showBanner(err error) tea.Cmd {
	m.banner = err.Error()
	return tea.Tick(bannerVisible, func(time.Time) tea.Msg { return clearBannerMsg{} })
}

// refresh re-derives the visible rows from the store. Called after every
// settled mutation and filter change; never speculatively.
func (m *Model) refresh() {
	view := m.coord.Store().View()
	items := make([]list.Item, len(view))
	today := model.DateOf(time.Now())
	for i, t := range view {
		items[i] = taskItem{task: t, today: today}
	}
	m.list.SetItems(items)
}

func (m *Model) selected() (model.Task, bool) {
	it, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return it.task, true
}

func (m *Model) taskByID(id string) (model.Task, bool) {
	for _, t := range m.coord.Store().Tasks() {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (m *Model) tagOptions() []string {
	s := tracker.Summarize(m.coord.Store().Tasks(), model.DateOf(time.Now()))
	return append([]string{tracker.FilterAll}, s.Tags...)
}

// --- status/filter cycling ---

var (
	statusOptions   = []string{tracker.FilterAll, "todo", "in-progress", "done"}
	priorityOptions = []string{tracker.FilterAll, "Low", "Medium", "High"}
	sortOptions     = []string{string(tracker.SortNewest), string(tracker.SortDueDate), string(tracker.SortPriority)}
)

func cycle(cur string, options []string) string {
	for i, o := range options {
		if o == cur {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func nextStatus(s model.Status) model.Status {
	switch s {
	case model.StatusTodo:
		return model.StatusInProgress
	case model.StatusInProgress:
		return model.StatusDone
	}
	return model.StatusTodo
}

// --- view ---

func (m *Model) View() string {
	t := ui.Current()
	store := m.coord.Store()
	s := tracker.Summarize(store.Tasks(), model.DateOf(time.Now()))

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d  %s %d",
		t.Title.Render("Tasks"),
		t.Success.Render("✔"), s.Done,
		t.Pending.Render("~"), s.InProgress,
		t.Accent.Render("•"), s.Todo,
		t.Title.Render("Total"), s.Total,
	)
	if s.Overdue > 0 {
		header += "  " + t.Error.Render(fmt.Sprintf("%d overdue", s.Overdue))
	}
	if store.Loading() {
		header += "  " + m.spin.View() + t.Muted.Render("syncing")
	}
	header += "  " + t.Muted.Render(filterSummary(store.Filters()))

	content := header + "\n\n" + m.list.View()

	switch m.mode {
	case modeSearch, modeAdd, modeEdit:
		label := "Search"
		if m.mode == modeAdd {
			label = "Add task"
		} else if m.mode == modeEdit {
			label = "Edit task"
		}
		if m.formErr != "" {
			label += " — " + t.Error.Render(m.formErr)
		}
		content += "\n" + inputBar(label+"\n"+m.ti.View())
	case modeConfirmDelete:
		content += "\n" + inputBar(t.Error.Render("delete this task? (y/n)"))
	}

	if m.banner != "" {
		content += "\n" + t.Error.Render("⚠ "+m.banner)
	}
	content += "\n" + t.Help.Render("a add · e edit · d delete · space status · / search · f/p/t filters · o sort · r reload · q quit")
	return panel(content)
}

func filterSummary(f tracker.FilterConfig) string {
	out := fmt.Sprintf("[%s/%s/%s · %s]", f.Status, f.Priority, f.Tag, f.Sort)
	if f.Search != "" {
		out += " /" + f.Search
	}
	return out
}

func inputBar(inner string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Render(inner)
}

func panel(inner string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Render(inner)
}
