package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styling shared by the CLI and the TUI. Everything pulls from the
// active theme so `--theme mono` gives clean output on dumb terminals.

type Theme struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Pending lipgloss.Style

	High   lipgloss.Style
	Medium lipgloss.Style
	Low    lipgloss.Style

	Selected lipgloss.Style
	Done     lipgloss.Style
	Help     lipgloss.Style

	BoxTodo       string
	BoxInProgress string
	BoxDone       string
	SymOK         string
	SymFail       string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			High: plain, Medium: plain, Low: plain,
			Selected: plain, Done: plain, Help: plain,
			BoxTodo: "[ ]", BoxInProgress: "[~]", BoxDone: "[x]",
			SymOK: "ok:", SymFail: "error:",
		}
	case "neon":
		current = Theme{
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:   lipgloss.NewStyle().Faint(true),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),

			High:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
			Medium: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Low:    lipgloss.NewStyle().Faint(true),

			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:     lipgloss.NewStyle().Faint(true),

			BoxTodo: "◻", BoxInProgress: "◨", BoxDone: "◼",
			SymOK: "✔", SymFail: "✖",
		}
	default: // classic
		current = Theme{
			Title:   lipgloss.NewStyle().Bold(true),
			Muted:   lipgloss.NewStyle().Faint(true),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

			High:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			Medium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Low:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),

			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:     lipgloss.NewStyle().Faint(true),

			BoxTodo: "☐", BoxInProgress: "◪", BoxDone: "☑",
			SymOK: "✔", SymFail: "✖",
		}
	}
}

func Current() Theme { return current }

func OK(msg string) {
	fmt.Println(current.Success.Render(current.SymOK + " " + msg))
}

func Fail(msg string) {
	fmt.Fprintln(os.Stderr, current.Error.Render(current.SymFail+" "+msg))
}

// Panel frames lines in a rounded border, used by the list and stats views.
func Panel(lines []string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// ProgressBar renders completion as a bar plus counts, e.g. ███░░ 3/5.
func ProgressBar(done, total, width int) string {
	denom := total
	if denom <= 0 {
		denom = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(denom) * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled) +
		fmt.Sprintf(" %d/%d", done, total)
}
