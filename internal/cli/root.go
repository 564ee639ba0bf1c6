package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gupio/tracker/internal/config"
	"github.com/gupio/tracker/internal/model"
	"github.com/gupio/tracker/internal/remote"
	"github.com/gupio/tracker/internal/store/jsonstore"
	"github.com/gupio/tracker/internal/tracker"
	"github.com/gupio/tracker/internal/ui"
)

var (
	cfgPath   string
	themeFlag string
)

// NewRoot builds the command tree. Running without a subcommand opens the
// interactive TUI.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "tracker",
		Short:         "Task tracker backed by a simulated unreliable remote store",
		Long:          "tracker manages tasks with priorities, tags and due dates.\nEvery mutation is confirmed by a (simulated, latency-and-failure injected)\nbackend before local state changes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	root.PersistentFlags().StringVar(&themeFlag, "theme", "", "ui theme: classic, mono or neon")

	root.AddCommand(
		newTUICmd(),
		newLsCmd(),
		newAddCmd(),
		newEditCmd(),
		newStatusCmd(),
		newDoneCmd(),
		newRmCmd(),
		newStatsCmd(),
		newExportCmd(),
		newResetCmd(),
	)
	return root
}

// app wires the store, simulated backend and coordinator for one command
// invocation.
type app struct {
	fs    afero.Fs
	cfg   config.Config
	coord *tracker.Coordinator
}

func newApp() (*app, error) {
	fs := afero.NewOsFs()
	cfg, err := config.Load(fs, cfgPath)
	if err != nil {
		ui.Fail(err.Error())
		return nil, err
	}
	if themeFlag != "" {
		cfg.Theme = themeFlag
	}
	ui.SetTheme(cfg.Theme)

	client := remote.New(
		jsonstore.New(fs, cfg.Storage),
		remote.WithLatency(cfg.Latency()),
		remote.WithFailureRate(*cfg.FailureRate),
	)
	coord := tracker.NewCoordinator(tracker.NewStore(), client)
	return &app{fs: fs, cfg: cfg, coord: coord}, nil
}

// load pulls the persisted collection, with the sync notice the remote's
// latency makes worthwhile.
func (a *app) load() error {
	fmt.Println(ui.Current().Muted.Render("syncing with gupio core..."))
	if err := a.coord.Load(); err != nil {
		ui.Fail(err.Error())
		return err
	}
	return nil
}

// taskAt resolves a 1-based index into the unfiltered collection, the
// numbering `tracker ls` displays.
func (a *app) taskAt(userIndex int) (model.Task, error) {
	tasks := a.coord.Store().Tasks()
	if userIndex < 1 || userIndex > len(tasks) {
		err := fmt.Errorf("index out of range: have %d, got %d", len(tasks), userIndex)
		ui.Fail(err.Error())
		return model.Task{}, err
	}
	return tasks[userIndex-1], nil
}

func parseSortKey(s string) (tracker.SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return "", nil
	case "newest":
		return tracker.SortNewest, nil
	case "duedate", "due":
		return tracker.SortDueDate, nil
	case "priority":
		return tracker.SortPriority, nil
	}
	return "", fmt.Errorf("unknown sort %q (want newest, dueDate or priority)", s)
}
