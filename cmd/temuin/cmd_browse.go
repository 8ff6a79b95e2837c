package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/xyz-asif/temuin/internal/features/browse"
	"github.com/xyz-asif/temuin/internal/features/items"
	"github.com/xyz-asif/temuin/internal/tui"
)

var browseKind string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse items interactively with live search and filters",
	RunE:  runBrowse,
}

func init() {
	browseCmd.Flags().StringVarP(&browseKind, "type", "t", "all", "item stream to browse (lost, found, all)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.close()

	kind := items.Kind(browseKind)
	if err := items.ValidateFilterKind(kind); err != nil {
		return err
	}

	ctl := browse.NewController(items.DefaultFilter(kind), a.cfg.Debounce)
	model := tui.New(ctl, a.items, a.sessions, a.log)

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
