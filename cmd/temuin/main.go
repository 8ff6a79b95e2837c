package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xyz-asif/temuin/internal/config"
	"github.com/xyz-asif/temuin/internal/features/auth"
	"github.com/xyz-asif/temuin/internal/features/feed"
	"github.com/xyz-asif/temuin/internal/features/items"
	"github.com/xyz-asif/temuin/internal/pkg/logger"
)

var verbose bool

// app bundles the wired services behind every subcommand.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	sessions *auth.Manager
	items    *items.Service
	feed     *feed.Service
}

// newApp wires config, logging, session state, and the store client.
// tuiMode routes logs to a file so the TUI keeps the terminal to itself.
func newApp(tuiMode bool) (*app, error) {
	cfg := config.Load()

	var (
		log *zap.Logger
		err error
	)
	if tuiMode {
		path := filepath.Join(filepath.Dir(cfg.TokenFile), "temuin.log")
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o700); mkErr != nil {
			return nil, mkErr
		}
		log, err = logger.NewFile(path, verbose)
	} else {
		log, err = logger.New(cfg.AppEnv, verbose)
	}
	if err != nil {
		return nil, err
	}

	sessions := auth.NewManager(cfg.TokenFile, log)
	repo := items.NewRepository(cfg.APIBaseURL, &http.Client{Timeout: cfg.Timeout}, sessions, log)
	itemSvc := items.NewService(repo, log)

	return &app{
		cfg:      cfg,
		log:      log,
		sessions: sessions,
		items:    itemSvc,
		feed:     feed.NewService(itemSvc, cfg.RecentLimit, log),
	}, nil
}

func (a *app) close() {
	_ = a.log.Sync()
}

var rootCmd = &cobra.Command{
	Use:   "temuin",
	Short: "temuin - browse and report lost & found items",
	Long: `temuin is a client for a lost & found board.

Browse reported items with live search and filters, check the recent
activity feed, and report, edit, or delete your own items.

Run without arguments to open the interactive browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd, args)
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(mineCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(authCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
