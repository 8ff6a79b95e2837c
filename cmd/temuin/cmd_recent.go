package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xyz-asif/temuin/internal/tui"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recent lost & found reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		f, err := a.feed.Recent(context.Background())
		if err != nil {
			return err
		}

		styles := tui.DefaultStyles()
		if len(f.Items) == 0 {
			fmt.Println("No reports yet.")
			return nil
		}

		for _, item := range f.Items {
			line := fmt.Sprintf("%s %s  %s",
				styles.KindBadge(item.Kind),
				styles.StatusBadge(item.Status),
				item.Title)
			if item.Location != "" {
				line += styles.Subtitle.Render("  @ " + item.Location)
			}
			line += styles.Subtitle.Render("  " + item.CreatedAt.Format("2006-01-02"))
			fmt.Println(line)
		}

		if f.Partial {
			fmt.Println(styles.Partial.Render("\nOne of the item streams was unavailable; showing partial results."))
		}
		return nil
	},
}
