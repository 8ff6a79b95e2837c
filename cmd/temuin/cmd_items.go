package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/xyz-asif/temuin/internal/features/items"
	"github.com/xyz-asif/temuin/internal/tui"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one item in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		item, err := a.items.GetByID(context.Background(), args[0])
		if errors.Is(err, items.ErrNotFound) {
			fmt.Println("Item not found. It may have been removed.")
			return nil
		}
		if err != nil {
			return err
		}

		printItem(item)
		if items.CanMutate(a.sessions.Current(), item) {
			fmt.Println("\nYou may edit or delete this item.")
		}
		return nil
	},
}

var (
	mineKind   string
	mineStatus string
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your own reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		if !a.sessions.Current().Authenticated {
			return errors.New("log in first: temuin auth login --token <token>")
		}

		rs, err := a.items.MyItems(context.Background(), items.Kind(mineKind), items.NormalizeStatus(mineStatus))
		if err != nil {
			return err
		}

		if len(rs.Items) == 0 {
			fmt.Println("You have not reported any items yet.")
			return nil
		}

		styles := tui.DefaultStyles()
		for _, item := range rs.Items {
			fmt.Printf("%s  %s %s  %s\n",
				item.ID, styles.KindBadge(item.Kind), styles.StatusBadge(item.Status), item.Title)
		}
		return nil
	},
}

var (
	reportKind     string
	reportTitle    string
	reportDesc     string
	reportLocation string
	reportContact  string
	reportDate     string
	reportPhoto    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report a lost or found item",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		req := &items.CreateItemRequest{
			Title:       reportTitle,
			Description: reportDesc,
			Kind:        items.Kind(reportKind),
			Location:    reportLocation,
			ContactInfo: reportContact,
		}

		if reportDate != "" {
			t, err := time.Parse("2006-01-02", reportDate)
			if err != nil {
				return fmt.Errorf("invalid --date, expected YYYY-MM-DD: %w", err)
			}
			req.OccurredAt = &t
		}

		if reportPhoto != "" {
			f, err := os.Open(reportPhoto)
			if err != nil {
				return fmt.Errorf("failed to open photo: %w", err)
			}
			defer f.Close()
			req.Photo = &items.PhotoAttachment{FileName: reportPhoto, Reader: f}
		}

		item, err := a.items.Create(context.Background(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Reported %s item %s.\n", item.Kind, item.ID)
		return nil
	},
}

var (
	editTitle    string
	editDesc     string
	editLocation string
	editContact  string
	editDate     string
	editPhoto    string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit one of your reports",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		item, err := fetchMutable(a, args[0])
		if err != nil {
			return err
		}

		req := &items.UpdateItemRequest{}
		if cmd.Flags().Changed("title") {
			req.Title = &editTitle
		}
		if cmd.Flags().Changed("description") {
			req.Description = &editDesc
		}
		if cmd.Flags().Changed("location") {
			req.Location = &editLocation
		}
		if cmd.Flags().Changed("contact") {
			req.ContactInfo = &editContact
		}
		if cmd.Flags().Changed("date") {
			t, err := time.Parse("2006-01-02", editDate)
			if err != nil {
				return fmt.Errorf("invalid --date, expected YYYY-MM-DD: %w", err)
			}
			req.OccurredAt = &t
		}
		if cmd.Flags().Changed("photo") {
			f, err := os.Open(editPhoto)
			if err != nil {
				return fmt.Errorf("failed to open photo: %w", err)
			}
			defer f.Close()
			req.Photo = &items.PhotoAttachment{FileName: editPhoto, Reader: f}
		}

		updated, err := a.items.Update(context.Background(), item.ID, req)
		if err != nil {
			return err
		}

		fmt.Printf("Updated item %s.\n", updated.ID)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <id> <dicari|ditemukan|diclaim>",
	Short: "Change the lifecycle status of one of your reports",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		item, err := fetchMutable(a, args[0])
		if err != nil {
			return err
		}

		updated, err := a.items.UpdateStatus(context.Background(), item.ID, items.NormalizeStatus(args[1]))
		if err != nil {
			return err
		}

		fmt.Printf("Item %s is now %s.\n", updated.ID, updated.Status.Label())
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one of your reports",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		item, err := fetchMutable(a, args[0])
		if err != nil {
			return err
		}

		if err := a.items.Delete(context.Background(), item.ID); err != nil {
			return err
		}

		fmt.Printf("Deleted item %s.\n", item.ID)
		return nil
	},
}

// fetchMutable loads an item and enforces the ownership guard before any
// mutation goes out. The store re-checks on its side regardless.
func fetchMutable(a *app, id string) (*items.Item, error) {
	item, err := a.items.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	if !items.CanMutate(a.sessions.Current(), item) {
		return nil, errors.New("you can only modify your own reports")
	}
	return item, nil
}

func printItem(item *items.Item) {
	styles := tui.DefaultStyles()

	fmt.Println(styles.Title.Render(item.Title))
	fmt.Println(styles.KindBadge(item.Kind) + " " + styles.StatusBadge(item.Status))
	fmt.Println()
	if item.OccurredAt != nil {
		fmt.Printf("Date:     %s\n", item.OccurredAt.Format("January 2, 2006"))
	}
	if item.Location != "" {
		fmt.Printf("Location: %s\n", item.Location)
	}
	if item.ContactInfo != "" {
		fmt.Printf("Contact:  %s\n", item.ContactInfo)
	}
	if item.PhotoRef != "" {
		fmt.Printf("Photo:    %s\n", item.PhotoRef)
	}
	if item.Description != "" {
		fmt.Println()
		fmt.Println(item.Description)
	}
}

func init() {
	mineCmd.Flags().StringVarP(&mineKind, "type", "t", "all", "filter by item type (lost, found, all)")
	mineCmd.Flags().StringVarP(&mineStatus, "status", "s", "all", "filter by status")

	reportCmd.Flags().StringVarP(&reportKind, "type", "t", "", "item type (lost or found)")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "item title")
	reportCmd.Flags().StringVar(&reportDesc, "description", "", "item description")
	reportCmd.Flags().StringVar(&reportLocation, "location", "", "where the item was lost or found")
	reportCmd.Flags().StringVar(&reportContact, "contact", "", "how to reach you")
	reportCmd.Flags().StringVar(&reportDate, "date", "", "date lost/found (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportPhoto, "photo", "", "path to a photo of the item")

	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	editCmd.Flags().StringVar(&editDesc, "description", "", "new description")
	editCmd.Flags().StringVar(&editLocation, "location", "", "new location")
	editCmd.Flags().StringVar(&editContact, "contact", "", "new contact details")
	editCmd.Flags().StringVar(&editDate, "date", "", "new date (YYYY-MM-DD)")
	editCmd.Flags().StringVar(&editPhoto, "photo", "", "path to a replacement photo")
}
