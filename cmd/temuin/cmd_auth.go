package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xyz-asif/temuin/internal/features/auth"
)

var loginToken string

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the stored session",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a session token obtained from the board",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		if loginToken == "" {
			return errors.New("--token is required")
		}

		sess, err := a.sessions.Login(loginToken)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s.\n", sess.UserID())
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.sessions.Logout(); err != nil {
			if errors.Is(err, auth.ErrNotLoggedIn) {
				fmt.Println("Not logged in.")
				return nil
			}
			return err
		}

		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		sess := a.sessions.Current()
		if !sess.Authenticated {
			fmt.Println("Not logged in.")
			return nil
		}

		fmt.Printf("User %s (role %s)\n", sess.User.ID, sess.User.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginToken, "token", "", "session token issued by the board")

	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)
}
