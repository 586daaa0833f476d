package drinktrack

import (
	"database/sql"
	"fmt"

	"github.com/Madhacks12/drinktrack/internal/service"
	"github.com/spf13/cobra"
)

var (
	authEmail    string
	authName     string
	authPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a local account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.Register(sqldb, authEmail, authName, authPassword); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s\n", authEmail)
			return nil
		})
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and start a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user, err := service.Authenticate(sqldb, authEmail, authPassword)
			if err != nil {
				return err
			}
			if err := service.SaveCurrentUser(sqldb, *user); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.ClearCurrentUser(sqldb); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			user := service.CurrentUser(sqldb)
			if user == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Name, user.Email)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)

	registerCmd.Flags().StringVar(&authEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&authName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&authPassword, "password", "", "Password (min 8 characters)")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringVar(&authEmail, "email", "", "Email address")
	loginCmd.Flags().StringVar(&authPassword, "password", "", "Password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}
