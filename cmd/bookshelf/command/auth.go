package command

// auth.go handles the sign-in, sign-up, and sign-out commands.

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bookshelf/internal/account"
	"bookshelf/internal/guard"
)

// authCmd groups the authentication subcommands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the bookshelf API server. Supports sign-up, sign-in, and sign-out.`,
}

var signUpCmd = &cobra.Command{
	Use:   "sign-up",
	Short: "Register a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := guard.RequireAnonymous(app.tokens); err != nil {
			return err
		}

		creds, err := readCredentials(cmd)
		if err != nil {
			return err
		}

		if err := app.account.SignUp(cmd.Context(), creds); err != nil {
			return fmt.Errorf("sign-up failed: %w", err)
		}

		fmt.Println("✓ Account created, you are signed in.")
		return nil
	},
}

var signInCmd = &cobra.Command{
	Use:   "sign-in",
	Short: "Sign in to your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := guard.RequireAnonymous(app.tokens); err != nil {
			return err
		}

		creds, err := readCredentials(cmd)
		if err != nil {
			return err
		}

		if err := app.account.SignIn(cmd.Context(), creds); err != nil {
			return fmt.Errorf("sign-in failed: %w", err)
		}

		fmt.Println("✓ Successfully signed in.")
		return nil
	},
}

var signOutCmd = &cobra.Command{
	Use:   "sign-out",
	Short: "Sign out and forget the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.account.SignOut(); err != nil {
			return err
		}
		fmt.Println("✓ Successfully signed out.")
		return nil
	},
}

// readCredentials takes email and password from flags, prompting for the
// password with echo disabled when the flag was not given.
func readCredentials(cmd *cobra.Command) (account.Credentials, error) {
	var creds account.Credentials
	creds.Email, _ = cmd.Flags().GetString("email")
	creds.Password, _ = cmd.Flags().GetString("password")

	if creds.Password == "" {
		password, err := readPassword("Password: ")
		if err != nil {
			return creds, fmt.Errorf("failed to read password: %w", err)
		}
		creds.Password = password
	}
	return creds, nil
}

// readPassword securely reads a password with masking
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(bytePassword)), nil
}

func init() {
	authCmd.AddCommand(signUpCmd)
	authCmd.AddCommand(signInCmd)
	authCmd.AddCommand(signOutCmd)

	signUpCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	signUpCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	signUpCmd.MarkFlagRequired("email")

	signInCmd.Flags().StringP("email", "e", "", "Email address for the account")
	signInCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	signInCmd.MarkFlagRequired("email")
}
