package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/yatra/internal/validation"
)

type authOptions struct {
	email    string
	password string
	username string
}

func newAuthCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, sign up or reset a password",
	}

	cmd.AddCommand(newLoginCmd(flags), newSignupCmd(flags), newForgotPasswordCmd(flags))
	return cmd
}

func newLoginCmd(flags *rootFlags) *cobra.Command {
	opts := &authOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordValue(cmd, opts.password)
			if err != nil {
				return err
			}
			form := validation.LoginForm{Email: strings.TrimSpace(opts.email), Password: password}
			if err := validation.Validate(form); err != nil {
				return err
			}
			return remoteCall(cmd, flags, "auth login", func(app *AppContext) (json.RawMessage, error) {
				return app.API.Auth.Login(cmd.Context(), form.Email, form.Password)
			})
		},
	}

	cmd.Flags().StringVar(&opts.email, "email", "", "Account email")
	cmd.Flags().StringVar(&opts.password, "password", "", "Password (prompted when omitted on a terminal)")
	return cmd
}

func newSignupCmd(flags *rootFlags) *cobra.Command {
	opts := &authOptions{}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordValue(cmd, opts.password)
			if err != nil {
				return err
			}
			form := validation.SignupForm{
				Username: strings.TrimSpace(opts.username),
				Email:    strings.TrimSpace(opts.email),
				Password: password,
			}
			if err := validation.Validate(form); err != nil {
				return err
			}
			return remoteCall(cmd, flags, "auth signup", func(app *AppContext) (json.RawMessage, error) {
				return app.API.Auth.Signup(cmd.Context(), form.Username, form.Email, form.Password)
			})
		},
	}

	cmd.Flags().StringVar(&opts.username, "username", "", "Username")
	cmd.Flags().StringVar(&opts.email, "email", "", "Account email")
	cmd.Flags().StringVar(&opts.password, "password", "", "Password, at least 6 characters (prompted when omitted on a terminal)")
	return cmd
}

func newForgotPasswordCmd(flags *rootFlags) *cobra.Command {
	opts := &authOptions{}

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Email a password reset link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := validation.ForgotPasswordForm{Email: opts.email}
			if err := validation.Validate(form); err != nil {
				return err
			}
			if err := remoteCall(cmd, flags, "auth forgot-password", func(app *AppContext) (json.RawMessage, error) {
				return app.API.Auth.ForgotPassword(cmd.Context(), form.Email)
			}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Password reset link has been sent to your email!")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.email, "email", "", "Account email")
	return cmd
}

// passwordValue returns the flag value, or prompts without echo when the
// flag is empty and stdin is a terminal.
func passwordValue(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	file, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return "", nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	secret, err := term.ReadPassword(int(file.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(secret), nil
}
