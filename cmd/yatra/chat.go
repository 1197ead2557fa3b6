package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/yatra/internal/chatbot"
)

type chatOptions struct {
	remote bool
}

func newChatCmd(flags *rootFlags) *cobra.Command {
	opts := &chatOptions{}

	cmd := &cobra.Command{
		Use:   "chat <message...>",
		Short: "Ask the travel assistant a question",
		Example: `  yatra chat "Plan a trip to Goa"
  yatra chat --remote cheap stays in Kerala`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, flags, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().BoolVar(&opts.remote, "remote", false, "Send the message to the server assistant instead of answering locally")

	return cmd
}

func runChat(cmd *cobra.Command, flags *rootFlags, opts *chatOptions, message string) error {
	if !opts.remote {
		fmt.Fprintln(cmd.OutOrStdout(), chatbot.Respond(message))
		return nil
	}

	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	raw, err := app.API.Chatbot.SendMessage(cmd.Context(), message)
	if err != nil {
		app.CommandLogger("chat").Error(err, "chat request failed")
		return requestFailed("chat", err)
	}
	return printRaw(cmd, raw)
}
