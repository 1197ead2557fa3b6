package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/yatra/internal/api"
	"github.com/alexisbeaulieu97/yatra/internal/fixtures"
	"github.com/alexisbeaulieu97/yatra/internal/ui/components"
	"github.com/alexisbeaulieu97/yatra/internal/validation"
)

type postsOptions struct {
	remote   bool
	caption  string
	location string
	image    string
}

func newPostsCmd(flags *rootFlags) *cobra.Command {
	opts := &postsOptions{}

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Read and write the travel feed",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List feed posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.remote {
				return remoteCall(cmd, flags, "posts list", func(app *AppContext) (json.RawMessage, error) {
					return app.API.Posts.List(cmd.Context())
				})
			}
			rows := make([][]any, 0)
			for _, p := range fixtures.Posts() {
				rows = append(rows, []any{p.ID, p.Username, p.Location, components.FormatCount(p.Likes), p.Comments, components.Truncate(p.Caption, 40)})
			}
			return table(cmd.OutOrStdout(), "ID\tUSER\tLOCATION\tLIKES\tCOMMENTS\tCAPTION", rows)
		},
	}
	list.Flags().BoolVar(&opts.remote, "remote", false, "Read from the travel API instead of the bundled data")

	like := &cobra.Command{
		Use:   "like <post-id>",
		Short: "Like a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return remoteCall(cmd, flags, "posts like", func(app *AppContext) (json.RawMessage, error) {
				return app.API.Posts.Like(cmd.Context(), args[0])
			})
		},
	}

	comment := &cobra.Command{
		Use:   "comment <post-id> <text...>",
		Short: "Comment on a post",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := validation.CommentForm{Comment: strings.Join(args[1:], " ")}
			if err := validation.Validate(form); err != nil {
				return err
			}
			return remoteCall(cmd, flags, "posts comment", func(app *AppContext) (json.RawMessage, error) {
				return app.API.Posts.Comment(cmd.Context(), args[0], form.Comment)
			})
		},
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Share a new post",
		Long:  `Share a new post. The image reference is required but is not uploaded; the server receives the caption and location.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := validation.CreatePostForm{Image: opts.image, Caption: opts.caption, Location: opts.location}
			if err := validation.Validate(form); err != nil {
				return err
			}
			return remoteCall(cmd, flags, "posts create", func(app *AppContext) (json.RawMessage, error) {
				return app.API.Posts.Create(cmd.Context(), api.PostForm{Caption: form.Caption, Location: form.Location, Image: form.Image})
			})
		},
	}
	create.Flags().StringVar(&opts.caption, "caption", "", "Post caption (max 500 characters)")
	create.Flags().StringVar(&opts.location, "location", "", "Where the photo was taken")
	create.Flags().StringVar(&opts.image, "image", "", "Image reference")

	cmd.AddCommand(list, like, comment, create)
	return cmd
}
