package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/yatra/internal/api"
	"github.com/alexisbeaulieu97/yatra/internal/logger"
	"github.com/alexisbeaulieu97/yatra/internal/ui/components"
	"github.com/alexisbeaulieu97/yatra/internal/validation"
	yatraerrors "github.com/alexisbeaulieu97/yatra/pkg/errors"
)

// PlaceholderImage stands in for a picked photo. Image picking is not
// available in a terminal.
const PlaceholderImage = "https://images.pexels.com/photos/1007426/pexels-photo-1007426.jpeg"

const (
	createImage = iota
	createCaption
	createLocation
	createSubmit
)

// CreatePost composes a new feed post.
type CreatePost struct {
	id      string
	deps    Deps
	log     *logger.Logger
	frame   frame
	form    form
	image   string
	loading bool
	spinner spinner.Model
}

// NewCreatePost returns an empty composer.
func NewCreatePost(deps Deps) CreatePost {
	s := spinner.New()
	s.Spinner = spinner.Dot

	c := CreatePost{
		id:    newID(),
		deps:  deps,
		log:   deps.logger("create_post"),
		frame: newFrame(deps.Theme),
		form: newForm(
			buttonField("Select Image", components.ButtonOutline),
			areaField("Caption", "Write a caption...", validation.CaptionMaxLength, 4),
			inputField("Location", "Add location", 0),
			buttonField("Share Post", components.ButtonPrimary),
		),
		spinner: s,
	}
	c.form.setWidth(c.frame.contentWidth())
	return c
}

func (c CreatePost) Init() tea.Cmd { return nil }

func (c CreatePost) Capturing() bool { return true }

// Loading reports whether the post is being uploaded.
func (c CreatePost) Loading() bool { return c.loading }

// Image returns the selected image reference.
func (c CreatePost) Image() string { return c.image }

func (c CreatePost) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if c.frame.apply(msg) {
		c.form.setWidth(c.frame.contentWidth())
		return c, nil
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !c.loading {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd

	case requestDoneMsg:
		if msg.screen != c.id {
			return c, nil
		}
		c.loading = false
		if msg.err != nil {
			c.log.Error(msg.err, "create post failed")
			return c, errorAlert("Failed to create post. Please try again.")
		}
		c.log.Info("post created")
		return c, successThenBack("Post created successfully!")

	case tea.KeyMsg:
		action, cmd := c.form.handleKey(msg)
		switch action {
		case formBack:
			return c, Back()
		case formSubmit:
			return c.submit()
		case formActivate:
			if c.form.focus == createImage {
				return c.pickImage()
			}
			return c.submit()
		}
		return c, cmd
	}
	return c, nil
}

func (c CreatePost) pickImage() (Screen, tea.Cmd) {
	c.image = PlaceholderImage
	return c, infoAlert("In production, this would open image picker")
}

func (c CreatePost) submit() (Screen, tea.Cmd) {
	if c.loading {
		return c, nil
	}

	f := validation.CreatePostForm{
		Image:    c.image,
		Caption:  c.form.value(createCaption),
		Location: c.form.value(createLocation),
	}
	if err := validation.Validate(f); err != nil {
		return c, errorAlert(yatraerrors.UserMessage(err, "Please check the form"))
	}

	c.loading = true
	post := api.PostForm{Caption: f.Caption, Location: f.Location, Image: f.Image}
	return c, tea.Batch(
		c.spinner.Tick,
		requestCmd(c.deps.API, c.id, "posts.create", func(ctx context.Context, client *api.Client) error {
			_, err := client.Posts.Create(ctx, post)
			return err
		}),
	)
}

func (c CreatePost) View() string {
	st := c.frame.styles

	var b strings.Builder
	b.WriteString(st.Title.Render("Create Post"))
	b.WriteString("\n")

	if c.image != "" {
		b.WriteString(st.Success.Render("🖼  " + components.Truncate(c.image, c.frame.contentWidth()-4)))
	} else {
		b.WriteString(st.Muted.Render("No image selected"))
	}
	b.WriteString("\n")

	hints := map[int]string{
		createCaption: fmt.Sprintf("%d/%d", len([]rune(c.form.value(createCaption))), validation.CaptionMaxLength),
	}
	for _, row := range c.form.render(c.frame.colors, c.spinner.View(), c.loading, hints) {
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString(st.Footer.Render("tab next • enter select • ctrl+s share • esc back"))
	return b.String()
}
