package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/yatra/internal/api"
	"github.com/alexisbeaulieu97/yatra/internal/fixtures"
	"github.com/alexisbeaulieu97/yatra/internal/logger"
	"github.com/alexisbeaulieu97/yatra/internal/ui/components"
	"github.com/alexisbeaulieu97/yatra/internal/validation"
	yatraerrors "github.com/alexisbeaulieu97/yatra/pkg/errors"
)

const (
	editPhoto = iota
	editName
	editUsername
	editBio
	editSave
)

// EditProfile updates name, username and bio.
type EditProfile struct {
	id        string
	deps      Deps
	log       *logger.Logger
	frame     frame
	profileID string
	form      form
	loading   bool
	spinner   spinner.Model
}

// NewEditProfile prefills the form from the current profile.
func NewEditProfile(deps Deps) EditProfile {
	s := spinner.New()
	s.Spinner = spinner.Dot

	profile := fixtures.Profile()
	e := EditProfile{
		id:        newID(),
		deps:      deps,
		log:       deps.logger("edit_profile"),
		frame:     newFrame(deps.Theme),
		profileID: profile.ID,
		form: newForm(
			buttonField("Change Photo", components.ButtonOutline),
			inputField("Name", "Enter your name", 0),
			inputField("Username", "Enter username", 0),
			areaField("Bio", "Tell us about yourself", validation.BioMaxLength, 3),
			buttonField("Save Changes", components.ButtonPrimary),
		),
		spinner: s,
	}
	e.form.fields[editName].setValue(profile.Name)
	e.form.fields[editUsername].setValue(profile.Username)
	e.form.fields[editBio].setValue(profile.Bio)
	e.form.setFocus(editName)
	e.form.setWidth(e.frame.contentWidth())
	return e
}

func (e EditProfile) Init() tea.Cmd { return nil }

func (e EditProfile) Capturing() bool { return true }

// Loading reports whether the update is in flight.
func (e EditProfile) Loading() bool { return e.loading }

func (e EditProfile) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if e.frame.apply(msg) {
		e.form.setWidth(e.frame.contentWidth())
		return e, nil
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !e.loading {
			return e, nil
		}
		var cmd tea.Cmd
		e.spinner, cmd = e.spinner.Update(msg)
		return e, cmd

	case requestDoneMsg:
		if msg.screen != e.id {
			return e, nil
		}
		e.loading = false
		if msg.err != nil {
			e.log.Error(msg.err, "profile update failed")
			return e, errorAlert("Failed to update profile. Please try again.")
		}
		return e, successThenBack("Profile updated successfully!")

	case tea.KeyMsg:
		action, cmd := e.form.handleKey(msg)
		switch action {
		case formBack:
			return e, Back()
		case formSubmit:
			return e.save()
		case formActivate:
			if e.form.focus == editPhoto {
				return e, infoAlert("In production, this would open image picker")
			}
			return e.save()
		}
		return e, cmd
	}
	return e, nil
}

func (e EditProfile) save() (Screen, tea.Cmd) {
	if e.loading {
		return e, nil
	}

	f := validation.EditProfileForm{
		Name:     e.form.value(editName),
		Username: e.form.value(editUsername),
		Bio:      e.form.value(editBio),
	}
	if err := validation.Validate(f); err != nil {
		return e, errorAlert(yatraerrors.UserMessage(err, "Please check the form"))
	}

	e.loading = true
	id := e.profileID
	update := api.ProfileUpdate{Name: api.String(f.Name), Username: api.String(f.Username), Bio: api.String(f.Bio)}
	return e, tea.Batch(
		e.spinner.Tick,
		requestCmd(e.deps.API, e.id, "profile.update", func(ctx context.Context, client *api.Client) error {
			_, err := client.Profile.Update(ctx, id, update)
			return err
		}),
	)
}

func (e EditProfile) View() string {
	st := e.frame.styles

	var b strings.Builder
	b.WriteString(st.Title.Render("Edit Profile"))
	b.WriteString("\n")

	hints := map[int]string{
		editBio: fmt.Sprintf("%d/%d", len([]rune(e.form.value(editBio))), validation.BioMaxLength),
	}
	for _, row := range e.form.render(e.frame.colors, e.spinner.View(), e.loading, hints) {
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString(st.Footer.Render("tab next • ctrl+s save • esc back"))
	return b.String()
}
