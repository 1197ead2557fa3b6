// Package screens holds one Bubble Tea model per route of the travel app.
//
// Screens never navigate or raise alerts themselves. They return commands
// producing the messages in messages.go and the shell in internal/tui acts
// on them. Async results carry the id of the screen that started the work so
// a result arriving after its screen was popped is simply dropped.
package screens

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/yatra/internal/api"
	"github.com/alexisbeaulieu97/yatra/internal/logger"
	"github.com/alexisbeaulieu97/yatra/internal/theme"
)

// Screen is a routed view.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	// Capturing reports whether keystrokes are text for the screen, in which
	// case the shell must not treat them as global shortcuts.
	Capturing() bool
}

// Deps are the collaborators shared by every screen.
type Deps struct {
	Theme      *theme.Provider
	API        *api.Client
	Log        *logger.Logger
	// ReplyDelay is how long the assistant waits before answering.
	ReplyDelay time.Duration
	Clock      func() time.Time
}

func (d Deps) now() time.Time {
	if d.Clock == nil {
		return time.Now()
	}
	return d.Clock()
}

func (d Deps) logger(component string) *logger.Logger {
	if d.Log == nil {
		return logger.Nop().Component(component)
	}
	return d.Log.Component(component)
}

// New builds the screen for route.
func New(route Route, deps Deps) Screen {
	switch route.Name {
	case RouteHome:
		return NewHome(deps)
	case RouteStateDetail:
		return NewStateDetail(deps, route.Param)
	case RoutePosts:
		return NewPosts(deps)
	case RouteCreatePost:
		return NewCreatePost(deps)
	case RouteMap:
		return NewMap(deps)
	case RouteChat:
		return NewChat(deps)
	case RouteProfile:
		return NewProfile(deps)
	case RouteEditProfile:
		return NewEditProfile(deps)
	case RouteLogin:
		return NewLogin(deps)
	case RouteSignup:
		return NewSignup(deps)
	case RouteForgotPassword:
		return NewForgotPassword(deps)
	default:
		return NewNotFound(deps, string(route.Name))
	}
}

func newID() string {
	return uuid.NewString()
}

// frame holds the size and styles every screen caches.
type frame struct {
	width  int
	height int
	colors theme.Colors
	styles theme.Styles
}

func newFrame(p *theme.Provider) frame {
	return frame{width: 80, height: 24, colors: p.Colors(), styles: p.Styles()}
}

// apply handles the window and theme messages every screen reacts to. It
// reports whether msg was one of them.
func (f *frame) apply(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.height = msg.Height
		return true
	case theme.ChangedMsg:
		f.colors = theme.Palette(msg.Mode)
		f.styles = theme.NewStyles(f.colors)
		return true
	}
	return false
}

func (f frame) contentWidth() int {
	if f.width > 100 {
		return 100
	}
	if f.width < 30 {
		return 30
	}
	return f.width
}
