package screens

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/yatra/internal/api"
	"github.com/alexisbeaulieu97/yatra/internal/logger"
	"github.com/alexisbeaulieu97/yatra/internal/ui/components"
	"github.com/alexisbeaulieu97/yatra/internal/validation"
	yatraerrors "github.com/alexisbeaulieu97/yatra/pkg/errors"
)

// authScreen is the state shared by the three credential forms.
type authScreen struct {
	id      string
	deps    Deps
	log     *logger.Logger
	frame   frame
	form    form
	loading bool
	spinner spinner.Model
}

func newAuthScreen(deps Deps, component string, fields ...field) authScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	a := authScreen{
		id:      newID(),
		deps:    deps,
		log:     deps.logger(component),
		frame:   newFrame(deps.Theme),
		form:    newForm(fields...),
		spinner: s,
	}
	a.form.setWidth(a.frame.contentWidth())
	return a
}

// common handles window, theme and spinner messages. It reports whether msg
// was consumed.
func (a *authScreen) common(msg tea.Msg) (bool, tea.Cmd) {
	if a.frame.apply(msg) {
		a.form.setWidth(a.frame.contentWidth())
		return true, nil
	}
	if tick, ok := msg.(spinner.TickMsg); ok {
		if !a.loading {
			return true, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(tick)
		return true, cmd
	}
	return false, nil
}

// start validates f and, when it passes, begins call.
func (a *authScreen) start(f validation.Form, op string, call func(context.Context, *api.Client) error) tea.Cmd {
	if a.loading {
		return nil
	}
	if err := validation.Validate(f); err != nil {
		return errorAlert(yatraerrors.UserMessage(err, "Please check the form"))
	}
	a.loading = true
	return tea.Batch(a.spinner.Tick, requestCmd(a.deps.API, a.id, op, call))
}

func (a authScreen) view(title, subtitle, help string) string {
	st := a.frame.styles
	var b strings.Builder
	b.WriteString(st.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render(subtitle))
	b.WriteString("\n\n")
	for _, row := range a.form.render(a.frame.colors, a.spinner.View(), a.loading, nil) {
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString(st.Footer.Render(help))
	return b.String()
}

const (
	loginEmail = iota
	loginPassword
	loginSubmit
	loginForgot
	loginSignup
)

// Login signs the user in and then shows the tabs.
type Login struct{ authScreen }

// NewLogin returns an empty login form.
func NewLogin(deps Deps) Login {
	return Login{newAuthScreen(deps, "login",
		inputField("Email", "Enter your email", 0),
		passwordField("Password", "Enter your password"),
		buttonField("Login", components.ButtonPrimary),
		buttonField("Forgot Password?", components.ButtonOutline),
		buttonField("Sign Up", components.ButtonOutline),
	)}
}

func (l Login) Init() tea.Cmd { return nil }

func (l Login) Capturing() bool { return true }

// Loading reports whether sign in is in flight.
func (l Login) Loading() bool { return l.loading }

func (l Login) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if done, cmd := l.common(msg); done {
		return l, cmd
	}

	switch msg := msg.(type) {
	case requestDoneMsg:
		if msg.screen != l.id {
			return l, nil
		}
		l.loading = false
		if msg.err != nil {
			l.log.Error(msg.err, "login failed")
			return l, errorAlert("Login failed. Please check your credentials.")
		}
		l.log.Info("logged in")
		return l, Replace(Route{Name: RouteTabs})

	case tea.KeyMsg:
		action, cmd := l.form.handleKey(msg)
		switch action {
		case formBack:
			return l, Back()
		case formSubmit:
			cmd := l.submit()
			return l, cmd
		case formActivate:
			switch l.form.focus {
			case loginForgot:
				return l, Push(Route{Name: RouteForgotPassword})
			case loginSignup:
				return l, Push(Route{Name: RouteSignup})
			default:
				cmd := l.submit()
			return l, cmd
			}
		}
		return l, cmd
	}
	return l, nil
}

func (l *Login) submit() tea.Cmd {
	f := validation.LoginForm{
		Email:    strings.TrimSpace(l.form.value(loginEmail)),
		Password: l.form.value(loginPassword),
	}
	return l.start(f, "auth.login", func(ctx context.Context, client *api.Client) error {
		_, err := client.Auth.Login(ctx, f.Email, f.Password)
		return err
	})
}

func (l Login) View() string {
	return l.view("Welcome Back", "Sign in to continue your journey", "tab next • enter select • esc back")
}

const (
	signupUsername = iota
	signupEmail
	signupPassword
	signupSubmit
	signupLogin
)

// Signup creates an account and then shows the tabs.
type Signup struct{ authScreen }

// NewSignup returns an empty signup form.
func NewSignup(deps Deps) Signup {
	return Signup{newAuthScreen(deps, "signup",
		inputField("Username", "Choose a username", 0),
		inputField("Email", "Enter your email", 0),
		passwordField("Password", "At least 6 characters"),
		buttonField("Sign Up", components.ButtonPrimary),
		buttonField("Already have an account? Login", components.ButtonOutline),
	)}
}

func (s Signup) Init() tea.Cmd { return nil }

func (s Signup) Capturing() bool { return true }

// Loading reports whether account creation is in flight.
func (s Signup) Loading() bool { return s.loading }

func (s Signup) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if done, cmd := s.common(msg); done {
		return s, cmd
	}

	switch msg := msg.(type) {
	case requestDoneMsg:
		if msg.screen != s.id {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.log.Error(msg.err, "signup failed")
			return s, errorAlert("Signup failed. Please try again.")
		}
		s.log.Info("account created")
		return s, tea.Batch(
			ShowAlert("Success", "Account created successfully!", components.AlertSuccess),
			Replace(Route{Name: RouteTabs}),
		)

	case tea.KeyMsg:
		action, cmd := s.form.handleKey(msg)
		switch action {
		case formBack:
			return s, Back()
		case formSubmit:
			cmd := s.submit()
			return s, cmd
		case formActivate:
			if s.form.focus == signupLogin {
				return s, Back()
			}
			cmd := s.submit()
			return s, cmd
		}
		return s, cmd
	}
	return s, nil
}

func (s *Signup) submit() tea.Cmd {
	f := validation.SignupForm{
		Username: strings.TrimSpace(s.form.value(signupUsername)),
		Email:    strings.TrimSpace(s.form.value(signupEmail)),
		Password: s.form.value(signupPassword),
	}
	return s.start(f, "auth.signup", func(ctx context.Context, client *api.Client) error {
		_, err := client.Auth.Signup(ctx, f.Username, f.Email, f.Password)
		return err
	})
}

func (s Signup) View() string {
	return s.view("Create Account", "Start exploring India", "tab next • enter select • esc back")
}

const (
	forgotEmail = iota
	forgotSubmit
	forgotBack
)

// ForgotPassword requests a reset link.
type ForgotPassword struct{ authScreen }

// NewForgotPassword returns an empty reset form.
func NewForgotPassword(deps Deps) ForgotPassword {
	return ForgotPassword{newAuthScreen(deps, "forgot_password",
		inputField("Email", "Enter your email", 0),
		buttonField("Send Reset Link", components.ButtonPrimary),
		buttonField("Back to Login", components.ButtonOutline),
	)}
}

func (f ForgotPassword) Init() tea.Cmd { return nil }

func (f ForgotPassword) Capturing() bool { return true }

// Loading reports whether the reset request is in flight.
func (f ForgotPassword) Loading() bool { return f.loading }

func (f ForgotPassword) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if done, cmd := f.common(msg); done {
		return f, cmd
	}

	switch msg := msg.(type) {
	case requestDoneMsg:
		if msg.screen != f.id {
			return f, nil
		}
		f.loading = false
		if msg.err != nil {
			f.log.Error(msg.err, "reset link request failed")
			return f, errorAlert("Failed to send reset link. Please try again.")
		}
		return f, successThenBack("Password reset link has been sent to your email!")

	case tea.KeyMsg:
		action, cmd := f.form.handleKey(msg)
		switch action {
		case formBack:
			return f, Back()
		case formSubmit:
			cmd := f.submit()
			return f, cmd
		case formActivate:
			if f.form.focus == forgotBack {
				return f, Back()
			}
			cmd := f.submit()
			return f, cmd
		}
		return f, cmd
	}
	return f, nil
}

func (f *ForgotPassword) submit() tea.Cmd {
	req := validation.ForgotPasswordForm{Email: f.form.value(forgotEmail)}
	return f.start(req, "auth.forgot_password", func(ctx context.Context, client *api.Client) error {
		_, err := client.Auth.ForgotPassword(ctx, req.Email)
		return err
	})
}

func (f ForgotPassword) View() string {
	return f.view("Forgot Password?", "Enter your email to receive a reset link", "tab next • enter select • esc back")
}
