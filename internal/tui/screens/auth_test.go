package screens

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Validation(t *testing.T) {
	t.Parallel()

	srv, client := newFakeServer(t, http.StatusOK)
	var s Screen = NewLogin(testDeps(client))

	_, cmd := press(s, "ctrl+s")
	assert.Equal(t, "Please enter your email", findAlert(t, run(cmd)).Message)

	s = typeText(s, "not-an-email")
	_, cmd = press(s, "ctrl+s")
	assert.Equal(t, "Please enter a valid email address", findAlert(t, run(cmd)).Message)

	s = NewLogin(testDeps(client))
	s = typeText(s, "rahul@example.com")
	_, cmd = press(s, "ctrl+s")
	assert.Equal(t, "Please enter your password", findAlert(t, run(cmd)).Message)

	assert.Empty(t, srv.all())
}

func TestLogin_SuccessShowsTabs(t *testing.T) {
	t.Parallel()

	srv, client := newFakeServer(t, http.StatusOK)
	var s Screen = NewLogin(testDeps(client))
	s = typeText(s, "rahul@example.com")
	s, _ = press(s, "tab")
	s = typeText(s, "secret1")

	s, cmd := press(s, "enter", "enter")
	require.True(t, s.(Login).Loading())

	done := findDone(t, run(cmd))
	require.NoError(t, done.err)
	reqs := srv.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/auth/login", reqs[0].Path)
	body := jsonMap(t, reqs[0].Body)
	assert.Equal(t, "rahul@example.com", body["email"])
	assert.Equal(t, "secret1", body["password"])

	_, cmd = s.Update(done)
	assert.Equal(t, []any{ReplaceMsg{Route: Route{Name: RouteTabs}}}, toAny(run(cmd)))
}

func TestLogin_Links(t *testing.T) {
	t.Parallel()

	l := NewLogin(testDeps(nil))
	_, cmd := press(l, "tab", "tab", "tab", "enter")
	assert.Equal(t, []any{PushMsg{Route: Route{Name: RouteForgotPassword}}}, toAny(run(cmd)))

	_, cmd = press(l, "shift+tab", "enter")
	assert.Equal(t, []any{PushMsg{Route: Route{Name: RouteSignup}}}, toAny(run(cmd)))
}

func TestSignup_PasswordLength(t *testing.T) {
	t.Parallel()

	var s Screen = NewSignup(testDeps(nil))
	s = typeText(s, "traveller")
	s, _ = press(s, "tab")
	s = typeText(s, "t@example.com")
	s, _ = press(s, "tab")
	s = typeText(s, "12345")

	_, cmd := press(s, "ctrl+s")
	assert.Equal(t, "Password must be at least 6 characters", findAlert(t, run(cmd)).Message)
}

func TestSignup_Success(t *testing.T) {
	t.Parallel()

	srv, client := newFakeServer(t, http.StatusCreated)
	var s Screen = NewSignup(testDeps(client))
	s = typeText(s, "traveller")
	s, _ = press(s, "tab")
	s = typeText(s, "t@example.com")
	s, _ = press(s, "tab")
	s = typeText(s, "123456")

	s, cmd := press(s, "ctrl+s")
	done := findDone(t, run(cmd))
	require.NoError(t, done.err)
	assert.Equal(t, "/auth/signup", srv.all()[0].Path)

	_, cmd = s.Update(done)
	msgs := toAny(run(cmd))
	assert.Contains(t, msgs, ReplaceMsg{Route: Route{Name: RouteTabs}})
}

func TestForgotPassword_Validation(t *testing.T) {
	t.Parallel()

	var s Screen = NewForgotPassword(testDeps(nil))
	_, cmd := press(s, "ctrl+s")
	assert.Equal(t, "Please enter your email", findAlert(t, run(cmd)).Message)

	s = typeText(s, "user@ example.com")
	_, cmd = press(s, "ctrl+s")
	assert.Equal(t, "Please enter a valid email address", findAlert(t, run(cmd)).Message)
}

func TestForgotPassword_Success(t *testing.T) {
	t.Parallel()

	srv, client := newFakeServer(t, http.StatusOK)
	var s Screen = NewForgotPassword(testDeps(client))
	s = typeText(s, "user@example.com")

	s, cmd := press(s, "ctrl+s")
	done := findDone(t, run(cmd))
	require.NoError(t, done.err)
	assert.Equal(t, "user@example.com", jsonMap(t, srv.all()[0].Body)["email"])

	_, cmd = s.Update(done)
	alert := findAlert(t, run(cmd))
	assert.Equal(t, "Password reset link has been sent to your email!", alert.Message)
	assert.Equal(t, BackMsg{}, alert.Buttons[0].Msg)
}

func TestForgotPassword_Failure(t *testing.T) {
	t.Parallel()

	_, client := newFakeServer(t, http.StatusNotFound)
	var s Screen = NewForgotPassword(testDeps(client))
	s = typeText(s, "user@example.com")

	s, cmd := press(s, "ctrl+s")
	s, cmd = s.Update(findDone(t, run(cmd)))
	assert.Equal(t, "Failed to send reset link. Please try again.", findAlert(t, run(cmd)).Message)
	assert.False(t, s.(ForgotPassword).Loading())
}

func TestForgotPassword_WithoutClient(t *testing.T) {
	t.Parallel()

	var s Screen = NewForgotPassword(testDeps(nil))
	s = typeText(s, "user@example.com")
	_, cmd := press(s, "ctrl+s")
	assert.ErrorIs(t, findDone(t, run(cmd)).err, errNoClient)
}

func TestNew_UnknownRoute(t *testing.T) {
	t.Parallel()

	s := New(Route{Name: "nowhere"}, testDeps(nil))
	assert.Contains(t, s.View(), "This screen doesn't exist.")
}
