package screens

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/yatra/internal/validation"
)

func TestCreatePost_ValidationOrder(t *testing.T) {
	t.Parallel()

	srv, client := newFakeServer(t, http.StatusCreated)
	var s Screen = NewCreatePost(testDeps(client))

	s, cmd := press(s, "ctrl+s")
	assert.Equal(t, "Please select an image", findAlert(t, run(cmd)).Message)

	s, cmd = press(s, "enter")
	alert := findAlert(t, run(cmd))
	assert.Equal(t, "Info", alert.Title)
	assert.Equal(t, "In production, this would open image picker", alert.Message)
	assert.Equal(t, PlaceholderImage, s.(CreatePost).Image())

	s, cmd = press(s, "ctrl+s")
	assert.Equal(t, "Please enter a caption", findAlert(t, run(cmd)).Message)

	s, _ = press(s, "tab")
	s = typeText(s, "Sunset at Baga")
	s, cmd = press(s, "ctrl+s")
	assert.Equal(t, "Please enter a location", findAlert(t, run(cmd)).Message)

	assert.Empty(t, srv.all(), "no request before the form is valid")
	assert.False(t, s.(CreatePost).Loading())
}

func fillPost(t *testing.T, s Screen) Screen {
	t.Helper()
	s, _ = press(s, "enter", "tab")
	s = typeText(s, "Sunset at Baga")
	s, _ = press(s, "tab")
	s = typeText(s, "Goa")
	return s
}

func TestCreatePost_Success(t *testing.T) {
	t.Parallel()

	srv, client := newFakeServer(t, http.StatusCreated)
	s := fillPost(t, NewCreatePost(testDeps(client)))

	s, cmd := press(s, "ctrl+s")
	require.True(t, s.(CreatePost).Loading())

	done := findDone(t, run(cmd))
	require.NoError(t, done.err)

	reqs := srv.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/posts", reqs[0].Path)
	assert.Contains(t, string(reqs[0].Body), "Sunset at Baga")
	assert.NotContains(t, string(reqs[0].Body), PlaceholderImage)

	s, cmd = s.Update(done)
	assert.False(t, s.(CreatePost).Loading())
	alert := findAlert(t, run(cmd))
	assert.Equal(t, "Post created successfully!", alert.Message)
	require.Len(t, alert.Buttons, 1)
	assert.Equal(t, BackMsg{}, alert.Buttons[0].Msg)
}

func TestCreatePost_Failure(t *testing.T) {
	t.Parallel()

	_, client := newFakeServer(t, http.StatusInternalServerError)
	s := fillPost(t, NewCreatePost(testDeps(client)))

	s, cmd := press(s, "ctrl+s")
	done := findDone(t, run(cmd))
	require.Error(t, done.err)

	s, cmd = s.Update(done)
	alert := findAlert(t, run(cmd))
	assert.Equal(t, "Error", alert.Title)
	assert.Equal(t, "Failed to create post. Please try again.", alert.Message)
	assert.Empty(t, alert.Buttons, "failure keeps the user on the screen")
	assert.False(t, s.(CreatePost).Loading())
}

func TestCreatePost_IgnoresOtherScreensResults(t *testing.T) {
	t.Parallel()

	c := NewCreatePost(testDeps(nil))
	c.loading = true

	s, cmd := c.Update(requestDoneMsg{screen: "someone-else"})
	assert.Nil(t, cmd)
	assert.True(t, s.(CreatePost).Loading())
}

func TestCreatePost_CaptionLimit(t *testing.T) {
	t.Parallel()

	s, _ := press(NewCreatePost(testDeps(nil)), "tab")
	s = typeText(s, strings.Repeat("beach ", 100))
	assert.LessOrEqual(t, len(s.(CreatePost).form.value(createCaption)), validation.CaptionMaxLength)
	assert.Contains(t, s.View(), "/500")
}

func TestCreatePost_EscGoesBack(t *testing.T) {
	t.Parallel()

	_, cmd := press(NewCreatePost(testDeps(nil)), "esc")
	assert.Equal(t, []any{BackMsg{}}, toAny(run(cmd)))
}
