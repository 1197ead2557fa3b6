package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/yatra/internal/ui/components"
)

func TestPosts_LikeToggle(t *testing.T) {
	t.Parallel()

	p := NewPosts(testDeps(nil))
	require.Equal(t, "post-1", p.Card(0).Post().ID)
	require.Equal(t, 120, p.Card(0).Likes())

	s, _ := press(p, "l")
	card := s.(Posts).Card(0)
	assert.Equal(t, 121, card.Likes())
	assert.Equal(t, "♥", card.HeartIcon())

	s, _ = press(s, "l")
	card = s.(Posts).Card(0)
	assert.Equal(t, 120, card.Likes())
	assert.Equal(t, "♡", card.HeartIcon())
}

func TestPosts_LikeDoesNotLeakIntoFixtures(t *testing.T) {
	t.Parallel()

	p := NewPosts(testDeps(nil))
	press(p, "l")

	fresh := NewPosts(testDeps(nil))
	assert.Equal(t, 120, fresh.Card(0).Likes())
}

func TestPosts_BlankCommentIsNoop(t *testing.T) {
	t.Parallel()

	s, _ := press(NewPosts(testDeps(nil)), "c")
	require.True(t, s.(Posts).Commenting())
	require.True(t, s.Capturing())

	s = typeText(s, "   ")
	s, cmd := press(s, "enter")

	assert.Nil(t, cmd, "no alert for a blank comment")
	assert.True(t, s.(Posts).Commenting(), "modal stays open")
}

func TestPosts_CommentPosted(t *testing.T) {
	t.Parallel()

	s, _ := press(NewPosts(testDeps(nil)), "down", "c")
	assert.Equal(t, "post-2", s.(Posts).commentPostID)

	s = typeText(s, "Looks amazing")
	s, cmd := press(s, "enter")

	alert := findAlert(t, run(cmd))
	assert.Equal(t, "Success", alert.Title)
	assert.Equal(t, "Comment posted!", alert.Message)

	posts := s.(Posts)
	assert.False(t, posts.Commenting())
	assert.Empty(t, posts.comment.Value())
	assert.False(t, s.Capturing())
}

func TestPosts_EscClosesCommentModal(t *testing.T) {
	t.Parallel()

	s, _ := press(NewPosts(testDeps(nil)), "c")
	s, cmd := press(s, "esc")
	assert.Nil(t, cmd)
	assert.False(t, s.(Posts).Commenting())
}

func TestPosts_ShareAndCreate(t *testing.T) {
	t.Parallel()

	p := NewPosts(testDeps(nil))

	_, cmd := press(p, "s")
	alert := findAlert(t, run(cmd))
	assert.Equal(t, "Share", alert.Title)
	assert.Equal(t, "Share functionality coming soon!", alert.Message)
	assert.Equal(t, components.AlertInfo, alert.Kind)

	_, cmd = press(p, "n")
	assert.Equal(t, []any{PushMsg{Route: Route{Name: RouteCreatePost}}}, toAny(run(cmd)))
}

func TestPosts_View(t *testing.T) {
	t.Parallel()

	s, _ := NewPosts(testDeps(nil)).Update(windowMsg(100, 60))
	view := s.View()
	assert.Contains(t, view, "TravelSphere")
	assert.Contains(t, view, "120 likes")

	s, _ = press(s, "c")
	assert.Contains(t, s.View(), "Add Comment")
}
