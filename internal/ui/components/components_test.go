package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/yatra/internal/model"
	"github.com/alexisbeaulieu97/yatra/internal/theme"
)

var light = theme.Palette(theme.Light)

func TestPostCardToggleLike(t *testing.T) {
	t.Parallel()

	card := NewPostCard(model.Post{ID: "post-1", Likes: 120, IsLiked: false})
	require.Equal(t, "♡", card.HeartIcon())

	require.True(t, card.ToggleLike())
	assert.Equal(t, 121, card.Likes())
	assert.Equal(t, "♥", card.HeartIcon())

	require.False(t, card.ToggleLike())
	assert.Equal(t, 120, card.Likes())
	assert.Equal(t, "♡", card.HeartIcon())

	assert.Equal(t, 120, card.Post().Likes, "underlying post is untouched")
}

func TestPostCardStartsLiked(t *testing.T) {
	t.Parallel()

	card := NewPostCard(model.Post{Likes: 10, IsLiked: true})
	card.ToggleLike()
	assert.Equal(t, 9, card.Likes())
	assert.False(t, card.Liked())
}

func TestPostCardRender(t *testing.T) {
	t.Parallel()

	card := NewPostCard(model.Post{Username: "priya", Caption: "Sunset", Location: "Goa", Likes: 1580, Comments: 3, Timestamp: "2 hours ago"})
	out := card.Render(light, 60, false)
	assert.Contains(t, out, "1,580 likes")
	assert.Contains(t, out, "View all 3 comments")
	assert.Contains(t, out, "Sunset")

	noComments := NewPostCard(model.Post{Username: "x", Comments: 0}).Render(light, 60, false)
	assert.NotContains(t, noComments, "View all")
}

func TestFormatCount(t *testing.T) {
	t.Parallel()

	cases := map[int]string{0: "0", 7: "7", 999: "999", 1000: "1,000", 1234567: "1,234,567", -4500: "-4,500"}
	for in, want := range cases {
		assert.Equal(t, want, FormatCount(in))
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hel…", Truncate("hello", 4))
	assert.Equal(t, "…", Truncate("hello", 1))
	assert.Equal(t, "hello", Truncate("hello", 0))
	assert.Equal(t, "₹₹…", Truncate("₹₹₹₹", 3))
}

func TestButton(t *testing.T) {
	t.Parallel()

	b := Button{Title: "Share Post"}
	assert.True(t, b.Pressable())
	assert.Contains(t, b.Render(light, "⣾"), "Share Post")

	b.Loading = true
	assert.False(t, b.Pressable())
	out := b.Render(light, "⣾")
	assert.Contains(t, out, "⣾")
	assert.NotContains(t, out, "Share Post")

	assert.False(t, Button{Title: "x", Disabled: true}.Pressable())
	assert.Contains(t, Button{Title: "Edit", Variant: ButtonOutline}.Render(light, ""), "Edit")
}

func TestRenderStateCard(t *testing.T) {
	t.Parallel()

	state := model.State{Name: "Goa", Culture: "Beaches", Festivals: "Carnival", FamousPlaces: "Baga"}
	out := RenderStateCard(state, light, 50, true)
	for _, want := range []string{"Goa", "Culture", "Festivals", "Famous Places", "Carnival"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderChatBubble(t *testing.T) {
	t.Parallel()

	out := RenderChatBubble(model.ChatMessage{Text: "hi", IsUser: true, Timestamp: "10:30"}, light, 40)
	assert.Contains(t, out, "hi")
	assert.Contains(t, out, "10:30")

	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], " "), "user bubble is right aligned")
}

func TestAlertRender(t *testing.T) {
	t.Parallel()

	out := Alert{Title: "Error", Message: "Please select an image", Kind: AlertError}.Render(light, 0, 0)
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "Please select an image")
	assert.Contains(t, out, "OK")

	confirm := Alert{Title: "Logout", Message: "Are you sure?", Buttons: []string{"Cancel", "Logout"}, Selected: 1}.Render(light, 80, 24)
	assert.Contains(t, confirm, "CANCEL")
	assert.Contains(t, confirm, "LOGOUT")
}

func TestRenderField(t *testing.T) {
	t.Parallel()

	out := RenderField("Caption", "Sunset", "6/500", true, light)
	assert.Contains(t, out, "Caption")
	assert.Contains(t, out, "Sunset")
	assert.Contains(t, out, "6/500")
}
