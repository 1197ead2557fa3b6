// Package components renders the reusable pieces of the travel UI: state and
// post cards, chat bubbles, buttons, text fields and blocking alerts.
//
// Components are plain values. Rendering takes the active theme.Colors
// explicitly so nothing reads ambient state:
//
//	card := components.NewPostCard(post)
//	card.ToggleLike()
//	out := card.Render(provider.Colors(), 60, true)
//
// PostCard is the one component that owns state: the like toggle is local
// to the card and is never reconciled with the server.
package components
