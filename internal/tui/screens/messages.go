package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/yatra/internal/ui/components"
)

// RouteName identifies a screen.
type RouteName string

const (
	RouteTabs           RouteName = "tabs"
	RouteHome           RouteName = "home"
	RouteStateDetail    RouteName = "state"
	RoutePosts          RouteName = "posts"
	RouteCreatePost     RouteName = "create-post"
	RouteMap            RouteName = "map"
	RouteChat           RouteName = "chat"
	RouteProfile        RouteName = "profile"
	RouteEditProfile    RouteName = "edit-profile"
	RouteLogin          RouteName = "auth/login"
	RouteSignup         RouteName = "auth/signup"
	RouteForgotPassword RouteName = "auth/forgot-password"
)

// Route is a screen plus its parameter (the state id for RouteStateDetail).
type Route struct {
	Name  RouteName
	Param string
}

// Navigation Messages

// PushMsg opens route on top of the current screen.
type PushMsg struct {
	Route Route
}

// BackMsg pops the top screen.
type BackMsg struct{}

// ReplaceMsg discards the whole stack and shows route. RouteTabs shows the
// tab bar.
type ReplaceMsg struct {
	Route Route
}

// Alert Messages

// AlertButton is one choice in an alert. Msg is dispatched when the button
// is chosen and may be nil.
type AlertButton struct {
	Label string
	Msg   tea.Msg
}

// ShowAlertMsg asks the shell to display a blocking alert.
type ShowAlertMsg struct {
	Title   string
	Message string
	Kind    components.AlertKind
	Buttons []AlertButton
}

// Push returns a command that opens route.
func Push(route Route) tea.Cmd {
	return func() tea.Msg { return PushMsg{Route: route} }
}

// Back returns a command that pops the current screen.
func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

// Replace returns a command that resets navigation to route.
func Replace(route Route) tea.Cmd {
	return func() tea.Msg { return ReplaceMsg{Route: route} }
}

// ShowAlert returns a command raising an alert. With no buttons the alert
// has a single OK button that does nothing.
func ShowAlert(title, message string, kind components.AlertKind, buttons ...AlertButton) tea.Cmd {
	return func() tea.Msg {
		return ShowAlertMsg{Title: title, Message: message, Kind: kind, Buttons: buttons}
	}
}

func errorAlert(message string) tea.Cmd {
	return ShowAlert("Error", message, components.AlertError)
}

func infoAlert(message string) tea.Cmd {
	return ShowAlert("Info", message, components.AlertInfo)
}

// successThenBack shows a success alert whose OK pops the screen.
func successThenBack(message string) tea.Cmd {
	return ShowAlert("Success", message, components.AlertSuccess, AlertButton{Label: "OK", Msg: BackMsg{}})
}

// requestDoneMsg reports the end of a network call started by a screen.
type requestDoneMsg struct {
	screen string
	op     string
	err    error
}
