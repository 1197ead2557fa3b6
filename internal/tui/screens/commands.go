package screens

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/yatra/internal/api"
)

var errNoClient = errors.New("api client not configured")

// requestCmd runs call off the update loop and reports back with a
// requestDoneMsg addressed to screen.
func requestCmd(client *api.Client, screen, op string, call func(context.Context, *api.Client) error) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return requestDoneMsg{screen: screen, op: op, err: errNoClient}
		}
		err := call(context.Background(), client)
		return requestDoneMsg{screen: screen, op: op, err: err}
	}
}
