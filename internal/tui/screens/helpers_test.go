package screens

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/yatra/internal/api"
	"github.com/alexisbeaulieu97/yatra/internal/logger"
	"github.com/alexisbeaulieu97/yatra/internal/theme"
)

var fixedNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func testDeps(client *api.Client) Deps {
	return Deps{
		Theme:      theme.New(theme.Light),
		API:        client,
		Log:        logger.Nop(),
		ReplyDelay: time.Millisecond,
		Clock:      func() time.Time { return fixedNow },
	}
}

type recorded struct {
	Method string
	Path   string
	Body   []byte
}

type fakeServer struct {
	mu       sync.Mutex
	status   int
	requests []recorded
}

func newFakeServer(t *testing.T, status int) (*fakeServer, *api.Client) {
	t.Helper()
	fs := &fakeServer{status: status}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fs.mu.Lock()
		fs.requests = append(fs.requests, recorded{Method: r.Method, Path: r.URL.Path, Body: body})
		status := fs.status
		fs.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)
	return fs, api.New(api.Options{BaseURL: srv.URL, Logger: logger.Nop()})
}

func (fs *fakeServer) all() []recorded {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]recorded(nil), fs.requests...)
}

func jsonMap(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press sends keys in order and returns the screen and the last command.
func press(s Screen, keys ...string) (Screen, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		s, cmd = s.Update(keyMsg(k))
	}
	return s, cmd
}

// typeText sends text as a single paste-style key message.
func typeText(s Screen, text string) Screen {
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return s
}

// run executes cmd and flattens batches into the produced messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func findAlert(t *testing.T, msgs []tea.Msg) ShowAlertMsg {
	t.Helper()
	for _, m := range msgs {
		if a, ok := m.(ShowAlertMsg); ok {
			return a
		}
	}
	require.Failf(t, "no alert", "messages: %#v", msgs)
	return ShowAlertMsg{}
}

func findDone(t *testing.T, msgs []tea.Msg) requestDoneMsg {
	t.Helper()
	for _, m := range msgs {
		if d, ok := m.(requestDoneMsg); ok {
			return d
		}
	}
	require.Failf(t, "no request result", "messages: %#v", msgs)
	return requestDoneMsg{}
}

func windowMsg(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

func toAny(msgs []tea.Msg) []any {
	out := make([]any, len(msgs))
	for i, m := range msgs {
		out[i] = m
	}
	return out
}
