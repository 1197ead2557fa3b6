package screens

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/yatra/internal/chatbot"
	"github.com/alexisbeaulieu97/yatra/internal/fixtures"
	"github.com/alexisbeaulieu97/yatra/internal/logger"
	"github.com/alexisbeaulieu97/yatra/internal/model"
	"github.com/alexisbeaulieu97/yatra/internal/ui/components"
)

// botReplyMsg fires when a scheduled reply is due.
type botReplyMsg struct {
	screen string
	prompt string
}

// Chat is the scripted travel assistant. Every send schedules its own reply;
// replies are never cancelled.
type Chat struct {
	id          string
	deps        Deps
	log         *logger.Logger
	frame       frame
	messages    []model.ChatMessage
	suggestions []string
	suggestion  int
	input       textinput.Model
	pending     int
}

// NewChat opens the conversation with the assistant's greeting.
func NewChat(deps Deps) Chat {
	c := Chat{
		id:          newID(),
		deps:        deps,
		log:         deps.logger("chat"),
		frame:       newFrame(deps.Theme),
		suggestions: fixtures.ChatSuggestions(),
		input:       inputField("", "Ask me anything about travel...", 0).input,
	}
	c.messages = []model.ChatMessage{c.message(chatbot.Greeting, false)}
	c.input.Width = c.frame.contentWidth() - 6
	return c
}

func (c Chat) Init() tea.Cmd { return nil }

// Capturing is true while the text input has focus.
func (c Chat) Capturing() bool { return c.input.Focused() }

// Messages returns the conversation so far.
func (c Chat) Messages() []model.ChatMessage {
	return append([]model.ChatMessage(nil), c.messages...)
}

// AwaitingResponse reports whether any reply is still scheduled.
func (c Chat) AwaitingResponse() bool { return c.pending > 0 }

// Input returns the current draft.
func (c Chat) Input() string { return c.input.Value() }

func (c Chat) showSuggestions() bool { return len(c.messages) == 1 }

func (c Chat) message(text string, user bool) model.ChatMessage {
	return model.ChatMessage{
		ID:        newID(),
		Text:      text,
		IsUser:    user,
		Timestamp: c.deps.now().Format("15:04"),
	}
}

func (c Chat) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if c.frame.apply(msg) {
		c.input.Width = c.frame.contentWidth() - 6
		return c, nil
	}

	switch msg := msg.(type) {
	case botReplyMsg:
		if msg.screen != c.id {
			return c, nil
		}
		if c.pending > 0 {
			c.pending--
		}
		topic := chatbot.Classify(msg.prompt)
		c.log.WithFields(map[string]any{"topic": string(topic)}).Debug("assistant replied")
		c.messages = append(c.messages, c.message(chatbot.ResponseFor(topic), false))
		return c, nil

	case tea.KeyMsg:
		if c.input.Focused() {
			return c.updateInput(msg)
		}
		return c.updateBrowse(msg)
	}
	return c, nil
}

func (c Chat) updateBrowse(key tea.KeyMsg) (Screen, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if c.showSuggestions() && c.suggestion > 0 {
			c.suggestion--
		}
	case "down", "j":
		if c.showSuggestions() && c.suggestion < len(c.suggestions)-1 {
			c.suggestion++
		}
	case "enter":
		if c.showSuggestions() && c.suggestion < len(c.suggestions) {
			c.input.SetValue(c.suggestions[c.suggestion])
			c.input.CursorEnd()
		}
		c.input.Focus()
	case "i":
		c.input.Focus()
	}
	return c, nil
}

func (c Chat) updateInput(key tea.KeyMsg) (Screen, tea.Cmd) {
	switch key.String() {
	case "esc":
		c.input.Blur()
		return c, nil
	case "enter":
		return c.send()
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(key)
	return c, cmd
}

func (c Chat) send() (Screen, tea.Cmd) {
	text := c.input.Value()
	if strings.TrimSpace(text) == "" {
		return c, nil
	}

	c.messages = append(c.messages, c.message(text, true))
	c.input.Reset()
	c.pending++

	screen := c.id
	return c, tea.Tick(c.deps.ReplyDelay, func(time.Time) tea.Msg {
		return botReplyMsg{screen: screen, prompt: text}
	})
}

func (c Chat) View() string {
	st := c.frame.styles
	width := c.frame.contentWidth()

	header := st.Accent.Render("✨ AI Travel Assistant") + "\n" + st.Success.Render("Online")

	var bubbles []string
	for _, m := range c.messages {
		bubbles = append(bubbles, components.RenderChatBubble(m, c.frame.colors, width))
	}
	if c.pending > 0 {
		bubbles = append(bubbles, components.RenderChatBubble(model.ChatMessage{Text: "Typing..."}, c.frame.colors, width))
	}
	if c.showSuggestions() {
		rows := []string{st.Muted.Render("Suggested prompts:")}
		for i, s := range c.suggestions {
			line := "  " + s
			if i == c.suggestion && !c.input.Focused() {
				line = st.Accent.Render("› " + s)
			}
			rows = append(rows, line)
		}
		bubbles = append(bubbles, strings.Join(rows, "\n"))
	}

	help := "i type • enter use suggestion"
	if c.input.Focused() {
		help = "enter send • esc stop typing"
	}
	input := components.RenderField("", c.input.View(), "", c.input.Focused(), c.frame.colors)
	footer := st.Footer.Render(help)

	// Keep the newest messages in view.
	body := strings.Split(strings.Join(bubbles, "\n"), "\n")
	room := c.frame.height - lineCount(header) - lineCount(input) - lineCount(footer) - 3
	if room < 1 {
		room = 1
	}
	if len(body) > room {
		body = body[len(body)-room:]
	}

	return strings.Join([]string{header, "", strings.Join(body, "\n"), input, footer}, "\n")
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}
