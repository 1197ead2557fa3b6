package screens

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/yatra/internal/theme"
	"github.com/alexisbeaulieu97/yatra/internal/ui/components"
)

type fieldKind int

const (
	fieldInput fieldKind = iota
	fieldArea
	fieldButton
)

// field is one focusable row of a form.
type field struct {
	kind    fieldKind
	label   string
	input   textinput.Model
	area    textarea.Model
	variant components.ButtonVariant
}

func inputField(label, placeholder string, limit int) field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Prompt = ""
	in.Cursor.SetMode(cursor.CursorStatic)
	return field{kind: fieldInput, label: label, input: in}
}

func passwordField(label, placeholder string) field {
	f := inputField(label, placeholder, 0)
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func areaField(label, placeholder string, limit, height int) field {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = limit
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(height)
	ta.Cursor.SetMode(cursor.CursorStatic)
	ta.KeyMap.InsertNewline.SetKeys("ctrl+j")
	return field{kind: fieldArea, label: label, area: ta}
}

func buttonField(label string, variant components.ButtonVariant) field {
	return field{kind: fieldButton, label: label, variant: variant}
}

func (f field) value() string {
	switch f.kind {
	case fieldInput:
		return f.input.Value()
	case fieldArea:
		return f.area.Value()
	default:
		return ""
	}
}

func (f *field) setValue(v string) {
	switch f.kind {
	case fieldInput:
		f.input.SetValue(v)
	case fieldArea:
		f.area.SetValue(v)
	}
}

func (f *field) focus() {
	switch f.kind {
	case fieldInput:
		f.input.Focus()
	case fieldArea:
		f.area.Focus()
	}
}

func (f *field) blur() {
	switch f.kind {
	case fieldInput:
		f.input.Blur()
	case fieldArea:
		f.area.Blur()
	}
}

// form is an ordered list of fields with a single focus.
type form struct {
	fields []field
	focus  int
}

func newForm(fields ...field) form {
	f := form{fields: fields}
	f.setFocus(0)
	return f
}

func (f *form) setFocus(i int) {
	if len(f.fields) == 0 {
		return
	}
	f.fields[f.focus].blur()
	f.focus = (i + len(f.fields)) % len(f.fields)
	f.fields[f.focus].focus()
}

func (f *form) next() { f.setFocus(f.focus + 1) }
func (f *form) prev() { f.setFocus(f.focus - 1) }

func (f form) value(i int) string {
	return f.fields[i].value()
}

func (f form) focusedButton() bool {
	return len(f.fields) > 0 && f.fields[f.focus].kind == fieldButton
}

func (f *form) setWidth(w int) {
	for i := range f.fields {
		switch f.fields[i].kind {
		case fieldInput:
			f.fields[i].input.Width = w - 4
		case fieldArea:
			f.fields[i].area.SetWidth(w - 4)
		}
	}
}

// update forwards msg to the focused text field.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	fd := &f.fields[f.focus]
	switch fd.kind {
	case fieldInput:
		fd.input, cmd = fd.input.Update(msg)
	case fieldArea:
		fd.area, cmd = fd.area.Update(msg)
	}
	return cmd
}

type formAction int

const (
	formNone formAction = iota
	formBack
	formActivate
	formSubmit
)

// handleKey applies the key bindings shared by every form and reports what
// the screen should do next. formActivate means enter was pressed on a
// button; the focused index says which.
func (f *form) handleKey(msg tea.KeyMsg) (formAction, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return formBack, nil
	case "tab", "down":
		f.next()
		return formNone, nil
	case "shift+tab", "up":
		f.prev()
		return formNone, nil
	case "ctrl+s":
		return formSubmit, nil
	case "enter":
		if f.focusedButton() {
			return formActivate, nil
		}
		f.next()
		return formNone, nil
	}
	if f.focusedButton() {
		return formNone, nil
	}
	return formNone, f.update(msg)
}

// render draws the fields. hints supplies an optional line under a field.
func (f form) render(c theme.Colors, spinnerFrame string, loading bool, hints map[int]string) []string {
	var rows []string
	var buttons []string
	for i, fd := range f.fields {
		focused := i == f.focus
		switch fd.kind {
		case fieldInput:
			rows = append(rows, components.RenderField(fd.label, fd.input.View(), hints[i], focused, c))
		case fieldArea:
			rows = append(rows, components.RenderField(fd.label, fd.area.View(), hints[i], focused, c))
		case fieldButton:
			b := components.Button{Title: fd.label, Variant: fd.variant, Focused: focused}
			if fd.variant == components.ButtonPrimary {
				b.Loading = loading
			}
			buttons = append(buttons, b.Render(c, spinnerFrame))
		}
	}
	return append(rows, buttons...)
}
