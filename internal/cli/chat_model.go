package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grindcli/grind/internal/cli/formatter"
	"github.com/grindcli/grind/internal/intelligence"
)

// replyMsg carries the mentor's answer (or failure) back into the loop.
type replyMsg struct {
	text string
	err  error
}

// chatModel is the interactive mentor-chat loop. Each exchange is printed
// into the scrollback with tea.Println; the model itself only renders the
// input line.
type chatModel struct {
	app      *App
	language string

	input   textinput.Model
	history []intelligence.ChatTurn
	waiting bool
	width   int
}

func newChatModel(app *App, language string) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Ask your mentor anything. Esc to quit."
	ti.Prompt = formatter.StyleHeader.Render("you> ")
	ti.CharLimit = 2000
	ti.Focus()

	return chatModel{
		app:      app,
		language: language,
		input:    ti,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.Header("Mentor chat")),
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			text := m.input.Value()
			if text == "" {
				return m, nil
			}
			m.input.Reset()
			m.waiting = true
			cmd := m.sendCmd(text)
			return m, tea.Batch(
				tea.Println(formatter.StyleHeader.Render("you> ")+text),
				cmd,
			)
		}

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			return m, tea.Println(formatter.StyleRed.Render("mentor unavailable: ") + msg.err.Error())
		}
		m.history = append(m.history, intelligence.ChatTurn{Role: "model", Content: msg.text})
		return m, tea.Println(formatter.StyleGreen.Render("mentor> ") + msg.text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	if m.waiting {
		return formatter.Dim("  thinking...") + "\n"
	}
	return m.input.View() + "\n"
}

// sendCmd asks the chat service for a reply off the UI goroutine. The
// request snapshots the history before this user turn is appended, so
// the prompt builder sees the turn once, as the message itself.
func (m *chatModel) sendCmd(text string) tea.Cmd {
	req := intelligence.ChatRequest{
		Message:           text,
		History:           append([]intelligence.ChatTurn(nil), m.history...),
		PreferredLanguage: m.language,
	}
	m.history = append(m.history, intelligence.ChatTurn{Role: "user", Content: text})

	app := m.app
	return func() tea.Msg {
		reply, err := app.Chat.Reply(context.Background(), req)
		if err != nil {
			return replyMsg{err: err}
		}
		return replyMsg{text: reply}
	}
}
