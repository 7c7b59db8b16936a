package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hrbot/internal/chat"
	"hrbot/internal/conversation"
)

// Replier is the TUI-facing subset of the chat service.
type Replier interface {
	Reply(ctx context.Context, text string) (string, error)
}

// replyMsg carries a finished model call back into Update.
type replyMsg struct {
	user   string
	result chat.Result
}

// Model is the Bubble Tea model for the terminal chat.
// The conversation log is only touched from Update.
type Model struct {
	ctx      context.Context
	service  Replier
	history  *conversation.Log
	input    textinput.Model
	viewport viewport.Model
	reply    string
	status   string
	busy     bool
}

// New creates a new TUI model instance.
func New(ctx context.Context, service Replier, history *conversation.Log) Model {
	ti := textinput.New()
	ti.Prompt = "You: "
	ti.Placeholder = "Ask an HR question and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(80, 10)
	m := Model{ctx: ctx, service: service, history: history, input: ti, viewport: vp, status: "Talk to the chatbot!"}
	m.viewport.SetContent(m.renderHistory())
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window and reply events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		_, bh := botBoxStyle.GetFrameSize()
		vh := msg.Height - 8 - bh
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = vh
		return m, nil
	case replyMsg:
		m.busy = false
		m.reply = msg.result.Display()
		if msg.result.OK() {
			m.history.Append(conversation.Turn{User: msg.user, Bot: msg.result.Text})
			m.status = "Ready."
		} else {
			m.status = "Failed (" + string(msg.result.Kind()) + ")"
		}
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			text := m.input.Value()
			if m.busy || strings.TrimSpace(text) == "" {
				return m, nil
			}
			m.busy = true
			m.status = "Thinking..."
			m.input.SetValue("")
			return m, m.send(text)
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) send(text string) tea.Cmd {
	ctx, service := m.ctx, m.service
	return func() tea.Msg {
		out, err := service.Reply(ctx, text)
		return replyMsg{user: text, result: chat.Result{Text: out, Err: err}}
	}
}

// View renders the input, the latest reply and the transcript.
func (m Model) View() string {
	title := titleStyle.Render("Chatbot Interface")
	input := inputBoxStyle.Render(m.input.View())
	var bot string
	if m.reply != "" {
		bot = "\n" + botBoxStyle.Render("Bot:\n"+m.reply)
	}
	status := statusStyle.Render(m.status)
	heading := titleStyle.Render("### Chat History")
	return title + "\n" + input + bot + "\n" + status + "\n" + heading + "\n" + m.viewport.View()
}

func (m Model) renderHistory() string {
	if m.history.Len() == 0 {
		return "No messages yet."
	}
	return m.history.Transcript()
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	inputBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	botBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
