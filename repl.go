package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

// replModel is a full screen session around one Interp. Each entered line is
// evaluated as a new input stream; whatever the interpreter writes while
// running it becomes that line's history entry. A line that leaves a
// definition open is held until a later line closes it.
type replModel struct {
	ctx        context.Context
	textInput  textinput.Model
	interp     *Interp
	out        *bytes.Buffer
	pending    []string
	history    []historyEntry
	cmdHistory []string
	historyIdx int
	width      int
	height     int
	showHelp   bool
	showStack  bool
	showWords  bool
	quitting   bool
	ready      bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	Tab   key.Binding
	Help  key.Binding
	Stack key.Binding
	Words key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous line"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next line"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "evaluate"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "complete word"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
	Stack: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "toggle stack"),
	),
	Words: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "toggle words"),
	),
}

// newREPLModel builds an interpreter with the given options and runs any
// input they queued, such as the prelude, before the first line is entered.
func newREPLModel(ctx context.Context, opts ...InterpOption) (replModel, error) {
	ti := textinput.New()
	ti.Placeholder = "type some words..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "ok> "

	var out bytes.Buffer
	it := New(append(opts, WithOutput(&out))...)

	m := replModel{
		ctx:        ctx,
		textInput:  ti,
		interp:     it,
		out:        &out,
		historyIdx: -1,
	}
	if err := it.Run(ctx); err != nil {
		it.Close()
		return m, err
	}
	if out.Len() > 0 {
		m.history = append(m.history, historyEntry{
			output: strings.TrimRight(out.String(), "\n"),
			isErr:  it.Failures() > 0,
		})
		out.Reset()
	}
	return m, nil
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = nil
			m = m.dropPending()
			return m, nil

		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Stack):
			m.showStack = !m.showStack
			return m, nil

		case key.Matches(msg, keys.Words):
			m.showWords = !m.showWords
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Tab):
			m = m.complete()
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}
			m.textInput.SetValue("")
			m.historyIdx = -1

			if strings.HasPrefix(input, ":") && len(strings.Fields(input)) == 1 {
				if handled, cmd := m.command(input); handled {
					return m, cmd
				}
			}

			m.cmdHistory = append(m.cmdHistory, input)
			m.pending = append(m.pending, input)
			src := strings.Join(m.pending, "\n")
			if openDefinition(src) {
				m.history = append(m.history, historyEntry{input: input})
				m.textInput.Prompt = "..> "
				return m, nil
			}
			m = m.dropPending()

			output, isErr := m.evaluate(src)
			m.history = append(m.history, historyEntry{
				input:  input,
				output: output,
				isErr:  isErr,
			})
			if m.interp.Exited() {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// command runs a session command, leaving any other line starting with a
// colon, like a definition, to be evaluated.
func (m *replModel) command(input string) (bool, tea.Cmd) {
	switch input {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = nil
		*m = m.dropPending()
	case ":stack", ":s":
		m.showStack = !m.showStack
	case ":words", ":w":
		m.showWords = !m.showWords
	case ":quit", ":q":
		m.quitting = true
		return true, tea.Quit
	default:
		return false, nil
	}
	return true, nil
}

func (m replModel) dropPending() replModel {
	m.pending = nil
	m.textInput.Prompt = "ok> "
	return m
}

// openDefinition reports whether src ends inside a colon definition, so that
// the definition may be continued on the next line.
func openDefinition(src string) bool {
	open, naming := false, false
	for _, line := range strings.Split(src, "\n") {
	tokens:
		for _, tok := range strings.Fields(line) {
			switch {
			case naming:
				naming = false
			case tok == `\`:
				break tokens
			case tok == ":" && !open:
				open, naming = true, true
			case tok == ";" && open:
				open = false
			}
		}
	}
	return open
}

// complete extends the last word of the input to the longest prefix shared by
// every defined word that it starts.
func (m replModel) complete() replModel {
	input := m.textInput.Value()
	fields := strings.Fields(input)
	if len(fields) == 0 || !strings.HasSuffix(input, fields[len(fields)-1]) {
		return m
	}
	last := fields[len(fields)-1]

	var completions []string
	for _, name := range m.interp.Words() {
		if strings.HasPrefix(name, last) {
			completions = append(completions, name)
		}
	}

	switch len(completions) {
	case 0:
		return m
	case 1:
		m.textInput.SetValue(strings.TrimSuffix(input, last) + completions[0] + " ")
	default:
		common := completions[0]
		for _, name := range completions[1:] {
			for !strings.HasPrefix(name, common) {
				common = common[:len(common)-1]
			}
		}
		if common == last {
			m.history = append(m.history, historyEntry{
				output: "completions: " + strings.Join(completions, " "),
			})
			return m
		}
		m.textInput.SetValue(strings.TrimSuffix(input, last) + common)
	}
	m.textInput.CursorEnd()
	return m
}

func (m replModel) evaluate(input string) (string, bool) {
	m.out.Reset()
	failures := m.interp.Failures()
	err := m.interp.Eval(m.ctx,
		NamedReader(fmt.Sprintf("repl:%v", len(m.cmdHistory)), strings.NewReader(input+"\n")))
	output := strings.TrimRight(m.out.String(), "\n")
	if err != nil {
		if output != "" {
			output += "\n"
		}
		output += err.Error()
	}
	return output, err != nil || m.interp.Failures() > failures
}

func (m replModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("bye\n")
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("rforth") + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", max(min(m.width-2, 60), 0))) + "\n\n")

	reservedLines := 8
	if m.showHelp {
		reservedLines += 12
	}
	if m.showStack {
		reservedLines += 4
	}
	if m.showWords {
		reservedLines += 4 + len(m.interp.Words())/8
	}
	availableHeight := m.height - reservedLines

	historyStart := 0
	if availableHeight < 1 {
		historyStart = len(m.history)
	} else if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for _, entry := range m.history[historyStart:] {
		if entry.input != "" {
			b.WriteString(mutedStyle.Render("  › ") + entry.input + "\n")
		}
		if entry.output == "" {
			continue
		}
		for _, line := range strings.Split(entry.output, "\n") {
			if entry.isErr {
				b.WriteString("  " + errorStyle.Render(line) + "\n")
			} else {
				b.WriteString("  " + resultStyle.Render(line) + "\n")
			}
		}
	}
	b.WriteString("\n")

	if m.showStack {
		b.WriteString(renderStackPanel(m.interp.Stack()))
		b.WriteString("\n")
	}

	if m.showWords {
		b.WriteString(renderWordsPanel(m.interp.Words(), m.width))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+v") + helpDescStyle.Render(" stack  ") +
		helpKeyStyle.Render("ctrl+g") + helpDescStyle.Render(" words  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func renderStackPanel(stack []Value) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Stack")
	if len(stack) == 0 {
		return borderStyle.Render(title + "\n" + mutedStyle.Render("  empty"))
	}
	return borderStyle.Render(title + "\n  " + formatStack(stack))
}

func renderWordsPanel(words []string, width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Words")
	nameStyle := lipgloss.NewStyle().Foreground(highlightColor)
	if width > 8 {
		nameStyle = nameStyle.MaxWidth(width - 8)
	}
	return borderStyle.Render(title + "\n" +
		nameStyle.Width(max(width-8, 20)).Render(strings.Join(words, " ")))
}

func renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Walk line history"},
		{"Tab", "Complete a word name"},
		{"Enter", "Evaluate the line; an open : definition continues"},
		{":help", "Toggle this help"},
		{":stack", "Toggle the stack panel"},
		{":words", "Toggle the words panel"},
		{":clear", "Clear history"},
		{":quit", "Exit, as does bye"},
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help"))
	for _, h := range help {
		line := fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-8s", h.key)),
			helpDescStyle.Render(h.desc))
		lines = append(lines, line)
	}

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func runREPL(ctx context.Context, opts ...InterpOption) error {
	m, err := newREPLModel(ctx, opts...)
	if err != nil {
		return err
	}
	defer m.interp.Close()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
