package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestREPL(t *testing.T, opts ...InterpOption) replModel {
	m, err := newREPLModel(context.Background(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { m.interp.Close() })
	return m
}

func enterLine(t *testing.T, m replModel, line string) (replModel, tea.Cmd) {
	m.textInput.SetValue(line)
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	require.True(t, ok, "unexpected model type %T", model)
	return rm, cmd
}

func TestREPL_evaluate(t *testing.T) {
	m := newTestREPL(t)

	m, cmd := enterLine(t, m, "2 3 + .")
	assert.Nil(t, cmd)
	m, _ = enterLine(t, m, ": sq dup * ;")
	m, _ = enterLine(t, m, "4 sq .S nope")

	require.Len(t, m.history, 3)
	assert.Equal(t, historyEntry{input: "2 3 + .", output: "5"}, m.history[0])
	assert.Equal(t, historyEntry{input: ": sq dup * ;"}, m.history[1])
	assert.Equal(t, historyEntry{input: "4 sq .S nope", output: "[16]\nnope ??", isErr: true}, m.history[2])
	assert.Equal(t, []string{"2 3 + .", ": sq dup * ;", "4 sq .S nope"}, m.cmdHistory)
	assert.Equal(t, "", m.textInput.Value(), "input cleared")
}

func TestREPL_startupInput(t *testing.T) {
	m := newTestREPL(t, WithInputWriter(prelude), WithInput(strings.NewReader("1 2 .S")))
	require.Len(t, m.history, 1)
	assert.Equal(t, "[1, 2]", m.history[0].output)
	assert.Contains(t, m.interp.Words(), "nip")

	m, _ = enterLine(t, m, "nip .")
	assert.Equal(t, "2", m.history[1].output)
}

func TestREPL_startupFailure(t *testing.T) {
	_, err := newREPLModel(context.Background(), WithInput(failReader{}))
	assert.True(t, errors.Is(err, errFailRead), "expected read error, got: %v", err)
}

func TestREPL_multiLineDefinition(t *testing.T) {
	m := newTestREPL(t)

	m, _ = enterLine(t, m, ": tri \\ cube it ;")
	assert.Equal(t, "..> ", m.textInput.Prompt, "definition left open")
	m, _ = enterLine(t, m, "dup dup")
	m, _ = enterLine(t, m, "* * ;")
	assert.Equal(t, "ok> ", m.textInput.Prompt)
	m, _ = enterLine(t, m, "2 tri .")

	require.Len(t, m.history, 4)
	assert.Equal(t, historyEntry{input: ": tri \\ cube it ;"}, m.history[0])
	assert.Equal(t, historyEntry{input: "dup dup"}, m.history[1])
	assert.Equal(t, historyEntry{input: "* * ;"}, m.history[2])
	assert.Equal(t, historyEntry{input: "2 tri .", output: "8"}, m.history[3])
	assert.Equal(t, 0, m.interp.Failures())

	m, _ = enterLine(t, m, ": half")
	m, _ = enterLine(t, m, ":clear")
	assert.Equal(t, "ok> ", m.textInput.Prompt, "clear drops the open definition")
	m, _ = enterLine(t, m, "4 2 / .")
	assert.Equal(t, historyEntry{input: "4 2 / .", output: "2"}, m.history[len(m.history)-1])
	assert.NotContains(t, m.interp.Words(), "half")
}

func TestOpenDefinition(t *testing.T) {
	for _, tc := range []struct {
		src  string
		open bool
	}{
		{"1 2 +", false},
		{": sq dup * ;", false},
		{": sq dup", true},
		{":", true},
		{": ;", true},
		{": ; 1 ;", false},
		{": foo \\ ;", true},
		{": foo \\ ;\n;", false},
		{"\\ : foo", false},
		{": a ; : b", true},
	} {
		assert.Equal(t, tc.open, openDefinition(tc.src), "openDefinition(%q)", tc.src)
	}
}

func TestREPL_context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m, err := newREPLModel(ctx)
	require.NoError(t, err)
	defer m.interp.Close()

	cancel()
	m, _ = enterLine(t, m, "1 2")
	require.Len(t, m.history, 1)
	assert.True(t, m.history[0].isErr)
	assert.Contains(t, m.history[0].output, context.Canceled.Error())
	assert.Empty(t, m.interp.Stack())
}

func TestREPL_bye(t *testing.T) {
	m := newTestREPL(t)
	m, cmd := enterLine(t, m, "1 bye")
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit, "expected QuitMsg")
}

func TestREPL_commands(t *testing.T) {
	m := newTestREPL(t)

	m, cmd := enterLine(t, m, ":stack")
	assert.Nil(t, cmd)
	assert.True(t, m.showStack)
	m, _ = enterLine(t, m, ":words")
	assert.True(t, m.showWords)
	m, _ = enterLine(t, m, ":help")
	assert.True(t, m.showHelp)
	assert.Empty(t, m.history, "commands are not evaluated")

	m, _ = enterLine(t, m, ": one 1 ; one")
	assert.Equal(t, "[1]", formatStack(m.interp.Stack()), "definitions are evaluated")

	m, _ = enterLine(t, m, ":clear")
	assert.Empty(t, m.history)

	m, cmd = enterLine(t, m, ":quit")
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit, "expected QuitMsg")
}

func TestREPL_keys(t *testing.T) {
	m := newTestREPL(t)
	update := func(msg tea.Msg) {
		model, _ := m.Update(msg)
		m = model.(replModel)
	}

	update(tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.True(t, m.showStack)
	update(tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.True(t, m.showWords)
	update(tea.KeyMsg{Type: tea.KeyCtrlK})
	assert.True(t, m.showHelp)

	m, _ = enterLine(t, m, "1")
	m, _ = enterLine(t, m, "2")
	update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "2", m.textInput.Value())
	update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "1", m.textInput.Value())
	update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "2", m.textInput.Value())
	update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "", m.textInput.Value())

	update(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Empty(t, m.history)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.True(t, model.(replModel).quitting)
	assert.NotNil(t, cmd)
}

func TestREPL_complete(t *testing.T) {
	m := newTestREPL(t, WithInput(strings.NewReader(": square dup * ; : swizzle swap ;")))
	tab := func() {
		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = model.(replModel)
	}

	m.textInput.SetValue("3 squ")
	tab()
	assert.Equal(t, "3 square ", m.textInput.Value())

	m.textInput.SetValue("1 2 sw")
	tab()
	assert.Equal(t, "1 2 sw", m.textInput.Value(), "ambiguous prefix is shown, not completed")
	require.NotEmpty(t, m.history)
	assert.Equal(t, "completions: swap swizzle", m.history[len(m.history)-1].output)

	m.textInput.SetValue("1 2 swi")
	tab()
	assert.Equal(t, "1 2 swizzle ", m.textInput.Value())

	m.textInput.SetValue("zzz")
	tab()
	assert.Equal(t, "zzz", m.textInput.Value())
}

func TestREPL_view(t *testing.T) {
	m := newTestREPL(t)
	assert.Equal(t, "Loading...", m.View())

	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = model.(replModel)
	m, _ = enterLine(t, m, "6 7 * .")
	m.showStack = true
	m.showWords = true
	m.showHelp = true

	view := m.View()
	assert.Contains(t, view, "rforth")
	assert.Contains(t, view, "6 7 * .")
	assert.Contains(t, view, "42")
	assert.Contains(t, view, "Stack")
	assert.Contains(t, view, "Words")
	assert.Contains(t, view, "Help")
}

var errFailRead = errors.New("read failed")

type failReader struct{}

func (failReader) Read(p []byte) (int, error) { return 0, errFailRead }
