// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/VacTuzX-dot/xfrontend/internal/service"
	"github.com/VacTuzX-dot/xfrontend/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginFieldUsername = iota
	loginFieldPassword
	loginFieldRemember
	loginFieldCount
)

// loginModel is the sign-in screen: username, password and a "remember me"
// toggle. A successful sign-in quits the program with session set.
type loginModel struct {
	ctx      context.Context
	sessions service.SessionService

	inputs     []textinput.Model
	remember   bool
	focus      int
	submitting bool
	notice     string
	errMsg     string

	session    models.Session
	quitByUser bool
}

func newLoginModel(ctx context.Context, sessions service.SessionService, notice string) loginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 40
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{
		ctx:      ctx,
		sessions: sessions,
		inputs:   []textinput.Model{username, password},
		notice:   notice,
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = service.UserMessage(result.err)
			return m, nil
		}
		m.session = result.session
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedInput(msg)
	}

	switch {
	case keyMsg.String() == "ctrl+c" || key.Matches(keyMsg, keys.esc):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.tab) || keyMsg.String() == "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(keyMsg, keys.backtab) || keyMsg.String() == "up":
		m.setFocus(m.focus - 1)
		return m, nil
	case keyMsg.String() == " " && m.focus == loginFieldRemember:
		m.remember = !m.remember
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		return m.submit()
	}

	return m.updateFocusedInput(msg)
}

func (m loginModel) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	username := strings.TrimSpace(m.inputs[loginFieldUsername].Value())
	password := m.inputs[loginFieldPassword].Value()
	if username == "" || password == "" {
		m.errMsg = "Username and password are required."
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true
	return m, cmdSignIn(m.ctx, m.sessions, username, password, m.remember)
}

func (m loginModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *loginModel) setFocus(i int) {
	i = (i + loginFieldCount) % loginFieldCount
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	if i < len(m.inputs) {
		m.inputs[i].Focus()
	}
	m.focus = i
}

func (m loginModel) View() string {
	var b strings.Builder

	if m.notice != "" {
		b.WriteString(statusStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString("Username  │ ")
	b.WriteString(m.inputs[loginFieldUsername].View())
	b.WriteString("\n")
	b.WriteString("Password  │ ")
	b.WriteString(m.inputs[loginFieldPassword].View())
	b.WriteString("\n")

	box := "[ ]"
	if m.remember {
		box = "[x]"
	}
	line := box + " Remember me"
	if m.focus == loginFieldRemember {
		line = cursorRowStyle.Render(line)
	}
	b.WriteString("          │ ")
	b.WriteString(line)
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]")
	} else {
		b.WriteString("\n[Sign in]")
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage("SIGN IN", b.String(), "tab: next field │ space: toggle remember │ enter: sign in │ esc: quit")
}

func cmdSignIn(ctx context.Context, sessions service.SessionService, username, password string, remember bool) tea.Cmd {
	return func() tea.Msg {
		s, err := sessions.SignIn(ctx, username, password, remember)
		return loginResultMsg{session: s, err: err}
	}
}
