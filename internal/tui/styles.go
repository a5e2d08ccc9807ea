// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("70"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	errorBoxStyle   = overlayBoxStyle.BorderForeground(lipgloss.Color("196"))

	headerRowStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorRowStyle    = lipgloss.NewStyle().Reverse(true)
	highlightRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	pendingRowStyle   = lipgloss.NewStyle().Faint(true)
	failedRowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	sexStyles = map[string]lipgloss.Style{
		"male":   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		"female": lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		"other":  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)
