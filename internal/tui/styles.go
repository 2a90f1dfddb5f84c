// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Dark: "#ef4444", Light: "#dc2626"})
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#22c55e", Light: "#16a34a"})
	sizeStyle  = lipgloss.NewStyle().Align(lipgloss.Right)

	kindStyles = map[string]lipgloss.Style{
		"js":    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#38bdf8", Light: "#0284c7"}),
		"css":   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#a78bfa", Light: "#7c3aed"}),
		"asset": lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#6b7280", Light: "#9ca3af"}),
	}
)
