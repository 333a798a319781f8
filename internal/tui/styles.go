package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/theme"
)

// ------- styling (Lip Gloss), one palette per theme -------
type styles struct {
	title, success, pending, accent, muted, err lipgloss.Style
	selected, done, help, tab, activeTab       lipgloss.Style
	frame, inputBar                             lipgloss.Style
	boxChecked, boxUnchecked                    string
}

func stylesFor(th theme.State) styles {
	border := lipgloss.RoundedBorder()
	frameColor := lipgloss.Color("8")
	s := styles{
		title:        lipgloss.NewStyle().Bold(true),
		success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		muted:        lipgloss.NewStyle().Faint(true),
		err:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
		help:         lipgloss.NewStyle().Faint(true),
		tab:          lipgloss.NewStyle().Padding(0, 1).Faint(true),
		activeTab:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true),
		boxChecked:   "☑",
		boxUnchecked: "☐",
	}
	switch {
	case th.Dark():
		frameColor = lipgloss.Color("13")
		s.title = s.title.Foreground(lipgloss.Color("13"))
		s.accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		s.pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		s.activeTab = s.activeTab.Foreground(lipgloss.Color("13"))
		s.boxChecked, s.boxUnchecked = "◼", "◻"
	case th.Name == theme.Mono:
		plain := lipgloss.NewStyle()
		s.success, s.pending, s.accent, s.err = plain, plain, plain, plain.Bold(true)
		border = lipgloss.NormalBorder()
		s.boxChecked, s.boxUnchecked = "[x]", "[ ]"
	}
	s.frame = lipgloss.NewStyle().Border(border).BorderForeground(frameColor).Padding(0, 1)
	s.inputBar = lipgloss.NewStyle().Border(border).BorderForeground(frameColor).Padding(0, 1)
	return s
}
