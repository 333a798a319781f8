package ui

import (
	"strings"

	"github.com/idilsaglam/tada/internal/theme"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                   string
	Title, Muted, Accent, Success, Error   string
	Pending                                string
	BoxUnchecked, BoxChecked               string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
	SymDone, SymUnchecked                  string
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:  theme.Classic,
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Pending: fgYellow,
		BoxUnchecked: "☐", BoxChecked: "☑",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymDone: "✔", SymUnchecked: "•",
	}
}

// SetTheme switches the palette. Unknown names fall back to classic.
func SetTheme(name string) {
	themeNoColor = false
	switch strings.ToLower(name) {
	case theme.Neon:
		current = Theme{
			Name:  theme.Neon,
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			BoxUnchecked: "◻", BoxChecked: "◼",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymDone: "✔", SymUnchecked: "•",
		}
	case theme.Mono:
		themeNoColor = true
		current = Theme{
			Name:         theme.Mono,
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymDone: "x", SymUnchecked: "-",
		}
	default:
		current = classic()
	}
}

// Follow keeps the palette in step with a theme container. The returned func
// stops following.
func Follow(st *theme.Store) (stop func()) {
	SetTheme(st.State().Name)
	return st.Subscribe(func(_, next theme.State) { SetTheme(next.Name) })
}

// Expose what renderers need
func Current() Theme { return current }
