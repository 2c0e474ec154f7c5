package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// styles are bound to one renderer so color detection follows the
// writer, not the process stdout
type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	kind    lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	caret   lipgloss.Style
	message lipgloss.Style
	gutter  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		header: r.NewStyle().
			Bold(true).
			Foreground(colorMuted),
		kind: r.NewStyle().
			Foreground(colorSecondary),
		label: r.NewStyle().
			Foreground(colorAccent),
		muted: r.NewStyle().
			Foreground(colorMuted),
		caret: r.NewStyle().
			Bold(true).
			Foreground(colorError),
		message: r.NewStyle().
			Foreground(colorError),
		gutter: r.NewStyle().
			Foreground(colorMuted),
	}
}
