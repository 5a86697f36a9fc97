package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// Color palette.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Symbols for visual feedback.
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "!"
	SymbolBullet  = "•"
)

// Styles holds the lipgloss styles of the text report. Without colour all
// styles are empty and render text unchanged.
type Styles struct {
	File    lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles returns coloured styles, or plain ones if color is false.
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{File: plain, Error: plain, Warning: plain, Info: plain, Success: plain, Muted: plain}
	}
	return Styles{
		File:    lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Error:   lipgloss.NewStyle().Foreground(ColorError),
		Warning: lipgloss.NewStyle().Foreground(ColorWarning),
		Info:    lipgloss.NewStyle().Foreground(ColorSecondary),
		Success: lipgloss.NewStyle().Foreground(ColorSuccess),
		Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// Severity returns the style and symbol of a severity.
func (s Styles) Severity(sev replmeta.Severity) (lipgloss.Style, string) {
	switch {
	case sev >= replmeta.SeverityError:
		return s.Error, SymbolCross
	case sev == replmeta.SeverityWarn:
		return s.Warning, SymbolWarning
	default:
		return s.Info, SymbolBullet
	}
}
