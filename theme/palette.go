package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of terminal styles for one theme.
type Palette struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// PaletteFor returns the styles matching t.
func PaletteFor(t Theme) Palette {
	if t == Dark {
		return Palette{
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5E7EB")),
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")),
			Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F87171")),
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FBBF24")),
			Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")),
		}
	}
	return Palette{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111827")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#047857")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B91C1C")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#B45309")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#1D4ED8")),
	}
}

// Level returns the style for a severity name (success, error, warning,
// info); unknown names get Info.
func (p Palette) Level(name string) lipgloss.Style {
	switch name {
	case "success":
		return p.Success
	case "error":
		return p.Error
	case "warning":
		return p.Warning
	default:
		return p.Info
	}
}
