package render

import "github.com/charmbracelet/lipgloss"

// Theme is the set of styles used by every render function.
type Theme struct {
	Name string
	// GlamourStyle is the glamour standard style used for markdown.
	GlamourStyle string

	Title    lipgloss.Style
	Header   lipgloss.Style
	Sorted   lipgloss.Style
	Row      lipgloss.Style
	RowAlt   lipgloss.Style
	Muted    lipgloss.Style
	Current  lipgloss.Style
	Disabled lipgloss.Style
	Link     lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	Info     lipgloss.Style
}

// Light returns the default theme.
func Light() Theme {
	return Theme{
		Name:         "light",
		GlamourStyle: "light",
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		Sorted:       lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("25")),
		Row:          lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		RowAlt:       lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("254")),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Current:      lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("25")).Foreground(lipgloss.Color("15")),
		Disabled:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Link:         lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("25")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("136")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Info:         lipgloss.NewStyle().Foreground(lipgloss.Color("30")),
	}
}

// Dark returns the theme for dark terminals.
func Dark() Theme {
	return Theme{
		Name:         "dark",
		GlamourStyle: "dark",
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117")),
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117")),
		Sorted:       lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("214")),
		Row:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		RowAlt:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Current:      lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("214")).Foreground(lipgloss.Color("0")),
		Disabled:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Link:         lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("117")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Info:         lipgloss.NewStyle().Foreground(lipgloss.Color("80")),
	}
}

// ThemeFor picks the theme matching the dark-mode preference.
func ThemeFor(dark bool) Theme {
	if dark {
		return Dark()
	}
	return Light()
}
