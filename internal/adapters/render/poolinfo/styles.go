package poolinfo

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	current lipgloss.Style
	weight  lipgloss.Style
	legend  lipgloss.Style
	free    lipgloss.Style
	white   lipgloss.Style
	black   lipgloss.Style
	empty   lipgloss.Style
}

func newStyles(plain bool) styles {
	if plain {
		base := lipgloss.NewStyle()
		return styles{
			title: base, label: base, current: base, weight: base, legend: base,
			free: base, white: base, black: base, empty: base,
		}
	}

	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		current: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		weight:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		legend:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		free:    lipgloss.NewStyle(),
		white:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("5")),
		black:   lipgloss.NewStyle().Faint(true),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
