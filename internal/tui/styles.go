package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/xyz-asif/temuin/internal/features/items"
)

// Styles holds the lipgloss styles for the browse view.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Partial  lipgloss.Style
	Lost     lipgloss.Style
	Found    lipgloss.Style

	statusBadges map[items.Status]lipgloss.Style
}

// DefaultStyles returns the default color scheme. Status colors mirror the
// board's palette: searching yellow, found green, claimed blue.
func DefaultStyles() Styles {
	badge := lipgloss.NewStyle().Padding(0, 1)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Normal:   lipgloss.NewStyle(),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Partial:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Lost:     badge.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("124")),
		Found:    badge.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("25")),

		statusBadges: map[items.Status]lipgloss.Style{
			items.StatusSearching: badge.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")),
			items.StatusFound:     badge.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("40")),
			items.StatusClaimed:   badge.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("27")),
		},
	}
}

// StatusBadge renders a colored status label.
func (s Styles) StatusBadge(status items.Status) string {
	if style, ok := s.statusBadges[status]; ok {
		return style.Render(status.Label())
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(status.Label())
}

// KindBadge renders a colored kind label.
func (s Styles) KindBadge(kind items.Kind) string {
	switch kind {
	case items.KindLost:
		return s.Lost.Render("Lost")
	case items.KindFound:
		return s.Found.Render("Found")
	default:
		return string(kind)
	}
}
