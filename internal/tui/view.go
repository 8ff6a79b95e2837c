package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xyz-asif/temuin/internal/features/browse"
	"github.com/xyz-asif/temuin/internal/features/items"
)

// View renders the browse screen.
func (m Model) View() string {
	if m.detail != nil {
		return m.viewDetail(*m.detail)
	}

	var b strings.Builder

	spec := m.ctl.Spec()
	b.WriteString(m.styles.Title.Render(pageTitle(spec.Kind)))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf(
		"status: %s · sort: %s · page %d", filterLabel(spec.Status), spec.Sort, spec.Page)))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	switch m.ctl.State() {
	case browse.StateFetching, browse.StateDebouncing:
		b.WriteString(m.spin.View() + " Loading items...\n")
	default:
		b.WriteString(m.viewList())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(
		"/ search · tab status · s sort · l/f/a stream · ←/→ page · enter detail · q quit"))
	return b.String()
}

func (m Model) viewList() string {
	var b strings.Builder

	// A failed fetch shows as a banner above whatever settled last; prior
	// results stay on screen.
	if err := m.ctl.Err(); err != nil {
		b.WriteString(m.styles.Error.Render("Could not load items: " + err.Error()))
		b.WriteString("\n\n")
	}

	rs := m.ctl.Results()
	if rs == nil || len(rs.Items) == 0 {
		b.WriteString(m.emptyMessage())
		return b.String()
	}
	for i, item := range rs.Items {
		line := fmt.Sprintf("%s %s  %s",
			m.styles.KindBadge(item.Kind),
			m.styles.StatusBadge(item.Status),
			item.Title)
		if item.Location != "" {
			line += m.styles.Subtitle.Render("  @ " + item.Location)
		}

		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if rs.HasNext {
		b.WriteString(m.styles.Subtitle.Render("\nmore items on the next page →"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) emptyMessage() string {
	spec := m.ctl.Spec()
	if spec.Search != "" || spec.Status != items.StatusAll {
		return "No items found. Try adjusting your search or filter criteria.\n"
	}
	return "No items have been reported yet.\n"
}

func (m Model) viewDetail(item items.Item) string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(item.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.KindBadge(item.Kind) + " " + m.styles.StatusBadge(item.Status))
	b.WriteString("\n\n")

	if item.OccurredAt != nil {
		b.WriteString(fmt.Sprintf("Date:     %s\n", item.OccurredAt.Format("January 2, 2006")))
	}
	if item.Location != "" {
		b.WriteString(fmt.Sprintf("Location: %s\n", item.Location))
	}
	if item.ContactInfo != "" {
		b.WriteString(fmt.Sprintf("Contact:  %s\n", item.ContactInfo))
	}
	if item.PhotoRef != "" {
		b.WriteString(fmt.Sprintf("Photo:    %s\n", item.PhotoRef))
	}

	b.WriteString("\n")
	if item.Description != "" {
		b.WriteString(item.Description)
	} else {
		b.WriteString(m.styles.Subtitle.Render("No description provided."))
	}
	b.WriteString("\n\n")

	if m.overlay != "" {
		b.WriteString(m.styles.Error.Render(m.overlay))
		b.WriteString("\n")
	}

	help := "esc back"
	if items.CanMutate(m.sessions.Current(), &item) {
		help += " · x delete"
	}
	b.WriteString(m.styles.Help.Render(help))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func pageTitle(kind items.Kind) string {
	switch kind {
	case items.KindLost:
		return "Lost Items"
	case items.KindFound:
		return "Found Items"
	default:
		return "All Items"
	}
}

func filterLabel(status items.Status) string {
	if status == items.StatusAll {
		return "all"
	}
	return status.Label()
}
