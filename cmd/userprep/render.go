package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/installkit/userprep/pkg/i18n"
	"github.com/installkit/userprep/pkg/strength"
)

// styles maps the core's color identifiers onto terminal styles. Rendering
// lives entirely in this layer; the strength package only names colors.
var styles = map[strength.Color]lipgloss.Style{
	strength.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	strength.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	strength.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

// renderStrength returns the localized, colored display label for a category.
func renderStrength(category strength.Category) string {
	label := i18n.T("strength." + category.Key())
	return styles[category.Color()].Render(label)
}
