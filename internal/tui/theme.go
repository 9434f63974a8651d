package tui

import "github.com/charmbracelet/lipgloss"

// Theme groups the styles the explorer screens render with.
type Theme struct {
	Name     string
	Base     lipgloss.Style
	Header   lipgloss.Style
	Title    lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Dim      lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:     "Default",
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	},
	"dracula": {
		Name:     "Dracula",
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),  // Cyan
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true), // White
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),             // Comment
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
	},
}

// themeOrder fixes the cycle sequence for the theme hotkey.
var themeOrder = []string{"default", "dracula"}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// NextTheme returns the theme name that follows the given one in the
// cycle, wrapping to the start. Unknown names restart the cycle.
func NextTheme(name string) string {
	for i, n := range themeOrder {
		if n == name {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}
