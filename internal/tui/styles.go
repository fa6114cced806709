package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold — attention
	colorSuccess     = lipgloss.Color("#00E676") // Green — harmonious
	colorDanger      = lipgloss.Color("#FF5252") // Red — challenging
	colorMuted       = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white — emphatic text
	colorSurface     = lipgloss.Color("#1E1E2E") // Dark surface — status bar bg
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface — footer bg
)

// Status bar styles — visually dominant with solid background.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusScore = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)
)

// Tab bar styles.
var (
	styleTabActive = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Background(colorSurface).
			Bold(true).
			Padding(0, 2)

	styleTabInactive = lipgloss.NewStyle().
				Foreground(colorMutedLight).
				Padding(0, 2)
)

// Footer style — dim help line pinned to the bottom.
var styleFooter = lipgloss.NewStyle().
	Background(colorSurfaceDim).
	Foreground(colorMuted).
	Padding(0, 1)

// styleError renders load failures inside the content area.
var styleError = lipgloss.NewStyle().
	Foreground(colorDanger).
	Bold(true).
	Padding(1, 2)

// styleLoading renders the initial placeholder.
var styleLoading = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Padding(1, 2)
