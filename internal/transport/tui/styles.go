package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorError   = lipgloss.AdaptiveColor{Light: "#B00020", Dark: "#FF5C7A"}
	colorTabBg   = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A3E"}
	colorStatus  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1).
			Bold(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Background(colorTabBg).
				Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	cellSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(0, 1)

	cellTitleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	cellMetaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	videoBadgeStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	lightboxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	slideStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	urlStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			PaddingLeft(1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			PaddingLeft(1)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatus).
			Foreground(colorDim).
			PaddingLeft(1).
			PaddingRight(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)
