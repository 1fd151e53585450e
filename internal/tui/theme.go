package tui

import "github.com/charmbracelet/lipgloss"

// Theme represents a color scheme for the application
type Theme struct {
	Name string

	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	Primary lipgloss.Color
	Accent  lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Border lipgloss.Color
}

// Midnight mirrors the dark palette of the web client.
var Midnight = Theme{
	Name: "Midnight",

	Foreground:    lipgloss.Color("#F9FAFB"),
	ForegroundDim: lipgloss.Color("#6B7280"),

	Primary: lipgloss.Color("#8B5CF6"),
	Accent:  lipgloss.Color("#22D3EE"),

	Success: lipgloss.Color("#10B981"),
	Warning: lipgloss.Color("#f59e0b"),
	Error:   lipgloss.Color("#f43f5e"),

	Border: lipgloss.Color("#1C1C1C"),
}

// MaxWidth is the widest the content is laid out.
const MaxWidth = 80

func contentWidth(terminalWidth int) int {
	if terminalWidth <= 0 || terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

type styles struct {
	title     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	section   lipgloss.Style
	dim       lipgloss.Style
	selected  lipgloss.Style
	done      lipgloss.Style
	user      lipgloss.Style
	model     lipgloss.Style
	status    lipgloss.Style
	errStatus lipgloss.Style
	clock     lipgloss.Style
	priority  map[string]lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(t.ForegroundDim),
		activeTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(t.Foreground).Background(t.Primary),
		section:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent).MarginTop(1),
		dim:       lipgloss.NewStyle().Foreground(t.ForegroundDim),
		selected:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		done:      lipgloss.NewStyle().Foreground(t.ForegroundDim).Strikethrough(true),
		user:      lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		model:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		status:    lipgloss.NewStyle().Foreground(t.ForegroundDim).Italic(true),
		errStatus: lipgloss.NewStyle().Foreground(t.Error),
		clock:     lipgloss.NewStyle().Bold(true).Foreground(t.Foreground).Padding(1, 0),
		priority: map[string]lipgloss.Style{
			"high":   lipgloss.NewStyle().Foreground(t.Error),
			"medium": lipgloss.NewStyle().Foreground(t.Warning),
			"low":    lipgloss.NewStyle().Foreground(t.Success),
		},
	}
}
