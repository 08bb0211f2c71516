package views

import (
	"github.com/charmbracelet/lipgloss"

	"docsearch/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Greeting      lipgloss.Style
	Dim           lipgloss.Style
	InputBox      lipgloss.Style
	InputFocused  lipgloss.Style
	Dropdown      lipgloss.Style
	Row           lipgloss.Style
	SelectionBg   lipgloss.Style
	Preview       lipgloss.Style
	Empty         lipgloss.Style
	Scroll        lipgloss.Style
	Tile          lipgloss.Style
	TileSelected  lipgloss.Style
	BackLink      lipgloss.Style
	DocTitle      lipgloss.Style
	Heading       lipgloss.Style
	Bullet        lipgloss.Style
	Paragraph     lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Greeting: lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")),
		Row:         lipgloss.NewStyle(),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Preview:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Empty:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Tile: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		TileSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Padding(0, 1),
		BackLink:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")), // blue
		DocTitle:      lipgloss.NewStyle().Bold(true),
		Heading:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Bullet:        lipgloss.NewStyle().PaddingLeft(2),
		Paragraph:     lipgloss.NewStyle(),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	}
}

// AccentColor returns the terminal colour for a team accent
func AccentColor(team domain.Team) lipgloss.Color {
	switch team.Accent() {
	case domain.AccentRed:
		return lipgloss.Color("196")
	case domain.AccentTeal:
		return lipgloss.Color("37")
	case domain.AccentOrange:
		return lipgloss.Color("208")
	default:
		return lipgloss.Color("241")
	}
}
