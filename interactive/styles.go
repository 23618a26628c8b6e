package interactive

import "github.com/charmbracelet/lipgloss"

// Styles is the shared style set built once from a theme and handed to
// every view.
type Styles struct {
	theme Theme

	Title    lipgloss.Style
	Subtext  lipgloss.Style
	Label    lipgloss.Style
	Text     lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Divider  lipgloss.Style
	Spinner  lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	FieldLabel       lipgloss.Style
	FieldLabelActive lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

func NewStyles(theme Theme) *Styles {
	toast := func(edge lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(edge).
			Padding(0, 1)
	}
	return &Styles{
		theme: theme,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Subtext:  lipgloss.NewStyle().Foreground(theme.TextMuted),
		Label:    lipgloss.NewStyle().Foreground(theme.TextDim).Width(14),
		Text:     lipgloss.NewStyle().Foreground(theme.Text),
		Accent:   lipgloss.NewStyle().Foreground(theme.Accent),
		Success:  lipgloss.NewStyle().Foreground(theme.Success),
		Warning:  lipgloss.NewStyle().Foreground(theme.Warning),
		Error:    lipgloss.NewStyle().Foreground(theme.Error),
		Info:     lipgloss.NewStyle().Foreground(theme.Info),
		Divider:  lipgloss.NewStyle().Foreground(theme.BorderDim),
		Spinner:  lipgloss.NewStyle().Foreground(theme.Accent),
		Selected: lipgloss.NewStyle().Foreground(theme.TextBright).Background(theme.Highlight).Bold(true).Padding(0, 1),
		Normal:   lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1),

		TabActive:   lipgloss.NewStyle().Background(theme.Accent).Foreground(lipgloss.Color("#1a1b26")).Padding(0, 1).Bold(true),
		TabInactive: lipgloss.NewStyle().Background(theme.Surface).Foreground(theme.TextMuted).Padding(0, 1),

		FieldLabel:       lipgloss.NewStyle().Foreground(theme.TextDim).Width(16),
		FieldLabelActive: lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Width(16),

		HelpKey:  lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		HelpDesc: lipgloss.NewStyle().Foreground(theme.TextMuted),

		ToastInfo:    toast(theme.Info),
		ToastSuccess: toast(theme.Success),
		ToastWarning: toast(theme.Warning),
		ToastError:   toast(theme.Error),
	}
}
