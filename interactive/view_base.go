package interactive

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gemdeck/gemdeck/common"
)

// View is the capability contract every screen and form implements.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	Name() string
	ShortHelp() string
}

// inputCapturer marks a view that is currently consuming printable keys
// (search or form typing), so global single-letter bindings stay out of
// its way.
type inputCapturer interface {
	CapturingInput() bool
}

// KeyHint is one keyboard shortcut entry for a footer.
type KeyHint struct {
	Key  string
	Desc string
}

// RenderHeader draws the product badge, a view title and a divider.
func RenderHeader(styles *Styles, viewTitle, subtitle string, contentWidth int) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(common.GEMDECK_NAME))
	b.WriteString(styles.Subtext.Render(" " + common.Version + " "))
	b.WriteString(styles.Divider.Render("|"))
	b.WriteString(" ")
	b.WriteString(styles.Accent.Bold(true).Render(viewTitle))
	if subtitle != "" {
		b.WriteString(" ")
		b.WriteString(styles.Subtext.Render(subtitle))
	}
	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", contentWidth)))
	b.WriteString("\n")
	return b.String()
}

// RenderFooter draws a divider and the given key hints.
func RenderFooter(styles *Styles, hints []KeyHint, contentWidth int) string {
	var b strings.Builder
	b.WriteString(styles.Divider.Render(strings.Repeat("─", contentWidth)))
	b.WriteString("\n")
	for i, hint := range hints {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(styles.HelpKey.Render("<" + hint.Key + ">"))
		b.WriteString(" ")
		b.WriteString(styles.HelpDesc.Render(hint.Desc))
	}
	return b.String()
}

// moveDown advances a selection index by one, clamped to the last item.
// No-op on an empty collection.
func moveDown(index, length int) int {
	if length == 0 {
		return 0
	}
	if index < length-1 {
		return index + 1
	}
	return index
}

// moveUp decrements a selection index by one, clamped to zero.
func moveUp(index, length int) int {
	if length == 0 || index <= 0 {
		return 0
	}
	return index - 1
}

// clampIndex keeps a cursor in range after the collection shrank.
func clampIndex(index, length int) int {
	if length == 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	if index < 0 {
		return 0
	}
	return index
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	if limit <= 3 {
		return text[:limit]
	}
	return text[:limit-3] + "..."
}
