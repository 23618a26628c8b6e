package interactive

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gemdeck/gemdeck/storage"
)

// ExtensionsView lists the extension catalog with an index cursor and a
// substring search filter. Matching is case-insensitive over the display
// name and the description.
type ExtensionsView struct {
	deps   Deps
	styles *Styles

	items    []*storage.Extension
	failures []storage.Failure
	index    int

	searching bool
	search    textinput.Model

	width   int
	height  int
	loading bool
	err     error
}

func NewExtensionsView(deps Deps, styles *Styles) *ExtensionsView {
	search := textinput.New()
	search.Placeholder = "type to filter"
	search.Prompt = "/"
	search.CharLimit = 64

	return &ExtensionsView{
		deps:    deps,
		styles:  styles,
		search:  search,
		width:   120,
		height:  30,
		loading: true,
	}
}

type extensionsLoadedMsg struct {
	items    []*storage.Extension
	failures []storage.Failure
	err      error
}

func (v *ExtensionsView) Init() tea.Cmd {
	return v.load
}

func (v *ExtensionsView) load() tea.Msg {
	items, failures, err := v.deps.Store.ListExtensions()
	return extensionsLoadedMsg{items: items, failures: failures, err: err}
}

// filtered is the displayed subsequence under the current search string.
func (v *ExtensionsView) filtered() []*storage.Extension {
	query := strings.ToLower(strings.TrimSpace(v.search.Value()))
	if !v.searching || query == "" {
		return v.items
	}
	result := []*storage.Extension{}
	for _, item := range v.items {
		text := strings.ToLower(item.Name + " " + item.Description)
		if strings.Contains(text, query) {
			result = append(result, item)
		}
	}
	return result
}

func (v *ExtensionsView) selected() *storage.Extension {
	visible := v.filtered()
	if v.index >= 0 && v.index < len(visible) {
		return visible[v.index]
	}
	return nil
}

// CapturingInput reports whether the search field is consuming keys.
func (v *ExtensionsView) CapturingInput() bool {
	return v.searching && v.search.Focused()
}

func (v *ExtensionsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case extensionsLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.items = msg.items
		v.failures = msg.failures
		v.index = clampIndex(v.index, len(v.filtered()))

	case reloadMsg:
		v.loading = true
		return v, v.load

	case viewChangedMsg:
		if msg.to == ViewExtensions {
			v.loading = true
			return v, v.load
		}

	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *ExtensionsView) updateKeys(msg tea.KeyMsg) (View, tea.Cmd) {
	if v.CapturingInput() {
		switch msg.String() {
		case "esc":
			v.searching = false
			v.search.Reset()
			v.search.Blur()
			v.index = 0
			return v, nil
		case "enter":
			v.search.Blur()
			v.index = clampIndex(v.index, len(v.filtered()))
			return v, nil
		case "up", "down":
			// fall through to navigation below
		default:
			var cmd tea.Cmd
			v.search, cmd = v.search.Update(msg)
			v.index = clampIndex(v.index, len(v.filtered()))
			return v, cmd
		}
	}

	switch {
	case key.Matches(msg, keys.Up):
		v.index = moveUp(v.index, len(v.filtered()))
	case key.Matches(msg, keys.Down):
		v.index = moveDown(v.index, len(v.filtered()))
	case key.Matches(msg, keys.Search):
		v.searching = true
		v.search.Reset()
		v.index = 0
		return v, v.search.Focus()
	case key.Matches(msg, keys.Back):
		if v.searching {
			v.searching = false
			v.search.Reset()
			v.search.Blur()
			v.index = 0
		}
	case key.Matches(msg, keys.Refresh):
		v.loading = true
		return v, v.load
	case key.Matches(msg, keys.New):
		form := NewExtensionForm(v.deps, v.styles, nil)
		return v, func() tea.Msg { return openFormMsg{form: form} }
	case key.Matches(msg, keys.Edit), key.Matches(msg, keys.Select):
		if item := v.selected(); item != nil {
			form := NewExtensionForm(v.deps, v.styles, item)
			return v, func() tea.Msg { return openFormMsg{form: form} }
		}
	case key.Matches(msg, keys.Delete):
		if item := v.selected(); item != nil {
			request := deleteRequestMsg{kind: storage.KindExtension, id: item.Id, name: item.Name}
			return v, func() tea.Msg { return request }
		}
	}
	return v, nil
}

func (v *ExtensionsView) View() string {
	contentWidth := v.width - 8
	if contentWidth < 60 {
		contentWidth = 60
	}

	var b strings.Builder
	subtitle := ""
	if !v.loading {
		subtitle = fmt.Sprintf("(%d)", len(v.items))
	}
	b.WriteString(RenderHeader(v.styles, "Extensions", subtitle, contentWidth))
	b.WriteString("\n")

	if v.searching {
		b.WriteString(" " + v.search.View())
		b.WriteString("\n\n")
	}

	switch {
	case v.loading:
		b.WriteString(v.styles.Subtext.Render("Loading extension catalog..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	default:
		v.renderList(&b, contentWidth)
	}

	b.WriteString("\n")
	hints := []KeyHint{
		{"n", "new"}, {"e", "edit"}, {"d", "delete"}, {"/", "search"}, {"R", "refresh"},
	}
	b.WriteString(RenderFooter(v.styles, hints, contentWidth))
	return b.String()
}

func (v *ExtensionsView) renderList(b *strings.Builder, contentWidth int) {
	visible := v.filtered()
	if len(visible) == 0 {
		if v.searching && len(v.items) > 0 {
			b.WriteString(v.styles.Subtext.Render("No extension matches the filter"))
		} else {
			b.WriteString(v.styles.Subtext.Render("No extensions yet; press <n> to create one"))
		}
		b.WriteString("\n")
	}

	maxVisible := v.height - 12
	if maxVisible < 4 {
		maxVisible = 4
	}
	start := 0
	if v.index >= maxVisible {
		start = v.index - maxVisible + 1
	}
	for at := start; at < len(visible) && at < start+maxVisible; at++ {
		item := visible[at]
		servers := ""
		if count := len(item.McpServers); count > 0 {
			servers = fmt.Sprintf("%d server(s)", count)
		}
		line := fmt.Sprintf("%-24s %-10s %s", truncate(item.Name, 24), truncate(item.Version, 10), truncate(servers, 16))
		if at == v.index {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if remaining := len(visible) - start - maxVisible; remaining > 0 {
		b.WriteString(v.styles.Subtext.Render(fmt.Sprintf("  ... +%d more", remaining)))
		b.WriteString("\n")
	}

	if item := v.selected(); item != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Divider.Render(strings.Repeat("-", contentWidth)))
		b.WriteString("\n")
		b.WriteString(v.styles.Label.Render("Description"))
		b.WriteString(v.styles.Text.Render(truncate(item.Description, contentWidth-16)))
		b.WriteString("\n")
		b.WriteString(v.styles.Label.Render("Id"))
		b.WriteString(v.styles.Subtext.Render(item.Id))
		b.WriteString("\n")
	}

	for _, failure := range v.failures {
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf("  ! record %q unreadable: %v", failure.Id, failure.Err)))
		b.WriteString("\n")
	}
}

func (v *ExtensionsView) Name() string {
	return "Extensions"
}

func (v *ExtensionsView) ShortHelp() string {
	return "j/k:move enter:edit n:new d:delete /:search"
}
