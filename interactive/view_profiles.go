package interactive

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gemdeck/gemdeck/storage"
	"github.com/gemdeck/gemdeck/xviper"
)

// ProfilesView lists launch profiles. Besides the shared list behavior it
// carries the launch action, the default-profile toggle and a live count
// of running tool processes.
type ProfilesView struct {
	deps   Deps
	styles *Styles

	items    []*storage.Profile
	failures []storage.Failure
	index    int

	searching bool
	search    textinput.Model

	running int

	width   int
	height  int
	loading bool
	err     error
}

func NewProfilesView(deps Deps, styles *Styles) *ProfilesView {
	search := textinput.New()
	search.Placeholder = "type to filter"
	search.Prompt = "/"
	search.CharLimit = 64

	return &ProfilesView{
		deps:    deps,
		styles:  styles,
		search:  search,
		width:   120,
		height:  30,
		loading: true,
	}
}

type profilesLoadedMsg struct {
	items    []*storage.Profile
	failures []storage.Failure
	err      error
}

type runningToolsMsg int

func (v *ProfilesView) Init() tea.Cmd {
	return tea.Batch(v.load, v.countRunning)
}

func (v *ProfilesView) load() tea.Msg {
	items, failures, err := v.deps.Store.ListProfiles()
	return profilesLoadedMsg{items: items, failures: failures, err: err}
}

func (v *ProfilesView) countRunning() tea.Msg {
	return runningToolsMsg(v.deps.Launcher.RunningTools())
}

func (v *ProfilesView) filtered() []*storage.Profile {
	query := strings.ToLower(strings.TrimSpace(v.search.Value()))
	if !v.searching || query == "" {
		return v.items
	}
	result := []*storage.Profile{}
	for _, item := range v.items {
		text := strings.ToLower(item.Name + " " + item.Description + " " + strings.Join(item.Metadata.Tags, " "))
		if strings.Contains(text, query) {
			result = append(result, item)
		}
	}
	return result
}

func (v *ProfilesView) selected() *storage.Profile {
	visible := v.filtered()
	if v.index >= 0 && v.index < len(visible) {
		return visible[v.index]
	}
	return nil
}

func (v *ProfilesView) CapturingInput() bool {
	return v.searching && v.search.Focused()
}

func (v *ProfilesView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.items = msg.items
		v.failures = msg.failures
		v.index = clampIndex(v.index, len(v.filtered()))

	case runningToolsMsg:
		v.running = int(msg)

	case tickMsg:
		return v, v.countRunning

	case reloadMsg:
		v.loading = true
		return v, v.load

	case viewChangedMsg:
		if msg.to == ViewProfiles {
			v.loading = true
			return v, tea.Batch(v.load, v.countRunning)
		}

	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *ProfilesView) updateKeys(msg tea.KeyMsg) (View, tea.Cmd) {
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
		return v, tea.Batch(v.load, v.countRunning)
	case key.Matches(msg, keys.New):
		form := NewProfileForm(v.deps, v.styles, nil)
		return v, func() tea.Msg { return openFormMsg{form: form} }
	case key.Matches(msg, keys.Edit), key.Matches(msg, keys.Select):
		if item := v.selected(); item != nil {
			form := NewProfileForm(v.deps, v.styles, item)
			return v, func() tea.Msg { return openFormMsg{form: form} }
		}
	case key.Matches(msg, keys.Delete):
		if item := v.selected(); item != nil {
			request := deleteRequestMsg{kind: storage.KindProfile, id: item.Id, name: item.Name}
			return v, func() tea.Msg { return request }
		}
	case key.Matches(msg, keys.Launch):
		if item := v.selected(); item != nil {
			profile := item
			return v, func() tea.Msg { return launchRequestMsg{profile: profile} }
		}
	case key.Matches(msg, keys.SetDefault):
		if item := v.selected(); item != nil {
			return v, v.setDefault(item.Id)
		}
	}
	return v, nil
}

// setDefault flips the exclusive is_default flag. Writes happen here on
// the update thread, one record at a time.
func (v *ProfilesView) setDefault(id string) tea.Cmd {
	for _, profile := range v.items {
		changed := profile.Metadata.IsDefault != (profile.Id == id)
		if !changed {
			continue
		}
		profile.Metadata.IsDefault = profile.Id == id
		if err := v.deps.Store.SaveProfile(profile); err != nil {
			return ShowErrorToast(fmt.Sprintf("Cannot update %q: %v", profile.Name, err))
		}
	}
	return tea.Batch(
		ShowSuccessToast("Default profile updated"),
		func() tea.Msg { return reloadMsg{} },
	)
}

func (v *ProfilesView) View() string {
	contentWidth := v.width - 8
	if contentWidth < 60 {
		contentWidth = 60
	}

	var b strings.Builder
	subtitle := ""
	if !v.loading {
		subtitle = fmt.Sprintf("(%d, %d gemini running)", len(v.items), v.running)
	}
	b.WriteString(RenderHeader(v.styles, "Profiles", subtitle, contentWidth))
	b.WriteString("\n")

	if v.searching {
		b.WriteString(" " + v.search.View())
		b.WriteString("\n\n")
	}

	switch {
	case v.loading:
		b.WriteString(v.styles.Subtext.Render("Loading profiles..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	default:
		v.renderList(&b, contentWidth)
	}

	b.WriteString("\n")
	hints := []KeyHint{
		{"r", "launch"}, {"n", "new"}, {"e", "edit"}, {"d", "delete"}, {"D", "default"}, {"/", "search"},
	}
	b.WriteString(RenderFooter(v.styles, hints, contentWidth))
	return b.String()
}

func (v *ProfilesView) renderList(b *strings.Builder, contentWidth int) {
	visible := v.filtered()
	if len(visible) == 0 {
		if v.searching && len(v.items) > 0 {
			b.WriteString(v.styles.Subtext.Render("No profile matches the filter"))
		} else {
			b.WriteString(v.styles.Subtext.Render("No profiles yet; press <n> to create one"))
		}
		b.WriteString("\n")
	}

	maxVisible := v.height - 13
	if maxVisible < 4 {
		maxVisible = 4
	}
	start := 0
	if v.index >= maxVisible {
		start = v.index - maxVisible + 1
	}
	for at := start; at < len(visible) && at < start+maxVisible; at++ {
		item := visible[at]
		marker := " "
		if item.Metadata.IsDefault {
			marker = "*"
		}
		line := fmt.Sprintf("%s %-24s %2d ext  %3d launches", marker, truncate(item.Name, 24),
			len(item.ExtensionIds), xviper.LaunchCount(item.Id))
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
		b.WriteString(v.styles.Label.Render("Workdir"))
		workdir := item.WorkingDirectory
		if workdir == "" {
			workdir = "(current directory)"
		}
		b.WriteString(v.styles.Text.Render(truncate(workdir, contentWidth-16)))
		b.WriteString("\n")
		b.WriteString(v.styles.Label.Render("Environment"))
		b.WriteString(v.styles.Subtext.Render(fmt.Sprintf("%d variable(s)", len(item.EnvironmentVariables))))
		b.WriteString("\n")
		b.WriteString(v.styles.Label.Render("On exit"))
		policy := "keep workspace"
		if item.LaunchConfig.CleanupOnExit {
			policy = "clean workspace"
			if len(item.LaunchConfig.PreserveExtensions) > 0 {
				policy = fmt.Sprintf("clean workspace, keep %d extension(s)", len(item.LaunchConfig.PreserveExtensions))
			}
		}
		b.WriteString(v.styles.Text.Render(policy))
		b.WriteString("\n")
	}

	for _, failure := range v.failures {
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf("  ! record %q unreadable: %v", failure.Id, failure.Err)))
		b.WriteString("\n")
	}
}

func (v *ProfilesView) Name() string {
	return "Profiles"
}

func (v *ProfilesView) ShortHelp() string {
	return "j/k:move r:launch enter:edit n:new d:delete D:default /:search"
}
