package interactive

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gemdeck/gemdeck/storage"
	"github.com/google/uuid"
)

const (
	profFieldName = iota
	profFieldDescription
	profFieldWorkdir
	profFieldEnvironment
	profFieldTags
	profFieldPreserve
	profFieldCount
)

var profFieldLabels = [profFieldCount]string{
	"Name",
	"Description",
	"Working directory",
	"Environment (K=V;K=V)",
	"Tags (comma separated)",
	"Preserve extensions",
}

// Cursor layout: text fields first, then the two launch toggles, then
// one checkbox row per known extension. The cursor is linear and does
// not wrap at either edge.
const (
	toggleCleanLaunch = profFieldCount + iota
	toggleCleanupOnExit
	extensionRowsStart
)

type extensionChoice struct {
	id       string
	name     string
	selected bool
}

type extensionChoicesMsg struct {
	choices []extensionChoice
	err     error
}

// ProfileForm is the modal editor for one launch profile.
type ProfileForm struct {
	deps   Deps
	styles *Styles

	original *storage.Profile
	inputs   [profFieldCount]textinput.Model

	cleanLaunch   bool
	cleanupOnExit bool
	choices       []extensionChoice

	cursor  int
	problem string
}

func NewProfileForm(deps Deps, styles *Styles, original *storage.Profile) *ProfileForm {
	form := &ProfileForm{
		deps:     deps,
		styles:   styles,
		original: original,
	}
	for at := range form.inputs {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 400
		form.inputs[at] = input
	}

	config := storage.DefaultLaunchConfig()
	if original != nil {
		form.inputs[profFieldName].SetValue(original.Name)
		form.inputs[profFieldDescription].SetValue(original.Description)
		form.inputs[profFieldWorkdir].SetValue(original.WorkingDirectory)
		form.inputs[profFieldEnvironment].SetValue(formatEnvironment(original.EnvironmentVariables))
		form.inputs[profFieldTags].SetValue(strings.Join(original.Metadata.Tags, ", "))
		form.inputs[profFieldPreserve].SetValue(strings.Join(original.LaunchConfig.PreserveExtensions, ", "))
		config = original.LaunchConfig
	}
	form.cleanLaunch = config.CleanLaunch
	form.cleanupOnExit = config.CleanupOnExit
	return form
}

func (f *ProfileForm) Init() tea.Cmd {
	return tea.Batch(f.inputs[f.cursor].Focus(), f.loadChoices)
}

func (f *ProfileForm) loadChoices() tea.Msg {
	items, _, err := f.deps.Store.ListExtensions()
	choices := make([]extensionChoice, 0, len(items))
	for _, item := range items {
		choice := extensionChoice{id: item.Id, name: item.Name}
		if f.original != nil {
			for _, id := range f.original.ExtensionIds {
				if id == item.Id {
					choice.selected = true
					break
				}
			}
		}
		choices = append(choices, choice)
	}
	return extensionChoicesMsg{choices: choices, err: err}
}

func (f *ProfileForm) rowCount() int {
	return extensionRowsStart + len(f.choices)
}

func (f *ProfileForm) onTextField() bool {
	return f.cursor < profFieldCount
}

func (f *ProfileForm) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case extensionChoicesMsg:
		if msg.err != nil {
			f.problem = msg.err.Error()
			return f, nil
		}
		f.choices = msg.choices
		return f, nil

	case tea.KeyMsg:
		return f.updateKeys(msg)
	}
	return f, nil
}

func (f *ProfileForm) updateKeys(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return f, func() tea.Msg { return formCancelledMsg{} }
	case "ctrl+s":
		return f, f.save()
	case "enter":
		if f.cursor == f.rowCount()-1 {
			return f, f.save()
		}
		return f, f.moveCursor(f.cursor + 1)
	case "tab", "down":
		return f, f.moveCursor(f.cursor + 1)
	case "shift+tab", "up":
		return f, f.moveCursor(f.cursor - 1)
	case " ":
		if !f.onTextField() {
			f.toggle(f.cursor)
			return f, nil
		}
	}

	if f.onTextField() {
		var cmd tea.Cmd
		f.inputs[f.cursor], cmd = f.inputs[f.cursor].Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f *ProfileForm) moveCursor(target int) tea.Cmd {
	if target < 0 || target >= f.rowCount() {
		return nil
	}
	if f.onTextField() {
		f.inputs[f.cursor].Blur()
	}
	f.cursor = target
	if f.onTextField() {
		return f.inputs[f.cursor].Focus()
	}
	return nil
}

func (f *ProfileForm) toggle(row int) {
	switch {
	case row == toggleCleanLaunch:
		f.cleanLaunch = !f.cleanLaunch
	case row == toggleCleanupOnExit:
		f.cleanupOnExit = !f.cleanupOnExit
	case row >= extensionRowsStart && row < f.rowCount():
		at := row - extensionRowsStart
		f.choices[at].selected = !f.choices[at].selected
	}
}

func (f *ProfileForm) save() tea.Cmd {
	profile, err := f.collect()
	if err != nil {
		f.problem = err.Error()
		return nil
	}
	if err := f.deps.Store.SaveProfile(profile); err != nil {
		f.problem = err.Error()
		return nil
	}
	saved := formSavedMsg{kind: storage.KindProfile, id: profile.Id, name: profile.Name}
	return func() tea.Msg { return saved }
}

func (f *ProfileForm) collect() (*storage.Profile, error) {
	name := strings.TrimSpace(f.inputs[profFieldName].Value())
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	environment, err := parseEnvironment(f.inputs[profFieldEnvironment].Value())
	if err != nil {
		return nil, err
	}

	profile := &storage.Profile{
		Id:                   uuid.NewString(),
		Name:                 name,
		Description:          strings.TrimSpace(f.inputs[profFieldDescription].Value()),
		ExtensionIds:         []string{},
		EnvironmentVariables: environment,
		WorkingDirectory:     strings.TrimSpace(f.inputs[profFieldWorkdir].Value()),
		LaunchConfig: storage.LaunchConfig{
			CleanLaunch:        f.cleanLaunch,
			CleanupOnExit:      f.cleanupOnExit,
			PreserveExtensions: splitCommaList(f.inputs[profFieldPreserve].Value()),
		},
	}
	profile.Metadata.Tags = splitCommaList(f.inputs[profFieldTags].Value())
	if f.original != nil {
		profile.Id = f.original.Id
		profile.Metadata = f.original.Metadata
		profile.Metadata.Tags = splitCommaList(f.inputs[profFieldTags].Value())
	}
	for _, choice := range f.choices {
		if choice.selected {
			profile.ExtensionIds = append(profile.ExtensionIds, choice.id)
		}
	}
	return profile, nil
}

// parseEnvironment reads "KEY=VALUE;KEY2=VALUE2" entries. Empty segments
// are skipped so trailing separators are harmless.
func parseEnvironment(text string) (map[string]string, error) {
	result := map[string]string{}
	for _, entry := range strings.Split(text, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, value, found := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("environment entry %q is not KEY=VALUE", entry)
		}
		result[key] = value
	}
	return result, nil
}

func formatEnvironment(environment map[string]string) string {
	keys := make([]string, 0, len(environment))
	for key := range environment {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+environment[key])
	}
	return strings.Join(parts, ";")
}

func splitCommaList(text string) []string {
	result := []string{}
	for _, entry := range strings.Split(text, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			result = append(result, entry)
		}
	}
	return result
}

func (f *ProfileForm) View() string {
	var b strings.Builder
	title := "New profile"
	if f.original != nil {
		title = fmt.Sprintf("Edit profile %q", f.original.Name)
	}
	b.WriteString(f.styles.Title.Render(" " + title))
	b.WriteString("\n\n")

	for at := range f.inputs {
		label := f.styles.FieldLabel
		if at == f.cursor {
			label = f.styles.FieldLabelActive
		}
		b.WriteString(" " + label.Render(fmt.Sprintf("%-24s", profFieldLabels[at])))
		b.WriteString(f.inputs[at].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(f.renderToggle(toggleCleanLaunch, "Clean workspace before launch", f.cleanLaunch))
	b.WriteString(f.renderToggle(toggleCleanupOnExit, "Clean workspace after exit", f.cleanupOnExit))

	b.WriteString("\n " + f.styles.Label.Render("Extensions"))
	b.WriteString("\n")
	if len(f.choices) == 0 {
		b.WriteString(" " + f.styles.Subtext.Render("(no extensions in the catalog)"))
		b.WriteString("\n")
	}
	for at, choice := range f.choices {
		b.WriteString(f.renderCheckbox(extensionRowsStart+at, choice.name, choice.selected))
	}

	if f.problem != "" {
		b.WriteString("\n ")
		b.WriteString(f.styles.Error.Render(f.problem))
		b.WriteString("\n")
	}
	return b.String()
}

func (f *ProfileForm) renderToggle(row int, label string, on bool) string {
	mark := "[ ]"
	if on {
		mark = "[x]"
	}
	style := f.styles.Normal
	if row == f.cursor {
		style = f.styles.Selected
	}
	return " " + style.Render(mark+" "+label) + "\n"
}

func (f *ProfileForm) renderCheckbox(row int, label string, on bool) string {
	return f.renderToggle(row, label, on)
}

func (f *ProfileForm) Name() string {
	return "Profile editor"
}

func (f *ProfileForm) ShortHelp() string {
	return "tab/↑↓:rows space:toggle ctrl+s:save esc:cancel"
}
