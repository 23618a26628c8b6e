package interactive

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gemdeck/gemdeck/storage"
	"github.com/google/shlex"
	"github.com/google/uuid"
)

const (
	extFieldName = iota
	extFieldVersion
	extFieldDescription
	extFieldServerCommand
	extFieldServerArgs
	extFieldContext
	extFieldCount
)

var extFieldLabels = [extFieldCount]string{
	"Name",
	"Version",
	"Description",
	"Server command",
	"Server args",
	"Context (GEMINI.md)",
}

// ExtensionForm is the modal editor for one extension. It edits a copy;
// nothing touches the catalog until the save action succeeds.
type ExtensionForm struct {
	deps   Deps
	styles *Styles

	original *storage.Extension
	inputs   [extFieldCount]textinput.Model
	focus    int
	problem  string
}

// NewExtensionForm builds the form. A nil original means a new extension
// with a fresh identity.
func NewExtensionForm(deps Deps, styles *Styles, original *storage.Extension) *ExtensionForm {
	form := &ExtensionForm{
		deps:     deps,
		styles:   styles,
		original: original,
	}
	for at := range form.inputs {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 200
		form.inputs[at] = input
	}
	form.inputs[extFieldContext].CharLimit = 2000

	if original != nil {
		form.inputs[extFieldName].SetValue(original.Name)
		form.inputs[extFieldVersion].SetValue(original.Version)
		form.inputs[extFieldDescription].SetValue(original.Description)
		if server, ok := original.McpServers["default"]; ok {
			form.inputs[extFieldServerCommand].SetValue(server.Command)
			form.inputs[extFieldServerArgs].SetValue(strings.Join(server.Args, " "))
		}
		form.inputs[extFieldContext].SetValue(original.Context)
	} else {
		form.inputs[extFieldVersion].SetValue("0.1.0")
	}
	return form
}

func (f *ExtensionForm) Init() tea.Cmd {
	return f.inputs[f.focus].Focus()
}

func (f *ExtensionForm) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch keyMsg.String() {
	case "esc":
		return f, func() tea.Msg { return formCancelledMsg{} }
	case "enter":
		if f.focus == extFieldCount-1 {
			return f, f.save()
		}
		return f, f.moveFocus(f.focus + 1)
	case "ctrl+s":
		return f, f.save()
	case "tab", "down":
		return f, f.moveFocus(f.focus + 1)
	case "shift+tab", "up":
		return f, f.moveFocus(f.focus - 1)
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(keyMsg)
	return f, cmd
}

// moveFocus shifts the field cursor without wrapping at either edge.
func (f *ExtensionForm) moveFocus(target int) tea.Cmd {
	if target < 0 || target >= extFieldCount {
		return nil
	}
	f.inputs[f.focus].Blur()
	f.focus = target
	return f.inputs[f.focus].Focus()
}

func (f *ExtensionForm) save() tea.Cmd {
	extension, err := f.collect()
	if err != nil {
		f.problem = err.Error()
		return nil
	}
	if err := f.deps.Store.SaveExtension(extension); err != nil {
		f.problem = err.Error()
		return nil
	}
	saved := formSavedMsg{kind: storage.KindExtension, id: extension.Id, name: extension.Name}
	return func() tea.Msg { return saved }
}

// collect validates the field values and assembles the record to store.
func (f *ExtensionForm) collect() (*storage.Extension, error) {
	name := strings.TrimSpace(f.inputs[extFieldName].Value())
	version := strings.TrimSpace(f.inputs[extFieldVersion].Value())
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if version == "" {
		return nil, fmt.Errorf("version is required")
	}

	extension := &storage.Extension{
		Id:          uuid.NewString(),
		Name:        name,
		Version:     version,
		Description: strings.TrimSpace(f.inputs[extFieldDescription].Value()),
		McpServers:  map[string]storage.McpServer{},
		Context:     f.inputs[extFieldContext].Value(),
	}
	if f.original != nil {
		extension.Id = f.original.Id
		for label, server := range f.original.McpServers {
			if label != "default" {
				extension.McpServers[label] = server
			}
		}
	}

	command := strings.TrimSpace(f.inputs[extFieldServerCommand].Value())
	if command != "" {
		args, err := shlex.Split(f.inputs[extFieldServerArgs].Value())
		if err != nil {
			return nil, fmt.Errorf("server args: %w", err)
		}
		extension.McpServers["default"] = storage.McpServer{Command: command, Args: args}
	}
	return extension, nil
}

func (f *ExtensionForm) View() string {
	var b strings.Builder
	title := "New extension"
	if f.original != nil {
		title = fmt.Sprintf("Edit extension %q", f.original.Name)
	}
	b.WriteString(f.styles.Title.Render(" " + title))
	b.WriteString("\n\n")

	for at := range f.inputs {
		label := f.styles.FieldLabel
		if at == f.focus {
			label = f.styles.FieldLabelActive
		}
		b.WriteString(" " + label.Render(fmt.Sprintf("%-20s", extFieldLabels[at])))
		b.WriteString(f.inputs[at].View())
		b.WriteString("\n")
	}

	if f.problem != "" {
		b.WriteString("\n ")
		b.WriteString(f.styles.Error.Render(f.problem))
		b.WriteString("\n")
	}
	return b.String()
}

func (f *ExtensionForm) Name() string {
	return "Extension editor"
}

func (f *ExtensionForm) ShortHelp() string {
	return "tab/↑↓:fields enter:next ctrl+s:save esc:cancel"
}
