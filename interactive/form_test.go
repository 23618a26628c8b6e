package interactive

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gemdeck/gemdeck/hamlet"
	"github.com/gemdeck/gemdeck/storage"
)

func typeText(form View, text string) View {
	for _, r := range text {
		form, _ = form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return form
}

func TestExtensionFormCursorDoesNotWrap(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	form := NewExtensionForm(testDeps(t), NewStyles(DefaultTheme()), nil)
	form.Init()

	form.Update(tea.KeyMsg{Type: tea.KeyUp})
	must_be.Equal(0, form.focus)
	form.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	must_be.Equal(0, form.focus)

	for at := 0; at < extFieldCount+3; at++ {
		form.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	must_be.Equal(extFieldCount-1, form.focus)
}

func TestExtensionFormRequiresNameAndVersion(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	form := NewExtensionForm(testDeps(t), NewStyles(DefaultTheme()), nil)
	form.Init()

	// version is prefilled, name is not
	cmd := form.save()
	must_be.True(cmd == nil)
	must_be.Equal("name is required", form.problem)

	typeText(form, "docs helper")
	cmd = form.save()
	wont_be.Nil(cmd)
	saved, ok := cmd().(formSavedMsg)
	must_be.True(ok)
	must_be.Equal(storage.KindExtension, saved.kind)
	must_be.Equal("docs helper", saved.name)
	wont_be.Equal("", saved.id)
}

func TestExtensionFormParsesServerArgs(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	deps := testDeps(t)
	form := NewExtensionForm(deps, NewStyles(DefaultTheme()), nil)
	form.inputs[extFieldName].SetValue("runner")
	form.inputs[extFieldServerCommand].SetValue("npx")
	form.inputs[extFieldServerArgs].SetValue(`-y "@scope/server name" --port 9000`)

	extension, err := form.collect()
	must_be.Nil(err)
	server := extension.McpServers["default"]
	must_be.Equal("npx", server.Command)
	must_be.Equal([]string{"-y", "@scope/server name", "--port", "9000"}, server.Args)
}

func TestExtensionFormEditKeepsIdentity(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	original := &storage.Extension{Id: "ext-1", Name: "old name", Version: "1.2.3"}
	form := NewExtensionForm(testDeps(t), NewStyles(DefaultTheme()), original)

	extension, err := form.collect()
	must_be.Nil(err)
	must_be.Equal("ext-1", extension.Id)
	must_be.Equal("old name", extension.Name)
	must_be.Equal("1.2.3", extension.Version)
}

func TestProfileFormParsesEnvironmentEntries(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	parsed, err := parseEnvironment("API_KEY=secret;MODE=fast ; EMPTY=")
	must_be.Nil(err)
	must_be.Equal("secret", parsed["API_KEY"])
	must_be.Equal("fast", parsed["MODE"])
	must_be.Equal("", parsed["EMPTY"])

	_, err = parseEnvironment("NOT_AN_ENTRY")
	wont_be.Nil(err)
}

func TestProfileFormRoundTripsEnvironmentText(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	text := formatEnvironment(map[string]string{"B": "2", "A": "1"})
	must_be.Equal("A=1;B=2", text)
}

func TestProfileFormTogglesAndChoices(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	form := NewProfileForm(testDeps(t), NewStyles(DefaultTheme()), nil)
	form.Init()
	form.Update(extensionChoicesMsg{choices: []extensionChoice{
		{id: "e1", name: "one"},
		{id: "e2", name: "two"},
	}})
	form.inputs[profFieldName].SetValue("daily")

	// defaults before any toggling
	must_be.True(!form.cleanLaunch)
	must_be.True(form.cleanupOnExit)

	// walk to the clean-launch toggle and flip it
	for form.cursor != toggleCleanLaunch {
		form.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	form.Update(tea.KeyMsg{Type: tea.KeySpace})
	must_be.True(form.cleanLaunch)

	// select the second extension only
	for form.cursor != extensionRowsStart+1 {
		form.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	form.Update(tea.KeyMsg{Type: tea.KeySpace})

	profile, err := form.collect()
	must_be.Nil(err)
	must_be.Equal([]string{"e2"}, profile.ExtensionIds)
	must_be.True(profile.LaunchConfig.CleanLaunch)
	must_be.True(profile.LaunchConfig.CleanupOnExit)
}

func TestProfileFormRequiresName(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	form := NewProfileForm(testDeps(t), NewStyles(DefaultTheme()), nil)
	_, err := form.collect()
	must_be.Equal("name is required", err.Error())
}

func TestProfileFormCursorDoesNotWrap(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	form := NewProfileForm(testDeps(t), NewStyles(DefaultTheme()), nil)
	form.Init()
	form.Update(extensionChoicesMsg{choices: []extensionChoice{{id: "e1", name: "one"}}})

	form.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	must_be.Equal(0, form.cursor)

	last := form.rowCount() - 1
	for at := 0; at < form.rowCount()+3; at++ {
		form.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	must_be.Equal(last, form.cursor)
}
