package interactive

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gemdeck/gemdeck/common"
	"github.com/gemdeck/gemdeck/launcher"
	"github.com/gemdeck/gemdeck/settings"
	"github.com/gemdeck/gemdeck/storage"
	"github.com/gemdeck/gemdeck/xviper"
)

// ViewType enumerates the closed set of top-level screens.
type ViewType int

const (
	ViewExtensions ViewType = iota
	ViewProfiles
)

var viewNames = []string{"extensions", "profiles"}

// Deps carries the explicitly constructed collaborators of the UI; there
// is no ambient global configuration.
type Deps struct {
	Store    *storage.Store
	Launcher *launcher.Launcher
	Config   *settings.Settings
}

// App is the view manager: it owns exactly one active view, an optional
// modal form over it, and is the sole router of input events.
type App struct {
	deps   Deps
	styles *Styles

	views  []View
	active ViewType
	modal  View

	width  int
	height int

	spinner   spinner.Model
	startTime time.Time
	quitting  bool
	showHelp  bool

	showConfirm   bool
	confirmPrompt string
	pendingDelete *deleteRequestMsg

	toasts []Toast
}

func NewApp(deps Deps) *App {
	styles := NewStyles(DefaultTheme())

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	s.Style = styles.Spinner

	app := &App{
		deps:      deps,
		styles:    styles,
		active:    ViewExtensions,
		width:     120,
		height:    30,
		spinner:   s,
		startTime: time.Now(),
	}
	if xviper.LastActiveView() == viewNames[ViewProfiles] {
		app.active = ViewProfiles
	}
	app.views = []View{
		NewExtensionsView(deps, styles),
		NewProfilesView(deps, styles),
	}
	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick, a.tickCmd(), a.frameCmd()}
	for _, view := range a.views {
		if cmd := view.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// tickCmd schedules the next periodic poll event. Tick and frame are
// decoupled producers; a slow frame never delays a tick.
func (a *App) tickCmd() tea.Cmd {
	return tea.Tick(a.deps.Config.TickInterval(), func(at time.Time) tea.Msg {
		return tickMsg(at)
	})
}

func (a *App) frameCmd() tea.Cmd {
	return tea.Tick(a.deps.Config.FrameInterval(), func(at time.Time) tea.Msg {
		return frameMsg(at)
	})
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tickMsg:
		cmds = append(cmds, a.tickCmd())

	case frameMsg:
		a.expireToasts(time.Time(msg))
		cmds = append(cmds, a.frameCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ToastMsg:
		a.toasts = append(a.toasts, Toast{
			Type:    msg.Type,
			Message: msg.Message,
			Expires: time.Now().Add(msg.Duration),
		})
		return a, nil

	case openFormMsg:
		a.modal = msg.form
		return a, a.modal.Init()

	case formSavedMsg:
		a.modal = nil
		cmds = append(cmds, ShowSuccessToast(fmt.Sprintf("Saved %s %q", strings.TrimSuffix(msg.kind, "s"), msg.name)))
		cmds = append(cmds, func() tea.Msg { return reloadMsg{} })
		return a, tea.Batch(cmds...)

	case formCancelledMsg:
		a.modal = nil
		return a, nil

	case deleteRequestMsg:
		request := msg
		a.pendingDelete = &request
		a.showConfirm = true
		a.confirmPrompt = fmt.Sprintf("Delete %s '%s'?", strings.TrimSuffix(msg.kind, "s"), msg.name)
		return a, nil

	case launchRequestMsg:
		return a, a.launchCmd(msg.profile)

	case launchFinishedMsg:
		if msg.err != nil {
			return a, ShowErrorToast(fmt.Sprintf("Launch failed: %v", msg.err))
		}
		return a, ShowSuccessToast(fmt.Sprintf("Launched %q (pid %d)", msg.profileName, msg.pid))

	case tea.KeyMsg:
		if a.showConfirm {
			return a.updateConfirm(msg)
		}
		if a.modal != nil {
			if key.Matches(msg, keys.Quit) && msg.String() == "ctrl+c" {
				a.quitting = true
				return a, tea.Quit
			}
			modal, cmd := a.modal.Update(msg)
			a.modal = modal
			return a, cmd
		}
		if handled, cmd := a.updateGlobalKeys(msg); handled {
			return a, cmd
		}
		// Key events go only to the active view.
		view, cmd := a.views[a.active].Update(msg)
		a.views[a.active] = view
		return a, cmd
	}

	// Non-key messages are broadcast so async results reach every view.
	for at := range a.views {
		view, cmd := a.views[at].Update(msg)
		a.views[at] = view
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if a.modal != nil {
		modal, cmd := a.modal.Update(msg)
		a.modal = modal
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return a, tea.Batch(cmds...)
}

func (a *App) capturingInput() bool {
	if capturer, ok := a.views[a.active].(inputCapturer); ok {
		return capturer.CapturingInput()
	}
	return false
}

func (a *App) updateGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return true, a.quit()
	}
	if a.capturingInput() {
		return false, nil
	}
	switch {
	case key.Matches(msg, keys.Quit):
		return true, a.quit()
	case key.Matches(msg, keys.Help):
		a.showHelp = !a.showHelp
		return true, nil
	case key.Matches(msg, keys.ViewExtensions):
		return true, a.switchTo(ViewExtensions)
	case key.Matches(msg, keys.ViewProfiles):
		return true, a.switchTo(ViewProfiles)
	case key.Matches(msg, keys.NextTab):
		next := (a.active + 1) % ViewType(len(a.views))
		return true, a.switchTo(next)
	}
	if a.showHelp {
		a.showHelp = false
		return true, nil
	}
	return false, nil
}

func (a *App) quit() tea.Cmd {
	a.quitting = true
	xviper.RememberActiveView(viewNames[a.active])
	return tea.Quit
}

func (a *App) switchTo(target ViewType) tea.Cmd {
	if a.active == target {
		return nil
	}
	previous := a.active
	a.active = target
	return func() tea.Msg { return viewChangedMsg{from: previous, to: target} }
}

func (a *App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		a.showConfirm = false
		request := a.pendingDelete
		a.pendingDelete = nil
		if request == nil {
			return a, nil
		}
		return a, a.performDelete(*request)
	case "n", "N", "esc", "q":
		a.showConfirm = false
		a.pendingDelete = nil
		return a, nil
	}
	return a, nil
}

// performDelete mutates the catalog synchronously on the update thread;
// the storage call is never overlapped with another write.
func (a *App) performDelete(request deleteRequestMsg) tea.Cmd {
	var err error
	switch request.kind {
	case storage.KindExtension:
		err = a.deps.Store.DeleteExtension(request.id)
	case storage.KindProfile:
		err = a.deps.Store.DeleteProfile(request.id)
	}
	if err != nil {
		return ShowErrorToast(fmt.Sprintf("Delete failed: %v", err))
	}
	return tea.Batch(
		ShowSuccessToast(fmt.Sprintf("Deleted %q", request.name)),
		func() tea.Msg { return reloadMsg{} },
	)
}

// launchCmd starts the tool off the update thread. The launcher detaches
// the child and watches it in the background; only the outcome message
// returns here.
func (a *App) launchCmd(profile *storage.Profile) tea.Cmd {
	return func() tea.Msg {
		launched, err := a.deps.Launcher.Launch(profile)
		result := launchFinishedMsg{profileId: profile.Id, profileName: profile.Name, err: err}
		if err == nil {
			result.pid = launched.Pid
			xviper.RecordLaunch(profile.Id)
		}
		return result
	}
}

func (a *App) expireToasts(now time.Time) {
	alive := a.toasts[:0]
	for _, toast := range a.toasts {
		if toast.Expires.After(now) {
			alive = append(alive, toast)
		}
	}
	a.toasts = alive
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	headerHeight := 3
	menuHeight := 3
	contentHeight := a.height - headerHeight - menuHeight

	header := a.renderHeader()
	var content string
	switch {
	case a.showConfirm:
		content = a.renderConfirmDialog(contentHeight)
	case a.showHelp:
		content = a.renderHelp(contentHeight)
	case a.modal != nil:
		content = a.renderContent(a.modal.View(), contentHeight)
	default:
		content = a.renderContent(a.views[a.active].View(), contentHeight)
	}
	menu := a.renderMenu()

	return lipgloss.JoinVertical(lipgloss.Left, header, content, menu)
}

func (a *App) renderHeader() string {
	logo := lipgloss.JoinHorizontal(lipgloss.Center,
		a.spinner.View(),
		a.styles.Title.Render(" gemdeck "),
		a.styles.Subtext.Render("launch deck"),
	)
	status := a.styles.Subtext.Render("ver:") + a.styles.Text.Render(common.Version) +
		a.styles.Subtext.Render(" up:") + a.styles.Text.Render(time.Since(a.startTime).Round(time.Second).String()) + " "

	gap := a.width - lipgloss.Width(logo) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logo, strings.Repeat(" ", gap), status)

	tabs := a.renderTabBar()
	divider := a.styles.Divider.Render(strings.Repeat("─", a.width))

	return lipgloss.JoinVertical(lipgloss.Left, topRow, tabs, divider)
}

// renderTabBar shows the two top-level sections with the active one
// highlighted. The bar itself is stateless; a.active carries the state.
func (a *App) renderTabBar() string {
	parts := make([]string, 0, len(a.views))
	for at, view := range a.views {
		label := fmt.Sprintf(" %d:%s ", at+1, view.Name())
		if ViewType(at) == a.active {
			parts = append(parts, a.styles.TabActive.Render(label))
		} else {
			parts = append(parts, a.styles.TabInactive.Render(label))
		}
	}
	return " " + strings.Join(parts, " ")
}

func (a *App) renderContent(content string, height int) string {
	return lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		PaddingLeft(1).
		PaddingRight(1).
		Render(content)
}

func (a *App) renderConfirmDialog(height int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString("    " + a.styles.Warning.Render(a.confirmPrompt))
	b.WriteString("\n\n")
	b.WriteString("    " + a.styles.HelpKey.Render("<y/Enter>") + " " + a.styles.HelpDesc.Render("Yes"))
	b.WriteString("    " + a.styles.HelpKey.Render("<n/Esc>") + " " + a.styles.HelpDesc.Render("No"))
	return a.renderContent(b.String(), height)
}

func (a *App) renderHelp(height int) string {
	var b strings.Builder
	section := func(title string, entries []KeyHint) {
		b.WriteString(a.styles.Title.Render("    " + title))
		b.WriteString("\n\n")
		for _, entry := range entries {
			b.WriteString("      " + a.styles.HelpKey.Render("<"+entry.Key+">") + " " + a.styles.HelpDesc.Render(entry.Desc) + "\n")
		}
		b.WriteString("\n")
	}
	section("Navigation", []KeyHint{
		{"1", "Extensions catalog"},
		{"2", "Launch profiles"},
		{"tab", "Next tab"},
		{"j/↓ k/↑", "Move selection"},
	})
	section("Actions", []KeyHint{
		{"n", "New entity"},
		{"e/Enter", "Edit selected"},
		{"d", "Delete (asks first)"},
		{"r", "Launch selected profile"},
		{"D", "Mark profile as default"},
		{"/", "Search"},
		{"R", "Refresh from disk"},
	})
	section("Global", []KeyHint{
		{"?", "Toggle this help"},
		{"q", "Quit"},
		{"Ctrl+C", "Force quit"},
	})
	return a.renderContent(b.String(), height)
}

func (a *App) renderMenu() string {
	divider := a.styles.Divider.Render(strings.Repeat("─", a.width))
	hints := a.styles.HelpDesc.Render(a.currentShortHelp())
	row := " " + hints
	if len(a.toasts) > 0 {
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, "  ", a.renderToasts())
	}
	return lipgloss.JoinVertical(lipgloss.Left, divider, row)
}

func (a *App) currentShortHelp() string {
	if a.modal != nil {
		return a.modal.ShortHelp()
	}
	return a.views[a.active].ShortHelp() + "  |  1/2:tabs ?:help q:quit"
}

func (a *App) renderToasts() string {
	parts := make([]string, 0, len(a.toasts))
	for _, toast := range a.toasts {
		style := a.styles.ToastInfo
		switch toast.Type {
		case ToastSuccess:
			style = a.styles.ToastSuccess
		case ToastWarning:
			style = a.styles.ToastWarning
		case ToastError:
			style = a.styles.ToastError
		}
		parts = append(parts, style.Render(truncate(toast.Message, 60)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Run starts the interactive session. The bubbletea program owns the
// terminal and restores it on every exit path.
func Run(deps Deps) error {
	program := tea.NewProgram(
		NewApp(deps),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := program.Run()
	return err
}
