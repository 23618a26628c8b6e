package interactive

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastType defines the flavour of a transient notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// Toast is one live notification shown at the bottom of the screen.
type Toast struct {
	Type    ToastType
	Message string
	Expires time.Time
}

// ToastMsg is sent to surface a new toast.
type ToastMsg struct {
	Type     ToastType
	Message  string
	Duration time.Duration
}

// ShowToast creates a command that surfaces a toast.
func ShowToast(message string, flavour ToastType) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Type:     flavour,
			Message:  message,
			Duration: 4 * time.Second,
		}
	}
}

func ShowErrorToast(message string) tea.Cmd {
	return ShowToast(message, ToastError)
}

func ShowSuccessToast(message string) tea.Cmd {
	return ShowToast(message, ToastSuccess)
}

func ShowInfoToast(message string) tea.Cmd {
	return ShowToast(message, ToastInfo)
}
