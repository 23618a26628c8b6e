package interactive

import (
	"time"

	"github.com/gemdeck/gemdeck/storage"
)

// tickMsg is the periodic poll event; views refresh derived state on it.
type tickMsg time.Time

// frameMsg drives redraw-only concerns (toast expiry). Its rate is
// independent from the tick rate.
type frameMsg time.Time

// reloadMsg tells every list view to reread the catalog.
type reloadMsg struct{}

// viewChangedMsg is broadcast when the active tab changes.
type viewChangedMsg struct {
	from ViewType
	to   ViewType
}

// openFormMsg asks the app to layer a modal form over the current view.
type openFormMsg struct {
	form View
}

// formSavedMsg closes the modal after a successful save.
type formSavedMsg struct {
	kind string
	id   string
	name string
}

// formCancelledMsg closes the modal without saving.
type formCancelledMsg struct{}

// deleteRequestMsg asks the app for a confirmed catalog delete.
type deleteRequestMsg struct {
	kind string
	id   string
	name string
}

// launchRequestMsg escalates a launch action to the launcher.
type launchRequestMsg struct {
	profile *storage.Profile
}

// launchFinishedMsg reports the outcome of a (detached) launch attempt.
type launchFinishedMsg struct {
	profileId   string
	profileName string
	pid         int
	err         error
}
