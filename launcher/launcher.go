// Package launcher turns a profile into a running external tool inside a
// disposable, reproducible workspace.
package launcher

import (
	"github.com/gemdeck/gemdeck/settings"
	"github.com/gemdeck/gemdeck/storage"
)

type Launcher struct {
	store  *storage.Store
	config *settings.Settings
}

func New(store *storage.Store, config *settings.Settings) *Launcher {
	return &Launcher{store: store, config: config}
}
