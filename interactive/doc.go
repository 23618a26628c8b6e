// Package interactive implements the gemdeck terminal UI: a tab bar over
// the extension and profile catalogs, modal forms for editing entities,
// and launch/delete actions routed through a single event loop.
//
// The bubbletea program is the session loop: terminal input, a periodic
// tick and a periodic frame message arrive as one ordered stream, and all
// catalog and UI mutation happens inside Update on that single logical
// thread. Key events go only to the modal form or the active view; other
// messages are broadcast so background loads reach every view.
package interactive
