// Package view holds the display components: stateless renderers over
// records supplied by a parent container. Each component is built through
// a constructor that rejects missing required records, so a forgotten
// input fails at construction instead of rendering a blank view.
//
// Render returns plain terminal text; Markup returns the tview-colored
// form consumed by the TUI.
package view

import "errors"

var (
	ErrMissingPerson       = errors.New("view: missing required person")
	ErrMissingMessage      = errors.New("view: missing required message")
	ErrMissingConversation = errors.New("view: missing required conversation")
)
