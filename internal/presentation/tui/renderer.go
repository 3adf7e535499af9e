package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// With colored false the "notty" style is used, which keeps the layout
// but emits no escape sequences.
func NewRenderer(colored bool) func(string) (string, error) {
	style := glamour.WithAutoStyle() // Automatically detect light/dark background
	if !colored {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
