// Package navigate turns a resolved location list into a jump, a notice, or
// an interactive pick. All UI is behind injected sinks so the controller
// itself stays a pure decision layer.
package navigate

import (
	"fmt"
	"log"

	"github.com/pableur/symnav/symbol"
)

// OpenOptions control how a location is opened.
type OpenOptions struct {
	// Transient marks a preview open that must not disturb the user's
	// working state, e.g. while a picker entry is highlighted.
	Transient bool
}

// Opener jumps to a location. Implementations spawn an editor, print a
// target, or drive an editor protocol.
type Opener interface {
	Open(loc symbol.Location, opts OpenOptions) error
}

// Notifier shows a transient, non-blocking status message.
type Notifier interface {
	Status(msg string)
}

// Picker presents an ordered selection list. It returns the chosen index, or
// a negative index when the user cancelled. Highlight previews and
// cancel-time restoration are the picker's own responsibility.
type Picker interface {
	Pick(sym string, locations []symbol.Location) (int, error)
}

// Controller routes resolver output to the right sink.
type Controller struct {
	Opener   Opener
	Notifier Notifier
	Picker   Picker
	Logger   *log.Logger
}

// Navigate applies the 0/1/many policy: no locations is a notice, a single
// location is a direct jump, and anything more goes through the picker
// exactly once. Cancelling the picker leaves the user where they were.
func (c *Controller) Navigate(sym string, locations []symbol.Location) error {
	switch len(locations) {
	case 0:
		if c.Notifier != nil {
			c.Notifier.Status("Unable to find " + sym)
		}
		return nil
	case 1:
		return c.Opener.Open(locations[0], OpenOptions{})
	}
	idx, err := c.Picker.Pick(sym, locations)
	if err != nil {
		return fmt.Errorf("pick %s: %w", sym, err)
	}
	if idx < 0 {
		if c.Logger != nil {
			c.Logger.Printf("navigation to %s cancelled", sym)
		}
		return nil
	}
	return c.Opener.Open(locations[idx], OpenOptions{})
}
