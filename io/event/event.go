// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Event is the marker interface for events delivered by a platform
// driver to a measuring view.
type Event interface {
	ImplementsEvent()
}
