// SPDX-License-Identifier: Unlicense OR MIT

// Package app implements measuring views: the binding between one
// platform view and the measurement of its layout guides.
package app

import "layoutguides.org/io/event"

// A Driver delivers the geometry events of one platform view. It is
// implemented by the platform glue on targets with native layout
// guides; see GuidesSupported.
type Driver interface {
	// Events returns the channel the driver delivers its events on.
	// The driver closes it after a system.DestroyEvent.
	Events() <-chan event.Event
}
