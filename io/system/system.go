// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events delivered by the platform glue
// backing a measuring view.
package system

import (
	"layoutguides.org/f32"
	"layoutguides.org/unit"
)

// Insets is a set of insets from the edges of a rectangle, expressed
// in physical left/right edges.
type Insets struct {
	Top, Bottom, Left, Right unit.Dp
}

// A ConfigEvent is generated when the essential properties of the
// display environment change.
type ConfigEvent struct {
	// Metric converts device independent dp and sp to device pixels.
	Metric unit.Metric
}

// A MarginsEvent is generated whenever the platform's layout margins
// for the measured view change. The margins are already resolved to
// logical edges by the platform.
type MarginsEvent struct {
	Top, Leading, Bottom, Trailing unit.Dp
}

// A LayoutEvent is generated after every platform layout pass of the
// measured view. Coordinates are in dp, in the view's own coordinate
// space.
type LayoutEvent struct {
	// Bounds is the bounding box of the view.
	Bounds f32.Rectangle
	// Readable is the region the platform recommends for comfortable
	// reading width. It usually lies within Bounds.
	Readable f32.Rectangle
}

// A DirectionEvent is generated when the text-flow direction of the
// measured view changes.
type DirectionEvent struct {
	Direction Direction
}

// DestroyEvent is the last event delivered for a view. No more events
// follow it.
type DestroyEvent struct{}

func (ConfigEvent) ImplementsEvent()    {}
func (MarginsEvent) ImplementsEvent()   {}
func (LayoutEvent) ImplementsEvent()    {}
func (DirectionEvent) ImplementsEvent() {}
func (DestroyEvent) ImplementsEvent()   {}
