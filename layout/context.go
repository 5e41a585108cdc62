// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"layoutguides.org/guide"
	"layoutguides.org/io/system"
	"layoutguides.org/op"
	"layoutguides.org/unit"
)

// Context carries the state needed by almost all layouts and widgets,
// including the ambient layout guide values published by the nearest
// enclosing measuring view.
//
// A Context is a value: a deep copy of it can be freely passed around,
// so nested measuring views scope their guide values without
// interfering with each other.
type Context struct {
	// Constraints track the constraints for the active widget or
	// layout.
	Constraints Constraints
	// Metric converts device independent dp and sp to device pixels.
	Metric unit.Metric
	// Locale provides language information for the current system.
	Locale system.Locale
	// Ops is the list of operations recorded during layout, consumed
	// by an external renderer.
	Ops *op.Ops

	guides guideValues
}

type guideValues struct {
	margins  guide.EdgeInsets
	readable guide.EdgeInsets
	active   bool
}

// Dp converts v to pixels.
func (c Context) Dp(v unit.Dp) int {
	return c.Metric.Dp(v)
}

// Sp converts v to pixels.
func (c Context) Sp(v unit.Sp) int {
	return c.Metric.Sp(v)
}

// WithGuides returns a copy of the Context scoped to the given guide
// values. It is called by a measuring view on behalf of its subtree;
// widgets only read.
func (c Context) WithGuides(margins, readable guide.EdgeInsets) Context {
	c.guides = guideValues{
		margins:  margins,
		readable: readable,
		active:   true,
	}
	return c
}

// MarginInsets returns the layout margins published by the nearest
// enclosing measuring view, or the zero insets if there is none.
func (c Context) MarginInsets() guide.EdgeInsets {
	return c.guides.margins
}

// ReadableInsets returns the readable content insets published by the
// nearest enclosing measuring view, or the zero insets if there is
// none.
func (c Context) ReadableInsets() guide.EdgeInsets {
	return c.guides.readable
}

// HasGuides reports whether the Context is inside a measuring view on
// a platform with native layout guides.
func (c Context) HasGuides() bool {
	return c.guides.active
}
