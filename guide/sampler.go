// SPDX-License-Identifier: Unlicense OR MIT

package guide

import (
	"layoutguides.org/f32"
	"layoutguides.org/io/system"
	"layoutguides.org/unit"
)

// ReadableInsets computes the insets separating the readable content
// region from the bounds of a view.
//
// The vertical and trailing-side distances are sign-normalized so
// that a region inside the bounds yields positive insets on every
// edge. Left and right are then mapped to leading and trailing
// according to dir, so callers can apply the result as padding
// regardless of locale.
func ReadableInsets(bounds, readable f32.Rectangle, dir system.Direction) EdgeInsets {
	top := readable.Min.Y - bounds.Min.Y
	bottom := -(readable.Max.Y - bounds.Max.Y)
	left := readable.Min.X - bounds.Min.X
	right := -(readable.Max.X - bounds.Max.X)
	if dir == system.RTL {
		left, right = right, left
	}
	return EdgeInsets{
		Top:      unit.Dp(top),
		Leading:  unit.Dp(left),
		Bottom:   unit.Dp(bottom),
		Trailing: unit.Dp(right),
	}
}

// MarginInsets converts platform layout margins to EdgeInsets. The
// platform resolves margins to logical edges before delivery, so the
// values pass through unchanged.
func MarginInsets(e system.MarginsEvent) EdgeInsets {
	return EdgeInsets{
		Top:      e.Top,
		Leading:  e.Leading,
		Bottom:   e.Bottom,
		Trailing: e.Trailing,
	}
}
