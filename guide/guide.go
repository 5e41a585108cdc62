// SPDX-License-Identifier: Unlicense OR MIT

/*
Package guide measures the native layout guides of a platform view
and publishes them as stable inset values.

Two guides are measured: the platform layout margins and the readable
content region. Raw geometry arrives as system events, is converted to
direction-aware EdgeInsets, deduplicated, debounced and finally
published for descendant layout code to read through
[layoutguides.org/layout.Context].
*/
package guide

import "layoutguides.org/unit"

// Kind identifies one of the measured layout guides.
type Kind uint8

const (
	// Margins is the platform layout margins guide.
	Margins Kind = iota
	// ReadableContent is the platform readable content width guide.
	ReadableContent
)

// EdgeInsets is a set of insets from the edges of a rectangle,
// expressed in logical leading/trailing edges. Leading resolves to
// left under left-to-right text flow and to right under right-to-left
// text flow.
type EdgeInsets struct {
	Top, Leading, Bottom, Trailing unit.Dp
}

// Horizontal returns the sum of the leading and trailing insets.
func (e EdgeInsets) Horizontal() unit.Dp {
	return e.Leading + e.Trailing
}

// Vertical returns the sum of the top and bottom insets.
func (e EdgeInsets) Vertical() unit.Dp {
	return e.Top + e.Bottom
}

func (k Kind) String() string {
	switch k {
	case Margins:
		return "Margins"
	case ReadableContent:
		return "ReadableContent"
	default:
		panic("unexpected Kind value")
	}
}
