// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"layoutguides.org/guide"
	"layoutguides.org/io/system"
	"layoutguides.org/layout"
	"layoutguides.org/op"
	"layoutguides.org/unit"
)

// DefaultMaxWidth bounds content width on platforms without native
// readable content guides.
const DefaultMaxWidth unit.Dp = 850

// Edges is a set of logical edges.
type Edges uint8

const (
	LeadingEdge Edges = 1 << iota
	TrailingEdge
	TopEdge
	BottomEdge
)

const (
	HorizontalEdges = LeadingEdge | TrailingEdge
	VerticalEdges   = TopEdge | BottomEdge
)

// FitReadable constrains a widget to the readable content region
// published by the enclosing measuring view.
//
// On platforms without native layout guides the widget is instead
// bounded to a fixed maximum width.
type FitReadable struct {
	// Alignment positions the widget horizontally when it is narrower
	// than the available space. The zero value aligns to the leading
	// edge of the space.
	Alignment layout.Direction
	// Edges selects which insets to apply. The zero value means
	// HorizontalEdges.
	Edges Edges
	// MaxWidth is the width bound used without native guides. The
	// zero value means DefaultMaxWidth.
	MaxWidth unit.Dp
}

// FitMargins constrains a widget to the width between the layout
// margins published by the enclosing measuring view.
type FitMargins struct {
	// Alignment positions the widget horizontally when it is narrower
	// than the available space.
	Alignment layout.Direction
}

// Layout the widget w within the readable content region.
func (f FitReadable) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	if !gtx.HasGuides() {
		maxWidth := f.MaxWidth
		if maxWidth == 0 {
			maxWidth = DefaultMaxWidth
		}
		return fitWidth(gtx, gtx.Dp(maxWidth), f.Alignment, w)
	}
	edges := f.Edges
	if edges == 0 {
		edges = HorizontalEdges
	}
	in := edgeInset(gtx.ReadableInsets(), gtx.Locale.Direction, edges)
	return in.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return fitWidth(gtx, gtx.Constraints.Max.X, f.Alignment, w)
	})
}

// Layout the widget w between the layout margins.
func (f FitMargins) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	in := edgeInset(gtx.MarginInsets(), gtx.Locale.Direction, HorizontalEdges)
	return in.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return fitWidth(gtx, gtx.Constraints.Max.X, f.Alignment, w)
	})
}

// edgeInset resolves logical insets to a physical Inset for the
// selected edges. Leading resolves to left under LTR and right under
// RTL.
func edgeInset(e guide.EdgeInsets, dir system.Direction, edges Edges) layout.Inset {
	var in layout.Inset
	var leading, trailing unit.Dp
	if edges&LeadingEdge != 0 {
		leading = e.Leading
	}
	if edges&TrailingEdge != 0 {
		trailing = e.Trailing
	}
	if dir == system.RTL {
		in.Left, in.Right = trailing, leading
	} else {
		in.Left, in.Right = leading, trailing
	}
	if edges&TopEdge != 0 {
		in.Top = e.Top
	}
	if edges&BottomEdge != 0 {
		in.Bottom = e.Bottom
	}
	return in
}

// fitWidth lays out w at a maximum width of maxWidth and positions it
// per align when it comes out narrower than the available space. The
// returned dimensions span the full available width.
func fitWidth(gtx layout.Context, maxWidth int, align layout.Direction, w layout.Widget) layout.Dimensions {
	space := gtx.Constraints.Max
	cs := gtx.Constraints
	cs.Min.X = 0
	if cs.Max.X > maxWidth {
		cs.Max.X = maxWidth
	}
	gtx.Constraints = cs
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	off := align.Position(dims.Size, image.Pt(space.X, dims.Size.Y))
	op.Offset(off).Add(gtx.Ops)
	call.Add(gtx.Ops)
	op.Offset(image.Pt(-off.X, -off.Y)).Add(gtx.Ops)
	return layout.Dimensions{
		Size:     image.Pt(space.X, dims.Size.Y),
		Baseline: dims.Baseline,
	}
}
