// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements measurement of user interface elements under
constraints, and carries the ambient layout guide values published by
a measuring view down through the element tree.

All layout functions are pure measurement: the only side effect is the
offset operations they record into the Context's Ops list for an
external renderer.
*/
package layout

import (
	"image"

	"layoutguides.org/op"
	"layoutguides.org/unit"
)

// Constraints represent the minimum and maximum size of a widget.
//
// A widget must have a size between Min and Max, both inclusive.
type Constraints struct {
	Min, Max image.Point
}

// Dimensions are the resolved size and baseline for a widget.
//
// Baseline is the distance from the bottom of a widget to the
// baseline of any text it contains.
type Dimensions struct {
	Size     image.Point
	Baseline int
}

// Widget is a function scope for drawing, processing events and
// computing dimensions for a user interface element.
type Widget func(gtx Context) Dimensions

// Exact returns the Constraints with the minimum and maximum size
// set to size.
func Exact(size image.Point) Constraints {
	return Constraints{
		Min: size, Max: size,
	}
}

// Constrain a size so each dimension is in the range [min;max].
func (c Constraints) Constrain(size image.Point) image.Point {
	if min := c.Min.X; size.X < min {
		size.X = min
	}
	if min := c.Min.Y; size.Y < min {
		size.Y = min
	}
	if max := c.Max.X; size.X > max {
		size.X = max
	}
	if max := c.Max.Y; size.Y > max {
		size.Y = max
	}
	return size
}

// Direction is the alignment of widgets relative to a containing
// space.
type Direction uint8

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	Center
)

// Position calculates the offset of a widget of size sized
// aligned within a space of size space.
func (d Direction) Position(size, space image.Point) image.Point {
	var p image.Point

	switch d {
	case N, S, Center:
		p.X = (space.X - size.X) / 2
	case NE, SE, E:
		p.X = space.X - size.X
	}

	switch d {
	case W, Center, E:
		p.Y = (space.Y - size.Y) / 2
	case SW, S, SE:
		p.Y = space.Y - size.Y
	}

	return p
}

// Inset adds space around a widget by decreasing its maximum
// constraints. The minimum constraints will be adjusted to ensure
// they do not exceed the maximum.
type Inset struct {
	Top, Bottom, Left, Right unit.Dp
}

// Layout a widget.
func (in Inset) Layout(gtx Context, w Widget) Dimensions {
	top := gtx.Dp(in.Top)
	right := gtx.Dp(in.Right)
	bottom := gtx.Dp(in.Bottom)
	left := gtx.Dp(in.Left)
	mcs := gtx.Constraints
	mcs.Max.X -= left + right
	if mcs.Max.X < 0 {
		left = 0
		right = 0
		mcs.Max.X = 0
	}
	if mcs.Min.X > mcs.Max.X {
		mcs.Min.X = mcs.Max.X
	}
	mcs.Max.Y -= top + bottom
	if mcs.Max.Y < 0 {
		bottom = 0
		top = 0
		mcs.Max.Y = 0
	}
	if mcs.Min.Y > mcs.Max.Y {
		mcs.Min.Y = mcs.Max.Y
	}
	gtx.Constraints = mcs
	op.Offset(image.Pt(left, top)).Add(gtx.Ops)
	dims := w(gtx)
	op.Offset(image.Pt(-left, -top)).Add(gtx.Ops)
	return Dimensions{
		Size:     dims.Size.Add(image.Pt(left+right, top+bottom)),
		Baseline: dims.Baseline + bottom,
	}
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v unit.Dp) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case Center:
		return "Center"
	default:
		panic("unreachable")
	}
}
