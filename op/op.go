// SPDX-License-Identifier: Unlicense OR MIT

/*
Package op implements operations for updating a user interface.

The layout packages of this module perform measurement only; the
operations recorded in an Ops list describe where measured content
should be placed and are consumed by an external renderer.
*/
package op

import "image"

// Ops holds a list of operations. Operations are stored in
// the order they were added.
type Ops struct {
	ops []Op
}

// Op is a single recorded operation.
type Op struct {
	// Offset translates the origin of all subsequent operations.
	Offset image.Point
}

// Offset returns an Op that translates the position of
// following operations by off.
func Offset(off image.Point) Op {
	return Op{Offset: off}
}

// Add the operation to the list of operations.
func (op Op) Add(o *Ops) {
	o.ops = append(o.ops, op)
}

// Reset the Ops, preparing it for re-use. Reset invalidates
// any recorded operations.
func (o *Ops) Reset() {
	o.ops = o.ops[:0]
}

// List returns the recorded operations, in order. The returned
// slice is only valid until the next Add or Reset.
func (o *Ops) List() []Op {
	return o.ops
}

// MacroOp records a list of operations for later use.
type MacroOp struct {
	ops   *Ops
	start int
}

// CallOp replays the operations recorded by a macro.
type CallOp struct {
	ops []Op
}

// Record a macro of operations. Operations added to o before the
// matching Stop are removed from o and captured by the macro.
func Record(o *Ops) MacroOp {
	return MacroOp{ops: o, start: len(o.ops)}
}

// Stop ends a previously started recording and returns an operation
// for replaying it.
func (m MacroOp) Stop() CallOp {
	saved := append([]Op(nil), m.ops.ops[m.start:]...)
	m.ops.ops = m.ops.ops[:m.start]
	return CallOp{ops: saved}
}

// Add the recorded operations to the list of operations.
func (c CallOp) Add(o *Ops) {
	o.ops = append(o.ops, c.ops...)
}
