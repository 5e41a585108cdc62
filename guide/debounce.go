// SPDX-License-Identifier: Unlicense OR MIT

package guide

import "time"

// DefaultSettle is the default debounce settle interval.
const DefaultSettle = 10 * time.Millisecond

// debouncer coalesces bursts of geometry changes into at most one
// execution per settle interval, firing immediately when idle.
//
// A debouncer is confined to the view's event loop: invoke and stop
// must only be called from it, and post must execute its argument on
// it. Only the timer itself runs elsewhere.
type debouncer struct {
	settle time.Duration
	post   func(func())

	timer   *time.Timer
	pending bool
	// gen invalidates timers that fire after being superseded. A
	// stopped time.Timer may already have fired; the posted closure
	// checks gen before touching state.
	gen uint64
}

// invoke runs op now if the debouncer is idle, or schedules it to run
// after the settle interval, superseding any previously scheduled
// operation.
func (d *debouncer) invoke(op func()) {
	if !d.pending {
		d.pending = true
		op()
		// Hold the slot for a settle interval so that a burst
		// following the immediate execution coalesces.
		d.arm(nil)
		return
	}
	d.timer.Stop()
	d.arm(op)
}

func (d *debouncer) arm(op func()) {
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.settle, func() {
		d.post(func() {
			if gen != d.gen {
				return
			}
			d.pending = false
			if op != nil {
				op()
			}
		})
	})
}

// stop cancels any scheduled operation and resets the slot.
func (d *debouncer) stop() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.pending = false
}
