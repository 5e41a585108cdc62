// SPDX-License-Identifier: Unlicense OR MIT

package guide

import (
	"time"

	"layoutguides.org/f32"
	"layoutguides.org/io/event"
	"layoutguides.org/io/system"
)

// Config configures a measurement Session.
type Config struct {
	// Settle is the debounce settle interval. Zero means
	// DefaultSettle.
	Settle time.Duration
	// DropRejected keeps the change detection baseline at the last
	// accepted sample instead of advancing it on suppressed samples.
	DropRejected bool
}

// A Session measures the layout guides of one platform view. It is
// bound to the view's lifetime and owns the published inset values
// for both guides.
//
// Sessions are confined to the view's event loop. Event must only be
// called from it; post must execute its argument on it. The updated
// callback is invoked from the loop after every published change.
type Session struct {
	debounce debouncer
	margins  detector
	readable detector
	updated  func()

	dir        system.Direction
	bounds     f32.Rectangle
	region     f32.Rectangle
	haveLayout bool

	published [2]EdgeInsets
}

// NewSession creates a Session. post schedules a function on the
// view's event loop; updated is called after a value is published and
// may be nil.
func NewSession(cfg Config, post func(func()), updated func()) *Session {
	settle := cfg.Settle
	if settle == 0 {
		settle = DefaultSettle
	}
	s := &Session{
		debounce: debouncer{settle: settle, post: post},
		margins:  detector{kind: Margins, dropRejected: cfg.DropRejected},
		readable: detector{kind: ReadableContent, dropRejected: cfg.DropRejected},
		updated:  updated,
	}
	return s
}

// Insets returns the current published value for the guide k.
func (s *Session) Insets(k Kind) EdgeInsets {
	return s.published[k]
}

// Event processes a system event from the platform glue.
func (s *Session) Event(e event.Event) {
	switch e := e.(type) {
	case system.MarginsEvent:
		s.sampleMargins(e)
	case system.LayoutEvent:
		s.bounds = e.Bounds
		s.region = e.Readable
		s.haveLayout = true
		s.sampleReadable()
	case system.DirectionEvent:
		if e.Direction == s.dir {
			return
		}
		s.dir = e.Direction
		if s.haveLayout {
			s.sampleReadable()
		}
	case system.DestroyEvent:
		s.debounce.stop()
	}
}

func (s *Session) sampleMargins(e system.MarginsEvent) {
	ins := MarginInsets(e)
	if !s.margins.detect(ins) {
		return
	}
	s.debounce.invoke(func() {
		s.publish(Margins, ins)
	})
}

func (s *Session) sampleReadable() {
	ins := ReadableInsets(s.bounds, s.region, s.dir)
	if !s.readable.detect(ins) {
		return
	}
	s.debounce.invoke(func() {
		s.publish(ReadableContent, ins)
	})
}

func (s *Session) publish(k Kind, ins EdgeInsets) {
	s.published[k] = ins
	if s.updated != nil {
		s.updated()
	}
}
