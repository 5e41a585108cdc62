// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"image"
	"sync"
	"time"

	"layoutguides.org/guide"
	"layoutguides.org/io/event"
	"layoutguides.org/io/system"
	"layoutguides.org/layout"
	"layoutguides.org/op"
	"layoutguides.org/unit"
)

// ErrViewDestroyed is returned by Run after a View is destroyed.
var ErrViewDestroyed = errors.New("app: view is destroyed")

// Option configures a view.
type Option func(*config)

type config struct {
	settle       time.Duration
	dropRejected bool
}

// Settle sets the debounce settle interval for guide measurement.
func Settle(d time.Duration) Option {
	return func(c *config) {
		c.settle = d
	}
}

// DropRejectedBaseline keeps the change detection baseline at the
// last published sample instead of advancing it on suppressed
// samples.
func DropRejectedBaseline() Option {
	return func(c *config) {
		c.dropRejected = true
	}
}

// A FrameEvent reports that the measured guide values changed and the
// view content should be laid out again.
type FrameEvent struct {
	// Now is the time the frame was requested.
	Now time.Time
	// Metric converts device independent dp and sp to device pixels.
	Metric unit.Metric
	// Size is the dimensions of the view in pixels.
	Size image.Point
	// Direction is the current text flow direction.
	Direction system.Direction
	// Margins and Readable are the published guide values.
	Margins, Readable guide.EdgeInsets
	// HasGuides reports whether the values come from native layout
	// guides.
	HasGuides bool
}

func (FrameEvent) ImplementsEvent() {}

// View binds a measurement session to the lifetime of one platform
// view. All session state is confined to the view's event loop
// goroutine; other goroutines reach it through Run.
type View struct {
	driver Driver

	// funcs is a channel of functions to run on the event loop.
	funcs chan func()
	out   chan event.Event
	// dead is closed when the view is destroyed.
	dead    chan struct{}
	stopped chan struct{}
	destroy sync.Once

	session *guide.Session

	metric unit.Metric
	size   image.Point
	dir    system.Direction
}

// NewView creates a view measured by the given driver and starts its
// event loop. A nil driver leaves the view inert: no guide values are
// ever published and consumers fall back to fixed-width behavior.
// Platform glue should pass nil when GuidesSupported is false.
func NewView(d Driver, options ...Option) *View {
	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}
	v := &View{
		driver:  d,
		funcs:   make(chan func(), 16),
		out:     make(chan event.Event, 1),
		dead:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	v.session = guide.NewSession(guide.Config{
		Settle:       cfg.settle,
		DropRejected: cfg.dropRejected,
	}, v.post, v.invalidate)
	go v.run()
	return v
}

// Events returns the channel of events for the view. A FrameEvent is
// delivered after every published guide change; only the most recent
// undelivered event is retained.
func (v *View) Events() <-chan event.Event {
	return v.out
}

// Run schedules f on the view's event loop. It is the only safe way
// to reach session state from another goroutine.
func (v *View) Run(f func()) error {
	select {
	case <-v.dead:
		return ErrViewDestroyed
	default:
	}
	select {
	case v.funcs <- f:
		return nil
	case <-v.dead:
		return ErrViewDestroyed
	}
}

// Destroy tears the view down. A pending debounced update is
// cancelled, never delivered. Destroy is idempotent.
func (v *View) Destroy() {
	v.destroy.Do(func() {
		close(v.dead)
	})
	<-v.stopped
}

func (v *View) run() {
	defer close(v.stopped)
	var events <-chan event.Event
	if v.driver != nil {
		events = v.driver.Events()
	}
	for {
		select {
		case e, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			v.event(e)
		case f := <-v.funcs:
			f()
		case <-v.dead:
			v.session.Event(system.DestroyEvent{})
			return
		}
	}
}

func (v *View) event(e event.Event) {
	switch e := e.(type) {
	case system.ConfigEvent:
		v.metric = e.Metric
	case system.LayoutEvent:
		v.size = image.Pt(
			v.metric.Dp(unit.Dp(e.Bounds.Dx())),
			v.metric.Dp(unit.Dp(e.Bounds.Dy())),
		)
	case system.DirectionEvent:
		v.dir = e.Direction
	}
	v.session.Event(e)
}

// post schedules f on the event loop on behalf of the session's
// debounce timer.
func (v *View) post(f func()) {
	select {
	case v.funcs <- f:
	case <-v.dead:
	}
}

// invalidate emits a FrameEvent carrying the published guide values,
// replacing any undelivered one.
func (v *View) invalidate() {
	e := FrameEvent{
		Now:       time.Now(),
		Metric:    v.metric,
		Size:      v.size,
		Direction: v.dir,
		Margins:   v.session.Insets(guide.Margins),
		Readable:  v.session.Insets(guide.ReadableContent),
		HasGuides: true,
	}
	select {
	case <-v.out:
	default:
	}
	v.out <- e
}

// NewContext is shorthand for
//
//	layout.Context{
//	  Ops: ops,
//	  Metric: e.Metric,
//	  Constraints: layout.Exact(e.Size),
//	}
//
// scoped to the guide values of e. NewContext calls ops.Reset.
func NewContext(ops *op.Ops, e FrameEvent) layout.Context {
	ops.Reset()
	gtx := layout.Context{
		Ops:         ops,
		Metric:      e.Metric,
		Locale:      system.Locale{Direction: e.Direction},
		Constraints: layout.Exact(e.Size),
	}
	if e.HasGuides {
		gtx = gtx.WithGuides(e.Margins, e.Readable)
	}
	return gtx
}
