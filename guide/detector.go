// SPDX-License-Identifier: Unlicense OR MIT

package guide

// detector decides whether a newly sampled inset value should be
// published, suppressing no-op updates per guide.
type detector struct {
	kind Kind
	prev EdgeInsets
	seen bool
	// dropRejected, when set, keeps the comparison baseline at the last
	// accepted sample instead of advancing it on suppressed samples.
	dropRejected bool
}

// detect reports whether e should be published. Suppressed samples
// still advance the comparison baseline unless dropRejected is set.
func (d *detector) detect(e EdgeInsets) bool {
	if d.seen && e == d.prev {
		return false
	}
	publish := true
	if d.kind == ReadableContent && d.seen &&
		e.Leading == d.prev.Leading && e.Trailing == d.prev.Trailing {
		// The trailing inset is known to oscillate during rotation on
		// some devices. Once leading and trailing are stable, top and
		// bottom churn alone is not worth republishing.
		publish = false
	}
	if publish || !d.dropRejected {
		d.prev = e
		d.seen = true
	}
	return publish
}
