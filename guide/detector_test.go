// SPDX-License-Identifier: Unlicense OR MIT

package guide

import "testing"

func TestDetectorDedup(t *testing.T) {
	for _, kind := range []Kind{Margins, ReadableContent} {
		d := detector{kind: kind}
		sample := EdgeInsets{Top: 1, Leading: 2, Bottom: 3, Trailing: 4}
		if !d.detect(sample) {
			t.Errorf("%v: first sample suppressed", kind)
		}
		if d.detect(sample) {
			t.Errorf("%v: identical sample published", kind)
		}
	}
}

func TestDetectorMarginsPublishesAnyChange(t *testing.T) {
	d := detector{kind: Margins}
	d.detect(EdgeInsets{Top: 1, Leading: 2, Bottom: 3, Trailing: 4})
	// A top/bottom-only change publishes for margins; only the
	// readable content guide has the oscillation guard.
	if !d.detect(EdgeInsets{Top: 9, Leading: 2, Bottom: 3, Trailing: 4}) {
		t.Error("margins top-only change suppressed")
	}
}

func TestDetectorOscillationGuard(t *testing.T) {
	for _, dropRejected := range []bool{false, true} {
		d := detector{kind: ReadableContent, dropRejected: dropRejected}
		a := EdgeInsets{Top: 0, Leading: 10, Bottom: 0, Trailing: 10}
		b := EdgeInsets{Top: 20, Leading: 10, Bottom: 0, Trailing: 10}
		if !d.detect(a) {
			t.Fatalf("dropRejected=%v: first sample suppressed", dropRejected)
		}
		// Top/bottom alternate while leading/trailing hold steady;
		// everything after the first sample must be suppressed.
		for i := 0; i < 6; i++ {
			s := a
			if i%2 == 0 {
				s = b
			}
			if d.detect(s) {
				t.Errorf("dropRejected=%v: oscillating sample %d published", dropRejected, i)
			}
		}
	}
}

func TestDetectorLeadingTrailingChangePublishes(t *testing.T) {
	d := detector{kind: ReadableContent}
	d.detect(EdgeInsets{Leading: 10, Trailing: 10})
	if !d.detect(EdgeInsets{Leading: 15, Trailing: 10}) {
		t.Error("leading change suppressed")
	}
	if !d.detect(EdgeInsets{Leading: 15, Trailing: 25}) {
		t.Error("trailing change suppressed")
	}
	if !d.detect(EdgeInsets{Top: 5, Leading: 20, Bottom: 5, Trailing: 20}) {
		t.Error("combined change suppressed")
	}
}

func TestDetectorRejectedBaseline(t *testing.T) {
	a := EdgeInsets{Leading: 10, Trailing: 10}
	b := EdgeInsets{Top: 20, Leading: 10, Trailing: 10}

	d := detector{kind: ReadableContent}
	d.detect(a)
	d.detect(b) // suppressed, advances the baseline
	if d.prev != b {
		t.Errorf("baseline = %+v, want suppressed sample %+v", d.prev, b)
	}

	d = detector{kind: ReadableContent, dropRejected: true}
	d.detect(a)
	d.detect(b) // suppressed, baseline stays
	if d.prev != a {
		t.Errorf("dropRejected baseline = %+v, want accepted sample %+v", d.prev, a)
	}
}
