// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"testing"

	"layoutguides.org/guide"
	"layoutguides.org/layout"
)

func TestContextGuideDefaults(t *testing.T) {
	var gtx layout.Context
	if gtx.HasGuides() {
		t.Error("zero Context reports guides")
	}
	if got := gtx.MarginInsets(); got != (guide.EdgeInsets{}) {
		t.Errorf("margin insets outside a measuring view = %+v, want zero", got)
	}
	if got := gtx.ReadableInsets(); got != (guide.EdgeInsets{}) {
		t.Errorf("readable insets outside a measuring view = %+v, want zero", got)
	}
}

func TestContextWithGuides(t *testing.T) {
	var gtx layout.Context
	margins := guide.EdgeInsets{Leading: 16, Trailing: 16}
	readable := guide.EdgeInsets{Leading: 40, Trailing: 40}
	scoped := gtx.WithGuides(margins, readable)
	if !scoped.HasGuides() {
		t.Error("scoped Context reports no guides")
	}
	if got := scoped.MarginInsets(); got != margins {
		t.Errorf("margin insets = %+v, want %+v", got, margins)
	}
	if got := scoped.ReadableInsets(); got != readable {
		t.Errorf("readable insets = %+v, want %+v", got, readable)
	}
	// The original is unaffected: guide scoping has value semantics.
	if gtx.HasGuides() {
		t.Error("scoping leaked into the original Context")
	}
}

func TestContextNestedGuides(t *testing.T) {
	outer := layout.Context{}.WithGuides(
		guide.EdgeInsets{Leading: 8},
		guide.EdgeInsets{Leading: 80},
	)
	inner := outer.WithGuides(
		guide.EdgeInsets{Leading: 4},
		guide.EdgeInsets{Leading: 40},
	)
	if got := inner.MarginInsets().Leading; got != 4 {
		t.Errorf("inner margin leading = %v, want 4", got)
	}
	if got := outer.MarginInsets().Leading; got != 8 {
		t.Errorf("outer margin leading = %v, want 8", got)
	}
}
