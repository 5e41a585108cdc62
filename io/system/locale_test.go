// SPDX-License-Identifier: Unlicense OR MIT

package system_test

import (
	"testing"

	"layoutguides.org/io/system"
)

func TestLocaleFor(t *testing.T) {
	tests := []struct {
		lang string
		want system.Direction
	}{
		{"en", system.LTR},
		{"en-US", system.LTR},
		{"ar", system.RTL},
		{"ar-EG", system.RTL},
		{"he", system.RTL},
		{"fa", system.RTL},
		{"ur", system.RTL},
		{"zh-Hans", system.LTR},
		{"!!", system.LTR},
	}
	for _, tc := range tests {
		got := system.LocaleFor(tc.lang)
		if got.Direction != tc.want {
			t.Errorf("LocaleFor(%q).Direction = %v, want %v", tc.lang, got.Direction, tc.want)
		}
		if got.Language != tc.lang {
			t.Errorf("LocaleFor(%q).Language = %q", tc.lang, got.Language)
		}
	}
}
