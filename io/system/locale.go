// SPDX-License-Identifier: Unlicense OR MIT

package system

import "golang.org/x/text/language"

// Direction is the direction of text flow.
type Direction uint8

const (
	// LTR is left-to-right text flow.
	LTR Direction = iota
	// RTL is right-to-left text flow.
	RTL
)

// Locale provides language information for the current system.
type Locale struct {
	// Language is the BCP-47 tag for the primary language.
	Language string
	// Direction is the primary text flow direction.
	Direction Direction
}

// scripts written right to left, by ISO 15924 code.
var rtlScripts = map[string]bool{
	"Adlm": true,
	"Arab": true,
	"Hebr": true,
	"Mand": true,
	"Nkoo": true,
	"Rohg": true,
	"Syrc": true,
	"Thaa": true,
}

// LocaleFor derives a Locale from a BCP-47 language tag, inferring
// the text direction from the tag's likely script. Unparseable tags
// fall back to left-to-right.
func LocaleFor(lang string) Locale {
	l := Locale{Language: lang}
	tag, err := language.Parse(lang)
	if err != nil {
		return l
	}
	script, _ := tag.Script()
	if rtlScripts[script.String()] {
		l.Direction = RTL
	}
	return l
}

func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		panic("unexpected Direction value")
	}
}
