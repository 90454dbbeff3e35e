package encoder

import (
	"unicode/utf8"

	"github.com/myatkaung/go-myanmarnames/dict"
)

// Format selects which representation of a matched syllable's record is
// emitted.
type Format string

const (
	// FormatShort emits the first alternate form, falling back to the
	// primary form for records without alternates.
	FormatShort Format = "short"
	// FormatLong emits the primary form.
	FormatLong Format = "long"
	// FormatAcademic currently behaves like FormatLong.
	FormatAcademic Format = "academic"
	// FormatInitial emits the first character of the primary form.
	FormatInitial Format = "initial"
)

// Formats lists the recognized formats.
func Formats() []Format {
	return []Format{FormatShort, FormatLong, FormatAcademic, FormatInitial}
}

// Known reports whether f is one of the recognized formats. Unknown formats
// are still accepted by Encode and behave like FormatLong.
func (f Format) Known() bool {
	switch f {
	case FormatShort, FormatLong, FormatAcademic, FormatInitial:
		return true
	}
	return false
}

// token selects the encoded token for one record. Unrecognized formats fall
// back to the primary form; that permissive policy is deliberate, a format
// typo should never fail an encode call.
func (f Format) token(rec dict.Record) string {
	switch f {
	case FormatShort:
		if len(rec.Alternates) > 0 {
			return rec.Alternates[0]
		}
		return rec.Primary
	case FormatInitial:
		r, _ := utf8.DecodeRuneInString(rec.Primary)
		return string(r)
	default:
		return rec.Primary
	}
}
