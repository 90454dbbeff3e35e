package encoder

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxNameLength is the validator's default length cap, in runes.
const DefaultMaxNameLength = 50

// ErrorKind identifies why validation rejected an input.
type ErrorKind int

const (
	// EmptyInput means the input was empty or whitespace-only.
	EmptyInput ErrorKind = iota
	// TooLong means the input exceeded the configured length cap.
	TooLong
	// InvalidCharacters means the input contained code points outside the
	// Myanmar Unicode block and whitespace.
	InvalidCharacters
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "empty_input"
	case TooLong:
		return "too_long"
	case InvalidCharacters:
		return "invalid_characters"
	default:
		return "unknown"
	}
}

// ValidationError reports a rejected input. Callers can switch on Kind to
// distinguish the three rejection classes.
type ValidationError struct {
	Kind   ErrorKind
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid name (%s): %s", e.Kind, e.Detail)
}

// Validator checks raw input against the character-set and length policy.
// The zero value applies DefaultMaxNameLength.
type Validator struct {
	// MaxLength caps the input length in runes. Inputs of exactly MaxLength
	// runes are accepted.
	MaxLength int
}

// maxLength returns the configured cap, applying the default.
func (v Validator) maxLength() int {
	if v.MaxLength <= 0 {
		return DefaultMaxNameLength
	}
	return v.MaxLength
}

// Validate checks name and returns a *ValidationError on rejection. It is a
// pure function of the input and configuration.
func (v Validator) Validate(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Kind: EmptyInput, Detail: "name is empty"}
	}
	if n := utf8.RuneCountInString(name); n > v.maxLength() {
		return &ValidationError{
			Kind:   TooLong,
			Detail: fmt.Sprintf("name has %d characters, maximum is %d", n, v.maxLength()),
		}
	}
	for _, r := range name {
		if !isMyanmar(r) && !unicode.IsSpace(r) {
			return &ValidationError{
				Kind:   InvalidCharacters,
				Detail: fmt.Sprintf("character %q is outside the Myanmar script", r),
			}
		}
	}
	return nil
}

// isMyanmar reports whether r falls in the Myanmar Unicode block
// (U+1000..U+109F).
func isMyanmar(r rune) bool {
	return r >= 0x1000 && r <= 0x109F
}
