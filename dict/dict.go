// Package dict implements the syllable dictionary used to transliterate
// Myanmar-script names into Latin tokens. A dictionary maps a Myanmar
// syllable (one or more code points, treated as an atomic key) to an
// encoding record carrying the Latin forms and a category tag.
//
// Dictionaries are built once and are read-only afterwards, so they are safe
// for unsynchronized concurrent lookups.
package dict

import (
	"unicode/utf8"

	"github.com/derekparker/trie"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Category classifies a dictionary entry.
type Category int

const (
	Honorific Category = iota
	Name
	Political
	// Unmapped is never stored in a dictionary; it tags input characters
	// that matched no key during segmentation.
	Unmapped
)

// String returns the category name as used in serialized output.
func (c Category) String() string {
	switch c {
	case Honorific:
		return "honorific"
	case Name:
		return "name"
	case Political:
		return "political"
	case Unmapped:
		return "unmapped"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so categories serialize as
// their lowercase names in JSON documents.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, the inverse of
// MarshalText. Unknown names are an error.
func (c *Category) UnmarshalText(b []byte) error {
	switch string(b) {
	case "honorific":
		*c = Honorific
	case "name":
		*c = Name
	case "political":
		*c = Political
	case "unmapped":
		*c = Unmapped
	default:
		return errors.Errorf("unknown category %q", string(b))
	}
	return nil
}

// Record is the encoding information attached to one syllable.
//
// Primary is the canonical Latin form. Alternates lists shorter or informal
// spellings in preference order and may be empty. Frequency is a usage
// weight in [0, 1] carried through from the source data.
type Record struct {
	Primary    string
	Alternates []string
	Frequency  float64
	Category   Category
}

// Entry pairs a syllable key with its record, used to build a Dictionary.
type Entry struct {
	Syllable string
	Record   Record
}

// Dictionary is an immutable syllable-to-record mapping with support for
// longest-prefix matching. Records are stored in a trie keyed by the
// syllable's rune sequence.
type Dictionary struct {
	index     *trie.Trie
	keys      []string // insertion order, exposed for reporting tie-breaks
	maxKeyLen int      // longest key, in runes
}

// New builds a dictionary from entries. Entry order is preserved and
// observable through Keys. Empty or duplicate syllables are rejected.
func New(entries []Entry) (*Dictionary, error) {
	d := &Dictionary{
		index: trie.New(),
		keys:  make([]string, 0, len(entries)),
	}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Syllable == "" {
			return nil, errors.Errorf("dictionary entry %q has an empty syllable", e.Record.Primary)
		}
		if seen[e.Syllable] {
			return nil, errors.Errorf("duplicate dictionary syllable %q", e.Syllable)
		}
		if e.Record.Primary == "" {
			return nil, errors.Errorf("syllable %q has an empty primary form", e.Syllable)
		}
		if e.Record.Frequency < 0 || e.Record.Frequency > 1 {
			return nil, errors.Errorf("syllable %q has frequency %g outside [0,1]", e.Syllable, e.Record.Frequency)
		}
		seen[e.Syllable] = true
		d.index.Add(e.Syllable, e.Record)
		d.keys = append(d.keys, e.Syllable)
		if n := utf8.RuneCountInString(e.Syllable); n > d.maxKeyLen {
			d.maxKeyLen = n
		}
	}
	klog.V(1).Infof("built syllable dictionary: %d entries, longest key %d runes", len(d.keys), d.maxKeyLen)
	return d, nil
}

// MustNew is like New but panics on error. Intended for literal tables known
// to be valid, such as the builtin dictionary.
func MustNew(entries []Entry) *Dictionary {
	d, err := New(entries)
	if err != nil {
		panic(err)
	}
	return d
}

// Lookup returns the record for an exact syllable key.
func (d *Dictionary) Lookup(syllable string) (Record, bool) {
	node, ok := d.index.Find(syllable)
	if !ok {
		return Record{}, false
	}
	return node.Meta().(Record), true
}

// Keys returns the syllables in their original insertion order. The returned
// slice is a copy.
func (d *Dictionary) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.keys) }

// MaxKeyLen returns the length in runes of the longest key.
func (d *Dictionary) MaxKeyLen() int { return d.maxKeyLen }

// MatchLongest finds the longest dictionary key that is a prefix of buffer.
// Candidate lengths are probed longest-first, so the greedy longest-match
// rule holds by construction. Equal-length ties cannot arise: two distinct
// keys of the same rune length cannot both be prefixes of the same buffer.
func (d *Dictionary) MatchLongest(buffer []rune) (syllable string, rec Record, ok bool) {
	limit := min(len(buffer), d.maxKeyLen)
	for n := limit; n >= 1; n-- {
		candidate := string(buffer[:n])
		if node, found := d.index.Find(candidate); found {
			return candidate, node.Meta().(Record), true
		}
	}
	return "", Record{}, false
}
