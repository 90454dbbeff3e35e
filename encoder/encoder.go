// Package encoder implements the transliteration of Myanmar-script personal
// names into Latin-script tokens. The central algorithm is greedy
// longest-match segmentation: the input is consumed syllable by syllable,
// always preferring the longest dictionary key matching the current
// position, and characters with no key of any length pass through verbatim
// with a warning.
package encoder

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	"k8s.io/klog/v2"

	"github.com/myatkaung/go-myanmarnames/dict"
	"github.com/myatkaung/go-myanmarnames/history"
	"github.com/myatkaung/go-myanmarnames/stats"
)

// Segment is one unit of the breakdown: a matched syllable or a single
// unmapped character, with the token it was encoded to.
type Segment struct {
	Original string        `json:"original"`
	Encoded  string        `json:"encoded"`
	Category dict.Category `json:"category"`
}

// Outcome is the result of one encode call. It is immutable after return.
type Outcome struct {
	Encoded       string    `json:"encoded"`
	Segments      []Segment `json:"syllables"`
	SyllableCount int       `json:"syllable_count"`
	MappedCount   int       `json:"mapped_count"`
	// CompressionRatio is the encoded length over the raw input length, in
	// code points.
	CompressionRatio float64       `json:"compression_ratio"`
	Warnings         []string      `json:"warnings,omitempty"`
	Elapsed          time.Duration `json:"elapsed_ns"`
}

// Encoder ties a dictionary to its usage statistics and history. Independent
// encoders do not share state, so several can coexist in one process.
//
// Encode is safe for concurrent use: the whole validate-segment-record
// sequence runs under one lock, keeping statistics and history mutually
// consistent.
type Encoder struct {
	mu        sync.Mutex
	dict      *dict.Dictionary
	validator Validator
	stats     *stats.Accumulator
	history   *history.Log
}

// New creates an encoder over the given dictionary with a fresh statistics
// accumulator and history log.
func New(d *dict.Dictionary) *Encoder {
	return &Encoder{
		dict:    d,
		stats:   stats.NewAccumulator(d.Keys()),
		history: history.NewLog(),
	}
}

// WithMaxNameLength overrides the validator's length cap and returns the
// encoder for chaining.
func (e *Encoder) WithMaxNameLength(n int) *Encoder {
	e.validator.MaxLength = n
	return e
}

// Dictionary returns the encoder's dictionary.
func (e *Encoder) Dictionary() *dict.Dictionary { return e.dict }

// Stats returns the encoder's statistics accumulator.
func (e *Encoder) Stats() *stats.Accumulator { return e.stats }

// History returns the encoder's history log.
func (e *Encoder) History() *history.Log { return e.history }

// Encode transliterates name using the given format.
//
// Validation failures return a *ValidationError, count toward the error
// statistics, and leave the history untouched. On success the per-syllable
// hit counts are updated and a history entry is appended. Unmapped
// characters are not errors: they pass through verbatim and accumulate
// warnings on the outcome.
func (e *Encoder) Encode(name string, format Format) (*Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	if err := e.validator.Validate(name); err != nil {
		e.stats.RecordFailure()
		return nil, err
	}

	// Collapse whitespace runs and trim, after NFC normalization so
	// decomposed sequences match composed dictionary keys.
	normalized := strings.Join(strings.Fields(norm.NFC.String(name)), " ")
	buffer := []rune(normalized)

	var (
		segments []Segment
		warnings []string
		matched  []string
		encoded  strings.Builder
		mapped   int
	)
	for len(buffer) > 0 {
		if key, rec, ok := e.dict.MatchLongest(buffer); ok {
			token := format.token(rec)
			segments = append(segments, Segment{Original: key, Encoded: token, Category: rec.Category})
			matched = append(matched, key)
			mapped++
			encoded.WriteString(token)
			buffer = buffer[utf8.RuneCountInString(key):]
			continue
		}
		// No key of any length matches here: pass one character through.
		ch := string(buffer[0])
		segments = append(segments, Segment{Original: ch, Encoded: ch, Category: dict.Unmapped})
		warnings = append(warnings, fmt.Sprintf("unmapped character: %s", ch))
		encoded.WriteString(ch)
		buffer = buffer[1:]
	}

	outcome := &Outcome{
		Encoded:          encoded.String(),
		Segments:         segments,
		SyllableCount:    len(segments),
		MappedCount:      mapped,
		CompressionRatio: compressionRatio(encoded.String(), name),
		Warnings:         warnings,
		Elapsed:          time.Since(start),
	}
	e.stats.RecordSuccess(matched)
	e.history.Append(history.Entry{
		ID:               uuid.NewString(),
		Timestamp:        time.Now(),
		Original:         name,
		Encoded:          outcome.Encoded,
		Format:           string(format),
		SyllableCount:    outcome.SyllableCount,
		MappedCount:      outcome.MappedCount,
		CompressionRatio: outcome.CompressionRatio,
		Elapsed:          outcome.Elapsed,
	})
	klog.V(2).Infof("encoded %q as %q (%s): %d syllables, %d mapped, %d warnings",
		name, outcome.Encoded, format, outcome.SyllableCount, mapped, len(warnings))
	return outcome, nil
}

// compressionRatio relates the encoded length to the raw input length, both
// in code points. Empty input cannot reach segmentation, the zero guard is
// for direct callers only.
func compressionRatio(encoded, original string) float64 {
	n := utf8.RuneCountInString(original)
	if n == 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(encoded)) / float64(n)
}
