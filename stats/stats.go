// Package stats accumulates process-wide usage counters for the encoder:
// total requests, failed requests, and per-syllable hit counts. Counters
// only grow; there is no reset short of recreating the accumulator.
package stats

import (
	"sort"
	"sync"
)

// topSyllableCount limits how many syllables a report lists.
const topSyllableCount = 5

// Accumulator collects usage counters. All methods are safe for concurrent
// use.
type Accumulator struct {
	mu       sync.Mutex
	order    []string // dictionary key order, the tie-break for rankings
	total    int
	failures int
	hits     map[string]int
}

// NewAccumulator creates an accumulator for a dictionary whose keys are
// given in their original order. Rankings break hit-count ties by that order.
func NewAccumulator(syllables []string) *Accumulator {
	order := make([]string, len(syllables))
	copy(order, syllables)
	return &Accumulator{
		order: order,
		hits:  make(map[string]int, len(syllables)),
	}
}

// RecordSuccess counts one successful encode call and one hit per matched
// syllable. A syllable matched twice in one call is counted twice.
func (a *Accumulator) RecordSuccess(matched []string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.total++
	for _, s := range matched {
		a.hits[s]++
	}
}

// RecordFailure counts one failed encode call.
func (a *Accumulator) RecordFailure() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.total++
	a.failures++
}

// Hits returns the accumulated hit count for one syllable.
func (a *Accumulator) Hits(syllable string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hits[syllable]
}

// SyllableHits is one (syllable, count) ranking entry.
type SyllableHits struct {
	Syllable string `json:"syllable"`
	Hits     int    `json:"hits"`
}

// Report is a point-in-time summary of the accumulated counters.
type Report struct {
	TotalEncodings int `json:"total_encodings"`
	// MostUsed is nil until at least one syllable has been matched.
	MostUsed     *SyllableHits `json:"most_used,omitempty"`
	ErrorRate    float64       `json:"error_rate"`
	TopSyllables []string      `json:"top_syllables"`
}

// Report summarizes the counters. TopSyllables lists up to five dictionary
// keys by descending hit count; zero-hit keys may appear when fewer than
// five have been used. ErrorRate is zero when nothing has been recorded.
// MostUsed is nil while no syllable has been matched, which includes the
// case where calls were counted but all of them failed validation: there is
// no syllable to name then, even though TotalEncodings is positive.
func (a *Accumulator) Report() Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	r := Report{TotalEncodings: a.total}
	if a.total > 0 {
		r.ErrorRate = float64(a.failures) / float64(a.total)
	}

	ranked := make([]string, len(a.order))
	copy(ranked, a.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return a.hits[ranked[i]] > a.hits[ranked[j]]
	})
	if len(ranked) > topSyllableCount {
		ranked = ranked[:topSyllableCount]
	}
	r.TopSyllables = ranked

	if len(a.order) > 0 && a.hits[ranked[0]] > 0 {
		r.MostUsed = &SyllableHits{Syllable: ranked[0], Hits: a.hits[ranked[0]]}
	}
	return r
}
