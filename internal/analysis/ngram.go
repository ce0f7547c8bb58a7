package analysis

import (
	"sort"

	"github.com/SeamusWaldron/rubiks_cube/internal/storage"
)

const maxOccurrences = 10

// NGram represents a repeated operation sequence.
type NGram struct {
	N           int               `json:"n" yaml:"n"`
	Sequence    []string          `json:"sequence" yaml:"sequence"`
	Tokens      []uint8           `json:"-" yaml:"-"`
	Count       int               `json:"count" yaml:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty" yaml:"occurrences,omitempty"`
}

// NGramOccurrence represents where an n-gram was found.
type NGramOccurrence struct {
	SessionID  string `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	StartIndex int    `json:"start_index" yaml:"start_index"`
	TsMs       int64  `json:"ts_ms" yaml:"ts_ms"`
}

// NGramReport contains the results of n-gram mining, keyed by n.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams" yaml:"top_ngrams"`
}

// RollingHash implements a Rabin-Karp rolling hash over a fixed window.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1)
	window []uint8
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   31,
		n:      n,
		window: make([]uint8, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll adds a token, dropping the oldest one once the window is full.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	result := make([]uint8, len(rh.window))
	copy(result, rh.window)
	return result
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

type ngramEntry struct {
	tokens      []uint8
	count       int
	occurrences []NGramOccurrence
}

// MineNGrams finds the top-K most frequent operation sequences of each
// length in [minN, maxN]. Undo steps are ignored and only sequences seen
// at least twice are reported.
func MineNGrams(records []storage.StepRecord, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	ops, idx := forwardOps(records)
	if minN < 1 || len(ops) < minN {
		return report
	}

	tokens := make([]uint8, len(ops))
	for i, op := range ops {
		tokens[i] = opToken(op)
	}

	for n := minN; n <= maxN && n <= len(tokens); n++ {
		if ngrams := mineNGramsForN(tokens, records, idx, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

func mineNGramsForN(tokens []uint8, records []storage.StepRecord, idx []int, n, topK int) []NGram {
	counts := make(map[uint64][]*ngramEntry)
	var order []*ngramEntry
	rh := NewRollingHash(n)

	for i, tok := range tokens {
		rh.Roll(tok)
		if !rh.Ready() {
			continue
		}

		rec := records[idx[i-n+1]]
		occ := NGramOccurrence{
			SessionID:  rec.SessionID,
			StartIndex: rec.StepIndex,
			TsMs:       rec.TsMs,
		}

		window := rh.Window()
		var entry *ngramEntry
		for _, e := range counts[rh.Hash()] {
			// Collisions share a bucket.
			if slicesEqual(e.tokens, window) {
				entry = e
				break
			}
		}
		if entry == nil {
			entry = &ngramEntry{tokens: window}
			counts[rh.Hash()] = append(counts[rh.Hash()], entry)
			order = append(order, entry)
		}
		entry.count++
		if len(entry.occurrences) < maxOccurrences {
			entry.occurrences = append(entry.occurrences, occ)
		}
	}

	entries := make([]*ngramEntry, 0, len(order))
	for _, e := range order {
		if e.count >= 2 {
			entries = append(entries, e)
		}
	}

	// Stable on first appearance so ties are deterministic.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	if topK > 0 && len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, e := range entries {
		result[i] = NGram{
			N:           n,
			Sequence:    tokenNames(e.tokens),
			Tokens:      e.tokens,
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}

	return result
}

func tokenNames(tokens []uint8) []string {
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = opFromToken(t).String()
	}
	return names
}

func slicesEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MergeReports aggregates per-session n-gram reports into one.
func MergeReports(reports []*NGramReport, topK int) *NGramReport {
	merged := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	byN := make(map[int]map[string]*NGram)
	keys := make(map[int][]string)
	for _, r := range reports {
		for n, ngrams := range r.TopNGrams {
			if byN[n] == nil {
				byN[n] = make(map[string]*NGram)
			}
			for _, ng := range ngrams {
				key := ngramKey(ng.Tokens)
				existing, ok := byN[n][key]
				if !ok {
					existing = &NGram{N: ng.N, Sequence: ng.Sequence, Tokens: ng.Tokens}
					byN[n][key] = existing
					keys[n] = append(keys[n], key)
				}
				existing.Count += ng.Count
				for _, occ := range ng.Occurrences {
					if len(existing.Occurrences) < maxOccurrences {
						existing.Occurrences = append(existing.Occurrences, occ)
					}
				}
			}
		}
	}

	for n, agg := range byN {
		ngrams := make([]NGram, 0, len(agg))
		for _, key := range keys[n] {
			ngrams = append(ngrams, *agg[key])
		}
		sort.SliceStable(ngrams, func(i, j int) bool {
			return ngrams[i].Count > ngrams[j].Count
		})
		if topK > 0 && len(ngrams) > topK {
			ngrams = ngrams[:topK]
		}
		merged.TopNGrams[n] = ngrams
	}

	return merged
}

// ngramKey creates a printable map key for a token sequence.
func ngramKey(tokens []uint8) string {
	result := make([]byte, len(tokens))
	for i, t := range tokens {
		result[i] = t + 'A'
	}
	return string(result)
}
