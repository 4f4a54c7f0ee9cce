// Word frequencies for Hangul noun lists.
// Stop words are the closed set of particles and light verbs
// that survive noun extraction often enough to dominate a cloud.

package freqlib

import (
	"sort"

	"goWordCloud/stringlib"
)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"의", "가", "이", "은", "는", "을", "를", "에", "와", "과",
		"한", "하다", "있다", "되다", "그", "저", "것", "수", "들", "지",
		"고", "다", "로", "으로", "에서", "에게", "한테", "께서",
	} {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord tells whether w belongs to the stop word set
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// StopWords returns the stop word set as a sorted slice
func StopWords() []string {
	out := make([]string, 0, len(stopWords))
	for w := range stopWords {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// Filter keeps words at least minLen characters long that are not stop words, in input order
func Filter(words []string, minLen int) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if stringlib.RuneLen(w) < minLen || IsStopWord(w) {
			continue
		}
		out = append(out, w)
	}

	return out
}

// Entry is one ranked row of a frequency table
type Entry struct {
	Rank  int
	Word  string
	Count int
}

// Table counts words and remembers the order each word first appeared in
type Table struct {
	counts map[string]int
	order  []string
	total  int
}

// NewTable returns an empty table
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Count builds a table from a word list
func Count(words []string) *Table {
	t := NewTable()
	for _, w := range words {
		t.Add(w)
	}

	return t
}

// Add increments the count of w
func (t *Table) Add(w string) {
	t.AddN(w, 1)
}

// AddN increments the count of w by n; n < 1 is ignored
func (t *Table) AddN(w string, n int) {
	if n < 1 {
		return
	}
	if _, seen := t.counts[w]; !seen {
		t.order = append(t.order, w)
	}
	t.counts[w] += n
	t.total += n
}

// Len is the number of distinct words
func (t *Table) Len() int {
	return len(t.order)
}

// Total is the sum of all counts
func (t *Table) Total() int {
	return t.total
}

// Freq returns the count of w, 0 when absent
func (t *Table) Freq(w string) int {
	return t.counts[w]
}

// Map returns a copy of the word -> count mapping
func (t *Table) Map() map[string]int {
	m := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		m[k] = v
	}

	return m
}

// Ranked lists every word by count descending. Ties keep first appearance order.
func (t *Table) Ranked() []Entry {
	ss := make([]Entry, 0, len(t.order))
	for _, w := range t.order {
		ss = append(ss, Entry{Word: w, Count: t.counts[w]})
	}

	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].Count > ss[j].Count
	})

	for i := range ss {
		ss[i].Rank = i + 1
	}

	return ss
}

// Top returns at most n ranked entries
func (t *Table) Top(n int) []Entry {
	ss := t.Ranked()
	if n >= 0 && n < len(ss) {
		ss = ss[:n]
	}

	return ss
}

// FromEntries rebuilds a table from rows, keeping row order for ties
func FromEntries(entries []Entry) *Table {
	t := NewTable()
	for _, e := range entries {
		t.AddN(e.Word, e.Count)
	}

	return t
}
