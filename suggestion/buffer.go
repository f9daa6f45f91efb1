/*
Package suggestion implements the best-error-first buffer that collects
Matcher candidates into a ranked suggestion list, the way the original
personal-word-list suggestion callback keeps only the best matches seen so
far: every accepted candidate evicts every entry worse than it, so the
buffer converges toward holding only the lowest error count observed,
capped at a maximum count.

Unlike a binary heap, the buffer needs two operations a heap does not
expose cheaply: a scan for an existing entry equal to an incoming candidate
(dedup) and eviction of every entry worse than an arbitrary incoming value,
not just the single worst. Both are native to a plain ordered slice, so the
buffer is a hand-rolled slice rather than an adaptation of a binary-heap
priority queue.

Use Cases:
  - Dictionary.Suggest feeds every Matcher.Find candidate through Buffer.Offer
    and reads back the final ranked list with Buffer.Suggestions.
*/
package suggestion

// DefaultLimit is the maximum number of suggestions a Buffer retains, taken
// directly from the distilled spec's fixed suggestion-list size.
const DefaultLimit = 15

// entry pairs a candidate word with its edit-distance error count.
type entry struct {
	word   string
	errors int
}

// Buffer holds up to Limit (word, errors) pairs sorted ascending by errors.
// The zero value is not usable; construct with New.
type Buffer struct {
	entries []entry
	limit   int
}

// New returns an empty Buffer bounded to limit entries. A limit <= 0 uses
// DefaultLimit.
func New(limit int) *Buffer {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Buffer{limit: limit}
}

// Offer records candidate if no retained entry for the same word already
// matches or beats its error count. Acceptance drops every retained entry
// with a worse (higher) error count than candidate's own before appending
// it, so the buffer only ever holds entries at or below the best error
// count seen so far — once a zero-error match arrives, only zero-error
// matches remain. It reports whether the buffer accepted the candidate,
// and if so, the error count the ceiling should now be tightened to:
// candidate's own, since every surviving entry is at least that good.
//
// Complexity: O(limit) per call.
func (b *Buffer) Offer(candidate string, errors int) (accepted bool, newCeiling int) {
	for _, e := range b.entries {
		if e.word == candidate && e.errors <= errors {
			return false, b.worstErrors()
		}
	}

	cut := len(b.entries)
	for i, e := range b.entries {
		if e.errors > errors {
			cut = i
			break
		}
	}
	if cut >= b.limit {
		return false, b.worstErrors()
	}
	b.entries = append(b.entries[:cut], entry{word: candidate, errors: errors})
	return true, errors
}

// worstErrors returns the error count of the worst retained entry, reported
// alongside a rejected Offer so a caller that ignores rejections still sees
// a meaningful value. An empty buffer reports -1.
func (b *Buffer) worstErrors() int {
	if len(b.entries) == 0 {
		return -1
	}
	return b.entries[len(b.entries)-1].errors
}

// Full reports whether the buffer is holding its maximum number of entries.
func (b *Buffer) Full() bool {
	return len(b.entries) >= b.limit
}

// Suggestions returns the retained candidates in ascending-error order.
func (b *Buffer) Suggestions() []string {
	words := make([]string, len(b.entries))
	for i, e := range b.entries {
		words[i] = e.word
	}
	return words
}

// Len returns the number of entries currently retained.
func (b *Buffer) Len() int {
	return len(b.entries)
}
