/*
Package matcher performs the bounded-error trie traversal that backs
suggestion generation: given a pattern word and a maximum number of edits, it
walks a compressed trie (package trie) applying the five elementary edit
operations — exact advance, insertion, deletion, substitution, and adjacent
transposition — and reports every complete word reachable within the current
error ceiling.

Traversal is iterative. Rather than recursing once per trie edge, which would
tie stack depth to pattern length and trie depth combined, the walk keeps an
explicit LIFO work stack of frames (internal/container/stack, adapted from
the teacher's generic stack) and a single shared path buffer that frames
truncate back to their own recorded length before resuming, the same
discipline github.com/Zubayear/ryushin's trie uses for its explicit-queue
teardown. A best-error-first frontier was considered and rejected: letting
suggestion tighten the ceiling mid-walk only requires checking every frame's
error count against the ceiling when it is popped, which a LIFO stack does
just as well as a priority queue, without that queue's requirement that every
frame own an independent copy of the path instead of sharing one buffer.

Use Cases:
  - Dictionary.Check drives a Matcher in case-sensitive mode with no error
    tolerance to test exact membership.
  - Dictionary.Suggest drives a Matcher in case-insensitive mode to build a
    ranked suggestion list.
*/
package matcher

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Zubayear/pwl/editdistance"
	"github.com/Zubayear/pwl/internal/container/stack"
	"github.com/Zubayear/pwl/trie"
)

// CaseMode selects how trie edges are compared against the pattern.
type CaseMode int

const (
	// CaseSensitive compares edges to pattern code points byte-exactly.
	CaseSensitive CaseMode = iota
	// CaseInsensitive upper-cases both sides of a failed exact comparison
	// before retrying, using locale-independent Unicode case folding.
	CaseInsensitive
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// MatchState is passed to the reporting callback for each candidate found.
// Errors is the total edit count for this candidate. Ceiling starts at the
// Matcher's configured maximum and may be lowered (never raised) by the
// callback to prune the remainder of the walk to only cheaper candidates.
type MatchState struct {
	Errors  int
	Ceiling *int
}

// op identifies which edit operation produced a frame, and therefore how the
// frame's edge rune(s) extend the shared path buffer when it is resumed.
type op byte

const (
	opRoot op = iota
	opAdvance
	opSubstitute
	opInsert
	opDelete
	opTranspose
)

// frame is one unit of deferred work. It is intentionally a plain comparable
// struct (stack.Stack requires a comparable element type): no slices, no
// pointers into shared mutable state beyond the *trie.Node itself.
type frame struct {
	node    *trie.Node
	wordPos int
	errors  int
	pathLen int
	op      op
	r1, r2  rune
}

// Matcher walks a trie to find every word within a bounded edit distance of
// a pattern. A Matcher is single-use: construct one per Find call.
type Matcher struct {
	root    *trie.Node
	pattern []rune
	mode    CaseMode
	ceiling int
}

// New returns a Matcher that searches root for words within at most
// maxErrors edits of pattern, compared according to mode. pattern must
// already be in canonical form (see package casefold).
func New(root *trie.Node, pattern []rune, mode CaseMode, maxErrors int) *Matcher {
	return &Matcher{root: root, pattern: pattern, mode: mode, ceiling: maxErrors}
}

// Find runs the bounded traversal, invoking report once for every candidate
// word reachable within the current ceiling. report may tighten the ceiling
// carried in MatchState; the tightened value is honored for every frame
// popped afterward, including ones already queued.
//
// Complexity: bounded by the number of (trie-node, word-position) pairs
// reachable within the ceiling; unbounded inputs are protected only by the
// ceiling itself, matching the distilled spec's own accepted tradeoff.
func (m *Matcher) Find(report func(candidate string, state *MatchState)) {
	if m.root == nil {
		return
	}

	ceiling := m.ceiling
	state := &MatchState{Ceiling: &ceiling}

	work := stack.NewStack[frame]()
	_, _ = work.Push(frame{node: m.root, wordPos: 0, errors: 0, pathLen: 0, op: opRoot})

	var path []rune

	for !work.IsEmpty() {
		f, err := work.Pop()
		if err != nil {
			break
		}
		if f.errors > ceiling {
			continue
		}

		path = path[:f.pathLen]
		switch f.op {
		case opAdvance, opSubstitute, opInsert:
			path = append(path, f.r1)
		case opTranspose:
			path = append(path, f.r1, f.r2)
		}

		node := f.node
		wordPos := f.wordPos
		errs := f.errors

		if v, ok := node.Value(); ok {
			remaining := m.pattern[min(wordPos, len(m.pattern)):]
			value := v
			if m.mode == CaseInsensitive {
				value = []rune(lowerCaser.String(string(v)))
				remaining = []rune(lowerCaser.String(string(remaining)))
			}
			total := errs + editdistance.Distance(value, remaining)
			if total <= ceiling {
				candidate := string(append(append([]rune(nil), path...), v...))
				state.Errors = total
				report(candidate, state)
			}
			continue
		}

		children := node.Children()
		if eos, ok := children[""]; ok && eos.IsSentinel() {
			unconsumed := len(m.pattern) - wordPos
			if unconsumed < 0 {
				unconsumed = 0
			}
			total := errs + unconsumed
			if total <= ceiling {
				candidate := string(path)
				state.Errors = total
				report(candidate, state)
			}
		}

		// Deletion: drop the next pattern code point and stay on this node.
		// Pushed once per node, not once per edge, since it does not depend
		// on any particular edge.
		if wordPos < len(m.pattern) && errs+1 <= ceiling {
			_, _ = work.Push(frame{node: node, wordPos: wordPos + 1, errors: errs + 1, pathLen: len(path), op: opDelete})
		}

		for edge, child := range children {
			if edge == "" {
				continue
			}
			edgeRune := []rune(edge)[0]

			if wordPos < len(m.pattern) {
				in := m.pattern[wordPos]
				if m.runeEqual(in, edgeRune) {
					_, _ = work.Push(frame{node: child, wordPos: wordPos + 1, errors: errs, pathLen: len(path), op: opAdvance, r1: edgeRune})
				} else if errs+1 <= ceiling {
					_, _ = work.Push(frame{node: child, wordPos: wordPos + 1, errors: errs + 1, pathLen: len(path), op: opSubstitute, r1: edgeRune})
				}
			}

			if errs+1 <= ceiling {
				_, _ = work.Push(frame{node: child, wordPos: wordPos, errors: errs + 1, pathLen: len(path), op: opInsert, r1: edgeRune})
			}

			if wordPos+1 < len(m.pattern) && errs+1 <= ceiling {
				if m.runeEqual(m.pattern[wordPos], edgeRune) {
					continue // not a transposition candidate, handled by exact advance above
				}
				for edge2, grandchild := range child.Children() {
					if edge2 == "" {
						continue
					}
					edgeRune2 := []rune(edge2)[0]
					if m.runeEqual(m.pattern[wordPos], edgeRune2) && m.runeEqual(m.pattern[wordPos+1], edgeRune) {
						_, _ = work.Push(frame{node: grandchild, wordPos: wordPos + 2, errors: errs + 1, pathLen: len(path), op: opTranspose, r1: edgeRune, r2: edgeRune2})
					}
				}
			}
		}
	}
}

// runeEqual compares an input code point to an edge code point according to
// the Matcher's case mode.
func (m *Matcher) runeEqual(in, edge rune) bool {
	if in == edge {
		return true
	}
	if m.mode != CaseInsensitive {
		return false
	}
	return string(upperCaser.String(string(in))) == string(upperCaser.String(string(edge)))
}
