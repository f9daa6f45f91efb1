/*
Package editdistance computes the Damerau-Levenshtein distance between two
rune sequences: the minimum number of insertions, deletions, substitutions,
and adjacent transpositions needed to turn one sequence into the other.

Inputs are assumed to already be in canonical (NFD-normalized) form; the
distance is computed over code points, never raw bytes, so a single
multi-byte rune always costs exactly one edit.

Use Cases:
  - Verifying a trie singleton's remaining suffix against unconsumed input
    once the matcher has descended as far as the compressed trie allows.
  - Seeding a suggestion search's initial error ceiling from a caller's
    list of prior suggestions.

Complexity:
  - Distance: O(len(a) * len(b)) time and space.
*/
package editdistance

// Distance returns the Damerau-Levenshtein distance between a and b.
//
// The classic dynamic-programming table is filled row by row. Cell (i, j)
// holds the edit distance between a[:i] and b[:j]; it is derived from
// deletion, insertion, and substitution costs, plus an adjacent-transposition
// shortcut when the last two runes of each prefix are swapped versions of
// each other.
//
// Complexity: O(len(a) * len(b)) time and space.
func Distance(a, b []rune) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	d := make([][]int, la+1)
	for i := range d {
		d[i] = make([]int, lb+1)
		d[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			val := d[i-1][j] + 1      // deletion
			if v := d[i][j-1] + 1; v < val {
				val = v // insertion
			}
			if v := d[i-1][j-1] + cost; v < val {
				val = v // substitution (or match)
			}
			if i >= 2 && j >= 2 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if v := d[i-2][j-2] + cost; v < val {
					val = v // adjacent transposition
				}
			}
			d[i][j] = val
		}
	}

	return d[la][lb]
}

// DistanceString is a convenience wrapper around Distance for callers that
// have not already split their strings into runes.
//
// Complexity: O(len(a) * len(b)).
func DistanceString(a, b string) int {
	return Distance([]rune(a), []rune(b))
}
