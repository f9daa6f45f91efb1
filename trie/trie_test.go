package trie

import "testing"

func insertString(node *Node, word string) *Node {
	return Insert(node, []rune(word))
}

func removeString(node *Node, word string) *Node {
	return Remove(node, []rune(word))
}

// lookup walks the trie exactly the way a case-sensitive exact match would,
// without any tolerance for errors; used to assert presence in tests.
func lookup(node *Node, word []rune) bool {
	if node == nil {
		return false
	}
	if v, ok := node.Value(); ok {
		return runesEqual(v, word)
	}
	children := node.Children()
	if len(word) == 0 {
		child, ok := children[eosKey]
		return ok && child.IsSentinel()
	}
	child, ok := children[string(word[0])]
	if !ok {
		return false
	}
	return lookup(child, word[1:])
}

func TestInsertSingleWordIsSingleton(t *testing.T) {
	root := insertString(nil, "hello")
	v, ok := root.Value()
	if !ok {
		t.Fatalf("expected singleton root")
	}
	if string(v) != "hello" {
		t.Errorf("value = %q; want %q", string(v), "hello")
	}
}

func TestInsertAndLookup(t *testing.T) {
	var root *Node
	words := []string{"hello", "helium", "he", "hero"}
	for _, w := range words {
		root = insertString(root, w)
	}
	for _, w := range words {
		if !lookup(root, []rune(w)) {
			t.Errorf("lookup(%q) = false; want true", w)
		}
	}
	for _, w := range []string{"hey", "her", "h"} {
		if lookup(root, []rune(w)) {
			t.Errorf("lookup(%q) = true; want false", w)
		}
	}
}

func TestInsertIdempotent(t *testing.T) {
	root := insertString(nil, "abcd")
	root = insertString(root, "abcd")
	v, ok := root.Value()
	if !ok || string(v) != "abcd" {
		t.Errorf("duplicate insert split the singleton: value=%q ok=%v", string(v), ok)
	}
}

func TestBranchSplitsAtFirstDifference(t *testing.T) {
	root := insertString(nil, "abcd")
	root = insertString(root, "abce")
	children := root.Children()
	if children == nil {
		t.Fatalf("expected root to become branching")
	}
	child, ok := children["a"]
	if !ok {
		t.Fatalf("expected edge 'a'")
	}
	// "abcd" and "abce" share "abc"; the split should occur at 'd' vs 'e'.
	for _, edge := range []string{"b", "c"} {
		gc := child.Children()
		if gc == nil {
			t.Fatalf("expected branching chain through shared prefix at edge %q", edge)
		}
		child = gc[edge]
		if child == nil {
			t.Fatalf("missing edge %q in shared prefix chain", edge)
		}
	}
	leaves := child.Children()
	if leaves == nil || len(leaves) != 2 {
		t.Fatalf("expected a 2-way branch at the differing code point, got %v", leaves)
	}
}

func TestRemoveCollapsesToSingleton(t *testing.T) {
	root := insertString(nil, "abcd")
	root = insertString(root, "abce")
	root = removeString(root, "abce")

	v, ok := root.Value()
	if !ok {
		t.Fatalf("expected root to collapse back to a singleton")
	}
	if string(v) != "abcd" {
		t.Errorf("value = %q; want %q", string(v), "abcd")
	}
}

func TestRemoveNonExistentIsNoop(t *testing.T) {
	root := insertString(nil, "hello")
	before := root
	after := removeString(root, "world")
	if after != before {
		t.Errorf("removing an absent word mutated the root")
	}
	if !lookup(after, []rune("hello")) {
		t.Errorf("removing an absent word removed an existing one")
	}
}

func TestRemoveAllEmptiesTrie(t *testing.T) {
	root := insertString(nil, "hello")
	root = removeString(root, "hello")
	if root != nil {
		t.Errorf("expected nil trie after removing the only word")
	}
}

func TestBranchingNeverHasFewerThanTwoChildrenAfterCollapse(t *testing.T) {
	var root *Node
	for _, w := range []string{"cat", "car", "cart", "care"} {
		root = insertString(root, w)
	}
	root = removeString(root, "cart")
	root = removeString(root, "care")

	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil || n.IsSentinel() {
			return
		}
		if children := n.Children(); children != nil {
			if len(children) < 2 {
				t.Errorf("branching node has %d children; want >= 2 (or a singleton)", len(children))
			}
			for _, c := range children {
				walk(c)
			}
		}
	}
	walk(root)

	for _, w := range []string{"cat", "car"} {
		if !lookup(root, []rune(w)) {
			t.Errorf("lookup(%q) = false after unrelated removals; want true", w)
		}
	}
	for _, w := range []string{"cart", "care"} {
		if lookup(root, []rune(w)) {
			t.Errorf("lookup(%q) = true after removal; want false", w)
		}
	}
}

func TestEndOfStringSentinelMarksPrefixWord(t *testing.T) {
	var root *Node
	for _, w := range []string{"ab", "abc"} {
		root = insertString(root, w)
	}
	for _, w := range []string{"ab", "abc"} {
		if !lookup(root, []rune(w)) {
			t.Errorf("lookup(%q) = false; want true", w)
		}
	}
	if lookup(root, []rune("a")) {
		t.Errorf("lookup(%q) = true; want false", "a")
	}
}

func TestFreeDoesNotPanicOnSentinel(t *testing.T) {
	Free(eosSentinel) // must be a no-op, never mutate the shared sentinel
	if !eosSentinel.IsSentinel() {
		t.Fatalf("Free mutated the shared end-of-string sentinel")
	}
}

func TestFreeClearsChildren(t *testing.T) {
	var root *Node
	for _, w := range []string{"cat", "car", "dog"} {
		root = insertString(root, w)
	}
	Free(root)
	if len(root.children) != 0 {
		t.Errorf("expected Free to clear the root's children")
	}
}
