package pwl

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

func TestCheckInMemory(t *testing.T) {
	d := New()
	if d.Check("hello") {
		t.Fatalf("empty dictionary should not accept any word")
	}
	if err := d.Add("hello"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !d.Check("hello") {
		t.Errorf("Check(hello) = false after Add; want true")
	}
}

func TestAddIsIdempotent(t *testing.T) {
	d := New()
	if err := d.Add("hello"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := d.Add("hello"); err != nil {
		t.Fatalf("second Add: %v", err)
	}
	if !d.Check("hello") {
		t.Errorf("Check(hello) = false; want true")
	}
}

func TestRemoveNoopWhenAbsent(t *testing.T) {
	d := New()
	if err := d.Remove("ghost"); err != nil {
		t.Fatalf("Remove of absent word returned error: %v", err)
	}
}

func TestAddThenRemove(t *testing.T) {
	d := New()
	_ = d.Add("hello")
	if err := d.Remove("hello"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if d.Check("hello") {
		t.Errorf("Check(hello) = true after Remove; want false")
	}
}

func TestCheckTitleCaseFallback(t *testing.T) {
	d := New()
	_ = d.Add("hello")
	if !d.Check("Hello") {
		t.Errorf("Check(Hello) = false; want true via lowercase fallback")
	}
}

func TestCheckAllCapsFallback(t *testing.T) {
	d := New()
	_ = d.Add("hello")
	if !d.Check("HELLO") {
		t.Errorf("Check(HELLO) = false; want true via lowercase fallback")
	}
}

func TestCheckAllCapsTitleCaseWord(t *testing.T) {
	d := New()
	_ = d.Add("Hello")
	if !d.Check("HELLO") {
		t.Errorf("Check(HELLO) = false; want true via title-case fallback")
	}
}

func TestSuggestFindsCloseWords(t *testing.T) {
	d := New()
	for _, w := range []string{"hello", "help", "world"} {
		_ = d.Add(w)
	}
	got := d.Suggest("helo", nil)
	found := false
	for _, s := range got {
		if s == "hello" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggest(helo) = %v; want it to contain hello", got)
	}
}

func TestSuggestEmptyDictionary(t *testing.T) {
	d := New()
	if got := d.Suggest("anything", nil); len(got) != 0 {
		t.Errorf("Suggest on empty dictionary = %v; want empty", got)
	}
}

func TestSuggestRecasesResult(t *testing.T) {
	d := New()
	_ = d.Add("hello")
	got := d.Suggest("Helo", nil)
	if len(got) == 0 {
		t.Fatalf("expected at least one suggestion")
	}
	if got[0] != "Hello" {
		t.Errorf("Suggest(Helo)[0] = %q; want title-cased %q", got[0], "Hello")
	}
}

func TestNewWithFileLoadsExistingWords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("hello\nworld\n# a comment\n\ngoodbye\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	d, err := NewWithFile(path)
	if err != nil {
		t.Fatalf("NewWithFile: %v", err)
	}
	for _, w := range []string{"hello", "world", "goodbye"} {
		if !d.Check(w) {
			t.Errorf("Check(%q) = false; want true", w)
		}
	}
	if d.Check("#") || d.Check("") {
		t.Errorf("comment markers and blank lines should never become words")
	}
}

func TestAddAppendsToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")

	d, err := NewWithFile(path)
	if err != nil {
		t.Fatalf("NewWithFile: %v", err)
	}
	if err := d.Add("newword"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(contents) != "newword\n" {
		t.Errorf("file contents = %q; want %q", contents, "newword\n")
	}
}

func TestRemoveRewritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\ngamma\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	d, err := NewWithFile(path)
	if err != nil {
		t.Fatalf("NewWithFile: %v", err)
	}
	if err := d.Remove("beta"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(contents) != "alpha\ngamma\n" {
		t.Errorf("file contents after Remove = %q; want %q", contents, "alpha\ngamma\n")
	}
	if d.Check("beta") {
		t.Errorf("Check(beta) = true after Remove; want false")
	}
}

func TestRefreshPicksUpExternalEdits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("alpha\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	d, err := NewWithFile(path)
	if err != nil {
		t.Fatalf("NewWithFile: %v", err)
	}
	if !d.Check("alpha") {
		t.Fatalf("Check(alpha) = false; want true")
	}

	// Force the mtime forward so refreshFromFile notices the edit even on
	// filesystems with coarse mtime resolution.
	future := time.Now().Add(2 * time.Second)
	if err := os.WriteFile(path, []byte("alpha\nbravo\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	if !d.Check("bravo") {
		t.Errorf("Check(bravo) = false after external edit; want true")
	}
}

func TestWordListFileWithBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	content := "﻿alpha\nbeta\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	d, err := NewWithFile(path)
	if err != nil {
		t.Fatalf("NewWithFile: %v", err)
	}
	if !d.Check("alpha") {
		t.Errorf("Check(alpha) = false; BOM should be stripped from the first line")
	}
	if !d.Check("beta") {
		t.Errorf("Check(beta) = false; want true")
	}
}

func TestSeedCeilingUsesPriorSuggestions(t *testing.T) {
	d := New()
	got := d.seedCeiling("cat", []string{"cot"})
	if got != 1 {
		t.Errorf("seedCeiling = %d; want 1", got)
	}
}

func TestSeedCeilingCapsAtDefaultMax(t *testing.T) {
	d := New()
	got := d.seedCeiling("cat", []string{"zzzzzzzzzz"})
	if got != DefaultMaxErrors {
		t.Errorf("seedCeiling = %d; want capped at %d", got, DefaultMaxErrors)
	}
}

func TestSeedCeilingNoPriorSuggestions(t *testing.T) {
	d := New()
	if got := d.seedCeiling("cat", nil); got != DefaultMaxErrors {
		t.Errorf("seedCeiling = %d; want %d", got, DefaultMaxErrors)
	}
}

func TestSuggestLimitsResults(t *testing.T) {
	d := New()
	words := []string{"cat", "cot", "cap", "can", "car", "cab", "cut", "cit", "cog", "cop",
		"cod", "col", "cow", "coy", "cox", "cay", "con", "caw"}
	for _, w := range words {
		_ = d.Add(w)
	}
	got := d.Suggest("cat", nil)
	if len(got) > 15 {
		t.Errorf("Suggest returned %d results; want <= 15", len(got))
	}
	sort.Strings(got)
}
