/*
Package pwl implements a personal word list: a case-aware spell-checking
dictionary backed by a compressed trie (package trie), optionally mirrored to
a plain-text file on disk.

A Dictionary owns three pieces of state that must stay in lockstep: the trie
(canonical-form membership), a treemap.TreeMap from canonical form to the
original display-cased spelling (adapted from the teacher's red-black tree,
generalized from an ordered int-keyed map to this string-keyed lookup), and,
when file-backed, the mtime of the file it was last loaded from. Every public
operation begins by calling refreshFromFile, which reloads the whole trie
from scratch exactly when the file's mtime has moved since the last load —
there is no incremental diffing, matching the coarse-grained reread the
distilled spec describes.

Use Cases:
  - A spell-checking front end constructs a Dictionary with New or
    NewWithFile, then drives Check/Add/Remove/Suggest per user input.
*/
package pwl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/Zubayear/pwl/casefold"
	"github.com/Zubayear/pwl/editdistance"
	"github.com/Zubayear/pwl/internal/container/deque"
	"github.com/Zubayear/pwl/internal/container/treemap"
	"github.com/Zubayear/pwl/matcher"
	"github.com/Zubayear/pwl/suggestion"
	"github.com/Zubayear/pwl/trie"
)

// DefaultMaxErrors bounds how many edits a Suggest search will tolerate when
// the caller supplies no prior suggestions to beat.
const DefaultMaxErrors = 3

// DefaultMaxLineBytes is the longest line refreshFromFile will accept from a
// word-list file before warning and skipping it.
const DefaultMaxLineBytes = 8 * 1024

const bom = '\uFEFF'

// Dictionary is a personal word list. The zero value is not usable;
// construct one with New or NewWithFile.
type Dictionary struct {
	filename        string
	fileChanged     time.Time
	trie            *trie.Node
	display         *treemap.TreeMap[string, string]
	locker          FileLocker
	logger          zerolog.Logger
	maxLineBytes    int
	maxErrors       int
	suggestionLimit int
}

// New returns an empty, in-memory-only Dictionary.
func New() *Dictionary {
	return &Dictionary{
		display:         treemap.NewTreeMap[string, string](),
		locker:          noopLocker{},
		logger:          zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
		maxLineBytes:    DefaultMaxLineBytes,
		maxErrors:       DefaultMaxErrors,
		suggestionLimit: suggestion.DefaultLimit,
	}
}

// NewWithFile returns a Dictionary backed by the word-list file at path,
// creating it if it does not already exist, and loads its current contents.
func NewWithFile(path string) (*Dictionary, error) {
	if path == "" {
		return nil, errors.New("pwl: empty file path")
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("pwl: opening %s: %w", path, err)
	}
	_ = f.Close()

	d := New()
	d.filename = path
	d.refreshFromFile()
	return d, nil
}

// SetLogger overrides the logger used for file-ingest warnings.
func (d *Dictionary) SetLogger(logger zerolog.Logger) {
	d.logger = logger
}

// SetLocker overrides the advisory file locker used around reads/writes of
// the backing file. The default performs no locking.
func (d *Dictionary) SetLocker(locker FileLocker) {
	if locker != nil {
		d.locker = locker
	}
}

// SetMaxErrors overrides the edit-distance ceiling Suggest uses when the
// caller supplies no prior suggestions to beat. n <= 0 restores the default.
func (d *Dictionary) SetMaxErrors(n int) {
	if n <= 0 {
		n = DefaultMaxErrors
	}
	d.maxErrors = n
}

// SetSuggestionLimit overrides how many suggestions Suggest returns at most.
// n <= 0 restores the default.
func (d *Dictionary) SetSuggestionLimit(n int) {
	if n <= 0 {
		n = suggestion.DefaultLimit
	}
	d.suggestionLimit = n
}

// Close releases the trie's nodes. A closed Dictionary must not be reused.
func (d *Dictionary) Close() {
	trie.Free(d.trie)
	d.trie = nil
	d.display = treemap.NewTreeMap[string, string]()
}

// Check reports whether word is accepted by the dictionary, trying the
// word as given, then (for title- or all-caps words) its lowercase form,
// then (for all-caps words only) its title-case form.
func (d *Dictionary) Check(word string) bool {
	d.refreshFromFile()

	if d.contains(word) {
		return true
	}

	isAllCaps := casefold.IsAllCaps(word)
	if !casefold.IsTitleCase(word) && !isAllCaps {
		return false
	}

	if d.contains(casefold.ToLower(word)) {
		return true
	}
	if isAllCaps && d.contains(casefold.ToTitle(word)) {
		return true
	}
	return false
}

// contains reports whether the exact canonical form of word is present in
// the trie, with no error tolerance.
func (d *Dictionary) contains(word string) bool {
	canonical, ok := casefold.Canonicalize(word)
	if !ok {
		return false
	}
	found := false
	m := matcher.New(d.trie, []rune(canonical), matcher.CaseSensitive, 0)
	m.Find(func(candidate string, state *matcher.MatchState) {
		found = true
		*state.Ceiling = -1
	})
	return found
}

// Add inserts word into the dictionary, appending it to the backing file if
// one is configured. Re-adding a word already present is a no-op.
func (d *Dictionary) Add(word string) error {
	if word == "" {
		return errors.New("pwl: cannot add an empty word")
	}
	d.refreshFromFile()

	canonical, ok := casefold.Canonicalize(word)
	if !ok {
		return fmt.Errorf("pwl: %q is not valid UTF-8", word)
	}
	if d.display.ContainsKey(canonical) {
		return nil
	}

	d.trie = trie.Insert(d.trie, []rune(canonical))
	d.display.Put(canonical, word)

	if d.filename == "" {
		return nil
	}
	return d.appendToFile(word)
}

func (d *Dictionary) appendToFile(word string) error {
	f, err := os.OpenFile(d.filename, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("pwl: opening %s: %w", d.filename, err)
	}
	defer f.Close()

	if err := d.locker.Lock(f); err != nil {
		return fmt.Errorf("pwl: locking %s: %w", d.filename, err)
	}
	defer d.locker.Unlock(f)

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("pwl: stat %s: %w", d.filename, err)
	}

	needsLeadingNewline := false
	if size := info.Size(); size > 0 {
		buf := make([]byte, 1)
		if _, err := f.ReadAt(buf, size-1); err == nil && buf[0] != '\n' {
			needsLeadingNewline = true
		}
		// A file holding nothing but a BOM counts as empty.
		if size == int64(utf8.RuneLen(bom)) {
			head := make([]byte, size)
			if _, err := f.ReadAt(head, 0); err == nil && string(head) == string(bom) {
				needsLeadingNewline = false
			}
		}
	}

	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("pwl: seeking %s: %w", d.filename, err)
	}
	if needsLeadingNewline {
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("pwl: writing %s: %w", d.filename, err)
		}
	}
	if _, err := f.WriteString(word + "\n"); err != nil {
		return fmt.Errorf("pwl: writing %s: %w", d.filename, err)
	}

	if info, err := f.Stat(); err == nil {
		d.fileChanged = info.ModTime()
	}
	return nil
}

// Remove deletes word from the dictionary and rewrites the backing file,
// omitting matching lines, if one is configured. Removing a word that
// Check does not accept is a no-op.
func (d *Dictionary) Remove(word string) error {
	if !d.Check(word) {
		return nil
	}
	d.refreshFromFile()

	canonical, ok := casefold.Canonicalize(word)
	if !ok {
		return nil
	}
	if !d.display.ContainsKey(canonical) {
		return nil
	}

	d.trie = trie.Remove(d.trie, []rune(canonical))
	d.display.Remove(canonical)

	if d.filename == "" {
		return nil
	}
	return d.rewriteFileWithout(word)
}

func (d *Dictionary) rewriteFileWithout(word string) error {
	f, err := os.OpenFile(d.filename, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("pwl: opening %s: %w", d.filename, err)
	}
	defer f.Close()

	if err := d.locker.Lock(f); err != nil {
		return fmt.Errorf("pwl: locking %s: %w", d.filename, err)
	}
	defer d.locker.Unlock(f)

	contents, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("pwl: reading %s: %w", d.filename, err)
	}

	text := string(contents)
	var prefix string
	if r, size := utf8.DecodeRuneInString(text); r == bom {
		prefix = text[:size]
		text = text[size:]
	}

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimRight(line, "\r") == word {
			continue
		}
		kept = append(kept, line)
	}

	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("pwl: truncating %s: %w", d.filename, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("pwl: seeking %s: %w", d.filename, err)
	}
	if _, err := f.WriteString(prefix + strings.Join(kept, "\n")); err != nil {
		return fmt.Errorf("pwl: writing %s: %w", d.filename, err)
	}

	if info, err := f.Stat(); err == nil {
		d.fileChanged = info.ModTime()
	}
	return nil
}

// Suggest returns up to the configured suggestion limit (suggestion.DefaultLimit
// unless overridden by SetSuggestionLimit) of dictionary words within an
// error budget equal to the smallest edit distance from word to any entry of
// priorSuggestions, capped at the configured max-errors ceiling (or within
// that ceiling itself if priorSuggestions is empty),
// re-cased to match word's own casing and denormalized back to their stored
// display spelling.
func (d *Dictionary) Suggest(word string, priorSuggestions []string) []string {
	d.refreshFromFile()

	canonical, ok := casefold.Canonicalize(word)
	if !ok {
		return nil
	}

	ceiling := d.seedCeiling(canonical, priorSuggestions)

	buf := suggestion.New(d.suggestionLimit)
	m := matcher.New(d.trie, []rune(canonical), matcher.CaseInsensitive, ceiling)
	m.Find(func(candidate string, state *matcher.MatchState) {
		accepted, newCeiling := buf.Offer(candidate, state.Errors)
		if accepted && newCeiling >= 0 {
			*state.Ceiling = newCeiling
		}
	})

	return d.caseAndDenormalize(word, buf.Suggestions())
}

// seedCeiling computes the initial error ceiling for a Suggest search: the
// smallest edit distance from word to any of priorSuggestions, capped at the
// configured max-errors ceiling (DefaultMaxErrors unless SetMaxErrors changed
// it), or that ceiling itself if priorSuggestions is empty.
// priorSuggestions is drained through a deque so the caller's slice can be
// consumed front-to-back while a running minimum is tracked independently of
// the draining order, exactly as a best-of-many reduction would look with
// any other FIFO source.
func (d *Dictionary) seedCeiling(canonicalWord string, priorSuggestions []string) int {
	if len(priorSuggestions) == 0 {
		return d.maxErrors
	}

	q := deque.NewDeque[string]()
	for _, s := range priorSuggestions {
		_, _ = q.OfferLast(s)
	}

	best := utf8.RuneCountInString(canonicalWord)
	for !q.IsEmpty() {
		s, err := q.PollFirst()
		if err != nil {
			break
		}
		canonicalSugg, ok := casefold.Canonicalize(s)
		if !ok {
			continue
		}
		if dist := editdistance.DistanceString(canonicalWord, canonicalSugg); dist < best {
			best = dist
		}
	}
	if best > d.maxErrors {
		best = d.maxErrors
	}
	return best
}

// caseAndDenormalize maps each canonical candidate back to its stored
// display form and, when word itself is title- or all-caps, re-cases the
// result to match (unless the stored form is already all-caps, which is
// left untouched).
func (d *Dictionary) caseAndDenormalize(word string, canonicalCandidates []string) []string {
	var convert func(string) string
	switch {
	case casefold.IsTitleCase(word):
		convert = casefold.ToTitle
	case casefold.IsAllCaps(word):
		convert = casefold.ToUpper
	}

	out := make([]string, 0, len(canonicalCandidates))
	for _, canonical := range canonicalCandidates {
		display, ok := d.display.Get(canonical)
		if !ok {
			display = canonical
		}
		if convert != nil && !casefold.IsAllCaps(display) {
			display = convert(display)
		}
		out = append(out, display)
	}
	return out
}

// refreshFromFile reloads the trie from the backing file when the file's
// mtime has advanced since the last load. It is a no-op for in-memory
// dictionaries and for files whose mtime has not moved.
func (d *Dictionary) refreshFromFile() {
	if d.filename == "" {
		return
	}
	info, err := os.Stat(d.filename)
	if err != nil {
		return
	}
	if info.ModTime().Equal(d.fileChanged) {
		return
	}

	trie.Free(d.trie)
	d.trie = nil
	d.display = treemap.NewTreeMap[string, string]()

	f, err := os.Open(d.filename)
	if err != nil {
		return
	}
	defer f.Close()

	if err := d.locker.Lock(f); err != nil {
		return
	}
	defer d.locker.Unlock(f)

	d.fileChanged = info.ModTime()
	d.loadLines(f)
}

func (d *Dictionary) loadLines(f *os.File) {
	r := bufio.NewReaderSize(f, d.maxLineBytes)
	lineNumber := 1
	first := true
	for {
		line, tooLong, err := readLine(r, d.maxLineBytes)
		if line == "" && err == io.EOF {
			return
		}
		if first {
			first = false
			if r, size := utf8.DecodeRuneInString(line); r == bom {
				line = line[size:]
			}
		}
		if tooLong {
			d.logger.Warn().Str("file", d.filename).Int("line", lineNumber).Msg("line too long, ignored")
		} else {
			line = strings.TrimRight(line, "\r\n")
			if line != "" && line[0] != '#' {
				if utf8.ValidString(line) {
					d.addFromFile(line)
				} else {
					d.logger.Warn().Str("file", d.filename).Int("line", lineNumber).Msg("invalid UTF-8 sequence, ignored")
				}
			}
		}
		lineNumber++
		if err == io.EOF {
			return
		}
	}
}

// addFromFile inserts a word read from the backing file without touching
// the file itself.
func (d *Dictionary) addFromFile(word string) {
	canonical, ok := casefold.Canonicalize(word)
	if !ok {
		return
	}
	if d.display.ContainsKey(canonical) {
		return
	}
	d.trie = trie.Insert(d.trie, []rune(canonical))
	d.display.Put(canonical, word)
}

// readLine reads one line (including its trailing newline, if any) from r.
// tooLong reports whether the line exceeded maxBytes; the caller is expected
// to skip such a line rather than hand it to the trie.
func readLine(r *bufio.Reader, maxBytes int) (line string, tooLong bool, err error) {
	raw, err := r.ReadString('\n')
	return raw, len(raw) > maxBytes, err
}
