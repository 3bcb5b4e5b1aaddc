/*
Package dictionary compiles Hunspell-style word lists into query-ready
spelling sets.

A Dictionary accumulates three raw documents through its loaders: an affix
configuration, a main word list of root/flag entries, and a personal
dictionary that can add or forbid words by reference to existing roots.
Compile expands every flagged root through the affix rules and partitions
the results into three sets: accepted words, accepted-but-never-suggested
words, and forbidden words. Forbidden status always wins at query time.

Loaders and Compile mutate private state and are not safe for concurrent
use. Once compiled, the sets are immutable and Check may be called from any
number of goroutines.
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/bastiangx/spellserve/pkg/affix"
	"github.com/charmbracelet/log"
)

// ErrRootWordNotFound reports a personal dictionary entry referencing a root
// that does not exist in the main word list.
var ErrRootWordNotFound = errors.New("root word not found")

// rawEntry is a main word list line split at the flag delimiter.
type rawEntry struct {
	root  string
	flags string
}

// personalEntry is a parsed personal dictionary line: [*]word[/otherword].
type personalEntry struct {
	word      string
	ref       string
	forbidden bool
}

// Dictionary is the spellchecking dictionary. Zero value is not usable; call
// New.
type Dictionary struct {
	afx *affix.Affix

	words     *wordSet
	noSuggest *wordSet
	forbidden *wordSet

	rawWordlist []rawEntry
	rawPersonal []personalEntry

	compiled bool
}

// New returns an empty dictionary ready for loading.
func New() *Dictionary {
	return &Dictionary{
		afx:       affix.New(),
		words:     newWordSet(),
		noSuggest: newWordSet(),
		forbidden: newWordSet(),
	}
}

// Affix exposes the affix configuration, mainly for expansion diagnostics.
func (d *Dictionary) Affix() *affix.Affix {
	return d.afx
}

// LoadAffix parses the affix document. The load is atomic; on failure the
// previous affix configuration is kept. Any successful or failed load marks
// the dictionary as needing a new Compile.
func (d *Dictionary) LoadAffix(text string) error {
	d.compiled = false
	return d.afx.Load(text)
}

// LoadWordlist parses the main word list. The first line is an advisory
// entry count and is discarded; remaining lines are root[/flags].
func (d *Dictionary) LoadWordlist(text string) {
	d.compiled = false
	d.rawWordlist = d.rawWordlist[:0]

	sc := bufio.NewScanner(strings.NewReader(text))
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first {
			first = false
			continue
		}
		if line == "" {
			continue
		}
		root, flags, _ := strings.Cut(line, "/")
		d.rawWordlist = append(d.rawWordlist, rawEntry{root: root, flags: flags})
	}
	log.Debugf("wordlist loaded: %d raw entries", len(d.rawWordlist))
}

// LoadPersonal parses the personal dictionary: lines of [*]word[/otherword].
// A leading * forbids the word; /otherword borrows the affix flags of an
// existing root at compile time.
func (d *Dictionary) LoadPersonal(text string) {
	d.compiled = false
	d.rawPersonal = d.rawPersonal[:0]

	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		forbidden := strings.HasPrefix(line, "*")
		line = strings.TrimPrefix(line, "*")
		word, ref, _ := strings.Cut(line, "/")
		if word == "" {
			continue
		}
		d.rawPersonal = append(d.rawPersonal, personalEntry{word: word, ref: ref, forbidden: forbidden})
	}
	log.Debugf("personal dictionary loaded: %d raw entries", len(d.rawPersonal))
}

// Compile rebuilds the three word sets from the raw documents.
//
// The pass is atomic and idempotent: it either fully replaces the compiled
// sets or fails leaving any previous compiled state untouched. Personal
// cross-references resolve against an exact root index, never a prefix
// scan.
func (d *Dictionary) Compile() error {
	rootFlags := make(map[string]string, len(d.rawWordlist))
	for _, e := range d.rawWordlist {
		if _, ok := rootFlags[e.root]; !ok {
			rootFlags[e.root] = e.flags
		}
	}

	// Resolve every cross-reference before touching any output set.
	for _, p := range d.rawPersonal {
		if p.ref == "" {
			continue
		}
		if _, ok := rootFlags[p.ref]; !ok {
			return fmt.Errorf("personal entry %q: %w: %q", p.word, ErrRootWordNotFound, p.ref)
		}
	}

	words := newWordSet()
	noSuggest := newWordSet()
	forbidden := newWordSet()

	insertExpanded := func(word, flags string) {
		target := words
		if d.afx.IsNoSuggest(flags) {
			target = noSuggest
		}
		for _, w := range d.afx.CreateAffixedWords(word, flags) {
			target.insert(w)
		}
	}

	for _, e := range d.rawWordlist {
		if e.flags == "" {
			words.insert(e.root)
			continue
		}
		insertExpanded(e.root, e.flags)
	}

	for _, p := range d.rawPersonal {
		switch {
		case p.forbidden:
			forbidden.insert(p.word)
		case p.ref == "":
			words.insert(p.word)
		default:
			// Apply the referenced root's rules to this word, not to the
			// root itself.
			insertExpanded(p.word, rootFlags[p.ref])
		}
	}

	d.words, d.noSuggest, d.forbidden = words, noSuggest, forbidden
	d.compiled = true
	log.Debugf("dictionary compiled: %d words, %d nosuggest, %d forbidden",
		words.len(), noSuggest.len(), forbidden.len())
	return nil
}

// Compiled reports whether the dictionary is queryable.
func (d *Dictionary) Compiled() bool {
	return d.compiled
}

// Check reports whether a word is spelled correctly: absent from the
// forbidden set and present in the accepted or nosuggest set. No case
// folding or normalization happens here; callers pre-normalize if they want
// it.
//
// Check panics when called before a successful Compile. That is caller
// misuse, not bad data.
func (d *Dictionary) Check(word string) bool {
	d.mustCompiled()
	return !d.forbidden.has(word) && (d.words.has(word) || d.noSuggest.has(word))
}

// WordlistItems returns every accepted, suggestable word in lexicographic
// order. Relatively slow; use Check on hot paths.
func (d *Dictionary) WordlistItems() []string {
	d.mustCompiled()
	return d.words.items()
}

// Stats returns compiled set sizes, for diagnostics and the server's info
// action.
func (d *Dictionary) Stats() map[string]int {
	d.mustCompiled()
	return map[string]int{
		"words":     d.words.len(),
		"noSuggest": d.noSuggest.len(),
		"forbidden": d.forbidden.len(),
	}
}

func (d *Dictionary) mustCompiled() {
	if !d.compiled {
		panic("dictionary: Compile must succeed before querying")
	}
}
