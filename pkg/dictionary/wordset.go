package dictionary

import (
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"
)

// wordSet is a membership index over spellings, backed by a patricia trie.
// Insertion dedupes; once a compile pass finishes the set is never mutated
// again, so concurrent reads need no locking.
type wordSet struct {
	trie *patricia.Trie
	size int
}

func newWordSet() *wordSet {
	return &wordSet{trie: patricia.NewTrie()}
}

func (s *wordSet) insert(word string) {
	if s.trie.Insert(patricia.Prefix(word), true) {
		s.size++
	}
}

func (s *wordSet) has(word string) bool {
	return s.trie.Match(patricia.Prefix(word))
}

func (s *wordSet) len() int {
	return s.size
}

// items returns every spelling in lexicographic order. O(n log n); meant for
// export and diagnostics, not lookup.
func (s *wordSet) items() []string {
	words := make([]string, 0, s.size)
	s.trie.Visit(func(p patricia.Prefix, _ patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	sort.Strings(words)
	return words
}
