package dawg

import (
	"github.com/milden6/subdawg/internal/trie"
)

// BuildStats summarizes one Build call, useful for logging and tests.
type BuildStats struct {
	TrieNodes   int
	PackedNodes int
	WordCount   int
}

// Builder accumulates words into a transient trie, then minimizes and
// packs it into an immutable *Dawg. A Builder is single-use: once Build
// has been called, every other method panics.
type Builder struct {
	trie      *trie.Trie
	wordCount int
	built     bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{trie: trie.New()}
}

// Add inserts word, folding case. Words shorter than two characters are
// silently ignored, matching Contains' own length floor. Reports whether
// the word was newly added.
func (b *Builder) Add(word string) bool {
	b.checkNotBuilt()
	added := b.trie.Add(word)
	if added {
		b.wordCount++
	}
	return added
}

// Contains reports whether word has been added so far.
func (b *Builder) Contains(word string) bool {
	b.checkNotBuilt()
	return b.trie.Contains(word)
}

// NodeCount returns the current (unminimized) trie node count.
func (b *Builder) NodeCount() int {
	b.checkNotBuilt()
	return b.trie.NodeCount()
}

// WordCount returns the number of distinct words added so far.
func (b *Builder) WordCount() int {
	b.checkNotBuilt()
	return b.wordCount
}

// Build minimizes the accumulated trie into a DAWG and packs it into a
// *Dawg, consuming the Builder. Calling Build a second time, or any other
// method after Build, panics.
func (b *Builder) Build() (*Dawg, BuildStats) {
	b.checkNotBuilt()

	trieNodes := b.trie.NodeCount()
	b.trie.Minimize()
	packed := b.trie.Pack()

	cells := make(sliceCells, len(packed))
	for i, p := range packed {
		cells[i] = makeCell(p.Letter, p.Terminal, p.LastSibling, p.FirstChildIndex)
	}

	stats := BuildStats{
		TrieNodes:   trieNodes,
		PackedNodes: len(cells),
		WordCount:   b.wordCount,
	}

	b.built = true
	b.trie = nil

	return &Dawg{cells: cells}, stats
}

func (b *Builder) checkNotBuilt() {
	if b.built {
		panic("dawg: Builder used after Build")
	}
}
