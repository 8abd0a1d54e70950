// Package dawg is an in-memory, read-optimized dictionary built on a
// Directed Acyclic Word Graph: a fixed set of uppercase ASCII words,
// stored as a minimized automaton and queried for plain membership or for
// "subword" search -- every dictionary word constructible from a letter
// multiset, optionally constrained by a pattern with single-letter
// wildcards and start/end anchors.
//
// Build a dictionary with Builder, then query the *Dawg it produces.
// A Dawg is immutable: Contains and Subwords may be called concurrently
// from any number of goroutines without external synchronization.
package dawg

import (
	"io"

	"golang.org/x/exp/slices"
)

// Result is one match returned by Subwords: a dictionary word
// constructible from the query's letters (plus, if a pattern was given,
// one that matches it; see Subwords for the one pattern letter not drawn
// from the query's letters), and the positions within Word at which a '?'
// wildcard letter was spent to complete it.
type Result struct {
	Word              string
	WildcardPositions []int
}

// Dawg is an immutable, minimized Directed Acyclic Word Graph.
type Dawg struct {
	cells  cellSource
	closer io.Closer
}

const rootIndex int32 = 0

// NodeCount returns the number of packed cells in the automaton.
func (d *Dawg) NodeCount() int { return d.cells.len() }

// Contains reports whether word is present in the dictionary. Words
// shorter than two characters never match; matching is case-insensitive.
func (d *Dawg) Contains(word string) bool {
	if len(word) < 2 {
		return false
	}
	idx := rootIndex
	for i := 0; i < len(word); i++ {
		next, ok := d.findChild(idx, upper(word[i]))
		if !ok {
			return false
		}
		idx = next
	}
	return d.cells.at(idx).terminal()
}

// findChild scans node's child block for letter, stopping after the cell
// with lastSibling set.
func (d *Dawg) findChild(node int32, letter byte) (int32, bool) {
	it := d.children(node)
	for {
		idx, c, ok := it.next()
		if !ok {
			return 0, false
		}
		if c.letter() == letter {
			return idx, true
		}
	}
}

// childIterator walks the contiguous run of a node's children, stopping
// after yielding the cell marked lastSibling. A node with no children
// (firstChild() < 0) yields nothing.
type childIterator struct {
	d     *Dawg
	index int32
	done  bool
}

func (d *Dawg) children(node int32) *childIterator {
	fc := d.cells.at(node).firstChild()
	if fc < 0 {
		return &childIterator{d: d, done: true}
	}
	return &childIterator{d: d, index: fc}
}

func (it *childIterator) next() (index int32, c cell, ok bool) {
	if it.done {
		return 0, 0, false
	}
	index = it.index
	c = it.d.cells.at(index)
	if c.lastSibling() {
		it.done = true
	} else {
		it.index++
	}
	return index, c, true
}

// Close releases resources held by a memory-mapped Dawg (see LoadFile).
// It is a no-op for a Dawg produced by Builder.Build or Load.
func (d *Dawg) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

// ExtractWords returns the distinct words present in results, sorted for
// deterministic iteration -- a convenience projection over a Subwords
// result set.
func ExtractWords(results []Result) []string {
	seen := make(map[string]struct{}, len(results))
	words := make([]string, 0, len(results))
	for _, r := range results {
		if _, ok := seen[r.Word]; ok {
			continue
		}
		seen[r.Word] = struct{}{}
		words = append(words, r.Word)
	}
	slices.Sort(words)
	return words
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
