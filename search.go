package dawg

import (
	"fmt"

	"github.com/milden6/subdawg/internal/framestack"
)

// letterBag is the remaining query letters available to a search branch,
// copied by value into every frame so that a child frame can never
// observe a sibling branch's consumption of the same multiset.
type letterBag struct {
	counts    [26]int8
	wildcards int8
}

func newLetterBag(letters string) (letterBag, error) {
	var b letterBag
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		switch {
		case c == '?':
			b.wildcards++
		case c >= 'A' && c <= 'Z':
			b.counts[c-'A']++
		case c >= 'a' && c <= 'z':
			b.counts[c-'a']++
		default:
			return letterBag{}, fmt.Errorf("dawg: invalid letter %q in query", c)
		}
	}
	return b, nil
}

// consume returns the bag left after spending one occurrence of letter,
// preferring a real tile over a wildcard. ok is false if neither is
// available.
func (b letterBag) consume(letter byte) (next letterBag, usedWildcard bool, ok bool) {
	i := letter - 'A'
	if b.counts[i] > 0 {
		b.counts[i]--
		return b, false, true
	}
	if b.wildcards > 0 {
		b.wildcards--
		return b, true, true
	}
	return b, false, false
}

// frame is one unit of search-engine work: a node in the automaton, the
// letters still available from that point on, the subword assembled so
// far, and the pattern position reached.
type frame struct {
	node              int32
	chars             letterBag
	subword           string
	wildcardPositions []int
	patternIndex      int
}

// appendWildcardPos always copies, so that two sibling frames branching
// from the same parent frame never alias the same backing array.
func appendWildcardPos(base []int, pos int) []int {
	out := make([]int, len(base), len(base)+1)
	copy(out, base)
	return append(out, pos)
}

func validLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '?' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			continue
		}
		return false
	}
	return true
}

// engine holds the state shared by every frame processed during one
// Subwords call.
type engine struct {
	d       *Dawg
	tokens  []patternToken
	results []Result
	seen    map[string]struct{}
}

// Subwords returns every dictionary word constructible from letters
// (an optionally wildcard-bearing multiset), additionally constrained by
// pattern if non-empty. When pattern has no leading '$' and starts with a
// letter, the word's letter that matches it is not drawn from letters.
// letters shorter than two characters, or
// containing anything outside [A-Za-z?], are rejected outright -- as is
// a pattern that doesn't match the compiler's grammar -- distinct from a
// well-formed query that simply has no matches. The traversal is
// iterative: frames are kept on an explicit heap-allocated stack rather
// than the call stack, so no query recurses.
func (d *Dawg) Subwords(letters, pattern string) ([]Result, error) {
	if len(letters) < 2 {
		return nil, fmt.Errorf("dawg: query letters %q shorter than 2 characters", letters)
	}
	if !validLetters(letters) {
		return nil, fmt.Errorf("dawg: invalid letter in query %q", letters)
	}
	tokens, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	bag, err := newLetterBag(letters)
	if err != nil {
		return nil, err
	}

	e := &engine{d: d, tokens: tokens, seen: make(map[string]struct{})}

	stack := framestack.New[frame]()
	stack.Push(frame{node: rootIndex, chars: bag})

	for !stack.IsEmpty() {
		f := stack.Pop()
		e.step(stack, f)
	}

	return e.results, nil
}

func (e *engine) step(stack *framestack.Stack[frame], f frame) {
	if f.patternIndex >= len(e.tokens) {
		e.stepNoToken(stack, f)
		return
	}
	token := e.tokens[f.patternIndex]
	if token.required {
		e.stepRequired(stack, f, token)
		return
	}
	e.stepOptional(stack, f, token)
}

// stepNoToken is case A: the pattern is exhausted (or empty), so the
// traversal is free to descend through any child the remaining letters
// allow.
func (e *engine) stepNoToken(stack *framestack.Stack[frame], f frame) {
	e.emit(f)
	e.expand(stack, f)
}

// stepRequired is case B: the current pattern token must be satisfied
// for this branch to survive.
func (e *engine) stepRequired(stack *framestack.Stack[frame], f frame, token patternToken) {
	switch token.letter {
	case startAnchorLetter:
		// Matches only the root; consumes no letter and advances past it.
		if f.node != rootIndex {
			return
		}
		stack.Push(frame{
			node:              f.node,
			chars:             f.chars,
			subword:           f.subword,
			wildcardPositions: f.wildcardPositions,
			patternIndex:      f.patternIndex + 1,
		})

	case endAnchorLetter:
		if f.subword == "" {
			return
		}
		e.emit(f)
		// Deliberate dead end: re-pushing an identical frame here would
		// loop forever, so the branch ends once the anchor is checked.

	case wildcardLetter:
		e.pushAllChildren(stack, f, func(byte) bool { return true }, true)

	default:
		letter := byte(token.letter)
		e.pushAllChildren(stack, f, func(l byte) bool { return l == letter }, true)
	}
}

// stepOptional is case C: only the pattern's first token, when the
// pattern carries no leading anchor, is ever optional. A '?' token
// consumes a letter from chars and pushes both the advancing and the
// non-advancing branch from that single consumption. A specific-letter
// token L is asymmetric: its non-advancing branch consumes a letter like
// any other expansion, but its advancing branch matches L against the
// path without drawing from chars at all -- the open-prefix letter is
// "not part of the available letter bag" (spec's words), so the pattern
// can be satisfied by a letter the query never supplied.
func (e *engine) stepOptional(stack *framestack.Stack[frame], f frame, token patternToken) {
	switch token.letter {
	case wildcardLetter:
		e.pushAllChildren(stack, f, func(l byte) bool { return true }, true)
	default:
		e.pushOpenPrefixMatch(stack, f, byte(token.letter))
	}
	// Letter-accepted-but-pattern-still-pending branch: consume any
	// child letter, keep patternIndex unchanged.
	e.expand(stack, f)
}

// pushOpenPrefixMatch is the advancing branch of an optional
// specific-letter token: if f.node has a child labeled letter, the
// pattern token is considered matched by that letter without spending
// one from chars.
func (e *engine) pushOpenPrefixMatch(stack *framestack.Stack[frame], f frame, letter byte) {
	idx, ok := e.d.findChild(f.node, letter)
	if !ok {
		return
	}
	stack.Push(frame{
		node:              idx,
		chars:             f.chars,
		subword:           f.subword + string(letter),
		wildcardPositions: f.wildcardPositions,
		patternIndex:      f.patternIndex + 1,
	})
}

// pushAllChildren walks node's children, and for each whose letter
// satisfies accept, pushes a descended frame if the bag can supply that
// letter -- a real tile, or else a wildcard tile. advance controls
// whether the new frame's patternIndex moves past the current token.
func (e *engine) pushAllChildren(stack *framestack.Stack[frame], f frame, accept func(byte) bool, advance bool) {
	it := e.d.children(f.node)
	for {
		idx, c, ok := it.next()
		if !ok {
			return
		}
		letter := c.letter()
		if !accept(letter) {
			continue
		}
		next, usedWildcard, ok := f.chars.consume(letter)
		if !ok {
			continue
		}
		wp := f.wildcardPositions
		if usedWildcard {
			wp = appendWildcardPos(wp, len(f.subword))
		}
		patternIndex := f.patternIndex
		if advance {
			patternIndex++
		}
		stack.Push(frame{
			node:              idx,
			chars:             next,
			subword:           f.subword + string(letter),
			wildcardPositions: wp,
			patternIndex:      patternIndex,
		})
	}
}

// expand descends through every child the remaining letters can supply,
// with no pattern constraint at all -- used both for case A and for the
// open-prefix skip branch of case C.
func (e *engine) expand(stack *framestack.Stack[frame], f frame) {
	e.pushAllChildren(stack, f, func(byte) bool { return true }, false)
}

// emit records f's subword as a result, unless it already appeared --
// results are collected in a set keyed by word, first insertion wins, so
// the same word reached by two different branches (e.g. an open-prefix
// match at different positions) is reported only once.
func (e *engine) emit(f frame) {
	if f.node == rootIndex {
		return
	}
	if f.subword == "" {
		return
	}
	if !e.d.cells.at(f.node).terminal() {
		return
	}
	if _, dup := e.seen[f.subword]; dup {
		return
	}
	e.seen[f.subword] = struct{}{}
	e.results = append(e.results, Result{
		Word:              f.subword,
		WildcardPositions: f.wildcardPositions,
	})
}
