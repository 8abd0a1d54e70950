package trie

// PackedNode is the pre-bitpacking, flat view of one minimized node, as
// emitted by Pack in index order.
type PackedNode struct {
	Letter          byte
	Terminal        bool
	LastSibling     bool
	FirstChildIndex int32 // -1 if the node has no children
}

// Pack performs the minimizer's final step: a fresh breadth-first
// numbering of the (now minimized) graph that assigns an index to a node
// only the first time it is reached, so that a node reachable through
// more than one parent -- the result of a merge in Minimize -- is emitted
// exactly once and shared by every reference to it. Call Minimize before
// Pack.
//
// Node identity, not the stale index assigned during Minimize, drives the
// "already visited" check here, via a map keyed by node pointer; this is
// equivalent to the clear-then-reuse-the-index-field approach but avoids
// re-walking the (now-shared) graph just to reset scratch fields.
func (t *Trie) Pack() []PackedNode {
	assigned := make(map[*node]int32)
	order := make([]*node, 0)

	queue := []*node{t.root}
	assigned[t.root] = 0
	order = append(order, t.root)
	next := int32(1)

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for c := n.firstChild; c != nil; c = c.next {
			if _, ok := assigned[c]; ok {
				continue
			}
			assigned[c] = next
			next++
			order = append(order, c)
			queue = append(queue, c)
		}
	}

	packed := make([]PackedNode, len(order))
	for _, n := range order {
		idx := assigned[n]
		firstChild := int32(-1)
		if n.firstChild != nil {
			firstChild = assigned[n.firstChild]
		}
		packed[idx] = PackedNode{
			Letter:          n.letter,
			Terminal:        n.terminal,
			LastSibling:     n.lastSibling,
			FirstChildIndex: firstChild,
		}
	}
	return packed
}
