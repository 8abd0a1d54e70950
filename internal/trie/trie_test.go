package trie

import "testing"

func TestAddAndContains(t *testing.T) {
	tr := New()
	if !tr.Add("cat") {
		t.Fatalf("Add(\"cat\") = false, want true")
	}
	if tr.Add("cat") {
		t.Errorf("second Add(\"cat\") = true, want false")
	}
	if !tr.Contains("cat") {
		t.Errorf("Contains(\"cat\") = false, want true")
	}
	if tr.Contains("ca") {
		t.Errorf("Contains(\"ca\") = true, want false")
	}
}

func TestAddFoldsCase(t *testing.T) {
	tr := New()
	tr.Add("Cat")
	if !tr.Contains("cat") || !tr.Contains("CAT") {
		t.Errorf("Add should fold case")
	}
}

func TestAddRejectsShortWords(t *testing.T) {
	tr := New()
	if tr.Add("a") {
		t.Errorf("Add(\"a\") = true, want false")
	}
	if tr.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1 (root only)", tr.NodeCount())
	}
}

func TestNodeCount(t *testing.T) {
	tr := New()
	tr.Add("at")
	tr.Add("cat")
	// root -> A -> T(terminal); root -> C -> A -> T(terminal): 6 nodes.
	if got := tr.NodeCount(); got != 6 {
		t.Errorf("NodeCount() = %d, want 6", got)
	}
}

func TestMinimizeFusesSharedSuffix(t *testing.T) {
	tr := New()
	tr.Add("cars")
	tr.Add("bars")
	before := tr.NodeCount()

	tr.Minimize()
	packed := tr.Pack()

	if len(packed) >= before {
		t.Errorf("Pack() produced %d cells, want fewer than the %d unminimized trie nodes", len(packed), before)
	}
	if !containsWord(packed, "CARS") || !containsWord(packed, "BARS") {
		t.Errorf("minimized graph lost a word")
	}
}

func TestMinimizeRejectsNothingNew(t *testing.T) {
	tr := New()
	tr.Add("a")
	tr.Add("z")
	// Neither "A" nor "Z" was long enough to add; minimizing and packing
	// an empty trie should not panic and should yield just the root.
	tr.Minimize()
	packed := tr.Pack()
	if len(packed) != 1 {
		t.Errorf("Pack() on an empty trie = %d cells, want 1 (root)", len(packed))
	}
}

func containsWord(packed []PackedNode, word string) bool {
	node := int32(0)
	for i := 0; i < len(word); i++ {
		next, ok := findPacked(packed, node, word[i])
		if !ok {
			return false
		}
		node = next
	}
	return packed[node].Terminal
}

func findPacked(packed []PackedNode, node int32, letter byte) (int32, bool) {
	idx := packed[node].FirstChildIndex
	if idx < 0 {
		return 0, false
	}
	for {
		c := packed[idx]
		if c.Letter == letter {
			return idx, true
		}
		if c.LastSibling {
			return 0, false
		}
		idx++
	}
}
