package dawg_test

import "testing"

// TestScenarioMembership covers S1: plain membership, case folding, and
// the short-input floor.
func TestScenarioMembership(t *testing.T) {
	d := buildFrom("SEARCH", "SEARCHED", "SEARCHING")

	if !d.Contains("search") {
		t.Errorf(`Contains("search") = false, want true`)
	}
	if d.Contains("searches") {
		t.Errorf(`Contains("searches") = true, want false`)
	}
	if d.Contains("j") {
		t.Errorf(`Contains("j") = true, want false`)
	}
	if d.Contains("") {
		t.Errorf(`Contains("") = true, want false`)
	}
}

// TestScenarioNodeSharing covers S2: minimization must fuse the shared
// "ARS" suffix of CARS and BARS into one subgraph, addressed by the same
// cell index wherever it is referenced.
func TestScenarioNodeSharing(t *testing.T) {
	d := buildFrom("CARS", "BARS")

	// Fewer cells than an unminimized trie (root + C + A + R + S +
	// B + A + R + S = 9, one per letter plus root) demonstrates sharing;
	// an exact count would overfit to a particular packing order.
	const unminimizedUpperBound = 9
	if n := d.NodeCount(); n >= unminimizedUpperBound {
		t.Errorf("NodeCount() = %d, want < %d (ARS suffix should be shared)", n, unminimizedUpperBound)
	}
	if !d.Contains("CARS") || !d.Contains("BARS") {
		t.Fatalf("dictionary lost a word after minimization")
	}
}

// TestScenarioSubwordsNoPattern covers S3, using a small hand-picked
// dictionary in place of the full TWL06 word list (not part of this
// repository): every PHONE-derivable word named by the scenario must be
// present, and no word using a letter absent from PHONE may appear.
func TestScenarioSubwordsNoPattern(t *testing.T) {
	words := []string{
		"PHONE", "HONE", "PONE", "NOPE", "EON", "HON", "ONE", "EH", "PE", "OP",
		// distractors that must NOT appear in a PHONE-derived result set
		"CAT", "XYZ", "PHONED",
	}
	d := buildFrom(words...)

	results, err := d.Subwords("PHONE", "")
	if err != nil {
		t.Fatalf("Subwords: %v", err)
	}
	got := ExtractSorted(results)

	want := []string{"PHONE", "HONE", "PONE", "NOPE", "EON", "HON", "ONE", "EH", "PE", "OP"}
	if !containsAll(got, want) {
		t.Errorf("Subwords(%q) = %v, missing one of %v", "PHONE", got, want)
	}
	for _, w := range got {
		if !lettersSubsetOf(w, "PHONE") {
			t.Errorf("Subwords(%q) returned %q, not constructible from PHONE", "PHONE", w)
		}
	}
}

// TestScenarioSingleWildcard covers S4: a two-letter query with one
// wildcard matches exactly one dictionary word.
func TestScenarioSingleWildcard(t *testing.T) {
	d := buildFrom("QI")

	results, err := d.Subwords("?Q", "")
	if err != nil {
		t.Fatalf("Subwords: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Subwords(%q) returned %d results, want 1: %v", "?Q", len(results), results)
	}
	r := results[0]
	if r.Word != "QI" {
		t.Errorf("Subwords(%q)[0].Word = %q, want QI", "?Q", r.Word)
	}
	if len(r.WildcardPositions) != 1 || r.WildcardPositions[0] != 1 {
		t.Errorf("WildcardPositions = %v, want [1]", r.WildcardPositions)
	}
}

// TestScenarioShortInputRejection covers S5: a one-letter query can
// never satisfy the two-letter word floor, and a pattern using a
// disallowed character is rejected outright.
func TestScenarioShortInputRejection(t *testing.T) {
	d := buildFrom("QI", "AT", "CAT")

	if _, err := d.Subwords("A", ""); err == nil {
		t.Errorf(`Subwords("A", "") returned no error, want rejection (fewer than 2 letters)`)
	}

	if _, err := d.Subwords("AB", `bad\pattern`); err == nil {
		t.Errorf(`Subwords("AB", "bad\\pattern") returned no error, want rejection`)
	}
}

// TestScenarioAnchors covers S6: a start+end anchored pattern restricts
// results to an exact match, while a start-only anchor still allows
// longer words built on that prefix.
func TestScenarioAnchors(t *testing.T) {
	d := buildFrom("CAT", "CATS")

	both, err := d.Subwords("CATS", "$CAT$")
	if err != nil {
		t.Fatalf("Subwords: %v", err)
	}
	if got := ExtractSorted(both); len(got) != 1 || got[0] != "CAT" {
		t.Errorf(`Subwords("CATS", "$CAT$") = %v, want [CAT]`, got)
	}

	startOnly, err := d.Subwords("CATS", "$CAT")
	if err != nil {
		t.Fatalf("Subwords: %v", err)
	}
	got := ExtractSorted(startOnly)
	if !containsAll(got, []string{"CAT", "CATS"}) {
		t.Errorf(`Subwords("CATS", "$CAT") = %v, want to include CAT and CATS`, got)
	}
}
