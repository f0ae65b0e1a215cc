package epitope_test

import (
	"testing"

	"epitizer/internal/epitope"
)

func TestDedupePreservesFirstSeenOrder(t *testing.T) {
	got, removed := epitope.Dedupe([]string{"A", "B", "A", "C", "B"})
	assertEpitopes(t, got, []string{"A", "B", "C"})
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
}

func TestDedupeIsIdempotent(t *testing.T) {
	once, removed := epitope.Dedupe([]string{"ACD", "EFG", "ACD"})
	if removed != 1 {
		t.Fatalf("expected 1 removed on first pass, got %d", removed)
	}
	twice, removed := epitope.Dedupe(once)
	if removed != 0 {
		t.Fatalf("expected 0 removed on second pass, got %d", removed)
	}
	assertEpitopes(t, twice, once)
}

func TestDedupeIsCaseSensitive(t *testing.T) {
	got, removed := epitope.Dedupe([]string{"acd", "ACD"})
	assertEpitopes(t, got, []string{"acd", "ACD"})
	if removed != 0 {
		t.Fatalf("expected case variants to survive, removed %d", removed)
	}
}

func TestDedupeEmptyInput(t *testing.T) {
	got, removed := epitope.Dedupe(nil)
	if len(got) != 0 || removed != 0 {
		t.Fatalf("expected empty result, got %v (removed %d)", got, removed)
	}
}
