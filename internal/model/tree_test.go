package model

import "testing"

func TestParseTreeSearchSimple(t *testing.T) {
	qSilence, err := NewQuestion("QS_silence", []string{"*-sil+*"})
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
	questions := map[string]*Question{"QS_silence": qSilence}

	lines := []string{
		"0 QS_silence leaf1 leaf0",
	}
	tree, err := ParseTree(2, lines, questions)
	if err != nil {
		t.Fatalf("ParseTree: %v", err)
	}
	if tree.State != 2 {
		t.Fatalf("State = %d, want 2", tree.State)
	}

	idx, ok := tree.Search("a-sil+b")
	if !ok || idx != 1 {
		t.Fatalf("Search(sil) = (%d, %v), want (1, true)", idx, ok)
	}
	idx, ok = tree.Search("a-pau+b")
	if !ok || idx != 0 {
		t.Fatalf("Search(pau) = (%d, %v), want (0, true)", idx, ok)
	}
}

func TestParseTreeMultiLevel(t *testing.T) {
	qSil, _ := NewQuestion("QS_sil", []string{"*-sil+*"})
	qA, _ := NewQuestion("QS_a", []string{"*-a+*"})
	questions := map[string]*Question{"QS_sil": qSil, "QS_a": qA}

	lines := []string{
		"0 QS_sil leaf2 1",
		"1 QS_a leaf0 leaf1",
	}
	tree, err := ParseTree(0, lines, questions)
	if err != nil {
		t.Fatalf("ParseTree: %v", err)
	}

	idx, ok := tree.Search("x-sil+y")
	if !ok || idx != 2 {
		t.Fatalf("Search(sil) = (%d, %v), want (2, true)", idx, ok)
	}
	idx, ok = tree.Search("x-a+y")
	if !ok || idx != 0 {
		t.Fatalf("Search(a) = (%d, %v), want (0, true)", idx, ok)
	}
	idx, ok = tree.Search("x-o+y")
	if !ok || idx != 1 {
		t.Fatalf("Search(o) = (%d, %v), want (1, true)", idx, ok)
	}
}

func TestSearchMissingNodeReturnsFalse(t *testing.T) {
	q, _ := NewQuestion("QS_sil", []string{"*-sil+*"})
	questions := map[string]*Question{"QS_sil": q}
	lines := []string{"0 QS_sil leaf0 5"}
	tree, err := ParseTree(0, lines, questions)
	if err != nil {
		t.Fatalf("ParseTree: %v", err)
	}
	if _, ok := tree.Search("x-o+y"); ok {
		t.Fatalf("expected Search to fail for missing node 5")
	}
}

func TestParseNodeUnknownQuestion(t *testing.T) {
	if _, err := ParseTree(0, []string{"0 QS_missing leaf0 leaf1"}, map[string]*Question{}); err == nil {
		t.Fatalf("expected error for unknown question")
	}
}
