package model

import "testing"

func TestQuestionWildcardMatch(t *testing.T) {
	q, err := NewQuestion("QS_silence", []string{"*-sil+*"})
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
	if !q.Test("a^b-sil+c=d") {
		t.Fatalf("expected match for -sil+")
	}
	if q.Test("a^b-pau+c=d") {
		t.Fatalf("unexpected match for -pau+")
	}
}

func TestQuestionMultiplePatterns(t *testing.T) {
	q, err := NewQuestion("QS_vowel", []string{"*-a+*", "*-e+*"})
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
	if !q.Test("x-a+y") || !q.Test("x-e+y") {
		t.Fatalf("expected both patterns to match")
	}
	if q.Test("x-o+y") {
		t.Fatalf("unexpected match")
	}
}

func TestQuestionEqual(t *testing.T) {
	a, _ := NewQuestion("QS_a", []string{"*-a+*"})
	b, _ := NewQuestion("QS_b", []string{"*-a+*"})
	c, _ := NewQuestion("QS_c", []string{"*-e+*"})
	if !a.Equal(b) {
		t.Fatalf("expected equal patterns to compare equal regardless of name")
	}
	if a.Equal(c) {
		t.Fatalf("expected different patterns to compare unequal")
	}
}

func TestWildcardToRegexpEscapesMetacharacters(t *testing.T) {
	q, err := NewQuestion("QS_literal", []string{"a.b"})
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
	if !q.Test("a.b") {
		t.Fatalf("expected literal dot to match")
	}
	if q.Test("aXb") {
		t.Fatalf("dot should be escaped, not treated as regex wildcard")
	}
}
