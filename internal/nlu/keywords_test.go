package nlu

import (
	"reflect"
	"testing"
)

func TestExtractKeywords_EmptyInput(t *testing.T) {
	keywords, err := ExtractKeywords("   ")
	if err != nil {
		t.Fatal(err)
	}
	if len(keywords) != 0 {
		t.Errorf("expected no keywords, got %v", keywords)
	}
}

func TestExtractKeywords_ContentWordsOnly(t *testing.T) {
	keywords, err := ExtractKeywords("grilled chicken with fresh salsa")
	if err != nil {
		t.Fatal(err)
	}

	found := map[string]bool{}
	for _, k := range keywords {
		found[k] = true
	}

	if !found["chicken"] {
		t.Errorf("expected chicken among keywords, got %v", keywords)
	}
	if found["with"] {
		t.Errorf("stopword leaked into keywords: %v", keywords)
	}
}

func TestExtractKeywords_Deterministic(t *testing.T) {
	first, err := ExtractKeywords("spicy tacos grilled chicken salsa")
	if err != nil {
		t.Fatal(err)
	}
	second, err := ExtractKeywords("spicy tacos grilled chicken salsa")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("runs disagree: %v vs %v", first, second)
	}
}

func TestExtractKeywords_Deduplicates(t *testing.T) {
	keywords, err := ExtractKeywords("cheese cheese cheese burger")
	if err != nil {
		t.Fatal(err)
	}

	seen := map[string]int{}
	for _, k := range keywords {
		seen[k]++
		if seen[k] > 1 {
			t.Fatalf("duplicate keyword %q in %v", k, keywords)
		}
	}
}

func TestLemma_SingularizesPluralNouns(t *testing.T) {
	cases := []struct{ in, tag, want string }{
		{"tacos", "NNS", "taco"},
		{"dishes", "NNS", "dish"},
		{"fries", "NNS", "fry"},
		{"chicken", "NN", "chicken"},
	}

	for _, tc := range cases {
		if got := lemma(tc.in, tc.tag); got != tc.want {
			t.Errorf("lemma(%q, %s) = %q, want %q", tc.in, tc.tag, got, tc.want)
		}
	}
}
