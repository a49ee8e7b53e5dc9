package menu

import (
	"context"
	"testing"
)

func TestStructure_SplitsNamesAndDescriptions(t *testing.T) {
	s := NewRuleBasedStructurer()

	raw := "Spicy Tacos\nGrilled chicken, salsa\n$9.99\nBurger\nBeef patty"

	records, err := s.Structure(context.Background(), raw)
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(records), records)
	}

	if records[0].Name != "Spicy Tacos" || records[0].Description != "Grilled chicken, salsa" {
		t.Errorf("unexpected first record: %+v", records[0])
	}

	if records[1].Name != "Burger" || records[1].Description != "Beef patty" {
		t.Errorf("unexpected second record: %+v", records[1])
	}
}

func TestStructure_NoNameLinesYieldsEmpty(t *testing.T) {
	s := NewRuleBasedStructurer()

	cases := []string{
		"",
		"\n\n\n",
		"grilled chicken with rice\nserved with a side of beans",
		"$4.50\n$12.00\n----",
	}

	for _, raw := range cases {
		records, err := s.Structure(context.Background(), raw)
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 0 {
			t.Errorf("input %q: expected no records, got %+v", raw, records)
		}
	}
}

func TestStructure_DropsShortNames(t *testing.T) {
	s := NewRuleBasedStructurer()

	records, err := s.Structure(context.Background(), "Hi\nsome description\nPancakes\nwith maple syrup")
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %+v", records)
	}
	if records[0].Name != "Pancakes" {
		t.Errorf("expected Pancakes, got %q", records[0].Name)
	}
}

func TestStructure_DropsHeadersAndNumericNames(t *testing.T) {
	s := NewRuleBasedStructurer()

	raw := "Lunch Menu\nIngredients\n12345\nCaesar Salad\nromaine, parmesan, croutons"

	records, err := s.Structure(context.Background(), raw)
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %+v", records)
	}
	if records[0].Name != "Caesar Salad" {
		t.Errorf("expected Caesar Salad, got %q", records[0].Name)
	}
}

func TestStructure_LastPendingRecordIsFlushed(t *testing.T) {
	s := NewRuleBasedStructurer()

	records, err := s.Structure(context.Background(), "Tomato Soup")
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 1 || records[0].Name != "Tomato Soup" {
		t.Fatalf("expected single Tomato Soup record, got %+v", records)
	}
	if records[0].Description != "" {
		t.Errorf("expected empty description, got %q", records[0].Description)
	}
}
