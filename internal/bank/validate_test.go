package bank

import (
	"errors"
	"strings"
	"testing"
)

func items(n int) []Item {
	out := make([]Item, n)
	for i := range out {
		out[i] = Item{
			ID:       i + 1,
			Target:   "phrase " + string(rune('a'+i)),
			Source:   "短语",
			Category: CategoryPhrase,
		}
	}
	return out
}

func TestValidate_SeedBankPasses(t *testing.T) {
	if err := Validate(seedItems); err != nil {
		t.Fatalf("seed bank validation failed: %v", err)
	}
}

func TestDefault_HasBothCategories(t *testing.T) {
	b := Default()
	for _, c := range AllCategories() {
		if got := len(b.ByCategory(c)); got < 3 {
			t.Errorf("category %q has %d items, want at least 3", c, got)
		}
	}
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Item) []Item
		want   string
	}{
		{"too few items", func(it []Item) []Item { return it[:3] }, "at least 4"},
		{"duplicate id", func(it []Item) []Item { it[1].ID = it[0].ID; return it }, "duplicate"},
		{"non-positive id", func(it []Item) []Item { it[0].ID = 0; return it }, "positive"},
		{"empty english", func(it []Item) []Item { it[2].Target = "  "; return it }, "english text is empty"},
		{"empty chinese", func(it []Item) []Item { it[2].Source = ""; return it }, "chinese text is empty"},
		{"unknown category", func(it []Item) []Item { it[0].Category = "idiom"; return it }, "unknown category"},
		{"too few distinct texts", func(it []Item) []Item {
			it[3].Target = it[0].Target
			return it
		}, "distinct english"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.mutate(items(4)))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	bad := items(4)
	bad[0].ID = -1
	bad[1].Source = ""
	err := Validate(bad)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Problems) != 2 {
		t.Errorf("got %d problems, want 2: %v", len(verr.Problems), verr.Problems)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	in := items(5)
	b, err := New(in)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	in[0].Target = "changed"

	got, ok := b.Get(1)
	if !ok {
		t.Fatal("item 1 missing")
	}
	if got.Target == "changed" {
		t.Error("bank should not alias the input slice")
	}
}

func TestBank_Except(t *testing.T) {
	in := items(6)
	in[4].Category = CategoryUsage
	in[5].Category = CategoryUsage
	b, err := New(in)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := len(b.Except(1, "")); got != 5 {
		t.Errorf("Except(1, all) = %d items, want 5", got)
	}
	if got := len(b.Except(1, CategoryPhrase)); got != 3 {
		t.Errorf("Except(1, phrase) = %d items, want 3", got)
	}
	if got := len(b.Except(5, CategoryUsage)); got != 1 {
		t.Errorf("Except(5, usage) = %d items, want 1", got)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"phrase", CategoryPhrase, true},
		{" Usage ", CategoryUsage, true},
		{"PHRASE", CategoryPhrase, true},
		{"idiom", "idiom", false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
