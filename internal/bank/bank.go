package bank

import (
	"slices"
	"strings"
)

// Bank is an immutable, validated collection of review items with
// precomputed lookup indices. It is safe for concurrent use.
type Bank struct {
	items      []Item
	byID       map[int]int
	byCategory map[Category][]int
}

// New validates items and builds a Bank from them. The slice is copied.
func New(items []Item) (*Bank, error) {
	if err := Validate(items); err != nil {
		return nil, err
	}
	return build(slices.Clone(items)), nil
}

func build(items []Item) *Bank {
	b := &Bank{
		items:      items,
		byID:       make(map[int]int, len(items)),
		byCategory: make(map[Category][]int),
	}
	for i, it := range items {
		b.byID[it.ID] = i
		b.byCategory[it.Category] = append(b.byCategory[it.Category], i)
	}
	return b
}

// Len returns the number of items.
func (b *Bank) Len() int {
	return len(b.items)
}

// At returns the item at position i in bank order.
func (b *Bank) At(i int) Item {
	return b.items[i]
}

// Items returns a copy of all items in bank order.
func (b *Bank) Items() []Item {
	return slices.Clone(b.items)
}

// Get looks up an item by ID.
func (b *Bank) Get(id int) (Item, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Item{}, false
	}
	return b.items[i], true
}

// ByCategory returns the items of category c in bank order.
func (b *Bank) ByCategory(c Category) []Item {
	idx := b.byCategory[c]
	out := make([]Item, len(idx))
	for i, j := range idx {
		out[i] = b.items[j]
	}
	return out
}

// Except returns every item whose ID differs from id, optionally
// restricted to one category. An empty category means all categories.
func (b *Bank) Except(id int, c Category) []Item {
	out := make([]Item, 0, len(b.items))
	for _, it := range b.items {
		if it.ID == id {
			continue
		}
		if c != "" && it.Category != c {
			continue
		}
		out = append(out, it)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
