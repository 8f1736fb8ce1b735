package bank

import (
	"fmt"
	"strings"
)

// MinItems is the smallest bank that can produce a four-option question.
const MinItems = 4

// ValidationError lists every structural problem found in an item table.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bank validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// Validate performs all structural checks on the given items.
// Returns a *ValidationError describing all problems found, or nil if valid.
func Validate(items []Item) error {
	var errs []string

	if len(items) < MinItems {
		errs = append(errs, fmt.Sprintf("bank has %d items, need at least %d", len(items), MinItems))
	}

	ids := make(map[int]bool, len(items))
	targets := make(map[string]int, len(items))
	for _, it := range items {
		if it.ID <= 0 {
			errs = append(errs, fmt.Sprintf("item %d: id must be positive", it.ID))
		}
		if ids[it.ID] {
			errs = append(errs, fmt.Sprintf("duplicate item ID: %d", it.ID))
		}
		ids[it.ID] = true

		if strings.TrimSpace(it.Target) == "" {
			errs = append(errs, fmt.Sprintf("item %d: english text is empty", it.ID))
		}
		if strings.TrimSpace(it.Source) == "" {
			errs = append(errs, fmt.Sprintf("item %d: chinese text is empty", it.ID))
		}
		if !it.Category.Valid() {
			errs = append(errs, fmt.Sprintf("item %d: unknown category %q", it.ID, it.Category))
		}
		targets[it.Target]++
	}

	// Every item needs three other items with a different target text,
	// otherwise no set of distinct distractors exists for it.
	distinct := len(targets)
	if len(items) >= MinItems && distinct < MinItems {
		errs = append(errs, fmt.Sprintf("bank has %d distinct english texts, need at least %d", distinct, MinItems))
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}
