package quiz

import (
	"fmt"
	"strings"
)

// Blank is the marker substituted into a context sentence where the
// answer belongs.
const Blank = "______"

// NumOptions is the number of choices in every question.
const NumOptions = 4

// Question is a generated multiple-choice item ready for display.
type Question struct {
	// ReviewID is the bank item this question was generated for.
	ReviewID int

	// Prompt is the instruction line shown above the card.
	Prompt string

	// ContextTemplate is the sentence with Blank where the answer goes.
	ContextTemplate string

	// FullText is ContextTemplate with the answer filled in. It is the
	// text handed to the speaker after the learner answers.
	FullText string

	// CorrectAnswer is the English phrase of the focus item.
	CorrectAnswer string

	// Options holds the shuffled choices. Exactly one equals
	// CorrectAnswer and all are pairwise distinct.
	Options [NumOptions]string

	// Hint is the Chinese gloss revealed on the back of the card.
	Hint string
}

// CorrectIndex returns the position of CorrectAnswer in Options.
func (q *Question) CorrectIndex() int {
	for i, o := range q.Options {
		if o == q.CorrectAnswer {
			return i
		}
	}
	return -1
}

// Fill returns ContextTemplate with the blank replaced by answer.
func (q *Question) Fill(answer string) string {
	return strings.Replace(q.ContextTemplate, Blank, answer, 1)
}

func promptFor(source string) string {
	return fmt.Sprintf("Choose the correct phrase for: %s", source)
}

func contextFor(source, fill string) string {
	return fmt.Sprintf("%s means %s in English.", source, fill)
}
