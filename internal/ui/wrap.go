package ui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// WrapToBudget wraps text so that no output line is wider than budget.
// Word boundaries are preferred; a single word longer than the budget is
// hard-split rather than allowed to overflow.
func WrapToBudget(text string, budget int) []string {
	if budget <= 0 {
		budget = 1
	}
	folded := wrap.String(wordwrap.String(text, budget), budget)
	lines := strings.Split(folded, "\n")
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// HalfWidth returns the half-terminal-width wrap budget used for bios and
// chat bubbles.
func HalfWidth(termWidth int) int {
	half := termWidth / 2
	if half < 1 {
		half = 1
	}
	return half
}
