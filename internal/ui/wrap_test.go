package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapToBudgetNeverExceedsBudget(t *testing.T) {
	texts := []string{
		"short",
		"a bio that goes on and on about hiking coffee and compilers",
		"supercalifragilisticexpialidocious antidisestablishmentarianism",
		"mixed short words and oneenormousunbrokenwordthatwouldotherwiseoverflow here",
		"",
	}

	for _, text := range texts {
		for _, budget := range []int{1, 5, 12, 40} {
			for _, line := range WrapToBudget(text, budget) {
				assert.LessOrEqual(t, len(line), budget,
					"budget %d, text %q, line %q", budget, text, line)
			}
		}
	}
}

func TestWrapToBudgetPrefersWordBoundaries(t *testing.T) {
	lines := WrapToBudget("the quick brown fox", 10)

	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 10)
	}
	assert.Equal(t, "the quick brown fox", strings.Join(strings.Fields(strings.Join(lines, " ")), " "),
		"wrapping must not lose or reorder words")
}

func TestWrapToBudgetEmptyText(t *testing.T) {
	lines := WrapToBudget("", 10)
	assert.Equal(t, []string{""}, lines)
}

func TestHalfWidth(t *testing.T) {
	assert.Equal(t, 40, HalfWidth(80))
	assert.Equal(t, 40, HalfWidth(81))
	assert.Equal(t, 1, HalfWidth(1))
	assert.Equal(t, 1, HalfWidth(0))
}
