package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranchNameForIssue(t *testing.T) {
	t.Run("should slugify the lowercased title", func(t *testing.T) {
		assert.Equal(t, "42_fix_login_bug", BranchNameForIssue(42, "Fix Login Bug!!"))
	})

	t.Run("should be deterministic", func(t *testing.T) {
		first := BranchNameForIssue(7, "Add dark mode")
		second := BranchNameForIssue(7, "Add dark mode")
		assert.Equal(t, "7_add_dark_mode", first)
		assert.Equal(t, first, second)
	})

	t.Run("should collapse punctuation runs", func(t *testing.T) {
		assert.Equal(t, "3_fix_crash_on_load", BranchNameForIssue(3, "fix: crash -- on load"))
	})

	t.Run("should truncate long titles to 60 characters", func(t *testing.T) {
		title := "this is an extremely long issue title that keeps going and going and going"
		name := BranchNameForIssue(9999, title)
		assert.LessOrEqual(t, len(name), 60)
		assert.True(t, strings.HasPrefix(name, "9999_this_is_an_extremely_long"))
		assert.False(t, strings.HasSuffix(name, "_"))
	})

	t.Run("should collide only when truncation erases the distinguishing suffix", func(t *testing.T) {
		base := strings.Repeat("padding ", 8)
		first := BranchNameForIssue(10, base+"alpha")
		second := BranchNameForIssue(10, base+"omega")
		assert.Equal(t, first, second)

		shortFirst := BranchNameForIssue(10, "alpha")
		shortSecond := BranchNameForIssue(10, "omega")
		assert.NotEqual(t, shortFirst, shortSecond)
	})

	t.Run("should handle titles that slugify to nothing", func(t *testing.T) {
		assert.Equal(t, "7", BranchNameForIssue(7, "!!!"))
	})
}
