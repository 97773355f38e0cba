package slugify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "The Harold Team", "the-harold-team"},
		{"apostrophes stripped", "John O'Brien Jr.", "john-obrien-jr"},
		{"curly apostrophe", "D’Arcy", "darcy"},
		{"backtick", "O`Neill", "oneill"},
		{"punctuation dropped", "Yes, And?!", "yes-and"},
		{"whitespace collapsed", "  two   words  ", "two-words"},
		{"hyphens collapsed", "a -- b", "a-b"},
		{"edge hyphens trimmed", "-edge case-", "edge-case"},
		{"numbers kept", "Improv 201", "improv-201"},
		{"already a slug", "already-a-slug", "already-a-slug"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Generate(tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGenerateEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "!!!", "'’`", "---"} {
		_, err := Generate(in)
		assert.ErrorIs(t, err, ErrEmptySlug, "input %q", in)
	}
}

// Re-applying Generate to its own output must be a no-op.
func TestGenerateIdempotent(t *testing.T) {
	for _, in := range []string{"John O'Brien Jr.", "Yes, And?!", "  two   words  ", "Improv 201"} {
		first, err := Generate(in)
		assert.NoError(t, err)
		second, err := Generate(first)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestUniquify(t *testing.T) {
	assert.Equal(t, "john-smith", Uniquify("john-smith", 0))
	assert.Equal(t, "john-smith", Uniquify("john-smith", 1))
	assert.Equal(t, "john-smith-2", Uniquify("john-smith", 2))
	assert.Equal(t, "john-smith-10", Uniquify("john-smith", 10))
}
