package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single word",
			input:    "Patience",
			expected: "Patience",
		},
		{
			name:     "internal space joined",
			input:    "Self Control",
			expected: "Self_Control",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  Self Control\t",
			expected: "Self_Control",
		},
		{
			name:     "each internal space replaced",
			input:    "Love  of Learning",
			expected: "Love__of_Learning",
		},
		{
			name:     "case preserved",
			input:    "inner PEACE",
			expected: "inner_PEACE",
		},
		{
			name:     "tamil label",
			input:    " அறம் வழி ",
			expected: "அறம்_வழி",
		},
		{
			name:     "empty",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCategory(tt.input))
		})
	}
}

func TestNormalizeCategory_Idempotent(t *testing.T) {
	inputs := []string{"Self Control", "  Anger ", "Love  of Learning", "already_normal", ""}

	for _, in := range inputs {
		once := NormalizeCategory(in)
		assert.Equal(t, once, NormalizeCategory(once), "normalizing %q twice", in)
	}
}

func TestNormalizeCategory_SpacingVariantsCollapse(t *testing.T) {
	assert.Equal(t, NormalizeCategory("Inner Peace"), NormalizeCategory("  Inner Peace  "))
}

func TestEntry_HasQA(t *testing.T) {
	assert.True(t, Entry{Question: "q", Answer: "a"}.HasQA())
	assert.False(t, Entry{Question: "q"}.HasQA())
	assert.False(t, Entry{Answer: "a"}.HasQA())
	assert.False(t, Entry{}.HasQA())
}

func TestEntry_Result(t *testing.T) {
	e := Entry{
		ID:          "305",
		Theme:       "Anger",
		Question:    "How should I react when hurt?",
		Answer:      "Restrain your anger.",
		Translation: "Guard yourself against anger.",
	}

	assert.Equal(t, QueryResult{
		EntryID:     "305",
		Question:    "How should I react when hurt?",
		Answer:      "Restrain your anger.",
		Translation: "Guard yourself against anger.",
	}, e.Result())
}

func TestVocabulary_NamespacesDistinct(t *testing.T) {
	assert.NotEqual(t, EntryIRI("Anger"), CategoryIRI("Anger"))
	assert.Equal(t, "http://example.org/kural/305", EntryIRI("305"))
	assert.Equal(t, "http://example.org/ontology#Self_Control", CategoryIRI("Self_Control"))
}
