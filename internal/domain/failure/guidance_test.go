package failure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuidance_Merge(t *testing.T) {
	tests := []struct {
		name     string
		base     Guidance
		override Guidance
		expected Guidance
	}{
		{
			name:     "sequences_append_in_order",
			base:     Guidance{DebuggingSteps: []string{"s1"}},
			override: Guidance{DebuggingSteps: []string{"s2"}},
			expected: Guidance{DebuggingSteps: []string{"s1", "s2"}},
		},
		{
			name:     "troubleshooting_overwritten_when_provided",
			base:     Guidance{Troubleshooting: "old"},
			override: Guidance{Troubleshooting: "new"},
			expected: Guidance{Troubleshooting: "new"},
		},
		{
			name:     "empty_troubleshooting_keeps_base",
			base:     Guidance{Troubleshooting: "keep"},
			override: Guidance{LearningTips: []string{"tip"}},
			expected: Guidance{Troubleshooting: "keep", LearningTips: []string{"tip"}},
		},
		{
			name: "all_sequence_fields_merge_independently",
			base: Guidance{
				DebuggingSteps:  []string{"d1"},
				LearningTips:    []string{"l1"},
				RelatedConcepts: []string{"r1"},
			},
			override: Guidance{
				DebuggingSteps:  []string{"d2"},
				RelatedConcepts: []string{"r2", "r3"},
			},
			expected: Guidance{
				DebuggingSteps:  []string{"d1", "d2"},
				LearningTips:    []string{"l1"},
				RelatedConcepts: []string{"r1", "r2", "r3"},
			},
		},
		{
			name:     "empty_override_is_identity",
			base:     Guidance{Troubleshooting: "t", DebuggingSteps: []string{"s"}},
			override: Guidance{},
			expected: Guidance{Troubleshooting: "t", DebuggingSteps: []string{"s"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.base.Merge(tt.override))
		})
	}
}

func TestGuidance_MergeDoesNotAliasSources(t *testing.T) {
	base := Guidance{DebuggingSteps: []string{"s1"}}
	merged := base.Merge(Guidance{DebuggingSteps: []string{"s2"}})

	merged.DebuggingSteps[0] = "mutated"
	assert.Equal(t, "s1", base.DebuggingSteps[0])
}

func TestGuidance_IsZero(t *testing.T) {
	assert.True(t, Guidance{}.IsZero())
	assert.False(t, Guidance{Troubleshooting: "x"}.IsZero())
	assert.False(t, Guidance{LearningTips: []string{"x"}}.IsZero())
}

func TestTemplateFor_AllCategoriesHaveContent(t *testing.T) {
	for _, category := range []Category{
		CategoryServer, CategoryRequest, CategoryValidation, CategoryResponse, CategoryConfiguration,
	} {
		tmpl := TemplateFor(category)
		require.False(t, tmpl.IsZero(), "category %s has no template", category)
		assert.NotEmpty(t, tmpl.Troubleshooting)
		assert.NotEmpty(t, tmpl.DebuggingSteps)
	}
}

func TestTemplateFor_UnknownFallsBackToServer(t *testing.T) {
	assert.Equal(t, TemplateFor(CategoryServer), TemplateFor(Category("Bogus")))
}

func TestTemplateFor_Deterministic(t *testing.T) {
	assert.Equal(t, TemplateFor(CategoryValidation), TemplateFor(CategoryValidation))
}
