package analyzers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExamName(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"PHQ-9", "phq_9"},
		{"phq_9", "phq_9"},
		{"Phq-9", "phq_9"},
		{"SDS", "sds"},
		{"sds", "sds"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, NormalizeExamName(tc.in))
	}
}

func TestRegistryResolve(t *testing.T) {
	registry := Default()

	t.Run("Display And Canonical Names Resolve To The Same Scorer", func(t *testing.T) {
		display, ok := registry.Resolve("PHQ-9")
		assert.True(t, ok)
		canonical, ok := registry.Resolve("phq_9")
		assert.True(t, ok)
		assert.Equal(t, display.Name(), canonical.Name())
	})

	t.Run("SDS Is Registered", func(t *testing.T) {
		scorer, ok := registry.Resolve("SDS")
		assert.True(t, ok)
		assert.Equal(t, "sds", scorer.Name())
		assert.Equal(t, 20, scorer.ItemCount())
	})

	t.Run("Unknown Exam Is Not Found", func(t *testing.T) {
		_, ok := registry.Resolve("unknown-exam")
		assert.False(t, ok)
	})

	t.Run("Register Overrides By Normalized Name", func(t *testing.T) {
		registry := NewRegistry(NewPHQ9Scorer())
		registry.Register(NewPHQ9Scorer())
		scorer, ok := registry.Resolve("phq_9")
		assert.True(t, ok)
		assert.Equal(t, "phq_9", scorer.Name())
	})
}
