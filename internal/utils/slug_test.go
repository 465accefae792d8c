package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces", "Sprint Planning", "sprint-planning"},
		{"punctuation runs", "Q3 -- Roadmap!!", "q3-roadmap"},
		{"leading and trailing", "  Launch  ", "launch"},
		{"already a slug", "launch-2024", "launch-2024"},
		{"accents", "Café Ñandú", "cafe-nandu"},
		{"symbols only inside", "R&D_plan", "r-d-plan"},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugCandidate(t *testing.T) {
	assert.Equal(t, "sprint-planning", SlugCandidate("sprint-planning", 0))
	assert.Equal(t, "sprint-planning-1", SlugCandidate("sprint-planning", 1))
	assert.Equal(t, "sprint-planning-12", SlugCandidate("sprint-planning", 12))
}
