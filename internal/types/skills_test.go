package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalSkillName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "golang", want: "Go"},
		{in: "GoLang", want: "Go"},
		{in: "  js  ", want: "JavaScript"},
		{in: "k8s", want: "Kubernetes"},
		{in: "postgres", want: "PostgreSQL"},
		{in: "Rust", want: "Rust"},
		{in: "", want: ""},
		{in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalSkillName(tt.in))
		})
	}
}

func TestNormalize_CanonicalizesAndDedupesSkills(t *testing.T) {
	resume := StructuredResume{
		Skills: SkillSet{
			Technical: []string{"golang", "Go", "postgres", " TypeScript "},
			Tools:     []string{"k8s", "", "Docker"},
		},
	}
	resume.Normalize()

	assert.Equal(t, []string{"Go", "PostgreSQL", "TypeScript"}, resume.Skills.Technical)
	assert.Equal(t, []string{"Kubernetes", "Docker"}, resume.Skills.Tools)
	assert.Equal(t, []string{}, resume.Skills.Soft)
}

func TestCareerProfileNormalize_SkillGaps(t *testing.T) {
	profile := CareerProfile{SkillGaps: []string{"k8s", "Kubernetes", "System Design"}}
	profile.Normalize()
	assert.Equal(t, []string{"Kubernetes", "System Design"}, profile.SkillGaps)

	empty := CareerProfile{}
	empty.Normalize()
	assert.NotNil(t, empty.SkillGaps)
}
