//go:build unit

package resume_test

import (
	"testing"

	"jobradar/internal/domain/posting"
	"jobradar/internal/domain/resume"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	t.Run("typical senior resume", func(t *testing.T) {
		text := "Senior Software Engineer, 5 years React and Node.js experience, B.S. Computer Science"

		got := resume.Extract(text)

		assert.Equal(t, posting.LevelSenior, got.ExperienceLevel)
		assert.True(t, got.Education)
		assert.Subset(t, got.Skills, []string{"react", "node.js"})
		assert.Equal(t, len(text), got.TextLength)
	})

	t.Run("deterministic", func(t *testing.T) {
		text := "Lead DevOps engineer with Docker, Kubernetes and AWS. Master of Science."

		first := resume.Extract(text)
		second := resume.Extract(text)

		assert.Equal(t, first, second)
	})

	t.Run("empty text", func(t *testing.T) {
		got := resume.Extract("")

		assert.Empty(t, got.Skills)
		assert.False(t, got.Education)
		assert.Equal(t, posting.LevelMid, got.ExperienceLevel)
		assert.Zero(t, got.TextLength)
	})
}

func TestExtractExperienceLevel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want posting.ExperienceLevel
	}{
		{"senior", "Senior backend developer", posting.LevelSenior},
		{"lead", "Lead engineer on the platform team", posting.LevelLead},
		{"manager", "Engineering manager for twelve reports", posting.LevelManager},
		{"director", "Director of engineering", posting.LevelDirector},
		{"junior", "Junior developer seeking first role", posting.LevelJunior},
		{"entry maps to junior", "Entry level graduate position wanted", posting.LevelJunior},
		{"senior outranks entry", "Senior engineer open to entry into fintech", posting.LevelSenior},
		{"default mid-level", "Full stack developer with Python", posting.LevelMid},
		{"case insensitive", "SENIOR SOFTWARE ENGINEER", posting.LevelSenior},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resume.Extract(tt.text)
			assert.Equal(t, tt.want, got.ExperienceLevel)
		})
	}
}

func TestExtractEducation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"bachelor", "Bachelor of Engineering, 2019", true},
		{"abbreviated degree", "B.S. Computer Science", true},
		{"university", "Studied at a state university", true},
		{"none", "Self taught programmer", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resume.Extract(tt.text)
			assert.Equal(t, tt.want, got.Education)
		})
	}
}
