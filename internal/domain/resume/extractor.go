// Package resume derives searchable keywords and coarse signals from the
// plain text of an uploaded resume. Extraction happens once at upload time;
// the stored result is immutable afterwards.
package resume

import (
	"strings"

	"jobradar/internal/domain/posting"
)

// skillVocabulary is the fixed set of terms scanned for. Matching is a loose
// substring containment in either direction against whitespace tokens, with
// no stemming or n-gram handling.
var skillVocabulary = []string{
	"javascript", "python", "java", "react", "node.js", "mongodb", "sql",
	"aws", "docker", "kubernetes", "git", "html", "css", "typescript",
	"angular", "vue.js", "express", "django", "flask", "spring", "php",
	"ruby", "go", "rust", "c++", "c#", ".net", "machine learning", "ai",
	"data science", "devops", "agile", "scrum", "api", "rest", "graphql",
}

var educationKeywords = []string{
	"bachelor", "master", "phd", "degree", "university", "college",
	"b.s.", "m.s.", "b.a.", "m.a.",
}

// Ordered: the first term found in the text wins.
var seniorityKeywords = []posting.ExperienceLevel{
	posting.LevelSenior, posting.LevelLead, posting.LevelManager,
	posting.LevelDirector, posting.LevelJunior, "entry",
}

// Extraction is the parse result for one resume text.
type Extraction struct {
	Skills          []string
	Education       bool
	ExperienceLevel posting.ExperienceLevel
	TextLength      int
}

// Extract scans resume text for known skills, an education signal and a
// seniority level. It never fails; an unmatched text yields an empty skill
// list and the mid-level default.
func Extract(text string) Extraction {
	lower := strings.ToLower(text)
	words := strings.Fields(lower)

	var skills []string
	for _, skill := range skillVocabulary {
		for _, word := range words {
			if strings.Contains(word, skill) || strings.Contains(skill, word) {
				skills = append(skills, skill)
				break
			}
		}
	}

	education := false
	for _, kw := range educationKeywords {
		if strings.Contains(lower, kw) {
			education = true
			break
		}
	}

	level := posting.LevelMid
	for _, kw := range seniorityKeywords {
		if strings.Contains(lower, string(kw)) {
			if kw == "entry" {
				kw = posting.LevelJunior
			}
			level = kw
			break
		}
	}

	return Extraction{
		Skills:          skills,
		Education:       education,
		ExperienceLevel: level,
		TextLength:      len(text),
	}
}
