package posting

import (
	"sort"
	"strings"
)

const (
	keywordPoints = 10
	titleBonus    = 20
	maxScore      = 100
)

// MatchScore rates a posting against resume keywords on a 0-100 scale.
// Every keyword found as a case-insensitive substring of title+description
// adds 10 points. If any keyword appears in the title the total gets a flat
// 20-point bonus, applied once regardless of how many keywords hit the
// title. The asymmetry (per-keyword body points, all-or-nothing title bonus)
// is deliberate: title relevance is rewarded strongly but only once.
func MatchScore(p JobPosting, keywords []string) int {
	score := 0
	jobText := strings.ToLower(p.Title + " " + p.Description)
	title := strings.ToLower(p.Title)

	for _, kw := range keywords {
		if strings.Contains(jobText, strings.ToLower(kw)) {
			score += keywordPoints
		}
	}

	for _, kw := range keywords {
		if strings.Contains(title, strings.ToLower(kw)) {
			score += titleBonus
			break
		}
	}

	if score > maxScore {
		return maxScore
	}
	return score
}

// ScoredPosting pairs a posting with its match score for ranking.
type ScoredPosting struct {
	JobPosting
	MatchScore int `json:"matchScore"`
}

// RankByScore scores every posting and returns them ordered best-first.
// The sort is stable: ties keep the input (storage) order.
func RankByScore(postings []JobPosting, keywords []string) []ScoredPosting {
	scored := make([]ScoredPosting, len(postings))
	for i, p := range postings {
		scored[i] = ScoredPosting{JobPosting: p, MatchScore: MatchScore(p, keywords)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})
	return scored
}
