package analysis

import (
	"strings"

	"github.com/nexuscv/ats-refinery/internal/types"
)

// maxMissingKeywords caps how many JD keywords are reported as missing.
const maxMissingKeywords = 10

// jdStopwords are filler words excluded from keyword extraction.
var jdStopwords = map[string]bool{
	"and": true, "or": true, "the": true, "is": true, "are": true, "for": true,
	"with": true, "we": true, "have": true, "to": true, "of": true, "in": true,
	"a": true, "an": true, "should": true, "must": true, "candidate": true,
	"strong": true, "knowledge": true, "software": true, "engineer": true,
}

// semanticGroups buckets missing JD keywords by theme; order fixed for
// deterministic grouping.
var semanticGroups = []struct {
	name     string
	keywords []string
}{
	{"Backend Frameworks", []string{"flask", "django", "spring", "node"}},
	{"Concepts", []string{"rest", "api", "data structures", "algorithms"}},
	{"Databases", []string{"sql", "mysql", "postgresql", "mongodb"}},
	{"Programming Languages", []string{"python", "java", "c", "c++"}},
	{"Experience Indicators", []string{"experience", "understanding", "knowledge"}},
}

// MatchJobDescription compares resume skills against a free-text job
// description: skills found as substrings count as matched, and JD words not
// covered by the resume become missing keywords (first maxMissingKeywords,
// stopwords removed), grouped semantically.
func MatchJobDescription(resumeSkills []string, jobDescription string) *types.JDMatch {
	jdLower := strings.ToLower(jobDescription)

	matched := []string{}
	skillsLower := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		skillsLower[strings.ToLower(skill)] = true
		if strings.Contains(jdLower, strings.ToLower(skill)) {
			matched = append(matched, skill)
		}
	}

	missing := []string{}
	seen := make(map[string]bool)
	for _, word := range strings.Fields(jdLower) {
		if !isAlpha(word) || jdStopwords[word] || skillsLower[word] || seen[word] {
			continue
		}
		seen[word] = true
		missing = append(missing, word)
		if len(missing) >= maxMissingKeywords {
			break
		}
	}

	denom := len(resumeSkills)
	if denom == 0 {
		denom = 1
	}

	return &types.JDMatch{
		MatchPercentage: len(matched) * 100 / denom,
		MatchedSkills:   matched,
		MissingKeywords: missing,
		GroupedMissing:  groupMissingKeywords(missing),
	}
}

// groupMissingKeywords buckets keywords into semantic groups; anything
// unmatched lands in "Other".
func groupMissingKeywords(missing []string) map[string][]string {
	grouped := make(map[string][]string)
	used := make(map[string]bool)

	for _, group := range semanticGroups {
		groupSet := make(map[string]bool, len(group.keywords))
		for _, kw := range group.keywords {
			groupSet[kw] = true
		}
		var matches []string
		for _, kw := range missing {
			if groupSet[kw] {
				matches = append(matches, kw)
				used[kw] = true
			}
		}
		if len(matches) > 0 {
			grouped[group.name] = matches
		}
	}

	var remaining []string
	for _, kw := range missing {
		if !used[kw] {
			remaining = append(remaining, kw)
		}
	}
	if len(remaining) > 0 {
		grouped["Other"] = remaining
	}

	return grouped
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
