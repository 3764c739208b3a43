package refine

import (
	"strings"
	"unicode"

	"github.com/nexuscv/ats-refinery/internal/types"
)

// Polish rewrites every experience and project bullet in place: weak verbs
// are upgraded to stronger synonyms and vague impact phrases get a fixed
// quantified variant. Only the first occurrence of each phrase per bullet is
// replaced, and bullets without a matching phrase are left untouched. The
// operation is idempotent.
func Polish(resume *types.ResumeContent) {
	for i := range resume.Experience {
		polishBullets(resume.Experience[i].Bullets)
	}
	for i := range resume.Projects {
		polishBullets(resume.Projects[i].Bullets)
	}
}

func polishBullets(bullets []string) {
	for i, b := range bullets {
		bullets[i] = polishBullet(b)
	}
}

func polishBullet(bullet string) string {
	enhanced := bullet

	for _, pair := range weakVerbs {
		idx := indexFold(enhanced, pair.from)
		if idx < 0 {
			continue
		}
		replacement := pair.to
		// Capitalize only when the phrase opens the bullet.
		if idx == 0 {
			replacement = capitalize(replacement)
		}
		enhanced = enhanced[:idx] + replacement + enhanced[idx+len(pair.from):]
	}

	for _, pair := range quantifications {
		// The quantified variant contains the vague phrase; skip when it is
		// already present so a second pass is a no-op.
		if indexFold(enhanced, pair.to) >= 0 {
			continue
		}
		idx := indexFold(enhanced, pair.from)
		if idx < 0 {
			continue
		}
		enhanced = enhanced[:idx] + pair.to + enhanced[idx+len(pair.from):]
	}

	return enhanced
}

// indexFold returns the index of the first case-insensitive occurrence of
// phrase in s, or -1.
func indexFold(s, phrase string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(phrase))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
