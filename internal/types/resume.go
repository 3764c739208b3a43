// Package types provides type definitions for structured data used throughout the ats-refinery system.
package types

import (
	"fmt"
	"regexp"
	"strings"
)

// Bullet-count caps enforced during validation and skill injection.
const (
	MaxExperienceBullets = 4
	MaxProjectBullets    = 3
	MaxProjects          = 3
	MaxCertifications    = 3
	MaxAchievements      = 3
)

// Education represents a single education entry. Degree is required for the
// entry to count as valid.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Experience represents a single work experience entry with up to
// MaxExperienceBullets narrative bullets.
type Experience struct {
	Title    string   `json:"title"`
	Company  string   `json:"company,omitempty"`
	Duration string   `json:"duration,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
}

// Project represents a single project entry with up to MaxProjectBullets bullets.
type Project struct {
	Name    string   `json:"name"`
	Tech    string   `json:"tech,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// ResumeContent is the mutable resume record a refinement run operates on.
// It is exclusively owned by a single refinement call for its duration.
type ResumeContent struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`

	Objective string `json:"objective"`

	Education  []Education  `json:"education,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Projects   []Project    `json:"projects,omitempty"`

	// Skills is insertion-ordered and unique by lower-cased value.
	Skills []string `json:"skills"`

	Certifications []string `json:"certifications,omitempty"`
	Achievements   []string `json:"achievements,omitempty"`

	// DerivedText is a flattened projection of every field above, used only
	// for scoring. It must be rebuilt before any scoring call.
	DerivedText string `json:"derived_text,omitempty"`
}

// RebuildDerivedText regenerates the flattened textual projection of the
// resume. Callers that mutate any field must invoke this before scoring.
func (r *ResumeContent) RebuildDerivedText() {
	parts := make([]string, 0, 16)
	parts = append(parts, r.Name, r.Email, r.Phone, r.Objective)

	for _, edu := range r.Education {
		parts = append(parts, fmt.Sprintf("%s %s %s", edu.Degree, edu.Institution, edu.Year))
	}
	for _, exp := range r.Experience {
		parts = append(parts, fmt.Sprintf("%s %s %s", exp.Title, exp.Company, exp.Duration))
		parts = append(parts, exp.Bullets...)
	}
	for _, proj := range r.Projects {
		parts = append(parts, fmt.Sprintf("%s %s", proj.Name, proj.Tech))
		parts = append(parts, proj.Bullets...)
	}

	parts = append(parts, strings.Join(r.Skills, " "))
	parts = append(parts, r.Certifications...)
	parts = append(parts, r.Achievements...)

	r.DerivedText = strings.Join(parts, " ")
}

// HasSkill reports whether the skills list already contains the given skill,
// compared case-insensitively.
func (r *ResumeContent) HasSkill(skill string) bool {
	lower := strings.ToLower(skill)
	for _, s := range r.Skills {
		if strings.ToLower(s) == lower {
			return true
		}
	}
	return false
}

// AddSkill appends a skill to the skills list unless it is already present
// (case-insensitive). Returns true if the skill was added.
func (r *ResumeContent) AddSkill(skill string) bool {
	if skill == "" || r.HasSkill(skill) {
		return false
	}
	r.Skills = append(r.Skills, skill)
	return true
}

// SkillsLower returns the set of lower-cased skills.
func (r *ResumeContent) SkillsLower() map[string]bool {
	set := make(map[string]bool, len(r.Skills))
	for _, s := range r.Skills {
		set[strings.ToLower(s)] = true
	}
	return set
}

var htmlTagPattern = regexp.MustCompile(`<.*?>`)

// Sanitize strips HTML tags and surrounding whitespace from user-supplied text.
func Sanitize(text string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(text, ""))
}

// Sanitize cleans every user-supplied text field in place. Run before
// validation so tag-only fields are caught as empty.
func (r *ResumeContent) Sanitize() {
	for _, p := range []*string{
		&r.Name, &r.Email, &r.Phone, &r.LinkedIn, &r.GitHub, &r.Portfolio, &r.Objective,
	} {
		*p = Sanitize(*p)
	}
	for i := range r.Education {
		r.Education[i].Degree = Sanitize(r.Education[i].Degree)
		r.Education[i].Institution = Sanitize(r.Education[i].Institution)
		r.Education[i].Year = Sanitize(r.Education[i].Year)
	}
	for i := range r.Experience {
		r.Experience[i].Title = Sanitize(r.Experience[i].Title)
		r.Experience[i].Company = Sanitize(r.Experience[i].Company)
		r.Experience[i].Duration = Sanitize(r.Experience[i].Duration)
		sanitizeAll(r.Experience[i].Bullets)
	}
	for i := range r.Projects {
		r.Projects[i].Name = Sanitize(r.Projects[i].Name)
		r.Projects[i].Tech = Sanitize(r.Projects[i].Tech)
		sanitizeAll(r.Projects[i].Bullets)
	}
	sanitizeAll(r.Skills)
	sanitizeAll(r.Certifications)
	sanitizeAll(r.Achievements)
}

func sanitizeAll(items []string) {
	for i, s := range items {
		items[i] = Sanitize(s)
	}
}

// bulletMarkers are leading decoration characters stripped before judging
// whether a bullet line is empty or duplicated.
const bulletMarkers = "•-▪▸◦★✦✓✔➤► "

// ValidationError reports a structural problem with submitted resume content.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid resume content: %s: %s", e.Field, e.Message)
}

// Validate performs structural validation of submitted resume content before
// any scoring or refinement begins. It mirrors strict-mode form validation:
// required identity fields, minimum objective length, at least 3 skills, at
// least one education degree, at least one experience or project, no empty
// bullets, and no duplicated substantial sentences.
func (r *ResumeContent) Validate() error {
	required := []struct{ field, value, label string }{
		{"name", r.Name, "Full Name"},
		{"email", r.Email, "Email"},
		{"phone", r.Phone, "Phone"},
		{"objective", r.Objective, "Career Objective"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.field, Message: f.label + " is required"}
		}
	}

	if len(strings.TrimSpace(r.Objective)) < 30 {
		return &ValidationError{Field: "objective", Message: "Career Objective must be at least 30 characters long"}
	}

	if len(r.Skills) < 3 {
		return &ValidationError{Field: "skills", Message: "at least 3 skills are required"}
	}
	seenSkills := make(map[string]bool, len(r.Skills))
	for _, s := range r.Skills {
		lower := strings.ToLower(strings.TrimSpace(s))
		if lower == "" {
			return &ValidationError{Field: "skills", Message: "empty skill entries are not allowed"}
		}
		if seenSkills[lower] {
			return &ValidationError{Field: "skills", Message: fmt.Sprintf("duplicate skill: %s", s)}
		}
		seenSkills[lower] = true
	}

	hasDegree := false
	for _, edu := range r.Education {
		if strings.TrimSpace(edu.Degree) != "" {
			hasDegree = true
			break
		}
	}
	if !hasDegree {
		return &ValidationError{Field: "education", Message: "at least one education entry is required"}
	}

	if len(r.Experience) == 0 && len(r.Projects) == 0 {
		return &ValidationError{Field: "experience", Message: "at least one work experience or project is required"}
	}

	if err := r.validateBullets(); err != nil {
		return err
	}
	return r.validateDuplicateSentences()
}

func (r *ResumeContent) validateBullets() error {
	check := func(field string, bullets []string, cap int) error {
		if len(bullets) > cap {
			return &ValidationError{Field: field, Message: fmt.Sprintf("at most %d bullets allowed", cap)}
		}
		for _, b := range bullets {
			if strings.TrimSpace(strings.TrimLeft(b, bulletMarkers)) == "" {
				return &ValidationError{Field: field, Message: "empty bullet points are not allowed"}
			}
		}
		return nil
	}

	for _, exp := range r.Experience {
		if err := check("experience", exp.Bullets, MaxExperienceBullets); err != nil {
			return err
		}
	}
	if len(r.Projects) > MaxProjects {
		return &ValidationError{Field: "projects", Message: fmt.Sprintf("at most %d projects allowed", MaxProjects)}
	}
	for _, proj := range r.Projects {
		if err := check("projects", proj.Bullets, MaxProjectBullets); err != nil {
			return err
		}
	}
	return nil
}

// validateDuplicateSentences rejects resumes that repeat the same substantial
// sentence across the objective and narrative bullets.
func (r *ResumeContent) validateDuplicateSentences() error {
	seen := make(map[string]bool)
	lines := []string{r.Objective}
	for _, exp := range r.Experience {
		lines = append(lines, exp.Bullets...)
	}
	for _, proj := range r.Projects {
		lines = append(lines, proj.Bullets...)
	}

	for _, line := range lines {
		cleaned := strings.ToLower(strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), bulletMarkers)))
		if len(cleaned) <= 15 {
			continue
		}
		if seen[cleaned] {
			return &ValidationError{Field: "content", Message: fmt.Sprintf("duplicate sentence detected: %q", truncate(line, 60))}
		}
		seen[cleaned] = true
	}
	return nil
}

func truncate(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n]) + "..."
}
