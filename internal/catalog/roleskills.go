package catalog

// roleSkillEntry pairs a role with the skill profile the multi-role predictor
// scores against. Kept as an ordered slice so prediction and complementary
// expansion traverse roles deterministically.
type roleSkillEntry struct {
	Role   string
	Skills []string
}

var roleSkills = []roleSkillEntry{
	{"Web Developer", []string{"html", "css", "javascript", "react", "sql"}},
	{"Backend Developer", []string{"python", "java", "sql", "flask", "api"}},
	{"Data Analyst", []string{"python", "sql", "pandas", "excel", "statistics"}},
	{"Software Engineer", []string{"c", "c++", "java", "data structures"}},
	{"ML Engineer", []string{"python", "machine learning", "numpy", "pandas"}},
}

// PredictorRoles returns the role names the predictor map covers, in fixed order.
func (c *Catalog) PredictorRoles() []string {
	names := make([]string, 0, len(roleSkills))
	for _, entry := range roleSkills {
		names = append(names, entry.Role)
	}
	return names
}

// PredictorSkills returns the predictor skill profile for a role. Roles
// absent from the predictor map yield an empty list.
func (c *Catalog) PredictorSkills(role string) []string {
	for _, entry := range roleSkills {
		if entry.Role == role {
			return append([]string(nil), entry.Skills...)
		}
	}
	return nil
}
