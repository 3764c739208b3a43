// Package catalog provides read-only access to the role requirements catalog:
// required skills per role, learning curricula, the role alias table, the
// multi-role predictor skill map, and the skill-category taxonomy. Catalog
// data is loaded once at startup and never mutated afterwards.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	internalschemas "github.com/nexuscv/ats-refinery/internal/schemas"
	"github.com/nexuscv/ats-refinery/schemas"
)

//go:embed data/job_roles.json
var defaultJobRoles []byte

//go:embed data/career_paths.json
var defaultCareerPaths []byte

// DefaultRole is the fallback role returned by Normalize when neither the
// verbatim name nor an alias resolves to a catalog role.
const DefaultRole = "Software Engineer"

// roleAliases maps common free-form role names (lower-cased) to catalog roles.
var roleAliases = map[string]string{
	"backend developer":    "Software Engineer",
	"frontend developer":   "Web Developer",
	"full stack developer": "Web Developer",
	"devops engineer":      "Software Engineer",
	"cloud engineer":       "Software Engineer",
	"mobile developer":     "Software Engineer",
	"data scientist":       "Data Analyst",
}

// Curriculum is a role's skills-to-learn block. Catalog files may store it as
// a flat list or as core/performance/growth categories; both shapes decode
// into this struct.
type Curriculum struct {
	Flat        []string `json:"-"`
	Core        []string `json:"core,omitempty"`
	Performance []string `json:"performance,omitempty"`
	Growth      []string `json:"growth,omitempty"`
}

// UnmarshalJSON accepts either a JSON array (flat curriculum) or an object
// with core/performance/growth keys.
func (c *Curriculum) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		return json.Unmarshal(data, &c.Flat)
	}
	type categorized Curriculum
	return json.Unmarshal(data, (*categorized)(c))
}

// MarshalJSON writes the flat list when present, the categorized object otherwise.
func (c Curriculum) MarshalJSON() ([]byte, error) {
	if c.Flat != nil {
		return json.Marshal(c.Flat)
	}
	type categorized Curriculum
	return json.Marshal(categorized(c))
}

// All returns every curriculum skill in a single list: the flat list as-is,
// or core then performance then growth for categorized curricula.
func (c Curriculum) All() []string {
	if c.Flat != nil {
		return append([]string(nil), c.Flat...)
	}
	all := make([]string, 0, len(c.Core)+len(c.Performance)+len(c.Growth))
	all = append(all, c.Core...)
	all = append(all, c.Performance...)
	all = append(all, c.Growth...)
	return all
}

// CareerPath is a role's curriculum plus suggested portfolio projects.
type CareerPath struct {
	SkillsToLearn Curriculum `json:"skills_to_learn"`
	Projects      []string   `json:"projects,omitempty"`
}

// Catalog is the immutable, process-wide role catalog.
type Catalog struct {
	roles     map[string][]string
	paths     map[string]CareerPath
	roleOrder []string
}

// Default returns a catalog built from the embedded data files.
func Default() (*Catalog, error) {
	return load(defaultJobRoles, defaultCareerPaths)
}

// Load builds a catalog from the given file paths. An empty path falls back
// to the corresponding embedded default.
func Load(jobRolesPath, careerPathsPath string) (*Catalog, error) {
	rolesData := defaultJobRoles
	if jobRolesPath != "" {
		data, err := os.ReadFile(jobRolesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read job roles file: %w", err)
		}
		rolesData = data
	}

	pathsData := defaultCareerPaths
	if careerPathsPath != "" {
		data, err := os.ReadFile(careerPathsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read career paths file: %w", err)
		}
		pathsData = data
	}

	return load(rolesData, pathsData)
}

func load(rolesData, pathsData []byte) (*Catalog, error) {
	if err := internalschemas.Validate(schemas.JobRoles, rolesData); err != nil {
		return nil, fmt.Errorf("invalid job roles catalog: %w", err)
	}
	if err := internalschemas.Validate(schemas.CareerPaths, pathsData); err != nil {
		return nil, fmt.Errorf("invalid career paths catalog: %w", err)
	}

	var roles map[string][]string
	if err := json.Unmarshal(rolesData, &roles); err != nil {
		return nil, fmt.Errorf("failed to parse job roles catalog: %w", err)
	}

	var paths map[string]CareerPath
	if err := json.Unmarshal(pathsData, &paths); err != nil {
		return nil, fmt.Errorf("failed to parse career paths catalog: %w", err)
	}

	// Normalize relies on the default role always resolving.
	if _, ok := roles[DefaultRole]; !ok {
		return nil, fmt.Errorf("job roles catalog must define the default role %q", DefaultRole)
	}

	// Fixed iteration order so multi-role traversal is deterministic.
	order := make([]string, 0, len(roles))
	for role := range roles {
		order = append(order, role)
	}
	sort.Strings(order)

	return &Catalog{roles: roles, paths: paths, roleOrder: order}, nil
}

// Roles returns every catalog role name in deterministic order.
func (c *Catalog) Roles() []string {
	return append([]string(nil), c.roleOrder...)
}

// HasRole reports whether the role exists verbatim in the catalog.
func (c *Catalog) HasRole(role string) bool {
	_, ok := c.roles[role]
	return ok
}

// RequiredSkills returns the required-skill list for a role. An unknown role
// yields an empty list, never an error; scoring degrades gracefully.
func (c *Catalog) RequiredSkills(role string) []string {
	return append([]string(nil), c.roles[role]...)
}

// Curriculum returns the skills-to-learn block for a role, and whether the
// role has a career path at all.
func (c *Catalog) Curriculum(role string) (Curriculum, bool) {
	path, ok := c.paths[role]
	return path.SkillsToLearn, ok
}

// SuggestedProjects returns the portfolio projects recommended for a role.
func (c *Catalog) SuggestedProjects(role string) []string {
	return append([]string(nil), c.paths[role].Projects...)
}

// Normalize maps a free-form role name to a canonical catalog role: verbatim
// match first, then the alias table (case-insensitive), then DefaultRole.
// The result always exists in the catalog.
func (c *Catalog) Normalize(role string) string {
	if c.HasRole(role) {
		return role
	}
	if alias, ok := roleAliases[strings.ToLower(strings.TrimSpace(role))]; ok && c.HasRole(alias) {
		return alias
	}
	return DefaultRole
}
