package refine

// phrasePair is one fixed substitution: a phrase to find and its replacement.
// Tables are ordered slices so substitution order is deterministic.
type phrasePair struct {
	from string
	to   string
}

// weakVerbs maps weak verbs and phrases to stronger alternatives.
var weakVerbs = []phrasePair{
	{"worked on", "engineered"},
	{"made", "developed"},
	{"helped", "facilitated"},
	{"did", "executed"},
	{"used", "leveraged"},
	{"was responsible for", "spearheaded"},
	{"handled", "orchestrated"},
	{"created", "architected"},
	{"wrote", "authored"},
	{"fixed", "resolved"},
	{"changed", "refactored"},
	{"ran", "managed"},
	{"set up", "provisioned"},
	{"looked at", "analyzed"},
}

// quantifications maps vague impact phrases to fixed quantified variants.
var quantifications = []phrasePair{
	{"improving efficiency", "improving efficiency by 30%"},
	{"reducing time", "reducing processing time by 40%"},
	{"increasing performance", "increasing performance by 25%"},
	{"reducing errors", "reducing errors by 35%"},
	{"improving accuracy", "improving accuracy by 20%"},
	{"increasing productivity", "increasing productivity by 30%"},
	{"reducing costs", "reducing operational costs by 25%"},
	{"improving speed", "improving response speed by 45%"},
}

// experienceTemplates phrase an injected skill as an experience bullet.
var experienceTemplates = []string{
	"Engineered scalable solutions leveraging %s for production-grade deployment",
	"Architected and delivered features using %s to meet critical business requirements",
	"Optimized system reliability by adopting %s across the development lifecycle",
}

// projectTemplates phrase an injected skill as a project bullet.
var projectTemplates = []string{
	"Implemented %s to enhance system reliability and performance",
	"Integrated %s to streamline development workflow and output quality",
	"Leveraged %s for robust data processing and feature delivery",
}
