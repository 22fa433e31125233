package types

import "strings"

// canonicalSkills maps common skill name variants to canonical names.
// Extraction and profile synthesis both emit free-text skill names, so the
// same skill can arrive under several spellings.
var canonicalSkills = map[string]string{
	"golang":      "Go",
	"go lang":     "Go",
	"javascript":  "JavaScript",
	"js":          "JavaScript",
	"typescript":  "TypeScript",
	"ts":          "TypeScript",
	"k8s":         "Kubernetes",
	"kubernetes":  "Kubernetes",
	"postgres":    "PostgreSQL",
	"postgresql":  "PostgreSQL",
	"psql":        "PostgreSQL",
	"node":        "Node.js",
	"nodejs":      "Node.js",
	"node.js":     "Node.js",
	"react.js":    "React",
	"reactjs":     "React",
	"vue.js":      "Vue",
	"vuejs":       "Vue",
	"aws":         "AWS",
	"c sharp":     "C#",
	"dotnet":      ".NET",
	".net":        ".NET",
	"ci/cd":       "CI/CD",
	"rest api":    "REST APIs",
	"rest apis":   "REST APIs",
	"restful api": "REST APIs",
}

// CanonicalSkillName trims a skill name and maps known variants to their
// canonical form. Unknown names are returned trimmed but otherwise unchanged.
func CanonicalSkillName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := canonicalSkills[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// canonicalizeSkillList canonicalizes every entry and drops empty names and
// duplicates that collapse onto an earlier entry.
func canonicalizeSkillList(names []string) []string {
	result := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		canonical := CanonicalSkillName(name)
		if canonical == "" || seen[canonical] {
			continue
		}
		seen[canonical] = true
		result = append(result, canonical)
	}
	return result
}
