package extraction

import (
	"regexp"
	"strings"
)

// CandidateLevel is the coarse career stage inferred from resume text.
type CandidateLevel string

// Candidate levels.
const (
	LevelStudent     CandidateLevel = "student"
	LevelFresher     CandidateLevel = "fresher"
	LevelExperienced CandidateLevel = "experienced"
)

// RoutingThreshold is the confidence at or above which extracted text is
// considered reliable enough for text-only analysis. Below it, the original
// file bytes are attached to the inference call so the model can compensate
// for poor extraction (scanned or heavily templated documents).
const RoutingThreshold = 0.7

var (
	reEducation        = regexp.MustCompile(`(?i)education|college|university|b\.tech|degree`)
	reProject          = regexp.MustCompile(`(?i)project|mini project|assignment`)
	reSkillsTools      = regexp.MustCompile(`(?i)skills|technologies|tools`)
	reEducationOnly    = regexp.MustCompile(`(?i)education`)
	reInternTraining   = regexp.MustCompile(`(?i)internship|training|project`)
	reSkillsOnly       = regexp.MustCompile(`(?i)skills`)
	reExperienceMarker = regexp.MustCompile(`(?i)experience|company|role`)
	reSkillsTech       = regexp.MustCompile(`(?i)skills|technologies`)
)

// InferCandidateLevel classifies resume text by keyword presence. Student
// markers win over experience markers: a student resume routinely mentions
// company internships, but an experienced one rarely mentions semesters.
func InferCandidateLevel(text string) CandidateLevel {
	lower := strings.ToLower(text)

	for _, marker := range []string{"intern", "student", "b.tech", "bachelor", "college", "semester"} {
		if strings.Contains(lower, marker) {
			return LevelStudent
		}
	}
	if strings.Contains(lower, "experience") || strings.Contains(lower, "company") {
		return LevelExperienced
	}
	return LevelFresher
}

// ConfidenceScore estimates, in [0, 1], how much the extracted text looks
// like a usable resume. The checklist and weights are level-specific: the
// sections a strong student resume must show differ from an experienced one.
// Pure and deterministic: the same text always scores the same.
func ConfidenceScore(text string) float64 {
	switch InferCandidateLevel(text) {
	case LevelStudent:
		return studentConfidence(text)
	case LevelExperienced:
		return experiencedConfidence(text)
	default:
		return fresherConfidence(text)
	}
}

func studentConfidence(text string) float64 {
	score := 0.0
	if reEducation.MatchString(text) {
		score += 0.4
	}
	if reProject.MatchString(text) {
		score += 0.3
	}
	if reSkillsTools.MatchString(text) {
		score += 0.2
	}
	if len(text) > 600 {
		score += 0.1
	}
	return capScore(score)
}

func fresherConfidence(text string) float64 {
	score := 0.0
	if reEducationOnly.MatchString(text) {
		score += 0.3
	}
	if reInternTraining.MatchString(text) {
		score += 0.3
	}
	if reSkillsOnly.MatchString(text) {
		score += 0.2
	}
	if len(text) > 800 {
		score += 0.2
	}
	return capScore(score)
}

func experiencedConfidence(text string) float64 {
	score := 0.0
	if reExperienceMarker.MatchString(text) {
		score += 0.4
	}
	if reSkillsTech.MatchString(text) {
		score += 0.2
	}
	if reEducationOnly.MatchString(text) {
		score += 0.1
	}
	if len(text) > 1200 {
		score += 0.3
	}
	return capScore(score)
}

func capScore(score float64) float64 {
	if score > 1 {
		return 1
	}
	return score
}
