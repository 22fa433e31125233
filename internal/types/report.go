package types

import (
	"github.com/go-playground/validator/v10"
)

// MatchTier grades how well a posting fits the user's resume.
type MatchTier string

// Match tiers, weakest to strongest.
const (
	MatchLow     MatchTier = "Low"
	MatchPartial MatchTier = "Partial"
	MatchGood    MatchTier = "Good"
	MatchPerfect MatchTier = "Perfect"
)

// Qualifies reports whether the tier counts toward a user's match stats.
func (t MatchTier) Qualifies() bool {
	return t == MatchGood || t == MatchPerfect
}

// CompatibilityReport is the full output of a job-vs-resume analysis.
type CompatibilityReport struct {
	Stats               ReportStats         `json:"stats"`
	ATSAnalysis         ATSAnalysis         `json:"atsAnalysis"`
	SkillGapAnalysis    SkillGapAnalysis    `json:"skillGapAnalysis"`
	LearningPlan        LearningPlan        `json:"learningPlan"`
	ApplicationDecision ApplicationDecision `json:"applicationDecision"`
	Precautions         Precautions         `json:"precautions"`
	ResumeActions       ResumeActions       `json:"resumeActions"`
}

// ReportStats summarizes the posting itself.
type ReportStats struct {
	Difficulty       string    `json:"difficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	LearningFocused  bool      `json:"learningFocused"`
	CompetitionLevel string    `json:"competitionLevel" validate:"required,oneof=Low Medium High"`
	Match            MatchTier `json:"match" validate:"required,oneof=Low Partial Good Perfect"`
}

// ATSAnalysis estimates automated-screening outcomes for this posting.
type ATSAnalysis struct {
	ATSScore             float64  `json:"atsScore" validate:"min=0,max=100"`
	SelectionProbability string   `json:"selectionProbability" validate:"required,oneof=Low Medium High"`
	Reasons              []string `json:"reasons"`
}

// MissingSkill is one required skill absent from the resume.
type MissingSkill struct {
	Skill        string `json:"skill" validate:"required"`
	Priority     string `json:"priority" validate:"required,oneof=High Medium Low"`
	WhyItMatters string `json:"whyItMatters"`
}

// SkillGapAnalysis splits posting requirements into matched and missing.
type SkillGapAnalysis struct {
	MatchedSkills []string       `json:"matchedSkills"`
	MissingSkills []MissingSkill `json:"missingSkills" validate:"dive"`
}

// LearningStep is one prioritized item in the learning plan.
type LearningStep struct {
	Skill         string `json:"skill" validate:"required"`
	EstimatedTime string `json:"estimatedTime"`
	Impact        string `json:"impact"`
}

// LearningPlan orders what to learn before applying.
type LearningPlan struct {
	MustLearnFirst []LearningStep `json:"mustLearnFirst" validate:"dive"`
	GoodToHave     []string       `json:"goodToHave"`
}

// ApplicationDecision is the apply/skip recommendation.
type ApplicationDecision struct {
	ShouldApply    bool     `json:"shouldApply"`
	Recommendation string   `json:"recommendation" validate:"required,oneof='Apply Now' 'Apply After Preparation' Skip"`
	Reasoning      []string `json:"reasoning"`
}

// Precautions flags risk in the posting itself.
type Precautions struct {
	RiskLevel string   `json:"riskLevel" validate:"required,oneof=Low Medium High"`
	Notes     []string `json:"notes"`
}

// ResumeActions suggests concrete edits to the resume for this posting.
type ResumeActions struct {
	Add     []string `json:"add"`
	Improve []string `json:"improve"`
	Remove  []string `json:"remove"`
}

// Validate validates the CompatibilityReport using the validator.
func (r *CompatibilityReport) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
