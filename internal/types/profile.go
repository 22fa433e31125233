package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RoleNone is the sentinel for a profile where no role could be inferred.
const RoleNone = "N/A"

// Signal is one graded observation about resume quality: a level on a
// 0-3 scale plus a short justification.
type Signal struct {
	Level  int    `json:"level" validate:"min=0,max=3"`
	Reason string `json:"reason"`
}

// EvidenceReport carries the 8 named quality signals the career-profile
// synthesis emits. RedFlags is the only penalty signal: 0 means none.
type EvidenceReport struct {
	WorkEvidence     Signal `json:"workEvidence"`
	SkillApplication Signal `json:"skillApplication"`
	OutcomeImpact    Signal `json:"outcomeImpact"`
	ClarityStructure Signal `json:"clarityStructure"`
	Consistency      Signal `json:"consistency"`
	Specificity      Signal `json:"specificity"`
	EffortSignal     Signal `json:"effortSignal"`
	RedFlags         Signal `json:"redFlags"`
}

// RawObservations are optional boolean facts the model noticed while grading.
type RawObservations struct {
	ProjectsDetected   bool `json:"projectsDetected,omitempty"`
	InternshipDetected bool `json:"internshipDetected,omitempty"`
	MetricsMentioned   bool `json:"metricsMentioned,omitempty"`
	PortfolioDetected  bool `json:"portfolioDetected,omitempty"`
}

// CareerProfile is the derived role-fit profile for a user. It is computed
// from the structured resume alone and is never user-editable.
type CareerProfile struct {
	BestRole        string           `json:"bestRole" validate:"required"`
	NearestNextRole string           `json:"nearestNextRole" validate:"required"`
	SkillGaps       []string         `json:"skillGaps" validate:"max=6,dive,min=1,max=50"`
	Signals         EvidenceReport   `json:"signals"`
	RawObservations *RawObservations `json:"rawObservations,omitempty"`
}

// validRole accepts the N/A sentinel or a free-text role name of sane length.
func validRole(role string) bool {
	if role == RoleNone {
		return true
	}
	return len(role) >= 2 && len(role) <= 100
}

// Validate checks field constraints and the cross-field invariant: a profile
// with no inferable best role must not carry a next role or skill gaps.
func (p *CareerProfile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	if !validRole(p.BestRole) {
		return fmt.Errorf("invalid bestRole %q", p.BestRole)
	}
	if !validRole(p.NearestNextRole) {
		return fmt.Errorf("invalid nearestNextRole %q", p.NearestNextRole)
	}
	if p.BestRole == RoleNone {
		if p.NearestNextRole != RoleNone {
			return fmt.Errorf("bestRole is %s but nearestNextRole is %q", RoleNone, p.NearestNextRole)
		}
		if len(p.SkillGaps) != 0 {
			return fmt.Errorf("bestRole is %s but %d skill gaps present", RoleNone, len(p.SkillGaps))
		}
	}
	return nil
}

// Normalize canonicalizes skill-gap names and replaces a nil list with an
// empty one.
func (p *CareerProfile) Normalize() {
	p.SkillGaps = canonicalizeSkillList(p.SkillGaps)
}
