// Package scoring converts an evidence report into the 0-100 ATS score.
package scoring

import (
	"math"

	"github.com/dev-rohit-gupta/resume-buddy/internal/types"
)

// Fixed signal weights. They sum to 100.
const (
	weightWorkEvidence     = 20
	weightSkillApplication = 15
	weightOutcomeImpact    = 15
	weightClarityStructure = 10
	weightConsistency      = 10
	weightSpecificity      = 10
	weightEffortSignal     = 10
	weightRedFlags         = 10

	maxScore = weightWorkEvidence + weightSkillApplication + weightOutcomeImpact +
		weightClarityStructure + weightConsistency + weightSpecificity +
		weightEffortSignal + weightRedFlags

	maxLevel = 3
)

// Score aggregates the 8 evidence signals into an integer score in [0, 100].
//
// Every signal except red flags contributes weight * level/3. Red flags is
// a penalty: its contribution is weight * (1 - (level/3)^2), so the penalty
// grows quadratically - level 1 costs 1/9 of the weight while level 3 wipes
// the full weight out. A report with red flags at 0 therefore earns the red
// flag weight in full.
func Score(r types.EvidenceReport) int {
	total := 0.0

	total += contribution(r.WorkEvidence, weightWorkEvidence)
	total += contribution(r.SkillApplication, weightSkillApplication)
	total += contribution(r.OutcomeImpact, weightOutcomeImpact)
	total += contribution(r.ClarityStructure, weightClarityStructure)
	total += contribution(r.Consistency, weightConsistency)
	total += contribution(r.Specificity, weightSpecificity)
	total += contribution(r.EffortSignal, weightEffortSignal)
	total += penaltyContribution(r.RedFlags, weightRedFlags)

	return int(math.Round(total / maxScore * 100))
}

func contribution(s types.Signal, weight float64) float64 {
	return weight * normalized(s)
}

func penaltyContribution(s types.Signal, weight float64) float64 {
	n := normalized(s)
	return weight * (1 - n*n)
}

// normalized clamps the level into [0, 3] and maps it to [0, 1]. Levels
// outside the scale are rejected upstream by validation; clamping here
// keeps the score total bounded even on unvalidated input.
func normalized(s types.Signal) float64 {
	level := s.Level
	if level < 0 {
		level = 0
	}
	if level > maxLevel {
		level = maxLevel
	}
	return float64(level) / maxLevel
}
