package matching

import (
	"math"

	"jobpilot-backend/internal/domain"
)

// SkillsMatch is the aggregate outcome over a job's full skill lists.
// Matched and Missing keep the posting's original casing.
type SkillsMatch struct {
	Percent int
	Matched []string
	Missing []string
}

// ComputeSkillsMatch evaluates every required and nice-to-have skill
// against the profile and partitions them into matched and missing.
//
// The two lists are concatenated as-is: a skill present in both is
// evaluated twice and therefore weighs double in the percentage. That is
// deliberate weighting, not a deduplication bug.
//
// An empty combined list yields 100 by convention: a posting that lists
// no explicit skills is not penalized for it.
func (m *Matcher) ComputeSkillsMatch(job *domain.JobOffer, texts ProfileTexts) SkillsMatch {
	combined := make([]string, 0, len(job.RequiredSkills)+len(job.NiceToHaveSkills))
	combined = append(combined, job.RequiredSkills...)
	combined = append(combined, job.NiceToHaveSkills...)

	if len(combined) == 0 {
		return SkillsMatch{Percent: 100}
	}

	result := SkillsMatch{}
	for _, skill := range combined {
		if m.IsSkillMatched(skill, texts) {
			result.Matched = append(result.Matched, skill)
		} else {
			result.Missing = append(result.Missing, skill)
		}
	}
	result.Percent = int(math.Round(float64(len(result.Matched)) / float64(len(combined)) * 100))
	return result
}
