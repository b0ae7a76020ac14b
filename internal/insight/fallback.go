package insight

import (
	"fmt"

	"jobpilot-backend/internal/domain"
)

const maxFallbackSkills = 3

// Fallback builds deterministic insights purely from the match data. It
// is used whenever the AI collaborator fails, so an analysis always ends
// with a populated insight record. CultureFit and GrowthPotential stay
// nil: those require qualitative judgment this path cannot produce.
func Fallback(match domain.MatchData) *domain.AIInsights {
	insights := &domain.AIInsights{
		Strengths:       []string{},
		SkillGaps:       []string{},
		RedFlags:        []string{},
		StrategicAdvice: "Review the missing skills below and tailor your application to emphasize your strongest matches.",
	}

	switch {
	case match.SkillsMatchPercent >= 70:
		insights.Strengths = append(insights.Strengths,
			fmt.Sprintf("Strong skills alignment at %d%%", match.SkillsMatchPercent))
	case match.SkillsMatchPercent >= 50:
		insights.Strengths = append(insights.Strengths,
			fmt.Sprintf("Moderate skills alignment at %d%%", match.SkillsMatchPercent))
	}
	for i, skill := range match.MatchedSkills {
		if i >= maxFallbackSkills {
			break
		}
		insights.Strengths = append(insights.Strengths, skill)
	}

	for i, skill := range match.MissingSkills {
		if i >= maxFallbackSkills {
			break
		}
		insights.SkillGaps = append(insights.SkillGaps, "Missing: "+skill)
	}

	if match.Blockers.Blocked {
		insights.RedFlags = append(insights.RedFlags, match.Blockers.Reasons...)
	}

	switch {
	case match.OverallScore >= 80:
		insights.MatchSummary = fmt.Sprintf(
			"This looks like an excellent opportunity with a %d%% overall match.", match.OverallScore)
	case match.OverallScore >= 60:
		insights.MatchSummary = fmt.Sprintf(
			"This position shows good alignment with your profile at %d%% overall.", match.OverallScore)
	default:
		insights.MatchSummary = fmt.Sprintf(
			"This position has significant gaps compared to your profile (%d%% overall).", match.OverallScore)
	}

	return insights
}
