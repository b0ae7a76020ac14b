package insight_test

import (
	"testing"

	"jobpilot-backend/internal/domain"
	"jobpilot-backend/internal/insight"

	"github.com/stretchr/testify/assert"
)

func TestFallback(t *testing.T) {
	t.Run("Should always produce a summary and never qualitative fields", func(t *testing.T) {
		for _, score := range []int{0, 45, 60, 80, 100} {
			insights := insight.Fallback(domain.MatchData{OverallScore: score})
			assert.NotEmpty(t, insights.MatchSummary)
			assert.NotEmpty(t, insights.StrategicAdvice)
			assert.Nil(t, insights.CultureFit)
			assert.Nil(t, insights.GrowthPotential)
		}
	})

	t.Run("Should describe skill alignment by band", func(t *testing.T) {
		insights := insight.Fallback(domain.MatchData{SkillsMatchPercent: 75})
		assert.Contains(t, insights.Strengths[0], "Strong skills alignment at 75%")

		insights = insight.Fallback(domain.MatchData{SkillsMatchPercent: 55})
		assert.Contains(t, insights.Strengths[0], "Moderate skills alignment at 55%")

		insights = insight.Fallback(domain.MatchData{SkillsMatchPercent: 30})
		assert.Empty(t, insights.Strengths)
	})

	t.Run("Should cap listed skills at three per section", func(t *testing.T) {
		match := domain.MatchData{
			SkillsMatchPercent: 80,
			MatchedSkills:      []string{"a", "b", "c", "d", "e"},
			MissingSkills:      []string{"v", "w", "x", "y", "z"},
		}
		insights := insight.Fallback(match)

		// one banding line plus three skills
		assert.Len(t, insights.Strengths, 4)
		assert.Len(t, insights.SkillGaps, 3)
		assert.Equal(t, "Missing: v", insights.SkillGaps[0])
	})

	t.Run("Should surface blocker reasons as red flags", func(t *testing.T) {
		match := domain.MatchData{
			Blockers: domain.BlockerResult{
				Blocked: true,
				Reasons: []string{"Salary too low", "Wrong country"},
			},
		}
		insights := insight.Fallback(match)
		assert.Equal(t, []string{"Salary too low", "Wrong country"}, insights.RedFlags)
	})

	t.Run("Should keep red flags empty when nothing blocked", func(t *testing.T) {
		insights := insight.Fallback(domain.MatchData{})
		assert.Empty(t, insights.RedFlags)
		assert.NotNil(t, insights.RedFlags)
	})

	t.Run("Should word the summary by overall score band", func(t *testing.T) {
		assert.Contains(t, insight.Fallback(domain.MatchData{OverallScore: 85}).MatchSummary, "excellent")
		assert.Contains(t, insight.Fallback(domain.MatchData{OverallScore: 65}).MatchSummary, "good alignment")
		assert.Contains(t, insight.Fallback(domain.MatchData{OverallScore: 20}).MatchSummary, "significant gaps")
	})
}
