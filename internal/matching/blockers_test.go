package matching_test

import (
	"testing"

	"jobpilot-backend/internal/domain"
	"jobpilot-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }
func presencePtr(p domain.PresenceType) *domain.PresenceType { return &p }

func TestEvaluateBlockers(t *testing.T) {
	t.Run("Should not block when job has no data and prefs are empty", func(t *testing.T) {
		result := matching.EvaluateBlockers(&domain.JobOffer{}, &domain.JobPreferences{})
		assert.False(t, result.Blocked)
		assert.Empty(t, result.Reasons)
	})

	t.Run("Should block with exactly one reason mentioning both salary figures", func(t *testing.T) {
		job := &domain.JobOffer{SalaryMax: floatPtr(40000)}
		prefs := &domain.JobPreferences{MinSalary: floatPtr(50000)}

		result := matching.EvaluateBlockers(job, prefs)
		assert.True(t, result.Blocked)
		assert.Len(t, result.Reasons, 1)
		assert.Contains(t, result.Reasons[0], "40000")
		assert.Contains(t, result.Reasons[0], "50000")
	})

	t.Run("Should not block on salary when the job declares none", func(t *testing.T) {
		prefs := &domain.JobPreferences{MinSalary: floatPtr(50000)}
		result := matching.EvaluateBlockers(&domain.JobOffer{}, prefs)
		assert.False(t, result.Blocked)
	})

	t.Run("Should never trigger location blockers with empty allow-lists", func(t *testing.T) {
		job := &domain.JobOffer{
			LocationCountry: strPtr("Iceland"),
			LocationCity:    strPtr("Reykjavik"),
		}
		result := matching.EvaluateBlockers(job, &domain.JobPreferences{})
		assert.False(t, result.Blocked)
	})

	t.Run("Should match allow-lists case-insensitively", func(t *testing.T) {
		job := &domain.JobOffer{LocationCountry: strPtr("germany")}
		prefs := &domain.JobPreferences{AllowedCountries: []string{"Germany", "Netherlands"}}
		result := matching.EvaluateBlockers(job, prefs)
		assert.False(t, result.Blocked)
	})

	t.Run("Should block on disallowed country", func(t *testing.T) {
		job := &domain.JobOffer{LocationCountry: strPtr("France")}
		prefs := &domain.JobPreferences{AllowedCountries: []string{"Germany"}}
		result := matching.EvaluateBlockers(job, prefs)
		assert.True(t, result.Blocked)
		assert.Contains(t, result.Reasons[0], "France")
	})

	t.Run("Should block on remote-policy mismatch but not on preference any", func(t *testing.T) {
		job := &domain.JobOffer{PresenceType: presencePtr(domain.PresenceOnSite)}

		prefs := &domain.JobPreferences{RemotePreference: domain.RemotePrefFullRemote}
		result := matching.EvaluateBlockers(job, prefs)
		assert.True(t, result.Blocked)

		prefs = &domain.JobPreferences{RemotePreference: domain.RemotePrefAny}
		result = matching.EvaluateBlockers(job, prefs)
		assert.False(t, result.Blocked)
	})

	t.Run("Should block on hours outside the preferred range", func(t *testing.T) {
		prefs := &domain.JobPreferences{
			MinHoursPerWeek: intPtr(20),
			MaxHoursPerWeek: intPtr(40),
		}

		result := matching.EvaluateBlockers(&domain.JobOffer{HoursPerWeek: intPtr(10)}, prefs)
		assert.True(t, result.Blocked)
		assert.Contains(t, result.Reasons[0], "below your minimum")

		result = matching.EvaluateBlockers(&domain.JobOffer{HoursPerWeek: intPtr(60)}, prefs)
		assert.True(t, result.Blocked)
		assert.Contains(t, result.Reasons[0], "exceeds your maximum")

		result = matching.EvaluateBlockers(&domain.JobOffer{HoursPerWeek: intPtr(32)}, prefs)
		assert.False(t, result.Blocked)
	})

	t.Run("Should collect all triggered reasons, never short-circuit", func(t *testing.T) {
		job := &domain.JobOffer{
			SalaryMax:       floatPtr(30000),
			LocationCountry: strPtr("France"),
			PresenceType:    presencePtr(domain.PresenceOnSite),
			HoursPerWeek:    intPtr(60),
		}
		prefs := &domain.JobPreferences{
			MinSalary:        floatPtr(50000),
			AllowedCountries: []string{"Germany"},
			RemotePreference: domain.RemotePrefFullRemote,
			MaxHoursPerWeek:  intPtr(40),
		}

		result := matching.EvaluateBlockers(job, prefs)
		assert.True(t, result.Blocked)
		assert.Len(t, result.Reasons, 4)
	})

	t.Run("Should be monotonic: adding a salary floor only adds a reason", func(t *testing.T) {
		job := &domain.JobOffer{
			SalaryMax:       floatPtr(30000),
			LocationCountry: strPtr("France"),
		}
		prefs := &domain.JobPreferences{AllowedCountries: []string{"Germany"}}

		before := matching.EvaluateBlockers(job, prefs)

		prefs.MinSalary = floatPtr(50000)
		after := matching.EvaluateBlockers(job, prefs)

		assert.Len(t, after.Reasons, len(before.Reasons)+1)
		for _, reason := range before.Reasons {
			assert.Contains(t, after.Reasons, reason)
		}
	})
}

func TestPerksMatchCount(t *testing.T) {
	t.Run("Should count the exact intersection", func(t *testing.T) {
		count := matching.PerksMatchCount(
			[]string{"health_insurance", "gym_membership", "stock_options"},
			[]string{"health_insurance", "stock_options", "pension_plan"},
		)
		assert.Equal(t, 2, count)
	})

	t.Run("Should count a duplicated job perk once", func(t *testing.T) {
		count := matching.PerksMatchCount(
			[]string{"health_insurance", "health_insurance"},
			[]string{"health_insurance"},
		)
		assert.Equal(t, 1, count)
	})

	t.Run("Should be case-sensitive", func(t *testing.T) {
		count := matching.PerksMatchCount([]string{"Health_Insurance"}, []string{"health_insurance"})
		assert.Equal(t, 0, count)
	})

	t.Run("Should return zero when either side is empty", func(t *testing.T) {
		assert.Equal(t, 0, matching.PerksMatchCount(nil, []string{"health_insurance"}))
		assert.Equal(t, 0, matching.PerksMatchCount([]string{"health_insurance"}, nil))
	})
}
