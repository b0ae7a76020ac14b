package matching

import (
	"fmt"
	"strings"

	"jobpilot-backend/internal/domain"
)

// EvaluateBlockers applies every hard-disqualification rule to a job and
// the user's preferences. All rules are checked, never short-circuited,
// so the result carries one reason per triggered rule in evaluation
// order.
//
// Unknown job fields (no salary, no location, no presence type, no
// hours) trigger nothing: absence of data is never treated as failure,
// only an explicit contradicting value blocks. Likewise an empty
// allow-list means "no restriction".
func EvaluateBlockers(job *domain.JobOffer, prefs *domain.JobPreferences) domain.BlockerResult {
	var reasons []string

	// Rule 1: salary floor.
	if prefs.MinSalary != nil && job.SalaryMax != nil && *job.SalaryMax < *prefs.MinSalary {
		reasons = append(reasons, fmt.Sprintf(
			"Maximum salary %.0f is below your minimum of %.0f", *job.SalaryMax, *prefs.MinSalary))
	}

	// Rule 2: location allow-lists.
	if len(prefs.AllowedCountries) > 0 && job.LocationCountry != nil && *job.LocationCountry != "" {
		if !containsFold(prefs.AllowedCountries, *job.LocationCountry) {
			reasons = append(reasons, fmt.Sprintf(
				"Country %q is not in your allowed countries", *job.LocationCountry))
		}
	}
	if len(prefs.AllowedCities) > 0 && job.LocationCity != nil && *job.LocationCity != "" {
		if !containsFold(prefs.AllowedCities, *job.LocationCity) {
			reasons = append(reasons, fmt.Sprintf(
				"City %q is not in your allowed cities", *job.LocationCity))
		}
	}

	// Rule 3: remote-policy mismatch.
	if prefs.RemotePreference != "" && prefs.RemotePreference != domain.RemotePrefAny && job.PresenceType != nil {
		if string(prefs.RemotePreference) != string(*job.PresenceType) {
			reasons = append(reasons, fmt.Sprintf(
				"Work arrangement %q does not match your preference %q",
				*job.PresenceType, prefs.RemotePreference))
		}
	}

	// Rule 4: hours-per-week range.
	if job.HoursPerWeek != nil {
		hours := *job.HoursPerWeek
		switch {
		case prefs.MinHoursPerWeek != nil && hours < *prefs.MinHoursPerWeek:
			reasons = append(reasons, fmt.Sprintf(
				"%d hours per week is below your minimum of %d", hours, *prefs.MinHoursPerWeek))
		case prefs.MaxHoursPerWeek != nil && hours > *prefs.MaxHoursPerWeek:
			reasons = append(reasons, fmt.Sprintf(
				"%d hours per week exceeds your maximum of %d", hours, *prefs.MaxHoursPerWeek))
		}
	}

	return domain.BlockerResult{
		Blocked: len(reasons) > 0,
		Reasons: reasons,
	}
}

func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), strings.TrimSpace(value)) {
			return true
		}
	}
	return false
}
