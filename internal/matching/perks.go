package matching

// PerksMatchCount returns the size of the intersection between a job's
// perks and the user's preferred perks. Perk identifiers come from a
// closed vocabulary, so comparison is exact and case-sensitive; each
// distinct perk counts once.
func PerksMatchCount(jobPerks, preferredPerks []string) int {
	if len(jobPerks) == 0 || len(preferredPerks) == 0 {
		return 0
	}

	preferred := make(map[string]struct{}, len(preferredPerks))
	for _, p := range preferredPerks {
		preferred[p] = struct{}{}
	}

	count := 0
	seen := make(map[string]struct{}, len(jobPerks))
	for _, p := range jobPerks {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		if _, ok := preferred[p]; ok {
			count++
		}
	}
	return count
}
