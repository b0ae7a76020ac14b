package matching

// Config carries the tuning constants of the matching engine. They are
// explicit parameters rather than package globals so the engine stays free
// of process-wide state and each threshold is independently testable.
type Config struct {
	// MinSkillFragmentLength is the minimum length (in runes, after
	// normalization) a skill fragment must have to participate in
	// substring matching against profile skill names.
	MinSkillFragmentLength int
	// MinExperienceMatchLength is the stricter minimum for matching a
	// fragment against free-text experience entries, which are noisier
	// and more prone to coincidental substring hits than a curated
	// skill list.
	MinExperienceMatchLength int
	// UnknownSalaryScore is the salary sub-score used when a job posting
	// omits salary information. Unknown is treated as neutral, not
	// failing; changing this materially shifts ranking for postings
	// without a salary.
	UnknownSalaryScore int
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		MinSkillFragmentLength:   3,
		MinExperienceMatchLength: 5,
		UnknownSalaryScore:       50,
	}
}
