package matching

import "math"

// ScoreInput carries the sub-score ingredients for one job.
type ScoreInput struct {
	SkillsMatchPercent  int
	PerksMatchCount     int
	TotalPreferredPerks int
	// HasSalaryInfo is whether the posting declares a usable salary.
	HasSalaryInfo bool
	// MeetsMinSalary is whether the declared salary satisfies the user's
	// floor. Ignored when HasSalaryInfo is false.
	MeetsMinSalary bool
	// UnknownSalaryScore is the neutral sub-score for postings without
	// salary information (Config.UnknownSalaryScore).
	UnknownSalaryScore int

	WeightSalary int
	WeightSkills int
	WeightPerks  int
}

// OverallScore combines the salary, skills and perks sub-scores into a
// single 0-100 ranking number using the user's weights. Weights are
// normalized by their sum so scaling all three by the same factor leaves
// the score unchanged; a zero sum falls back to equal thirds.
func OverallScore(in ScoreInput) int {
	perksPct := float64(in.PerksMatchCount) / float64(max(in.TotalPreferredPerks, 1)) * 100
	if perksPct > 100 {
		perksPct = 100
	}

	var salaryScore float64
	switch {
	case !in.HasSalaryInfo:
		salaryScore = float64(in.UnknownSalaryScore)
	case in.MeetsMinSalary:
		salaryScore = 100
	default:
		salaryScore = 0
	}

	wSalary := float64(in.WeightSalary)
	wSkills := float64(in.WeightSkills)
	wPerks := float64(in.WeightPerks)
	sum := wSalary + wSkills + wPerks
	if sum == 0 {
		wSalary, wSkills, wPerks, sum = 1, 1, 1, 3
	}

	score := (wSalary*salaryScore + wSkills*float64(in.SkillsMatchPercent) + wPerks*perksPct) / sum
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
