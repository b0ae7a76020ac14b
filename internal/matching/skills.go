package matching

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"jobpilot-backend/internal/domain"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Matcher decides whether free-text skill requirements from a job posting
// are satisfied by a structured user profile. Postings write skills as
// prose ("cash handling and cocktail preparation") while profiles list
// atomic skill names, so matching is fuzzy: compound phrases are split
// into fragments and each fragment is checked by bidirectional substring
// containment against normalized profile texts.
//
// The substring heuristic is the intended baseline algorithm; callers
// depend only on Matcher so a similarity-based implementation could
// replace it without touching them.
type Matcher struct {
	cfg Config
}

func NewMatcher(cfg Config) *Matcher {
	return &Matcher{cfg: cfg}
}

// ProfileTexts is the flattened, normalized view of a profile used for
// matching. ExperienceTexts includes job titles and achievement bullets,
// which lets achievements count as skill evidence even when the skill is
// not listed explicitly.
type ProfileTexts struct {
	SkillNames      []string
	ExperienceTexts []string
}

// skillSeparators splits compound skill phrases on conjunctions and
// punctuation. Word separators require surrounding whitespace so that
// e.g. "Android" is not split on "and".
var skillSeparators = regexp.MustCompile(`\s+(?:and|or|with)\s+|[,;/&+]`)

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeText lower-cases, trims, collapses whitespace and folds
// diacritics so "Présentation" and "presentation" compare equal.
func normalizeText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(diacriticStripper, s); err == nil {
		s = folded
	}
	return strings.Join(strings.Fields(s), " ")
}

// SplitCompoundSkill splits a skill phrase into independently matchable
// fragments. A compound skill is satisfied if any fragment matches (OR
// semantics): a posting asking for "cash handling and cocktail
// preparation" is creditable if the profile covers either part. If
// splitting would leave no fragment above the minimum length, the whole
// phrase is returned instead so that every skill keeps at least one
// matchable fragment.
func (m *Matcher) SplitCompoundSkill(skill string) []string {
	whole := normalizeText(skill)
	if whole == "" {
		return nil
	}

	var fragments []string
	for _, part := range skillSeparators.Split(whole, -1) {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) >= m.cfg.MinSkillFragmentLength {
			fragments = append(fragments, part)
		}
	}
	if len(fragments) == 0 {
		return []string{whole}
	}
	return fragments
}

// BuildProfileTexts flattens a profile into normalized matchable texts.
func (m *Matcher) BuildProfileTexts(skills []domain.Skill, experience []domain.WorkExperience) ProfileTexts {
	texts := ProfileTexts{}
	for _, s := range skills {
		if name := normalizeText(s.Name); name != "" {
			texts.SkillNames = append(texts.SkillNames, name)
		}
	}
	for _, exp := range experience {
		if title := normalizeText(exp.Title); title != "" {
			texts.ExperienceTexts = append(texts.ExperienceTexts, title)
		}
		for _, a := range exp.Achievements {
			if bullet := normalizeText(a); bullet != "" {
				texts.ExperienceTexts = append(texts.ExperienceTexts, bullet)
			}
		}
	}
	return texts
}

// IsSkillMatched reports whether a required-skill string is satisfied by
// the profile. An empty skill never matches.
func (m *Matcher) IsSkillMatched(skill string, texts ProfileTexts) bool {
	for _, fragment := range m.SplitCompoundSkill(skill) {
		if m.isFragmentMatched(fragment, texts) {
			return true
		}
	}
	return false
}

// isFragmentMatched checks one normalized fragment against the profile.
// Matching is bidirectional substring containment, guarded by minimum
// fragment lengths so very short strings cannot produce trivial hits.
// Exact equality with a curated skill name is always accepted, so a short
// skill like "Go" still matches when listed verbatim.
func (m *Matcher) isFragmentMatched(fragment string, texts ProfileTexts) bool {
	for _, name := range texts.SkillNames {
		if fragment == name {
			return true
		}
	}

	fragLen := utf8.RuneCountInString(fragment)
	if fragLen < m.cfg.MinSkillFragmentLength {
		return false
	}

	for _, name := range texts.SkillNames {
		if strings.Contains(name, fragment) || strings.Contains(fragment, name) {
			return true
		}
	}

	if fragLen < m.cfg.MinExperienceMatchLength {
		return false
	}
	for _, text := range texts.ExperienceTexts {
		if strings.Contains(text, fragment) || strings.Contains(fragment, text) {
			return true
		}
	}

	// Multi-word fragments rarely appear verbatim in free-form experience
	// bullets ("cocktail preparation" vs "prepared cocktails nightly"), so
	// each sufficiently long word of the fragment is also tried on its own.
	for _, word := range strings.Fields(fragment) {
		if utf8.RuneCountInString(word) < m.cfg.MinExperienceMatchLength {
			continue
		}
		for _, text := range texts.ExperienceTexts {
			if strings.Contains(text, word) {
				return true
			}
		}
	}
	return false
}
