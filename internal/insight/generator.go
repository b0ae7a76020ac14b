package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"jobpilot-backend/internal/domain"
	"jobpilot-backend/pkg/logger"

	"github.com/sony/gobreaker/v2"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Generator produces AIInsights for one analyzed job. It makes a single
// attempt per call; the orchestrator substitutes the deterministic
// fallback when Generate fails, so errors here are recoverable by design.
// Calls go through a circuit breaker so a struggling upstream fails fast
// instead of stalling every analysis.
type Generator struct {
	generator contentGenerator
	breaker   *gobreaker.CircuitBreaker[string]
}

func NewGenerator(g contentGenerator) *Generator {
	settings := gobreaker.Settings{
		Name:        "insight-generator",
		MaxRequests: 2,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warn("Insight circuit breaker state changed",
				"name", name, "from", from.String(), "to", to.String())
		},
	}

	return &Generator{
		generator: g,
		breaker:   gobreaker.NewCircuitBreaker[string](settings),
	}
}

func (g *Generator) Generate(ctx context.Context, job *domain.JobOffer, profile *domain.UserProfile, match domain.MatchData) (*domain.AIInsights, error) {
	prompt, err := buildPrompt(job, profile, match)
	if err != nil {
		return nil, err
	}

	raw, err := g.breaker.Execute(func() (string, error) {
		return g.generator.GenerateContent(ctx, prompt)
	})
	if err != nil {
		return nil, fmt.Errorf("insight generation: %w", err)
	}

	insights, err := parseInsights(raw)
	if err != nil {
		return nil, err
	}
	return insights, nil
}

func buildPrompt(job *domain.JobOffer, profile *domain.UserProfile, match domain.MatchData) (string, error) {
	jobPayload := map[string]any{
		"title":               job.Title,
		"company":             job.Company,
		"description":         job.Description,
		"required_skills":     job.RequiredSkills,
		"nice_to_have_skills": job.NiceToHaveSkills,
		"perks":               job.Perks,
	}

	skillNames := make([]string, 0, len(profile.Skills))
	for _, s := range profile.Skills {
		skillNames = append(skillNames, s.Name)
	}
	experience := make([]map[string]any, 0, len(profile.Experience))
	for _, exp := range profile.Experience {
		experience = append(experience, map[string]any{
			"title":        exp.Title,
			"company":      exp.Company,
			"achievements": exp.Achievements,
		})
	}
	profilePayload := map[string]any{
		"headline":   profile.Headline,
		"skills":     skillNames,
		"experience": experience,
		"languages":  profile.Languages,
	}

	jobJSON, err := json.MarshalIndent(jobPayload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal job payload: %w", err)
	}
	profileJSON, err := json.MarshalIndent(profilePayload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal profile payload: %w", err)
	}
	matchJSON, err := json.MarshalIndent(match, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal match payload: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are a career advisor. Compare the candidate profile with the job posting ")
	b.WriteString("and the precomputed match data, then answer with a single JSON object using ")
	b.WriteString("exactly these keys: strengths (array of strings), skill_gaps (array of strings), ")
	b.WriteString("strategic_advice (string), culture_fit (string or null), growth_potential ")
	b.WriteString("(string or null), red_flags (array of strings), match_summary (string). ")
	b.WriteString("No markdown, no commentary outside the JSON.\n\n")
	b.WriteString("Job posting:\n")
	b.Write(jobJSON)
	b.WriteString("\n\nCandidate profile:\n")
	b.Write(profileJSON)
	b.WriteString("\n\nMatch data:\n")
	b.Write(matchJSON)
	b.WriteString("\n\nJSON response:")
	return b.String(), nil
}

// parseInsights parses the model output defensively: the upstream shape
// is never trusted. Fenced code blocks are stripped, every field is
// coerced to its documented default when missing or malformed, and only
// an unparseable top-level document is an error.
func parseInsights(raw string) (*domain.AIInsights, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse insight response: %w", err)
	}

	return &domain.AIInsights{
		Strengths:       coerceStringSlice(data["strengths"]),
		SkillGaps:       coerceStringSlice(data["skill_gaps"]),
		StrategicAdvice: coerceString(data["strategic_advice"]),
		CultureFit:      coerceNullableString(data["culture_fit"]),
		GrowthPotential: coerceNullableString(data["growth_potential"]),
		RedFlags:        coerceStringSlice(data["red_flags"]),
		MatchSummary:    coerceString(data["match_summary"]),
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(strings.Trim(raw, "`"))
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}

func coerceNullableString(v any) *string {
	s := coerceString(v)
	if s == "" {
		return nil
	}
	return &s
}

func coerceStringSlice(v any) []string {
	out := []string{}
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			if s := coerceString(item); s != "" {
				out = append(out, s)
			}
		}
	case string:
		if s := strings.TrimSpace(val); s != "" {
			out = append(out, s)
		}
	}
	return out
}
