// Package gemini scores compatibility through the Gemini API. It renders
// profiles and projects into text prompts, asks for strict JSON, and
// parses tolerantly. Errors propagate to the caller, which falls back to
// the algorithmic engine.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"crewmatch/internal/ai"
	"crewmatch/internal/domain/compat"

	"github.com/google/uuid"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Scorer implements the ai.Strategy contract against Gemini.
type Scorer struct {
	generator contentGenerator
	logger    *log.Logger
}

func NewScorer(generator contentGenerator, logger *log.Logger) *Scorer {
	return &Scorer{generator: generator, logger: logger}
}

func (s *Scorer) ScorePairwise(ctx context.Context, a, b compat.FreelancerProfile) (int, error) {
	prompt := "You are an expert team formation analyst. Analyze how well these two freelancers would work together: " +
		"personality complementarity, work style, schedule overlap, communication, conflict potential.\n\n" +
		"## Freelancer 1\n" + renderProfile(a) + "\n## Freelancer 2\n" + renderProfile(b) +
		"\nRespond with JSON only: {\"score\": <0-100>, \"reasoning\": \"...\", \"strengths\": [...], \"concerns\": [...]}"
	return s.singleScore(ctx, prompt)
}

func (s *Scorer) ScoreProject(ctx context.Context, p compat.FreelancerProfile, proj compat.Project) (int, error) {
	prompt := "You are an expert team formation analyst. Analyze how well this freelancer fits this project: " +
		"skill match, personality fit, work style, availability.\n\n" +
		"## Freelancer\n" + renderProfile(p) + "\n## Project\n" + renderProject(proj) +
		"\nRespond with JSON only: {\"score\": <0-100>, \"reasoning\": \"...\", \"strengths\": [...], \"concerns\": [...]}"
	return s.singleScore(ctx, prompt)
}

func (s *Scorer) RankCandidates(ctx context.Context, proj compat.Project, candidateIDs, existingMemberIDs []uuid.UUID, profiles map[uuid.UUID]compat.FreelancerProfile) ([]compat.CandidateScore, error) {
	resolved := resolveProfiles(candidateIDs, profiles)
	if len(resolved) == 0 {
		return []compat.CandidateScore{}, nil
	}

	var sb strings.Builder
	sb.WriteString("You are an expert team formation analyst. Rank these candidates for the project by skill match, personality fit, work style, and complement to the existing team.\n\n")
	sb.WriteString("## Project\n")
	sb.WriteString(renderProject(proj))
	if members := resolveProfiles(existingMemberIDs, profiles); len(members) > 0 {
		sb.WriteString("\n## Existing Team Members\n")
		for _, m := range members {
			sb.WriteString(renderProfile(m))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n## Candidates\n")
	for i, c := range resolved {
		fmt.Fprintf(&sb, "### Candidate %d\n%s\n", i, renderProfile(c))
	}
	sb.WriteString("\nRespond with JSON only: {\"rankings\": [{\"candidateIndex\": <0-based>, \"score\": <0-100>}]}. Rank best fit first.")

	raw, err := s.generator.GenerateContent(ctx, sb.String())
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Rankings []struct {
			CandidateIndex int     `json:"candidateIndex"`
			Score          float64 `json:"score"`
		} `json:"rankings"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("parse gemini rankings: %w", err)
	}
	if len(parsed.Rankings) == 0 {
		return nil, fmt.Errorf("gemini returned no rankings")
	}

	out := make([]compat.CandidateScore, 0, len(parsed.Rankings))
	for _, r := range parsed.Rankings {
		if r.CandidateIndex < 0 || r.CandidateIndex >= len(resolved) {
			continue
		}
		score := clampScore(r.Score)
		out = append(out, compat.CandidateScore{
			FreelancerID:   resolved[r.CandidateIndex].UserID,
			ProjectScore:   score,
			AvgMemberScore: score,
			TotalScore:     score,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("gemini rankings referenced no known candidates")
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalScore > out[j].TotalScore })
	return out, nil
}

func (s *Scorer) SuggestTeams(ctx context.Context, proj compat.Project, candidateIDs []uuid.UUID, teamSize int, profiles map[uuid.UUID]compat.FreelancerProfile) ([]compat.TeamSuggestion, error) {
	resolved := resolveProfiles(candidateIDs, profiles)
	if len(resolved) < teamSize {
		// Insufficient pool is not an AI question; keep the engine's
		// degenerate contract.
		return compat.SuggestTeams(proj, candidateIDs, teamSize, profiles), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert team formation analyst. Suggest optimal team combinations of %d members: skill coverage, personality balance, work style harmony, schedule compatibility.\n\n", teamSize)
	sb.WriteString("## Project\n")
	sb.WriteString(renderProject(proj))
	sb.WriteString("\n## Candidates\n")
	for i, c := range resolved {
		fmt.Fprintf(&sb, "### Candidate %d\n%s\n", i, renderProfile(c))
	}
	sb.WriteString("\nRespond with JSON only: {\"teams\": [{\"memberIndices\": [<0-based>], \"avgScore\": <0-100>}]}. Up to 5 teams, best first.")

	raw, err := s.generator.GenerateContent(ctx, sb.String())
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Teams []struct {
			MemberIndices []int   `json:"memberIndices"`
			AvgScore      float64 `json:"avgScore"`
		} `json:"teams"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("parse gemini teams: %w", err)
	}
	if len(parsed.Teams) == 0 {
		return nil, fmt.Errorf("gemini returned no teams")
	}

	out := make([]compat.TeamSuggestion, 0, len(parsed.Teams))
	for _, team := range parsed.Teams {
		members := make([]uuid.UUID, 0, len(team.MemberIndices))
		for _, idx := range team.MemberIndices {
			if idx < 0 || idx >= len(resolved) {
				continue
			}
			members = append(members, resolved[idx].UserID)
		}
		if len(members) == 0 {
			continue
		}
		out = append(out, compat.TeamSuggestion{Members: members, AvgScore: clampScore(team.AvgScore)})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("gemini teams referenced no known candidates")
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out, nil
}

func (s *Scorer) singleScore(ctx context.Context, prompt string) (int, error) {
	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return 0, err
	}

	var parsed struct {
		Score     float64  `json:"score"`
		Reasoning string   `json:"reasoning"`
		Strengths []string `json:"strengths"`
		Concerns  []string `json:"concerns"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil {
		return 0, fmt.Errorf("parse gemini score: %w", err)
	}

	assessment := ai.Assessment{
		Score:     clampScore(parsed.Score),
		Reasoning: strings.TrimSpace(parsed.Reasoning),
		Strengths: parsed.Strengths,
		Concerns:  parsed.Concerns,
	}
	if s.logger != nil && assessment.Reasoning != "" {
		s.logger.Printf("Gemini assessment | score=%d reasoning=%q", assessment.Score, assessment.Reasoning)
	}
	return assessment.Score, nil
}

func resolveProfiles(ids []uuid.UUID, profiles map[uuid.UUID]compat.FreelancerProfile) []compat.FreelancerProfile {
	out := make([]compat.FreelancerProfile, 0, len(ids))
	for _, id := range ids {
		if p, ok := profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

func renderProfile(p compat.FreelancerProfile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Freelancer %s\n", p.UserID)

	if len(p.Skills) > 0 {
		parts := make([]string, 0, len(p.Skills))
		for _, s := range p.Skills {
			parts = append(parts, fmt.Sprintf("%s (%d/5)", s.Name, s.Proficiency))
		}
		fmt.Fprintf(&sb, "Skills: %s\n", strings.Join(parts, ", "))
	}
	fmt.Fprintf(&sb, "Availability: %d hrs/week, timezone %s\n", p.Availability.HoursPerWeek, p.Availability.Timezone)

	if q := p.Quiz; q != nil {
		fmt.Fprintf(&sb, "Personality (Big Five): openness %d/100, conscientiousness %d/100, extraversion %d/100, agreeableness %d/100, emotional stability %d/100\n",
			q.BigFive.Openness, q.BigFive.Conscientiousness, q.BigFive.Extraversion, q.BigFive.Agreeableness, 100-q.BigFive.Neuroticism)
		fmt.Fprintf(&sb, "Work style: grade expectation %s, deadlines %s, vague tasks %s, missing work %s, team role %s\n",
			q.WorkStyle.GradeExpectation, q.WorkStyle.DeadlineStyle, q.WorkStyle.VagueTaskResponse, q.WorkStyle.MissingWorkResponse, q.WorkStyle.TeamRole)
		fmt.Fprintf(&sb, "Scheduling: response time %s, meetings %s, flexibility %s\n",
			q.Scheduling.ResponseTime, q.Scheduling.MeetingFormat, q.Scheduling.Flexibility)
	}
	return sb.String()
}

func renderProject(proj compat.Project) string {
	return fmt.Sprintf("Project %s\nRequired skills: %s\nTeam size: %d\n",
		proj.ID, strings.Join(proj.RequiredSkills, ", "), proj.TeamSize)
}

// extractJSON strips markdown code fences Gemini sometimes wraps around
// JSON payloads.
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

func clampScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
