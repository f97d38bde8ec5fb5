// Package ai defines the scoring strategy contract shared by the
// algorithmic engine and the optional Gemini-backed scorer. Callers pick
// a strategy; on any AI failure they must substitute the algorithmic
// result, so the engine is the universal fallback.
package ai

import (
	"context"

	"crewmatch/internal/domain/compat"

	"github.com/google/uuid"
)

// Assessment is the full answer shape an AI scorer produces for a single
// comparison. Only Score feeds the matching pipeline; the rest is
// explanation for logs or future surfacing.
type Assessment struct {
	Score     int      `json:"score"`
	Reasoning string   `json:"reasoning,omitempty"`
	Strengths []string `json:"strengths,omitempty"`
	Concerns  []string `json:"concerns,omitempty"`
}

// Strategy mirrors the engine's four operations. Implementations must
// return scores already clamped to 0-100.
type Strategy interface {
	ScorePairwise(ctx context.Context, a, b compat.FreelancerProfile) (int, error)
	ScoreProject(ctx context.Context, p compat.FreelancerProfile, proj compat.Project) (int, error)
	RankCandidates(ctx context.Context, proj compat.Project, candidateIDs, existingMemberIDs []uuid.UUID, profiles map[uuid.UUID]compat.FreelancerProfile) ([]compat.CandidateScore, error)
	SuggestTeams(ctx context.Context, proj compat.Project, candidateIDs []uuid.UUID, teamSize int, profiles map[uuid.UUID]compat.FreelancerProfile) ([]compat.TeamSuggestion, error)
}

// Algorithmic adapts the pure engine to the Strategy contract. It never
// fails.
type Algorithmic struct{}

func NewAlgorithmic() Algorithmic { return Algorithmic{} }

func (Algorithmic) ScorePairwise(_ context.Context, a, b compat.FreelancerProfile) (int, error) {
	return compat.ScorePairwise(a, b), nil
}

func (Algorithmic) ScoreProject(_ context.Context, p compat.FreelancerProfile, proj compat.Project) (int, error) {
	return compat.ScoreProject(p, proj), nil
}

func (Algorithmic) RankCandidates(_ context.Context, proj compat.Project, candidateIDs, existingMemberIDs []uuid.UUID, profiles map[uuid.UUID]compat.FreelancerProfile) ([]compat.CandidateScore, error) {
	return compat.RankCandidates(proj, candidateIDs, existingMemberIDs, profiles), nil
}

func (Algorithmic) SuggestTeams(_ context.Context, proj compat.Project, candidateIDs []uuid.UUID, teamSize int, profiles map[uuid.UUID]compat.FreelancerProfile) ([]compat.TeamSuggestion, error) {
	return compat.SuggestTeams(proj, candidateIDs, teamSize, profiles), nil
}
