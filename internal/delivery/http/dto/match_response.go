package dto

import (
	"crewmatch/internal/domain/compat"

	"github.com/google/uuid"
)

type PairwiseScoreResponse struct {
	AID   uuid.UUID `json:"a_id"`
	BID   uuid.UUID `json:"b_id"`
	Score int       `json:"score"`
}

type ProjectFitResponse struct {
	FreelancerID uuid.UUID `json:"freelancer_id"`
	ProjectID    uuid.UUID `json:"project_id"`
	Score        int       `json:"score"`
}

type CandidateScoreResponse struct {
	FreelancerID   uuid.UUID `json:"freelancer_id"`
	ProjectScore   int       `json:"project_score"`
	AvgMemberScore int       `json:"avg_member_score"`
	TotalScore     int       `json:"total_score"`
}

type TeamSuggestionResponse struct {
	Members  []uuid.UUID `json:"members"`
	AvgScore int         `json:"avg_score"`
}

func NewCandidateScoreResponses(scores []compat.CandidateScore) []CandidateScoreResponse {
	out := make([]CandidateScoreResponse, 0, len(scores))
	for _, s := range scores {
		out = append(out, CandidateScoreResponse{
			FreelancerID:   s.FreelancerID,
			ProjectScore:   s.ProjectScore,
			AvgMemberScore: s.AvgMemberScore,
			TotalScore:     s.TotalScore,
		})
	}
	return out
}

func NewTeamSuggestionResponses(suggestions []compat.TeamSuggestion) []TeamSuggestionResponse {
	out := make([]TeamSuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, TeamSuggestionResponse{Members: s.Members, AvgScore: s.AvgScore})
	}
	return out
}
