package compat

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// Blend of project fit vs. fit with the existing team.
const (
	rankProjectWeight = 0.6
	rankMemberWeight  = 0.4
)

// RankCandidates scores every resolvable candidate against the project
// and the existing team members, returning a descending ranking by total
// score (ties keep input order). Candidates without a profile in the map
// are skipped. With no existing members the member average defaults to
// 100: no team yet means no penalty.
func RankCandidates(proj Project, candidateIDs, existingMemberIDs []uuid.UUID, profiles map[uuid.UUID]FreelancerProfile) []CandidateScore {
	results := make([]CandidateScore, 0, len(candidateIDs))

	for _, id := range candidateIDs {
		profile, ok := profiles[id]
		if !ok {
			continue
		}

		projectScore := ScoreProject(profile, proj)

		memberSum, memberCount := 0, 0
		for _, memberID := range existingMemberIDs {
			member, ok := profiles[memberID]
			if !ok {
				continue
			}
			memberSum += ScorePairwise(profile, member)
			memberCount++
		}

		avgMember := 100
		if memberCount > 0 {
			avgMember = int(math.Round(float64(memberSum) / float64(memberCount)))
		}

		total := roundScore(float64(projectScore)*rankProjectWeight + float64(avgMember)*rankMemberWeight)

		results = append(results, CandidateScore{
			FreelancerID:   id,
			ProjectScore:   projectScore,
			AvgMemberScore: avgMember,
			TotalScore:     total,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})
	return results
}
