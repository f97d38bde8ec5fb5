package compat

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

const (
	// maxTeamCombinations bounds the subset enumeration. For large pools
	// the result is a sample of the lexicographically first combinations,
	// not a global optimum; that tradeoff keeps the search O(1) in pool
	// size.
	maxTeamCombinations = 50

	// maxTeamSuggestions is how many top subsets are returned.
	maxTeamSuggestions = 5

	// degenerateTeamScore marks an insufficient-pool suggestion.
	degenerateTeamScore = 50
)

// SuggestTeams enumerates up to maxTeamCombinations subsets of teamSize
// candidates and returns the top suggestions by average combined score:
// every member's project score plus every unordered pair's compatibility
// score, divided by the number of terms. A pool smaller than teamSize
// yields a single degenerate suggestion holding the whole pool with a
// neutral score; an empty pool yields nothing.
func SuggestTeams(proj Project, candidateIDs []uuid.UUID, teamSize int, profiles map[uuid.UUID]FreelancerProfile) []TeamSuggestion {
	if teamSize <= 0 {
		return nil
	}

	if len(candidateIDs) < teamSize {
		if len(candidateIDs) == 0 {
			return nil
		}
		members := make([]uuid.UUID, len(candidateIDs))
		copy(members, candidateIDs)
		return []TeamSuggestion{{Members: members, AvgScore: degenerateTeamScore}}
	}

	suggestions := make([]TeamSuggestion, 0, maxTeamCombinations)
	iter := newCombinationIter(len(candidateIDs), teamSize)

	for len(suggestions) < maxTeamCombinations {
		idxs, ok := iter.next()
		if !ok {
			break
		}

		members := make([]uuid.UUID, teamSize)
		for i, idx := range idxs {
			members[i] = candidateIDs[idx]
		}

		suggestions = append(suggestions, TeamSuggestion{
			Members:  members,
			AvgScore: scoreTeam(proj, members, profiles),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].AvgScore > suggestions[j].AvgScore
	})

	if len(suggestions) > maxTeamSuggestions {
		suggestions = suggestions[:maxTeamSuggestions]
	}
	return suggestions
}

// scoreTeam averages project fit per member and pairwise fit per
// unordered pair. Members without a resolvable profile contribute
// nothing.
func scoreTeam(proj Project, members []uuid.UUID, profiles map[uuid.UUID]FreelancerProfile) int {
	total, terms := 0, 0

	for i, id := range members {
		p1, ok := profiles[id]
		if !ok {
			continue
		}

		total += ScoreProject(p1, proj)
		terms++

		for _, other := range members[i+1:] {
			p2, ok := profiles[other]
			if !ok {
				continue
			}
			total += ScorePairwise(p1, p2)
			terms++
		}
	}

	if terms == 0 {
		return 0
	}
	return clampScore(int(math.Round(float64(total) / float64(terms))))
}

// combinationIter yields k-subsets of [0,n) in lexicographic order,
// lazily, one index slice per call. It replaces a recursive generator
// with shared accumulation so the consumer controls the bound.
type combinationIter struct {
	n, k int
	idx  []int
	done bool
}

func newCombinationIter(n, k int) *combinationIter {
	return &combinationIter{n: n, k: k, done: k <= 0 || k > n}
}

// next returns the next combination. The returned slice is only valid
// until the following call.
func (it *combinationIter) next() ([]int, bool) {
	if it.done {
		return nil, false
	}

	if it.idx == nil {
		it.idx = make([]int, it.k)
		for i := range it.idx {
			it.idx[i] = i
		}
		return it.idx, true
	}

	// Advance the rightmost index that still has room.
	i := it.k - 1
	for i >= 0 && it.idx[i] == it.n-it.k+i {
		i--
	}
	if i < 0 {
		it.done = true
		return nil, false
	}

	it.idx[i]++
	for j := i + 1; j < it.k; j++ {
		it.idx[j] = it.idx[j-1] + 1
	}
	return it.idx, true
}
