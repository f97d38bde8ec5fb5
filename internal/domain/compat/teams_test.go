package compat

import (
	"testing"

	"github.com/google/uuid"
)

func poolOfLegacyProfiles(n int) ([]uuid.UUID, map[uuid.UUID]FreelancerProfile) {
	ids := make([]uuid.UUID, 0, n)
	profiles := make(map[uuid.UUID]FreelancerProfile, n)
	for i := 0; i < n; i++ {
		p := legacyProfile([]int{1 + i%5, 1 + (i*2)%5, 1 + (i*3)%5}, []SkillEntry{{Name: "Go", Proficiency: 1 + i%5}}, 10+i*3)
		ids = append(ids, p.UserID)
		profiles[p.UserID] = p
	}
	return ids, profiles
}

func TestSuggestTeams_DegeneratePool(t *testing.T) {
	ids, profiles := poolOfLegacyProfiles(2)
	proj := Project{ID: uuid.New(), TeamSize: 3}

	got := SuggestTeams(proj, ids, 3, profiles)
	if len(got) != 1 {
		t.Fatalf("insufficient pool: expected exactly 1 suggestion, got %d", len(got))
	}
	if len(got[0].Members) != 2 {
		t.Fatalf("degenerate suggestion should hold the whole pool, got %d members", len(got[0].Members))
	}
	if got[0].AvgScore != 50 {
		t.Fatalf("degenerate suggestion: expected neutral score 50, got %d", got[0].AvgScore)
	}
}

func TestSuggestTeams_EmptyPool(t *testing.T) {
	proj := Project{ID: uuid.New(), TeamSize: 2}
	if got := SuggestTeams(proj, nil, 2, nil); len(got) != 0 {
		t.Fatalf("empty pool: expected no suggestions, got %d", len(got))
	}
}

func TestSuggestTeams_TopFiveSortedDescending(t *testing.T) {
	ids, profiles := poolOfLegacyProfiles(8)
	proj := Project{ID: uuid.New(), RequiredSkills: []string{"Go"}, TeamSize: 3}

	got := SuggestTeams(proj, ids, 3, profiles)
	if len(got) != 5 {
		t.Fatalf("expected top 5 suggestions, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].AvgScore > got[i-1].AvgScore {
			t.Fatalf("suggestions not sorted descending at %d: %d after %d", i, got[i].AvgScore, got[i-1].AvgScore)
		}
	}
	for _, s := range got {
		if len(s.Members) != 3 {
			t.Fatalf("expected teams of 3, got %d", len(s.Members))
		}
		if s.AvgScore < 0 || s.AvgScore > 100 {
			t.Fatalf("avg score out of range: %d", s.AvgScore)
		}
	}
}

func TestSuggestTeams_Deterministic(t *testing.T) {
	ids, profiles := poolOfLegacyProfiles(10)
	proj := Project{ID: uuid.New(), RequiredSkills: []string{"Go"}, TeamSize: 4}

	first := SuggestTeams(proj, ids, 4, profiles)
	for run := 0; run < 3; run++ {
		again := SuggestTeams(proj, ids, 4, profiles)
		if len(again) != len(first) {
			t.Fatalf("run %d: suggestion count changed", run)
		}
		for i := range first {
			if again[i].AvgScore != first[i].AvgScore {
				t.Fatalf("run %d: scores changed at %d", run, i)
			}
			for j := range first[i].Members {
				if again[i].Members[j] != first[i].Members[j] {
					t.Fatalf("run %d: members changed at %d", run, i)
				}
			}
		}
	}
}

func TestCombinationIter_Exhaustive(t *testing.T) {
	iter := newCombinationIter(5, 3)
	count := 0
	seen := make(map[[3]int]bool)
	for {
		idxs, ok := iter.next()
		if !ok {
			break
		}
		var key [3]int
		copy(key[:], idxs)
		if seen[key] {
			t.Fatalf("duplicate combination %v", key)
		}
		seen[key] = true
		for i := 1; i < len(idxs); i++ {
			if idxs[i] <= idxs[i-1] {
				t.Fatalf("combination not strictly increasing: %v", idxs)
			}
		}
		count++
	}
	if count != 10 {
		t.Fatalf("C(5,3): expected 10 combinations, got %d", count)
	}
}

func TestCombinationIter_InvalidSizes(t *testing.T) {
	for _, tc := range [][2]int{{3, 0}, {3, 4}, {0, 1}} {
		iter := newCombinationIter(tc[0], tc[1])
		if _, ok := iter.next(); ok {
			t.Fatalf("n=%d k=%d: expected no combinations", tc[0], tc[1])
		}
	}
}

func TestSuggestTeams_EnumerationCap(t *testing.T) {
	// C(12, 4) = 495 far exceeds the cap; the search must stay bounded
	// and still return at most 5 suggestions.
	ids, profiles := poolOfLegacyProfiles(12)
	proj := Project{ID: uuid.New(), TeamSize: 4}

	got := SuggestTeams(proj, ids, 4, profiles)
	if len(got) > maxTeamSuggestions {
		t.Fatalf("expected at most %d suggestions, got %d", maxTeamSuggestions, len(got))
	}

	// Every suggestion must come from the lexicographically first 50
	// combinations, all of which keep candidate 0 in first position.
	for _, s := range got {
		if s.Members[0] != ids[0] {
			t.Fatalf("suggestion outside the capped enumeration window")
		}
	}
}
