package compat

import (
	"testing"

	"github.com/google/uuid"
)

func TestRankCandidates_NoTeamDefaultsTo100(t *testing.T) {
	strong := legacyProfile([]int{3, 3, 3}, []SkillEntry{{Name: "Go", Proficiency: 5}}, 40)
	weak := legacyProfile([]int{3, 3, 3}, nil, 5)

	profiles := map[uuid.UUID]FreelancerProfile{
		strong.UserID: strong,
		weak.UserID:   weak,
	}
	proj := Project{ID: uuid.New(), RequiredSkills: []string{"Go"}, TeamSize: 2}

	got := RankCandidates(proj, []uuid.UUID{weak.UserID, strong.UserID}, nil, profiles)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	for _, r := range got {
		if r.AvgMemberScore != 100 {
			t.Fatalf("no existing team: expected avg member score 100, got %d", r.AvgMemberScore)
		}
	}
	if got[0].FreelancerID != strong.UserID {
		t.Fatalf("expected the stronger candidate ranked first")
	}
	if got[0].TotalScore < got[1].TotalScore {
		t.Fatalf("ranking not descending: %d before %d", got[0].TotalScore, got[1].TotalScore)
	}
}

func TestRankCandidates_SkipsUnresolvableProfiles(t *testing.T) {
	known := legacyProfile([]int{3, 3}, nil, 20)
	profiles := map[uuid.UUID]FreelancerProfile{known.UserID: known}
	proj := Project{ID: uuid.New(), TeamSize: 1}

	got := RankCandidates(proj, []uuid.UUID{uuid.New(), known.UserID, uuid.New()}, nil, profiles)
	if len(got) != 1 {
		t.Fatalf("expected unresolvable candidates skipped, got %d results", len(got))
	}
	if got[0].FreelancerID != known.UserID {
		t.Fatalf("unexpected candidate in result")
	}
}

func TestRankCandidates_BlendsMemberCompatibility(t *testing.T) {
	candidate := legacyProfile([]int{1, 1, 1, 1}, nil, 40)
	twin := legacyProfile([]int{1, 1, 1, 1}, nil, 40)
	opposite := legacyProfile([]int{5, 5, 5, 5}, nil, 40)

	profiles := map[uuid.UUID]FreelancerProfile{
		candidate.UserID: candidate,
		twin.UserID:      twin,
		opposite.UserID:  opposite,
	}
	proj := Project{ID: uuid.New(), TeamSize: 2}

	withTwin := RankCandidates(proj, []uuid.UUID{candidate.UserID}, []uuid.UUID{twin.UserID}, profiles)
	withOpposite := RankCandidates(proj, []uuid.UUID{candidate.UserID}, []uuid.UUID{opposite.UserID}, profiles)

	if withTwin[0].AvgMemberScore <= withOpposite[0].AvgMemberScore {
		t.Fatalf("similar member should raise avg member score: %d vs %d",
			withTwin[0].AvgMemberScore, withOpposite[0].AvgMemberScore)
	}
	if withTwin[0].TotalScore <= withOpposite[0].TotalScore {
		t.Fatalf("similar member should raise total score: %d vs %d",
			withTwin[0].TotalScore, withOpposite[0].TotalScore)
	}

	// Member without a resolvable profile contributes nothing, so the
	// average falls back to 100.
	ghost := RankCandidates(proj, []uuid.UUID{candidate.UserID}, []uuid.UUID{uuid.New()}, profiles)
	if ghost[0].AvgMemberScore != 100 {
		t.Fatalf("unresolvable member: expected avg 100, got %d", ghost[0].AvgMemberScore)
	}
}

func TestRankCandidates_StableTieOrder(t *testing.T) {
	a := legacyProfile([]int{3, 3}, nil, 20)
	b := legacyProfile([]int{3, 3}, nil, 20)
	profiles := map[uuid.UUID]FreelancerProfile{a.UserID: a, b.UserID: b}
	proj := Project{ID: uuid.New(), TeamSize: 2}

	got := RankCandidates(proj, []uuid.UUID{a.UserID, b.UserID}, nil, profiles)
	if got[0].FreelancerID != a.UserID || got[1].FreelancerID != b.UserID {
		t.Fatalf("tied scores must keep input order")
	}
}
