package tasks

import (
	"testing"

	"crewmatch/internal/domain/compat"

	"github.com/google/uuid"
)

func member(vec []int, skills []compat.SkillEntry, hours int) compat.FreelancerProfile {
	return compat.FreelancerProfile{
		UserID:            uuid.New(),
		Skills:            skills,
		Availability:      compat.Availability{HoursPerWeek: hours},
		LegacyPersonality: vec,
	}
}

func TestTemplatesFor_ProportionalToTeamSize(t *testing.T) {
	if got := len(TemplatesFor([]string{"Go"}, 1)); got != 3 {
		t.Fatalf("team of 1: expected minimum 3 task templates, got %d", got)
	}
	if got := len(TemplatesFor([]string{"Go"}, 3)); got != 6 {
		t.Fatalf("team of 3: expected 6 task templates, got %d", got)
	}
	if got := len(TemplatesFor([]string{"Go"}, 10)); got != 6 {
		t.Fatalf("large team: template count should cap at 6, got %d", got)
	}
}

func TestScoreMemberForTask_SkillAndAvailability(t *testing.T) {
	tpl := Template{Title: "x", PreferredSkills: []string{"Go"}, PreferredTrait: TraitAny}

	skilled := member(nil, []compat.SkillEntry{{Name: "go", Proficiency: 5}}, 40)
	unskilled := member(nil, nil, 40)

	s1 := ScoreMemberForTask(skilled, tpl)
	s2 := ScoreMemberForTask(unskilled, tpl)
	if s1 <= s2 {
		t.Fatalf("skill match should raise the task score: %d vs %d", s1, s2)
	}
	// base 50 + 5*5 skill + 10 availability
	if s1 != 85 {
		t.Fatalf("expected 85, got %d", s1)
	}
}

func TestScoreMemberForTask_TraitBuckets(t *testing.T) {
	tpl := Template{Title: "lead", PreferredTrait: TraitLeader}

	leader := member([]int{5, 3, 3, 3, 5, 3, 3, 3, 5, 3, 3, 3}, nil, 10)
	follower := member([]int{1, 3, 3, 3, 1, 3, 3, 3, 1, 3, 3, 3}, nil, 10)

	if ScoreMemberForTask(leader, tpl) <= ScoreMemberForTask(follower, tpl) {
		t.Fatalf("leader trait answers should outscore follower answers")
	}

	// Short legacy vectors must not panic and ignore missing indices.
	short := member([]int{5}, nil, 10)
	if got := ScoreMemberForTask(short, tpl); got < 0 || got > 100 {
		t.Fatalf("short vector: score out of range: %d", got)
	}
}

func TestDistribute_SpreadsLoad(t *testing.T) {
	strong := member([]int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5}, []compat.SkillEntry{{Name: "Go", Proficiency: 5}}, 40)
	second := member([]int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4}, []compat.SkillEntry{{Name: "React", Proficiency: 4}}, 35)

	groupID := uuid.New()
	memberIDs := []uuid.UUID{strong.UserID, second.UserID}
	profiles := map[uuid.UUID]compat.FreelancerProfile{
		strong.UserID: strong,
		second.UserID: second,
	}

	got := Distribute(groupID, memberIDs, []string{"Go"}, profiles)
	if len(got) != 4 {
		t.Fatalf("team of 2: expected 4 tasks, got %d", len(got))
	}

	counts := make(map[uuid.UUID]int)
	for _, a := range got {
		if a.GroupID != groupID {
			t.Fatalf("assignment carries wrong group id")
		}
		if a.AssignedTo == nil {
			t.Fatalf("task %q left unassigned with available members", a.Title)
		}
		counts[*a.AssignedTo]++
	}

	// The load penalty must prevent one member from taking everything.
	if len(counts) < 2 {
		t.Fatalf("expected tasks spread across both members, got %v", counts)
	}
}

func TestDistribute_NoResolvableProfiles(t *testing.T) {
	got := Distribute(uuid.New(), []uuid.UUID{uuid.New()}, []string{"Go"}, nil)
	if len(got) == 0 {
		t.Fatalf("tasks should still be generated without profiles")
	}
	for _, a := range got {
		if a.AssignedTo != nil {
			t.Fatalf("task assigned despite no resolvable profiles")
		}
	}
}
