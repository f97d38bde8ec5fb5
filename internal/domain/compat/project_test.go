package compat

import (
	"testing"

	"github.com/google/uuid"
)

func TestProjectSkillScore_NoRequirements(t *testing.T) {
	if got := projectSkillScore(nil, nil); got != 100 {
		t.Fatalf("zero required skills: expected 100, got %d", got)
	}
	if got := projectSkillScore([]SkillEntry{{Name: "Go", Proficiency: 1}}, nil); got != 100 {
		t.Fatalf("zero required skills with profile skills: expected 100, got %d", got)
	}
}

func TestProjectSkillScore_ExampleScenario(t *testing.T) {
	// React 5, TypeScript 4 against [React, TypeScript, Node.js]:
	// raw 5*20 + 4*20 - 30 = 70, rescaled from [-90, 300].
	skills := []SkillEntry{
		{Name: "React", Proficiency: 5},
		{Name: "TypeScript", Proficiency: 4},
	}
	required := []string{"React", "TypeScript", "Node.js"}

	got := projectSkillScore(skills, required)
	if got < 40 || got > 55 {
		t.Fatalf("expected skill term in the 40-55 band, got %d", got)
	}
}

func TestProjectSkillScore_CaseInsensitive(t *testing.T) {
	skills := []SkillEntry{{Name: "react", Proficiency: 5}}
	if got, want := projectSkillScore(skills, []string{"React"}), projectSkillScore(skills, []string{"react"}); got != want {
		t.Fatalf("case-insensitive lookup broken: %d vs %d", got, want)
	}
}

func TestProjectSkillScore_Monotonic(t *testing.T) {
	required := []string{"Go", "SQL"}
	prev := -1
	for prof := 1; prof <= 5; prof++ {
		got := projectSkillScore([]SkillEntry{{Name: "Go", Proficiency: prof}}, required)
		if got < prev {
			t.Fatalf("skill score decreased with higher proficiency: %d after %d", got, prev)
		}
		prev = got
	}

	// Matching a previously missing skill never lowers the score.
	one := projectSkillScore([]SkillEntry{{Name: "Go", Proficiency: 5}}, required)
	both := projectSkillScore([]SkillEntry{{Name: "Go", Proficiency: 5}, {Name: "SQL", Proficiency: 1}}, required)
	if both < one {
		t.Fatalf("adding a matched skill lowered the score: %d < %d", both, one)
	}
}

func TestAvailabilityTierScore(t *testing.T) {
	cases := []struct{ hours, want int }{
		{45, 100}, {40, 100}, {35, 85}, {30, 85},
		{25, 70}, {20, 70}, {15, 50}, {10, 50}, {5, 25}, {0, 25},
	}
	for _, tc := range cases {
		if got := availabilityTierScore(tc.hours); got != tc.want {
			t.Fatalf("hours=%d: expected %d, got %d", tc.hours, tc.want, got)
		}
	}
}

func TestScoreProject_LegacyScenarioBand(t *testing.T) {
	profile := FreelancerProfile{
		UserID: uuid.New(),
		Skills: []SkillEntry{
			{Name: "React", Proficiency: 5},
			{Name: "TypeScript", Proficiency: 4},
		},
		Availability:      Availability{HoursPerWeek: 30, Timezone: "UTC"},
		LegacyPersonality: []int{3, 3, 3, 3, 3, 3, 3, 3, 3},
	}
	proj := Project{ID: uuid.New(), RequiredSkills: []string{"React", "TypeScript", "Node.js"}, TeamSize: 3}

	got := ScoreProject(profile, proj)
	if got < 50 || got > 75 {
		t.Fatalf("expected project score in the 50-75 band, got %d", got)
	}

	for i := 0; i < 5; i++ {
		if again := ScoreProject(profile, proj); again != got {
			t.Fatalf("non-deterministic project score: %d then %d", got, again)
		}
	}
}

func TestScoreProject_QuizPathRange(t *testing.T) {
	work := WorkStyleAssessment{GradeExpectation: GradeA, DeadlineStyle: DeadlineEarly}
	profiles := []FreelancerProfile{
		quizProfile(allAnswers(5), work, SchedulingAssessment{}, nil, 40),
		quizProfile(allAnswers(1), WorkStyleAssessment{GradeExpectation: GradePassing, DeadlineStyle: DeadlinePressure}, SchedulingAssessment{}, nil, 0),
	}
	proj := Project{ID: uuid.New(), RequiredSkills: []string{"Go"}, TeamSize: 2}

	for i, p := range profiles {
		got := ScoreProject(p, proj)
		if got < 0 || got > 100 {
			t.Fatalf("profile %d: score out of range: %d", i, got)
		}
	}
}

func TestScoreProject_WorkStyleBonusOrdering(t *testing.T) {
	ambitious := workStyleProjectBonus(WorkStyleAssessment{GradeExpectation: GradeA, DeadlineStyle: DeadlineEarly})
	relaxed := workStyleProjectBonus(WorkStyleAssessment{GradeExpectation: GradePassing, DeadlineStyle: DeadlineLastMinute})
	if ambitious <= relaxed {
		t.Fatalf("ambitious work style should outscore relaxed: %.0f vs %.0f", ambitious, relaxed)
	}
}
