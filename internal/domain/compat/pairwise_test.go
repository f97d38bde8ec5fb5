package compat

import (
	"testing"

	"github.com/google/uuid"
)

func quizProfile(answers PersonalityAssessment, work WorkStyleAssessment, sched SchedulingAssessment, skills []SkillEntry, hours int) FreelancerProfile {
	return FreelancerProfile{
		UserID: uuid.New(),
		Skills: skills,
		Availability: Availability{
			HoursPerWeek: hours,
			Timezone:     "UTC",
		},
		Quiz: &QuizResult{
			Personality: answers,
			WorkStyle:   work,
			Scheduling:  sched,
			BigFive:     BigFiveFromAssessment(answers),
		},
	}
}

func legacyProfile(vec []int, skills []SkillEntry, hours int) FreelancerProfile {
	return FreelancerProfile{
		UserID:            uuid.New(),
		Skills:            skills,
		Availability:      Availability{HoursPerWeek: hours, Timezone: "UTC"},
		LegacyPersonality: vec,
	}
}

func allAnswers(v int) PersonalityAssessment {
	return PersonalityAssessment{
		Leadership: v, Traditionalism: v, Peacekeeper: v,
		Brainstormer: v, CalmUnderPressure: v, Listener: v,
		Adaptable: v, ControlNeed: v, Challenger: v,
	}
}

func fullGrid() AvailabilityGrid {
	day := DaySlots{Morning: true, Afternoon: true, Evening: true}
	return AvailabilityGrid{
		Monday: day, Tuesday: day, Wednesday: day,
		Thursday: day, Friday: day, Saturday: day, Sunday: day,
	}
}

func TestScorePairwise_Symmetry(t *testing.T) {
	a := quizProfile(allAnswers(4),
		WorkStyleAssessment{GradeExpectation: GradeA, DeadlineStyle: DeadlineEarly, VagueTaskResponse: VagueInitiative, MissingWorkResponse: MissingDoIt, TeamRole: RoleLeader},
		SchedulingAssessment{ResponseTime: RespSameDay, MeetingFormat: MeetVideo, Grid: fullGrid(), Flexibility: FlexVery},
		[]SkillEntry{{Name: "Go", Proficiency: 5}}, 40)
	b := quizProfile(allAnswers(2),
		WorkStyleAssessment{GradeExpectation: GradeB, DeadlineStyle: DeadlineLastMinute, VagueTaskResponse: VagueWait, MissingWorkResponse: MissingAlert, TeamRole: RoleWorkhorse},
		SchedulingAssessment{ResponseTime: RespFewDays, MeetingFormat: MeetAsync, Flexibility: FlexNotAtAll},
		[]SkillEntry{{Name: "React", Proficiency: 3}}, 10)
	c := legacyProfile([]int{1, 2, 3, 4, 5}, []SkillEntry{{Name: "SQL", Proficiency: 2}}, 25)
	d := legacyProfile([]int{5, 4, 3, 2, 1}, nil, 35)

	pairs := [][2]FreelancerProfile{{a, b}, {a, c}, {c, d}, {b, d}}
	for i, pair := range pairs {
		s1 := ScorePairwise(pair[0], pair[1])
		s2 := ScorePairwise(pair[1], pair[0])
		if s1 != s2 {
			t.Fatalf("pair %d: score not symmetric: %d vs %d", i, s1, s2)
		}
		if s1 < 0 || s1 > 100 {
			t.Fatalf("pair %d: score out of range: %d", i, s1)
		}
	}
}

func TestScorePairwise_QuizPathRequiresBothQuizzes(t *testing.T) {
	quiz := quizProfile(allAnswers(3), WorkStyleAssessment{}, SchedulingAssessment{}, nil, 20)
	quiz.LegacyPersonality = []int{3, 3, 3}
	legacy := legacyProfile([]int{3, 3, 3}, nil, 20)

	// One-sided quiz must fall back to legacy scoring: identical legacy
	// vectors, identical hours, no skills.
	got := ScorePairwise(quiz, legacy)
	want := roundScore(100*legacyPersonalityWeight + 60*legacySkillWeight + 90*legacyAvailabilityWeight)
	if got != want {
		t.Fatalf("expected legacy fallback score %d, got %d", want, got)
	}
}

func TestLegacyVectorScore(t *testing.T) {
	cases := []struct {
		name string
		a, b []int
		want int
	}{
		{"identical", []int{1, 2, 3, 4}, []int{1, 2, 3, 4}, 100},
		{"mixed", []int{1, 2, 3}, []int{1, 3, 5}, 75},
		{"opposite", []int{1, 1, 1}, []int{5, 5, 5}, 0},
		{"both empty", nil, nil, 50},
		{"missing defaults to midpoint", []int{3, 3}, nil, 100},
	}
	for _, tc := range cases {
		if got := legacyVectorScore(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestSkillComplementScore_Tiers(t *testing.T) {
	diverse := skillComplementScore(
		[]SkillEntry{{Name: "Go", Proficiency: 5}, {Name: "SQL", Proficiency: 3}},
		[]SkillEntry{{Name: "React", Proficiency: 4}, {Name: "CSS", Proficiency: 4}},
	)
	if diverse != 80 {
		t.Fatalf("disjoint skill sets: expected 80, got %d", diverse)
	}

	redundant := skillComplementScore(
		[]SkillEntry{{Name: "Go", Proficiency: 5}, {Name: "SQL", Proficiency: 3}},
		[]SkillEntry{{Name: "go", Proficiency: 2}, {Name: "sql", Proficiency: 5}},
	)
	if redundant != 60 {
		t.Fatalf("duplicate skill sets (case-insensitive): expected 60, got %d", redundant)
	}
}

func TestAvailabilityClosenessScore_Tiers(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{40, 35, 90},
		{40, 25, 70},
		{40, 10, 50},
		{10, 40, 50},
	}
	for _, tc := range cases {
		if got := availabilityClosenessScore(tc.a, tc.b); got != tc.want {
			t.Fatalf("hours %d vs %d: expected %d, got %d", tc.a, tc.b, tc.want, got)
		}
	}
}

// combinedQuizTerms blends the personality, work-style, and scheduling
// terms only, renormalized to 0-100, mirroring the quiz blend minus the
// skill term.
func combinedQuizTerms(a, b FreelancerProfile) float64 {
	pers := bigFivePairScore(a.Quiz.BigFive, b.Quiz.BigFive)
	work := workStylePairScore(a.Quiz.WorkStyle, b.Quiz.WorkStyle)
	sched := schedulingPairScore(a.Quiz.Scheduling, b.Quiz.Scheduling)
	w := pairPersonalityWeight + pairWorkStyleWeight + pairSchedulingWeight
	return (pers*pairPersonalityWeight + work*pairWorkStyleWeight + sched*pairSchedulingWeight) / w
}

func TestScorePairwise_IdenticalQuizzesScoreHigh(t *testing.T) {
	work := WorkStyleAssessment{
		GradeExpectation: GradeBPlus, DeadlineStyle: DeadlineOnTime,
		VagueTaskResponse: VaguePropose, MissingWorkResponse: MissingCheckIn,
		TeamRole: RoleDiplomat,
	}
	sched := SchedulingAssessment{
		ResponseTime: RespSameDay, MeetingFormat: MeetVideo,
		Grid: fullGrid(), Flexibility: FlexSomewhat,
	}

	a := quizProfile(allAnswers(3), work, sched, nil, 20)
	b := quizProfile(allAnswers(3), work, sched, nil, 20)

	if got := combinedQuizTerms(a, b); got < 80 {
		t.Fatalf("identical quizzes: expected combined terms >= 80, got %.1f", got)
	}
}

func TestScorePairwise_OppositeQuizzesScoreLow(t *testing.T) {
	a := quizProfile(allAnswers(1),
		WorkStyleAssessment{GradeExpectation: GradeA, DeadlineStyle: DeadlineEarly, VagueTaskResponse: VagueInitiative, MissingWorkResponse: MissingDoIt, TeamRole: RoleLeader},
		SchedulingAssessment{ResponseTime: RespWithinHours, MeetingFormat: MeetInPerson, Grid: fullGrid(), Flexibility: FlexVery,
			Commitments: ScheduleCommitments{Works20PlusHours: true, FamilyCaregiver: true, IntensiveSportsClubs: true, LongCommute: true}},
		nil, 40)
	b := quizProfile(allAnswers(5),
		WorkStyleAssessment{GradeExpectation: GradePassing, DeadlineStyle: DeadlinePressure, VagueTaskResponse: VagueAskInstructor, MissingWorkResponse: MissingAlert, TeamRole: RoleSpecialist},
		SchedulingAssessment{ResponseTime: RespFewDays, MeetingFormat: MeetAsync, Flexibility: FlexNotAtAll,
			Commitments: ScheduleCommitments{ScheduleClear: true}},
		nil, 40)

	if got := combinedQuizTerms(a, b); got > 30 {
		t.Fatalf("opposite quizzes: expected combined terms <= 30, got %.1f", got)
	}
}

func TestWorkStylePairScore_LeaderWorkhorseBonus(t *testing.T) {
	base := WorkStyleAssessment{
		GradeExpectation: GradeA, DeadlineStyle: DeadlineOnTime,
		VagueTaskResponse: VaguePropose, MissingWorkResponse: MissingCheckIn,
	}

	leader, workhorse, diplomat := base, base, base
	leader.TeamRole = RoleLeader
	workhorse.TeamRole = RoleWorkhorse
	diplomat.TeamRole = RoleDiplomat

	pairTop := workStylePairScore(leader, workhorse)
	pairDifferent := workStylePairScore(leader, diplomat)
	pairSame := workStylePairScore(leader, leader)

	if !(pairTop > pairDifferent && pairDifferent > pairSame) {
		t.Fatalf("expected leader+workhorse > different roles > identical roles, got %.0f, %.0f, %.0f",
			pairTop, pairDifferent, pairSame)
	}
}

func TestGridOverlapPoints(t *testing.T) {
	if got := gridOverlapPoints(fullGrid(), fullGrid()); got != 35 {
		t.Fatalf("full overlap: expected 35, got %d", got)
	}
	if got := gridOverlapPoints(fullGrid(), AvailabilityGrid{}); got != 0 {
		t.Fatalf("no overlap: expected 0, got %d", got)
	}
	if got := gridOverlapPoints(AvailabilityGrid{}, AvailabilityGrid{}); got != 18 {
		t.Fatalf("blank grids: expected half credit 18, got %d", got)
	}
}

func TestScorePairwise_Deterministic(t *testing.T) {
	a := legacyProfile([]int{4, 2, 5, 1, 3}, []SkillEntry{{Name: "Go", Proficiency: 4}}, 30)
	b := legacyProfile([]int{2, 2, 4, 3, 3}, []SkillEntry{{Name: "Rust", Proficiency: 3}}, 15)

	first := ScorePairwise(a, b)
	for i := 0; i < 10; i++ {
		if got := ScorePairwise(a, b); got != first {
			t.Fatalf("non-deterministic score: %d then %d", first, got)
		}
	}
}
