// Package compat is the compatibility and team-formation engine. Every
// function is pure: it operates on caller-supplied snapshots, holds no
// state, and is safe for concurrent use.
package compat

import (
	"math"

	"github.com/google/uuid"
)

// SkillEntry is one skill a freelancer claims, proficiency on a 1-5 scale.
type SkillEntry struct {
	Name        string
	Proficiency int
}

// Availability is the weekly time commitment a freelancer offers.
type Availability struct {
	HoursPerWeek int
	Timezone     string
}

// PersonalityAssessment holds the nine Likert answers (1-5) from the
// compatibility quiz. A zero value means the item was never answered and
// is treated as the scale midpoint.
type PersonalityAssessment struct {
	Leadership        int
	Traditionalism    int
	Peacekeeper       int
	Brainstormer      int
	CalmUnderPressure int
	Listener          int
	Adaptable         int
	ControlNeed       int
	Challenger        int
}

// BigFiveScores are normalized 0-100 trait scores derived from the quiz.
// Neuroticism is inverted semantics: higher means less stable.
type BigFiveScores struct {
	Extraversion      int
	Openness          int
	Agreeableness     int
	Conscientiousness int
	Neuroticism       int
}

type GradeExpectation string

const (
	GradeA       GradeExpectation = "A"
	GradeBPlus   GradeExpectation = "B+"
	GradeB       GradeExpectation = "B"
	GradePassing GradeExpectation = "passing"
)

type DeadlineStyle string

const (
	DeadlineEarly      DeadlineStyle = "early"
	DeadlineOnTime     DeadlineStyle = "ontime"
	DeadlineLastMinute DeadlineStyle = "lastminute"
	DeadlinePressure   DeadlineStyle = "pressure"
)

type VagueTaskResponse string

const (
	VagueInitiative    VagueTaskResponse = "initiative"
	VaguePropose       VagueTaskResponse = "propose"
	VagueWait          VagueTaskResponse = "wait"
	VagueAskInstructor VagueTaskResponse = "askInstructor"
)

type MissingWorkResponse string

const (
	MissingDoIt    MissingWorkResponse = "doIt"
	MissingCheckIn MissingWorkResponse = "checkIn"
	MissingWait    MissingWorkResponse = "wait"
	MissingAlert   MissingWorkResponse = "alert"
)

type TeamRole string

const (
	RoleLeader     TeamRole = "leader"
	RoleWorkhorse  TeamRole = "workhorse"
	RoleDiplomat   TeamRole = "diplomat"
	RoleSpecialist TeamRole = "specialist"
)

// WorkStyleAssessment holds the categorical work-style answers.
type WorkStyleAssessment struct {
	GradeExpectation    GradeExpectation
	DeadlineStyle       DeadlineStyle
	VagueTaskResponse   VagueTaskResponse
	MissingWorkResponse MissingWorkResponse
	TeamRole            TeamRole
}

type ResponseTime string

const (
	RespWithinHours ResponseTime = "1-2hours"
	RespSameDay     ResponseTime = "sameDay"
	Resp24Hours     ResponseTime = "24hours"
	RespFewDays     ResponseTime = "fewDays"
)

type MeetingFormat string

const (
	MeetInPerson MeetingFormat = "inPerson"
	MeetHybrid   MeetingFormat = "hybrid"
	MeetVideo    MeetingFormat = "video"
	MeetAsync    MeetingFormat = "async"
)

type ScheduleFlexibility string

const (
	FlexVery     ScheduleFlexibility = "very"
	FlexSomewhat ScheduleFlexibility = "somewhat"
	FlexNotAtAll ScheduleFlexibility = "notAtAll"
)

// ScheduleCommitments flags outside obligations competing for time.
type ScheduleCommitments struct {
	Works20PlusHours     bool
	FamilyCaregiver      bool
	IntensiveSportsClubs bool
	LongCommute          bool
	ScheduleClear        bool
}

// DaySlots marks availability across the three slots of one day.
type DaySlots struct {
	Morning   bool
	Afternoon bool
	Evening   bool
}

// AvailabilityGrid is a 7-day by 3-slot availability marking.
type AvailabilityGrid struct {
	Monday    DaySlots
	Tuesday   DaySlots
	Wednesday DaySlots
	Thursday  DaySlots
	Friday    DaySlots
	Saturday  DaySlots
	Sunday    DaySlots
}

func (g AvailabilityGrid) days() [7]DaySlots {
	return [7]DaySlots{g.Monday, g.Tuesday, g.Wednesday, g.Thursday, g.Friday, g.Saturday, g.Sunday}
}

// SlotCount returns the number of marked cells in the grid.
func (g AvailabilityGrid) SlotCount() int {
	n := 0
	for _, d := range g.days() {
		if d.Morning {
			n++
		}
		if d.Afternoon {
			n++
		}
		if d.Evening {
			n++
		}
	}
	return n
}

// SchedulingAssessment holds the scheduling and communication answers.
type SchedulingAssessment struct {
	ResponseTime  ResponseTime
	MeetingFormat MeetingFormat
	Commitments   ScheduleCommitments
	Grid          AvailabilityGrid
	Flexibility   ScheduleFlexibility
}

// QuizResult is the full structured quiz outcome. When present on a
// profile it is the authoritative personality source.
type QuizResult struct {
	Personality PersonalityAssessment
	WorkStyle   WorkStyleAssessment
	Scheduling  SchedulingAssessment
	BigFive     BigFiveScores
}

// FreelancerProfile is the matching-relevant snapshot of a freelancer.
// The engine never mutates it.
type FreelancerProfile struct {
	UserID             uuid.UUID
	Skills             []SkillEntry
	Availability       Availability
	LegacyPersonality  []int
	Quiz               *QuizResult
	OnboardingComplete bool
}

// Project is the matching-relevant snapshot of a client project.
type Project struct {
	ID             uuid.UUID
	RequiredSkills []string
	TeamSize       int
}

// CandidateScore is one ranked applicant for a project.
type CandidateScore struct {
	FreelancerID   uuid.UUID
	ProjectScore   int
	AvgMemberScore int
	TotalScore     int
}

// TeamSuggestion is one recommended team subset with its average score.
type TeamSuggestion struct {
	Members  []uuid.UUID
	AvgScore int
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func clampScore(v int) int {
	return clampInt(v, 0, 100)
}

// likert resolves one quiz answer: unanswered (zero) falls back to the
// scale midpoint, out-of-range values are clamped.
func likert(v int) int {
	if v == 0 {
		return 3
	}
	return clampInt(v, 1, 5)
}

func roundScore(v float64) int {
	return clampScore(int(math.Round(v)))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
