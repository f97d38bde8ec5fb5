package compat

import (
	"math"
	"strings"
)

// Weights for the quiz-aware pairwise blend.
const (
	pairPersonalityWeight = 0.25
	pairWorkStyleWeight   = 0.35
	pairSchedulingWeight  = 0.25
	pairSkillWeight       = 0.15
)

// Weights for the legacy-vector pairwise blend.
const (
	legacyPersonalityWeight  = 0.50
	legacySkillWeight        = 0.30
	legacyAvailabilityWeight = 0.20
)

// ScorePairwise scores the compatibility of two freelancers on a 0-100
// scale. The structured quiz path is used only when both profiles carry a
// quiz result; otherwise both fall back to legacy-vector scoring. The
// function is commutative: ScorePairwise(a, b) == ScorePairwise(b, a).
func ScorePairwise(a, b FreelancerProfile) int {
	if a.Quiz != nil && b.Quiz != nil {
		return scorePairwiseQuiz(a, b)
	}
	return scorePairwiseLegacy(a, b)
}

func scorePairwiseQuiz(a, b FreelancerProfile) int {
	pers := bigFivePairScore(a.Quiz.BigFive, b.Quiz.BigFive)
	work := workStylePairScore(a.Quiz.WorkStyle, b.Quiz.WorkStyle)
	sched := schedulingPairScore(a.Quiz.Scheduling, b.Quiz.Scheduling)
	skill := skillComplementScore(a.Skills, b.Skills)

	total := pers*pairPersonalityWeight +
		work*pairWorkStyleWeight +
		sched*pairSchedulingWeight +
		float64(skill)*pairSkillWeight
	return roundScore(total)
}

func scorePairwiseLegacy(a, b FreelancerProfile) int {
	pers := legacyVectorScore(a.LegacyPersonality, b.LegacyPersonality)
	skill := skillComplementScore(a.Skills, b.Skills)
	avail := availabilityClosenessScore(a.Availability.HoursPerWeek, b.Availability.HoursPerWeek)

	total := float64(pers)*legacyPersonalityWeight +
		float64(skill)*legacySkillWeight +
		float64(avail)*legacyAvailabilityWeight
	return roundScore(total)
}

// bigFivePairScore blends trait-level comparisons: similar
// conscientiousness and agreeableness, complementary extraversion (the
// pair sums near 100), jointly low neuroticism, and a mild reward for
// diversity in openness.
func bigFivePairScore(x, y BigFiveScores) float64 {
	xc := clampScore(x.Conscientiousness)
	yc := clampScore(y.Conscientiousness)
	xa := clampScore(x.Agreeableness)
	ya := clampScore(y.Agreeableness)
	xe := clampScore(x.Extraversion)
	ye := clampScore(y.Extraversion)
	xn := clampScore(x.Neuroticism)
	yn := clampScore(y.Neuroticism)
	xo := clampScore(x.Openness)
	yo := clampScore(y.Openness)

	conscientious := float64(100 - absInt(xc-yc))
	agreeable := float64(100 - absInt(xa-ya))
	extraverted := float64(100 - absInt(xe+ye-100))
	stability := 100 - float64(xn+yn)/2
	openDiversity := 50 + float64(absInt(xo-yo))/2

	return conscientious*0.35 + agreeable*0.25 + extraverted*0.10 +
		stability*0.20 + openDiversity*0.10
}

var gradeOrder = map[GradeExpectation]int{
	GradeA:       0,
	GradeBPlus:   1,
	GradeB:       2,
	GradePassing: 3,
}

var deadlineOrder = map[DeadlineStyle]int{
	DeadlineEarly:      0,
	DeadlineOnTime:     1,
	DeadlineLastMinute: 2,
	DeadlinePressure:   3,
}

// ordinalPoints rewards closer ordinal positions: exact match, one step,
// two steps, three steps.
var ordinalPoints = [4]int{25, 15, 5, 0}

func ordinalDistancePoints(a, b int) int {
	d := clampInt(absInt(a-b), 0, 3)
	return ordinalPoints[d]
}

// workStylePairScore scores grade and deadline alignment by ordinal
// distance, rewards role complementarity (leader+workhorse highest), and
// rewards complementary coping styles for vague tasks and missing work
// over identical ones. Additive, capped at 100.
func workStylePairScore(x, y WorkStyleAssessment) float64 {
	pts := 0
	pts += ordinalDistancePoints(gradeOrder[x.GradeExpectation], gradeOrder[y.GradeExpectation])
	pts += ordinalDistancePoints(deadlineOrder[x.DeadlineStyle], deadlineOrder[y.DeadlineStyle])
	pts += rolePairPoints(x.TeamRole, y.TeamRole)
	pts += copingPairPoints(vagueActive(x.VagueTaskResponse), vagueActive(y.VagueTaskResponse),
		x.VagueTaskResponse == y.VagueTaskResponse)
	pts += copingPairPoints(missingActive(x.MissingWorkResponse), missingActive(y.MissingWorkResponse),
		x.MissingWorkResponse == y.MissingWorkResponse)
	return float64(clampScore(pts))
}

func rolePairPoints(a, b TeamRole) int {
	if (a == RoleLeader && b == RoleWorkhorse) || (a == RoleWorkhorse && b == RoleLeader) {
		return 30
	}
	if a == b {
		return 10
	}
	return 15
}

func vagueActive(v VagueTaskResponse) bool {
	return v == VagueInitiative || v == VaguePropose
}

func missingActive(v MissingWorkResponse) bool {
	return v == MissingDoIt || v == MissingCheckIn
}

// copingPairPoints: one active + one passive coping style beats two of
// the same category, which beats two identical answers.
func copingPairPoints(aActive, bActive, identical bool) int {
	if aActive != bActive {
		return 10
	}
	if identical {
		return 5
	}
	return 7
}

var responseTimeOrder = map[ResponseTime]int{
	RespWithinHours: 0,
	RespSameDay:     1,
	Resp24Hours:     2,
	RespFewDays:     3,
}

var responseTimePoints = [4]int{20, 12, 6, 0}

var flexOrder = map[ScheduleFlexibility]int{
	FlexVery:     0,
	FlexSomewhat: 1,
	FlexNotAtAll: 2,
}

// schedulingPairScore combines response-time distance, meeting-format
// match, availability-grid overlap, flexibility match, and commitment
// load similarity into a 0-100 score.
func schedulingPairScore(x, y SchedulingAssessment) float64 {
	pts := 0

	d := clampInt(absInt(responseTimeOrder[x.ResponseTime]-responseTimeOrder[y.ResponseTime]), 0, 3)
	pts += responseTimePoints[d]

	pts += meetingFormatPoints(x.MeetingFormat, y.MeetingFormat)
	pts += gridOverlapPoints(x.Grid, y.Grid)
	pts += flexibilityPoints(x.Flexibility, y.Flexibility)
	pts += commitmentLoadPoints(x.Commitments, y.Commitments)

	return float64(clampScore(pts))
}

func meetingFormatPoints(a, b MeetingFormat) int {
	if a == b {
		return 20
	}
	// Hybrid partially matches everything; video and async pair tolerably.
	if a == MeetHybrid || b == MeetHybrid {
		return 12
	}
	if (a == MeetVideo && b == MeetAsync) || (a == MeetAsync && b == MeetVideo) {
		return 12
	}
	return 4
}

// gridOverlapPoints counts cells both mark available, normalized against
// cells either marks. An entirely blank pair is treated as a half match.
func gridOverlapPoints(a, b AvailabilityGrid) int {
	both, either := 0, 0
	ad, bd := a.days(), b.days()
	for i := range ad {
		for _, cell := range [][2]bool{
			{ad[i].Morning, bd[i].Morning},
			{ad[i].Afternoon, bd[i].Afternoon},
			{ad[i].Evening, bd[i].Evening},
		} {
			if cell[0] && cell[1] {
				both++
			}
			if cell[0] || cell[1] {
				either++
			}
		}
	}
	ratio := 0.5
	if either > 0 {
		ratio = float64(both) / float64(either)
	}
	return int(math.Round(ratio * 35))
}

func flexibilityPoints(a, b ScheduleFlexibility) int {
	d := absInt(flexOrder[a] - flexOrder[b])
	switch d {
	case 0:
		return 10
	case 1:
		return 6
	default:
		return 2
	}
}

func busyCount(c ScheduleCommitments) int {
	n := 0
	if c.Works20PlusHours {
		n++
	}
	if c.FamilyCaregiver {
		n++
	}
	if c.IntensiveSportsClubs {
		n++
	}
	if c.LongCommute {
		n++
	}
	return n
}

func commitmentLoadPoints(a, b ScheduleCommitments) int {
	diff := absInt(busyCount(a) - busyCount(b))
	pts := 15 - diff*5
	if pts < 0 {
		pts = 0
	}
	return pts
}

// skillComplementScore rewards diversity: a pair holding more unique
// skills than overlapping ones scores higher than a mostly-duplicate
// pair. Two tiers, not continuous.
func skillComplementScore(a, b []SkillEntry) int {
	setA := make(map[string]struct{}, len(a))
	for _, s := range a {
		setA[strings.ToLower(s.Name)] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, s := range b {
		setB[strings.ToLower(s.Name)] = struct{}{}
	}

	overlap, unique := 0, 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			overlap++
		} else {
			unique++
		}
	}
	for s := range setB {
		if _, ok := setA[s]; !ok {
			unique++
		}
	}

	if unique > overlap {
		return 80
	}
	return 60
}

// legacyVectorScore compares two legacy personality vectors index by
// index: identical answers score +2, one apart +1, three or more apart
// -2, two apart neutral. The sum is rescaled from [-2n, +2n] to [0,100].
// Missing entries default to the midpoint; two empty vectors score 50.
func legacyVectorScore(a, b []int) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return 50
	}

	raw := 0
	for i := 0; i < n; i++ {
		av, bv := 3, 3
		if i < len(a) && a[i] != 0 {
			av = clampInt(a[i], 1, 5)
		}
		if i < len(b) && b[i] != 0 {
			bv = clampInt(b[i], 1, 5)
		}
		switch d := absInt(av - bv); {
		case d == 0:
			raw += 2
		case d == 1:
			raw++
		case d >= 3:
			raw -= 2
		}
	}

	span := 4 * n
	return clampScore(int(math.Round(float64(raw+2*n) / float64(span) * 100)))
}

// availabilityClosenessScore tiers the difference in weekly hours.
func availabilityClosenessScore(aHours, bHours int) int {
	diff := absInt(aHours - bHours)
	switch {
	case diff < 10:
		return 90
	case diff < 20:
		return 70
	default:
		return 50
	}
}
