package compat

import (
	"math"
	"strings"
)

// Weights for the quiz-aware project blend.
const (
	projPersonalityWeight  = 0.25
	projWorkStyleWeight    = 0.25
	projSkillWeight        = 0.30
	projAvailabilityWeight = 0.20
)

// Weights for the legacy project blend.
const (
	projLegacyPersonalityWeight  = 0.30
	projLegacySkillWeight        = 0.50
	projLegacyAvailabilityWeight = 0.20
)

const missingSkillPenalty = 30

// ScoreProject scores one freelancer's fit for one project on a 0-100
// scale.
func ScoreProject(p FreelancerProfile, proj Project) int {
	skill := projectSkillScore(p.Skills, proj.RequiredSkills)
	avail := availabilityTierScore(p.Availability.HoursPerWeek)

	if p.Quiz != nil {
		pers := bigFiveProjectScore(p.Quiz.BigFive)
		work := workStyleProjectBonus(p.Quiz.WorkStyle)
		total := pers*projPersonalityWeight +
			work*projWorkStyleWeight +
			float64(skill)*projSkillWeight +
			float64(avail)*projAvailabilityWeight
		return roundScore(total)
	}

	// Legacy personality is scored against a neutral midpoint vector.
	neutral := make([]int, len(p.LegacyPersonality))
	for i := range neutral {
		neutral[i] = 3
	}
	pers := legacyVectorScore(p.LegacyPersonality, neutral)

	total := float64(pers)*projLegacyPersonalityWeight +
		float64(skill)*projLegacySkillWeight +
		float64(avail)*projLegacyAvailabilityWeight
	return roundScore(total)
}

// projectSkillScore sums proficiency*20 per matched required skill
// (case-insensitive) and a fixed penalty per missing one, then rescales
// from the theoretical [-30n, 100n] range to 0-100. No requirements
// means a perfect score.
func projectSkillScore(skills []SkillEntry, required []string) int {
	if len(required) == 0 {
		return 100
	}

	byName := make(map[string]int, len(skills))
	for _, s := range skills {
		byName[strings.ToLower(s.Name)] = clampInt(s.Proficiency, 1, 5)
	}

	total := 0
	for _, req := range required {
		if prof, ok := byName[strings.ToLower(req)]; ok {
			total += prof * 20
		} else {
			total -= missingSkillPenalty
		}
	}

	n := len(required)
	minPossible := -missingSkillPenalty * n
	maxPossible := 100 * n
	normalized := float64(total-minPossible) / float64(maxPossible-minPossible) * 100
	return clampScore(int(math.Round(normalized)))
}

// availabilityTierScore is a monotonic step function on weekly hours.
func availabilityTierScore(hoursPerWeek int) int {
	switch {
	case hoursPerWeek >= 40:
		return 100
	case hoursPerWeek >= 30:
		return 85
	case hoursPerWeek >= 20:
		return 70
	case hoursPerWeek >= 10:
		return 50
	default:
		return 25
	}
}

// bigFiveProjectScore favors high conscientiousness, low neuroticism,
// openness near the productive 70 band, and some agreeableness.
func bigFiveProjectScore(b BigFiveScores) float64 {
	c := float64(clampScore(b.Conscientiousness))
	n := float64(clampScore(b.Neuroticism))
	o := float64(clampScore(b.Openness))
	a := float64(clampScore(b.Agreeableness))

	opennessFit := 100 - math.Abs(o-70)
	if opennessFit < 0 {
		opennessFit = 0
	}

	return c*0.40 + (100-n)*0.25 + opennessFit*0.20 + a*0.15
}

var gradeProjectBonus = map[GradeExpectation]float64{
	GradeA:       100,
	GradeBPlus:   80,
	GradeB:       60,
	GradePassing: 40,
}

var deadlineProjectBonus = map[DeadlineStyle]float64{
	DeadlineEarly:      100,
	DeadlineOnTime:     85,
	DeadlineLastMinute: 40,
	DeadlinePressure:   55,
}

// workStyleProjectBonus rewards ambitious grade expectations and early or
// on-time deadline habits.
func workStyleProjectBonus(w WorkStyleAssessment) float64 {
	grade, ok := gradeProjectBonus[w.GradeExpectation]
	if !ok {
		grade = 50
	}
	deadline, ok := deadlineProjectBonus[w.DeadlineStyle]
	if !ok {
		deadline = 50
	}
	return (grade + deadline) / 2
}
