package compat

import "math"

// BigFiveFromAssessment derives normalized Big Five scores from the nine
// Likert quiz answers. Each trait averages two to four source items, some
// reversed (6 - item), then rescales the 1-5 average to 0-100. Every
// trait is clamped independently. Higher means more of the trait, except
// neuroticism where higher means less stable.
func BigFiveFromAssessment(p PersonalityAssessment) BigFiveScores {
	lead := likert(p.Leadership)
	trad := likert(p.Traditionalism)
	peace := likert(p.Peacekeeper)
	brain := likert(p.Brainstormer)
	calm := likert(p.CalmUnderPressure)
	listen := likert(p.Listener)
	adapt := likert(p.Adaptable)
	control := likert(p.ControlNeed)
	chal := likert(p.Challenger)

	inv := func(v int) int { return 6 - v }

	return BigFiveScores{
		Extraversion:      traitScale(lead+brain+inv(listen), 3),
		Openness:          traitScale(inv(trad)+brain+adapt, 3),
		Agreeableness:     traitScale(peace+listen+inv(chal), 3),
		Conscientiousness: traitScale(lead+trad+calm+chal, 4),
		Neuroticism:       traitScale(control+inv(calm)+inv(adapt), 3),
	}
}

// traitScale maps the average of n 1-5 items onto 0-100.
func traitScale(sum, n int) int {
	avg := float64(sum) / float64(n)
	return clampScore(int(math.Round((avg - 1) * 25)))
}
