package dto

import (
	"crewmatch/internal/domain/compat"

	"github.com/google/uuid"
)

type SkillResponse struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

type BigFiveResponse struct {
	Extraversion      int `json:"extraversion"`
	Openness          int `json:"openness"`
	Agreeableness     int `json:"agreeableness"`
	Conscientiousness int `json:"conscientiousness"`
	Neuroticism       int `json:"neuroticism"`
}

type ProfileResponse struct {
	UserID             uuid.UUID        `json:"user_id"`
	Skills             []SkillResponse  `json:"skills"`
	HoursPerWeek       int              `json:"hours_per_week"`
	Timezone           string           `json:"timezone"`
	HasQuiz            bool             `json:"has_quiz"`
	BigFive            *BigFiveResponse `json:"big_five,omitempty"`
	OnboardingComplete bool             `json:"onboarding_complete"`
}

func NewProfileResponse(p compat.FreelancerProfile) ProfileResponse {
	out := ProfileResponse{
		UserID:             p.UserID,
		Skills:             make([]SkillResponse, 0, len(p.Skills)),
		HoursPerWeek:       p.Availability.HoursPerWeek,
		Timezone:           p.Availability.Timezone,
		HasQuiz:            p.Quiz != nil,
		OnboardingComplete: p.OnboardingComplete,
	}
	for _, s := range p.Skills {
		out.Skills = append(out.Skills, SkillResponse{Name: s.Name, Proficiency: s.Proficiency})
	}
	if p.Quiz != nil {
		bf := p.Quiz.BigFive
		out.BigFive = &BigFiveResponse{
			Extraversion:      bf.Extraversion,
			Openness:          bf.Openness,
			Agreeableness:     bf.Agreeableness,
			Conscientiousness: bf.Conscientiousness,
			Neuroticism:       bf.Neuroticism,
		}
	}
	return out
}
