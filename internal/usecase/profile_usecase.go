package usecase

import (
	"context"
	"errors"
	"strings"

	"crewmatch/internal/domain/compat"
	"crewmatch/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrInvalidSkill         = errors.New("invalid skill")
	ErrInvalidAvailability  = errors.New("invalid availability")
	ErrInvalidQuizAnswer    = errors.New("invalid quiz answer")
	ErrOnboardingIncomplete = errors.New("onboarding incomplete")
)

type SkillInput struct {
	Name        string
	Proficiency int
}

type AvailabilityInput struct {
	HoursPerWeek int
	Timezone     string
}

type QuizInput struct {
	Personality compat.PersonalityAssessment
	WorkStyle   compat.WorkStyleAssessment
	Scheduling  compat.SchedulingAssessment
}

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (compat.FreelancerProfile, error)
	UpdateSkills(ctx context.Context, userID uuid.UUID, skills []SkillInput) (compat.FreelancerProfile, error)
	UpdateAvailability(ctx context.Context, userID uuid.UUID, in AvailabilityInput) (compat.FreelancerProfile, error)
	UpdatePersonality(ctx context.Context, userID uuid.UUID, answers []int) (compat.FreelancerProfile, error)
	SubmitQuiz(ctx context.Context, userID uuid.UUID, in QuizInput) (compat.FreelancerProfile, error)
	CompleteOnboarding(ctx context.Context, userID uuid.UUID) (compat.FreelancerProfile, error)
}

type Profile struct {
	profiles repository.ProfileRepository
}

func NewProfileUsecase(profiles repository.ProfileRepository) *Profile {
	return &Profile{profiles: profiles}
}

func (u *Profile) Get(ctx context.Context, userID uuid.UUID) (compat.FreelancerProfile, error) {
	if userID == uuid.Nil {
		return compat.FreelancerProfile{}, ErrUnauthorized
	}
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return compat.FreelancerProfile{}, ErrProfileNotFound
		}
		return compat.FreelancerProfile{}, ErrInternal
	}
	return p, nil
}

func (u *Profile) UpdateSkills(ctx context.Context, userID uuid.UUID, skills []SkillInput) (compat.FreelancerProfile, error) {
	entries := make([]compat.SkillEntry, 0, len(skills))
	seen := map[string]bool{}
	for _, s := range skills {
		name := strings.TrimSpace(s.Name)
		if name == "" || s.Proficiency < 1 || s.Proficiency > 5 {
			return compat.FreelancerProfile{}, ErrInvalidSkill
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, compat.SkillEntry{Name: name, Proficiency: s.Proficiency})
	}

	return u.mutate(ctx, userID, func(p *compat.FreelancerProfile) {
		p.Skills = entries
	})
}

func (u *Profile) UpdateAvailability(ctx context.Context, userID uuid.UUID, in AvailabilityInput) (compat.FreelancerProfile, error) {
	if in.HoursPerWeek < 0 || in.HoursPerWeek > 112 {
		return compat.FreelancerProfile{}, ErrInvalidAvailability
	}

	return u.mutate(ctx, userID, func(p *compat.FreelancerProfile) {
		p.Availability = compat.Availability{
			HoursPerWeek: in.HoursPerWeek,
			Timezone:     strings.TrimSpace(in.Timezone),
		}
	})
}

// UpdatePersonality stores the raw legacy questionnaire vector. Profiles
// that later submit the structured quiz keep both; the quiz wins during
// scoring.
func (u *Profile) UpdatePersonality(ctx context.Context, userID uuid.UUID, answers []int) (compat.FreelancerProfile, error) {
	for _, v := range answers {
		if v < 0 || v > 5 {
			return compat.FreelancerProfile{}, ErrInvalidQuizAnswer
		}
	}

	vec := make([]int, len(answers))
	copy(vec, answers)
	return u.mutate(ctx, userID, func(p *compat.FreelancerProfile) {
		p.LegacyPersonality = vec
	})
}

func (u *Profile) SubmitQuiz(ctx context.Context, userID uuid.UUID, in QuizInput) (compat.FreelancerProfile, error) {
	if err := validateQuiz(in); err != nil {
		return compat.FreelancerProfile{}, err
	}

	quiz := &compat.QuizResult{
		Personality: in.Personality,
		WorkStyle:   in.WorkStyle,
		Scheduling:  in.Scheduling,
		BigFive:     compat.BigFiveFromAssessment(in.Personality),
	}

	return u.mutate(ctx, userID, func(p *compat.FreelancerProfile) {
		p.Quiz = quiz
	})
}

func (u *Profile) CompleteOnboarding(ctx context.Context, userID uuid.UUID) (compat.FreelancerProfile, error) {
	if userID == uuid.Nil {
		return compat.FreelancerProfile{}, ErrUnauthorized
	}

	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return compat.FreelancerProfile{}, ErrProfileNotFound
		}
		return compat.FreelancerProfile{}, ErrInternal
	}

	if len(p.Skills) == 0 || p.Availability.HoursPerWeek == 0 {
		return compat.FreelancerProfile{}, ErrOnboardingIncomplete
	}

	p.OnboardingComplete = true
	if err := u.profiles.Upsert(ctx, p); err != nil {
		return compat.FreelancerProfile{}, ErrInternal
	}
	return p, nil
}

// mutate loads the profile (creating an empty one on first write), applies
// fn and persists the result.
func (u *Profile) mutate(ctx context.Context, userID uuid.UUID, fn func(*compat.FreelancerProfile)) (compat.FreelancerProfile, error) {
	if userID == uuid.Nil {
		return compat.FreelancerProfile{}, ErrUnauthorized
	}

	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return compat.FreelancerProfile{}, ErrInternal
		}
		p = compat.FreelancerProfile{UserID: userID}
	}

	fn(&p)
	if err := u.profiles.Upsert(ctx, p); err != nil {
		return compat.FreelancerProfile{}, ErrInternal
	}
	return p, nil
}

func validateQuiz(in QuizInput) error {
	answers := []int{
		in.Personality.Leadership, in.Personality.Traditionalism,
		in.Personality.Peacekeeper, in.Personality.Brainstormer,
		in.Personality.CalmUnderPressure, in.Personality.Listener,
		in.Personality.Adaptable, in.Personality.ControlNeed,
		in.Personality.Challenger,
	}
	for _, v := range answers {
		if v < 1 || v > 5 {
			return ErrInvalidQuizAnswer
		}
	}

	switch in.WorkStyle.GradeExpectation {
	case compat.GradeA, compat.GradeBPlus, compat.GradeB, compat.GradePassing:
	default:
		return ErrInvalidQuizAnswer
	}
	switch in.WorkStyle.DeadlineStyle {
	case compat.DeadlineEarly, compat.DeadlineOnTime, compat.DeadlineLastMinute, compat.DeadlinePressure:
	default:
		return ErrInvalidQuizAnswer
	}
	switch in.WorkStyle.VagueTaskResponse {
	case compat.VagueInitiative, compat.VaguePropose, compat.VagueWait, compat.VagueAskInstructor:
	default:
		return ErrInvalidQuizAnswer
	}
	switch in.WorkStyle.MissingWorkResponse {
	case compat.MissingDoIt, compat.MissingCheckIn, compat.MissingWait, compat.MissingAlert:
	default:
		return ErrInvalidQuizAnswer
	}
	switch in.WorkStyle.TeamRole {
	case compat.RoleLeader, compat.RoleWorkhorse, compat.RoleDiplomat, compat.RoleSpecialist:
	default:
		return ErrInvalidQuizAnswer
	}

	switch in.Scheduling.ResponseTime {
	case compat.RespWithinHours, compat.RespSameDay, compat.Resp24Hours, compat.RespFewDays:
	default:
		return ErrInvalidQuizAnswer
	}
	switch in.Scheduling.MeetingFormat {
	case compat.MeetInPerson, compat.MeetHybrid, compat.MeetVideo, compat.MeetAsync:
	default:
		return ErrInvalidQuizAnswer
	}
	switch in.Scheduling.Flexibility {
	case compat.FlexVery, compat.FlexSomewhat, compat.FlexNotAtAll:
	default:
		return ErrInvalidQuizAnswer
	}

	return nil
}
