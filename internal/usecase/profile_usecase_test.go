package usecase

import (
	"context"
	"errors"
	"testing"

	"crewmatch/internal/domain/compat"
	"crewmatch/internal/repository"

	"github.com/google/uuid"
)

type storingProfileRepo struct {
	stored map[uuid.UUID]compat.FreelancerProfile
}

func (m *storingProfileRepo) Upsert(_ context.Context, p compat.FreelancerProfile) error {
	if m.stored == nil {
		m.stored = map[uuid.UUID]compat.FreelancerProfile{}
	}
	m.stored[p.UserID] = p
	return nil
}
func (m *storingProfileRepo) GetByUserID(_ context.Context, id uuid.UUID) (compat.FreelancerProfile, error) {
	p, ok := m.stored[id]
	if !ok {
		return compat.FreelancerProfile{}, repository.ErrProfileNotFound
	}
	return p, nil
}
func (m *storingProfileRepo) GetByUserIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]compat.FreelancerProfile, error) {
	out := map[uuid.UUID]compat.FreelancerProfile{}
	for _, id := range ids {
		if p, ok := m.stored[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}
func (m *storingProfileRepo) SetOnboardingComplete(_ context.Context, id uuid.UUID) error {
	p, ok := m.stored[id]
	if !ok {
		return repository.ErrProfileNotFound
	}
	p.OnboardingComplete = true
	m.stored[id] = p
	return nil
}

func validQuizInput() QuizInput {
	return QuizInput{
		Personality: compat.PersonalityAssessment{
			Leadership: 4, Traditionalism: 2, Peacekeeper: 3,
			Brainstormer: 5, CalmUnderPressure: 3, Listener: 4,
			Adaptable: 4, ControlNeed: 2, Challenger: 3,
		},
		WorkStyle: compat.WorkStyleAssessment{
			GradeExpectation:    compat.GradeA,
			DeadlineStyle:       compat.DeadlineEarly,
			VagueTaskResponse:   compat.VaguePropose,
			MissingWorkResponse: compat.MissingCheckIn,
			TeamRole:            compat.RoleDiplomat,
		},
		Scheduling: compat.SchedulingAssessment{
			ResponseTime:  compat.RespSameDay,
			MeetingFormat: compat.MeetVideo,
			Flexibility:   compat.FlexSomewhat,
		},
	}
}

func TestProfile_UpdateSkills_RejectsInvalidProficiency(t *testing.T) {
	uc := NewProfileUsecase(&storingProfileRepo{})

	_, err := uc.UpdateSkills(context.Background(), uuid.New(), []SkillInput{{Name: "Go", Proficiency: 6}})
	if !errors.Is(err, ErrInvalidSkill) {
		t.Fatalf("expected ErrInvalidSkill, got %v", err)
	}
}

func TestProfile_UpdateSkills_DedupesCaseInsensitive(t *testing.T) {
	uc := NewProfileUsecase(&storingProfileRepo{})
	userID := uuid.New()

	p, err := uc.UpdateSkills(context.Background(), userID, []SkillInput{
		{Name: "Go", Proficiency: 4},
		{Name: "go", Proficiency: 2},
		{Name: "SQL", Proficiency: 3},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(p.Skills) != 2 {
		t.Fatalf("expected 2 skills after dedupe, got %d", len(p.Skills))
	}
	if p.Skills[0].Name != "Go" || p.Skills[0].Proficiency != 4 {
		t.Fatalf("first entry should win: %+v", p.Skills[0])
	}
}

func TestProfile_SubmitQuiz_DerivesBigFive(t *testing.T) {
	repo := &storingProfileRepo{}
	uc := NewProfileUsecase(repo)
	userID := uuid.New()

	in := validQuizInput()
	p, err := uc.SubmitQuiz(context.Background(), userID, in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Quiz == nil {
		t.Fatalf("quiz not stored")
	}

	want := compat.BigFiveFromAssessment(in.Personality)
	if p.Quiz.BigFive != want {
		t.Fatalf("derived scores %+v, want %+v", p.Quiz.BigFive, want)
	}

	stored := repo.stored[userID]
	if stored.Quiz == nil || stored.Quiz.BigFive != want {
		t.Fatalf("persisted profile missing derived scores")
	}
}

func TestProfile_SubmitQuiz_RejectsBadEnum(t *testing.T) {
	uc := NewProfileUsecase(&storingProfileRepo{})

	in := validQuizInput()
	in.WorkStyle.TeamRole = "captain"
	if _, err := uc.SubmitQuiz(context.Background(), uuid.New(), in); !errors.Is(err, ErrInvalidQuizAnswer) {
		t.Fatalf("expected ErrInvalidQuizAnswer, got %v", err)
	}
}

func TestProfile_CompleteOnboarding_RequiresSkillsAndAvailability(t *testing.T) {
	uc := NewProfileUsecase(&storingProfileRepo{})
	userID := uuid.New()

	if _, err := uc.UpdateSkills(context.Background(), userID, []SkillInput{{Name: "Go", Proficiency: 3}}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.CompleteOnboarding(context.Background(), userID); !errors.Is(err, ErrOnboardingIncomplete) {
		t.Fatalf("expected ErrOnboardingIncomplete, got %v", err)
	}

	if _, err := uc.UpdateAvailability(context.Background(), userID, AvailabilityInput{HoursPerWeek: 25, Timezone: "UTC"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	p, err := uc.CompleteOnboarding(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !p.OnboardingComplete {
		t.Fatalf("onboarding flag not set")
	}
}
