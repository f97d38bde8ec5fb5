package handler

import (
	"errors"

	"crewmatch/internal/delivery/http/dto"
	"crewmatch/internal/delivery/http/middleware"
	"crewmatch/internal/domain/compat"
	"crewmatch/internal/pkg/response"
	"crewmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/me/skills", h.UpdateSkills)
	r.Put("/me/availability", h.UpdateAvailability)
	r.Put("/me/personality", h.UpdatePersonality)
	r.Post("/me/quiz", h.SubmitQuiz)
	r.Post("/me/complete", h.CompleteOnboarding)
}

type skillItemRequest struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

type updateSkillsRequest struct {
	Skills []skillItemRequest `json:"skills"`
}

type updateAvailabilityRequest struct {
	HoursPerWeek int    `json:"hours_per_week"`
	Timezone     string `json:"timezone"`
}

type updatePersonalityRequest struct {
	Answers []int `json:"answers"`
}

type quizRequest struct {
	Personality struct {
		Leadership        int `json:"leadership"`
		Traditionalism    int `json:"traditionalism"`
		Peacekeeper       int `json:"peacekeeper"`
		Brainstormer      int `json:"brainstormer"`
		CalmUnderPressure int `json:"calm_under_pressure"`
		Listener          int `json:"listener"`
		Adaptable         int `json:"adaptable"`
		ControlNeed       int `json:"control_need"`
		Challenger        int `json:"challenger"`
	} `json:"personality"`
	WorkStyle struct {
		GradeExpectation    string `json:"grade_expectation"`
		DeadlineStyle       string `json:"deadline_style"`
		VagueTaskResponse   string `json:"vague_task_response"`
		MissingWorkResponse string `json:"missing_work_response"`
		TeamRole            string `json:"team_role"`
	} `json:"work_style"`
	Scheduling struct {
		ResponseTime  string              `json:"response_time"`
		MeetingFormat string              `json:"meeting_format"`
		Flexibility   string              `json:"flexibility"`
		Commitments   scheduleCommitments `json:"commitments"`
		Grid          availabilityGrid    `json:"grid"`
	} `json:"scheduling"`
}

type scheduleCommitments struct {
	Works20PlusHours     bool `json:"works_20_plus_hours"`
	FamilyCaregiver      bool `json:"family_caregiver"`
	IntensiveSportsClubs bool `json:"intensive_sports_clubs"`
	LongCommute          bool `json:"long_commute"`
	ScheduleClear        bool `json:"schedule_clear"`
}

type daySlots struct {
	Morning   bool `json:"morning"`
	Afternoon bool `json:"afternoon"`
	Evening   bool `json:"evening"`
}

type availabilityGrid struct {
	Monday    daySlots `json:"monday"`
	Tuesday   daySlots `json:"tuesday"`
	Wednesday daySlots `json:"wednesday"`
	Thursday  daySlots `json:"thursday"`
	Friday    daySlots `json:"friday"`
	Saturday  daySlots `json:"saturday"`
	Sunday    daySlots `json:"sunday"`
}

func (h *ProfileHandler) GetMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) UpdateSkills(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := make([]usecase.SkillInput, 0, len(req.Skills))
	for _, s := range req.Skills {
		in = append(in, usecase.SkillInput{Name: s.Name, Proficiency: s.Proficiency})
	}

	p, err := h.uc.UpdateSkills(c.Context(), userID, in)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) UpdateAvailability(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateAvailabilityRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.UpdateAvailability(c.Context(), userID, usecase.AvailabilityInput{
		HoursPerWeek: req.HoursPerWeek,
		Timezone:     req.Timezone,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) UpdatePersonality(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updatePersonalityRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.UpdatePersonality(c.Context(), userID, req.Answers)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) SubmitQuiz(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req quizRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.SubmitQuiz(c.Context(), userID, quizInputFromRequest(req))
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *ProfileHandler) CompleteOnboarding(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.CompleteOnboarding(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func quizInputFromRequest(req quizRequest) usecase.QuizInput {
	grid := req.Scheduling.Grid
	toDay := func(d daySlots) compat.DaySlots {
		return compat.DaySlots{Morning: d.Morning, Afternoon: d.Afternoon, Evening: d.Evening}
	}

	return usecase.QuizInput{
		Personality: compat.PersonalityAssessment{
			Leadership:        req.Personality.Leadership,
			Traditionalism:    req.Personality.Traditionalism,
			Peacekeeper:       req.Personality.Peacekeeper,
			Brainstormer:      req.Personality.Brainstormer,
			CalmUnderPressure: req.Personality.CalmUnderPressure,
			Listener:          req.Personality.Listener,
			Adaptable:         req.Personality.Adaptable,
			ControlNeed:       req.Personality.ControlNeed,
			Challenger:        req.Personality.Challenger,
		},
		WorkStyle: compat.WorkStyleAssessment{
			GradeExpectation:    compat.GradeExpectation(req.WorkStyle.GradeExpectation),
			DeadlineStyle:       compat.DeadlineStyle(req.WorkStyle.DeadlineStyle),
			VagueTaskResponse:   compat.VagueTaskResponse(req.WorkStyle.VagueTaskResponse),
			MissingWorkResponse: compat.MissingWorkResponse(req.WorkStyle.MissingWorkResponse),
			TeamRole:            compat.TeamRole(req.WorkStyle.TeamRole),
		},
		Scheduling: compat.SchedulingAssessment{
			ResponseTime:  compat.ResponseTime(req.Scheduling.ResponseTime),
			MeetingFormat: compat.MeetingFormat(req.Scheduling.MeetingFormat),
			Flexibility:   compat.ScheduleFlexibility(req.Scheduling.Flexibility),
			Commitments: compat.ScheduleCommitments{
				Works20PlusHours:     req.Scheduling.Commitments.Works20PlusHours,
				FamilyCaregiver:      req.Scheduling.Commitments.FamilyCaregiver,
				IntensiveSportsClubs: req.Scheduling.Commitments.IntensiveSportsClubs,
				LongCommute:          req.Scheduling.Commitments.LongCommute,
				ScheduleClear:        req.Scheduling.Commitments.ScheduleClear,
			},
			Grid: compat.AvailabilityGrid{
				Monday:    toDay(grid.Monday),
				Tuesday:   toDay(grid.Tuesday),
				Wednesday: toDay(grid.Wednesday),
				Thursday:  toDay(grid.Thursday),
				Friday:    toDay(grid.Friday),
				Saturday:  toDay(grid.Saturday),
				Sunday:    toDay(grid.Sunday),
			},
		},
	}
}

func mapProfileUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidSkill),
		errors.Is(err, usecase.ErrInvalidAvailability),
		errors.Is(err, usecase.ErrInvalidQuizAnswer):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrOnboardingIncomplete):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Onboarding incomplete", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
