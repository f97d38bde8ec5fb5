package usecase

import (
	"context"
	"errors"
	"testing"

	"crewmatch/internal/domain/application"
	"crewmatch/internal/domain/compat"
	"crewmatch/internal/domain/project"
	"crewmatch/internal/domain/tasks"

	"github.com/google/uuid"
)

type memoryTaskRepo struct {
	created []tasks.Assignment
}

func (m *memoryTaskRepo) CreateBatch(_ context.Context, assignments []tasks.Assignment) error {
	m.created = append(m.created, assignments...)
	return nil
}
func (m *memoryTaskRepo) ListByGroup(_ context.Context, groupID uuid.UUID) ([]tasks.Assignment, error) {
	out := make([]tasks.Assignment, 0)
	for _, a := range m.created {
		if a.GroupID == groupID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (m *memoryTaskRepo) SetCompleted(_ context.Context, id uuid.UUID, completed bool) error {
	for i, a := range m.created {
		if a.ID == id {
			m.created[i].Completed = completed
			return nil
		}
	}
	return errors.New("missing")
}

func groupFixture() (*GroupService, *mockApplicationRepo, *mockProjectRepo, *memoryTaskRepo, uuid.UUID, uuid.UUID, []uuid.UUID) {
	ownerID := uuid.New()
	projectID := uuid.New()
	members := []uuid.UUID{uuid.New(), uuid.New()}

	projects := &mockProjectRepo{projects: map[uuid.UUID]project.Project{
		projectID: {
			ID:             projectID,
			OwnerID:        ownerID,
			Name:           "Storefront",
			RequiredSkills: []string{"Go", "React"},
			TeamSize:       2,
			IsOpen:         true,
		},
	}}

	apps := &mockApplicationRepo{
		pending: map[uuid.UUID][]uuid.UUID{projectID: members},
		apps:    map[uuid.UUID]application.Application{},
	}
	for _, id := range members {
		a := application.Application{ID: uuid.New(), ProjectID: projectID, FreelancerID: id, Status: application.StatusPending}
		apps.apps[a.ID] = a
	}

	profiles := map[uuid.UUID]compat.FreelancerProfile{}
	for i, id := range members {
		profiles[id] = compat.FreelancerProfile{
			UserID:            id,
			Skills:            []compat.SkillEntry{{Name: "Go", Proficiency: 3 + i}},
			Availability:      compat.Availability{HoursPerWeek: 35},
			LegacyPersonality: []int{4, 3, 4, 3, 4, 3, 4, 3, 4, 3, 4, 3},
		}
	}

	taskRepo := &memoryTaskRepo{}
	uc := NewGroupUsecase(&mockGroupRepo{}, projects, apps, mockProfileRepo{profiles: profiles}, taskRepo, nil)
	return uc, apps, projects, taskRepo, ownerID, projectID, members
}

func TestGroup_FormTeam_ClosesProjectAndAssignsTasks(t *testing.T) {
	uc, apps, projects, taskRepo, ownerID, projectID, members := groupFixture()

	g, assignments, err := uc.FormTeam(context.Background(), ownerID, FormTeamInput{
		ProjectID: projectID,
		MemberIDs: members,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(g.MemberIDs) != 2 {
		t.Fatalf("expected 2 members, got %d", len(g.MemberIDs))
	}
	if g.Name != "Storefront Team" {
		t.Fatalf("default name not applied: %q", g.Name)
	}

	p, _ := projects.GetByID(context.Background(), projectID)
	if p.IsOpen {
		t.Fatalf("project should be closed after formation")
	}

	for _, a := range apps.apps {
		if a.Status != application.StatusAccepted {
			t.Fatalf("application %s not accepted: %s", a.ID, a.Status)
		}
	}

	if len(assignments) == 0 || len(taskRepo.created) != len(assignments) {
		t.Fatalf("tasks not generated and persisted: %d vs %d", len(assignments), len(taskRepo.created))
	}
	assigned := 0
	for _, a := range assignments {
		if a.AssignedTo != nil {
			assigned++
		}
	}
	if assigned == 0 {
		t.Fatalf("no task was assigned to a member")
	}
}

func TestGroup_FormTeam_RejectsNonApplicant(t *testing.T) {
	uc, _, _, _, ownerID, projectID, members := groupFixture()

	_, _, err := uc.FormTeam(context.Background(), ownerID, FormTeamInput{
		ProjectID: projectID,
		MemberIDs: append(members[:1], uuid.New()),
	})
	if !errors.Is(err, ErrInvalidTeam) {
		t.Fatalf("expected ErrInvalidTeam, got %v", err)
	}
}

func TestGroup_FormTeam_RejectsOversizedTeam(t *testing.T) {
	uc, apps, _, _, ownerID, projectID, members := groupFixture()

	extra := uuid.New()
	apps.pending[projectID] = append(apps.pending[projectID], extra)
	a := application.Application{ID: uuid.New(), ProjectID: projectID, FreelancerID: extra, Status: application.StatusPending}
	apps.apps[a.ID] = a

	_, _, err := uc.FormTeam(context.Background(), ownerID, FormTeamInput{
		ProjectID: projectID,
		MemberIDs: append(append([]uuid.UUID{}, members...), extra),
	})
	if !errors.Is(err, ErrInvalidTeam) {
		t.Fatalf("expected ErrInvalidTeam for oversized team, got %v", err)
	}
}

func TestGroup_FormTeam_SecondFormationFails(t *testing.T) {
	uc, _, _, _, ownerID, projectID, members := groupFixture()

	if _, _, err := uc.FormTeam(context.Background(), ownerID, FormTeamInput{ProjectID: projectID, MemberIDs: members}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, _, err := uc.FormTeam(context.Background(), ownerID, FormTeamInput{ProjectID: projectID, MemberIDs: members}); !errors.Is(err, ErrProjectClosed) {
		t.Fatalf("expected ErrProjectClosed, got %v", err)
	}
}
