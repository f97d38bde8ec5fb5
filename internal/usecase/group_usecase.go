package usecase

import (
	"context"
	"errors"
	"strings"

	"crewmatch/internal/domain/application"
	"crewmatch/internal/domain/group"
	"crewmatch/internal/domain/project"
	"crewmatch/internal/domain/tasks"
	"crewmatch/internal/repository"
	"crewmatch/internal/ws"

	"github.com/google/uuid"
)

var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrNotGroupMember = errors.New("not a group member")
	ErrInvalidTeam    = errors.New("invalid team")
	ErrTaskNotFound   = errors.New("task not found")
)

type FormTeamInput struct {
	ProjectID uuid.UUID
	Name      string
	MemberIDs []uuid.UUID
}

type GroupUsecase interface {
	FormTeam(ctx context.Context, ownerID uuid.UUID, in FormTeamInput) (group.Group, []tasks.Assignment, error)
	Get(ctx context.Context, userID, groupID uuid.UUID) (group.Group, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]group.Group, error)
	ListTasks(ctx context.Context, userID, groupID uuid.UUID) ([]tasks.Assignment, error)
	CompleteTask(ctx context.Context, userID, groupID, taskID uuid.UUID) error
}

// GroupService forms teams and owns everything downstream of formation:
// closing the project, accepting the chosen applications, generating and
// assigning starter tasks, and announcing the group over the hub.
type GroupService struct {
	groups       repository.GroupRepository
	projects     repository.ProjectRepository
	applications repository.ApplicationRepository
	profiles     repository.ProfileRepository
	tasks        repository.TaskRepository
	cache        MatchCache
}

func NewGroupUsecase(
	groups repository.GroupRepository,
	projects repository.ProjectRepository,
	applications repository.ApplicationRepository,
	profiles repository.ProfileRepository,
	taskRepo repository.TaskRepository,
	cache MatchCache,
) *GroupService {
	return &GroupService{
		groups:       groups,
		projects:     projects,
		applications: applications,
		profiles:     profiles,
		tasks:        taskRepo,
		cache:        cache,
	}
}

func (u *GroupService) FormTeam(ctx context.Context, ownerID uuid.UUID, in FormTeamInput) (group.Group, []tasks.Assignment, error) {
	if ownerID == uuid.Nil {
		return group.Group{}, nil, ErrUnauthorized
	}
	if len(in.MemberIDs) == 0 {
		return group.Group{}, nil, ErrInvalidTeam
	}

	p, err := u.projects.GetByID(ctx, in.ProjectID)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return group.Group{}, nil, ErrProjectNotFound
		}
		return group.Group{}, nil, ErrInternal
	}
	if p.OwnerID != ownerID {
		return group.Group{}, nil, ErrNotProjectOwner
	}
	if !p.IsOpen {
		return group.Group{}, nil, ErrProjectClosed
	}
	if len(in.MemberIDs) > p.TeamSize {
		return group.Group{}, nil, ErrInvalidTeam
	}

	members := dedupeIDs(in.MemberIDs)
	if len(members) != len(in.MemberIDs) {
		return group.Group{}, nil, ErrInvalidTeam
	}

	// Every member must be a pending applicant of this project.
	pending, err := u.applications.ListPendingFreelancerIDs(ctx, in.ProjectID)
	if err != nil {
		return group.Group{}, nil, ErrInternal
	}
	pendingSet := make(map[uuid.UUID]bool, len(pending))
	for _, id := range pending {
		pendingSet[id] = true
	}
	for _, id := range members {
		if !pendingSet[id] {
			return group.Group{}, nil, ErrInvalidTeam
		}
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = p.Name + " Team"
	}

	g := group.Group{
		ID:        uuid.New(),
		ProjectID: in.ProjectID,
		Name:      name,
		MemberIDs: members,
	}
	if err := u.groups.Create(ctx, g); err != nil {
		return group.Group{}, nil, ErrInternal
	}

	for _, id := range members {
		a, err := u.applications.GetByProjectAndFreelancer(ctx, in.ProjectID, id)
		if err != nil {
			continue
		}
		_ = u.applications.UpdateStatus(ctx, a.ID, application.StatusAccepted)
	}

	if err := u.projects.SetOpen(ctx, in.ProjectID, false); err != nil {
		return group.Group{}, nil, ErrInternal
	}

	assignments := u.distributeTasks(ctx, g, p)

	if u.cache != nil {
		_ = u.cache.InvalidateProject(ctx, in.ProjectID.String())
	}
	ws.NotifyTeamFormed(g.ID, g.ProjectID, g.MemberIDs)

	return g, assignments, nil
}

func (u *GroupService) Get(ctx context.Context, userID, groupID uuid.UUID) (group.Group, error) {
	g, err := u.memberGroup(ctx, userID, groupID)
	if err != nil {
		return group.Group{}, err
	}
	return g, nil
}

func (u *GroupService) ListMine(ctx context.Context, userID uuid.UUID) ([]group.Group, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.groups.ListByMember(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *GroupService) ListTasks(ctx context.Context, userID, groupID uuid.UUID) ([]tasks.Assignment, error) {
	if _, err := u.memberGroup(ctx, userID, groupID); err != nil {
		return nil, err
	}

	out, err := u.tasks.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *GroupService) CompleteTask(ctx context.Context, userID, groupID, taskID uuid.UUID) error {
	if _, err := u.memberGroup(ctx, userID, groupID); err != nil {
		return err
	}

	if err := u.tasks.SetCompleted(ctx, taskID, true); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return ErrInternal
	}
	return nil
}

// memberGroup loads the group and verifies the caller belongs to it. The
// project owner is also allowed through.
func (u *GroupService) memberGroup(ctx context.Context, userID, groupID uuid.UUID) (group.Group, error) {
	if userID == uuid.Nil {
		return group.Group{}, ErrUnauthorized
	}

	g, err := u.groups.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, group.ErrNotFound) {
			return group.Group{}, ErrGroupNotFound
		}
		return group.Group{}, ErrInternal
	}

	if g.HasMember(userID) {
		return g, nil
	}

	p, err := u.projects.GetByID(ctx, g.ProjectID)
	if err == nil && p.OwnerID == userID {
		return g, nil
	}
	return group.Group{}, ErrNotGroupMember
}

// distributeTasks is best effort: a persistence failure here leaves the
// group usable and the tasks regenerable, so it never fails the formation.
func (u *GroupService) distributeTasks(ctx context.Context, g group.Group, p project.Project) []tasks.Assignment {
	profiles, err := u.profiles.GetByUserIDs(ctx, g.MemberIDs)
	if err != nil {
		profiles = nil
	}

	assignments := tasks.Distribute(g.ID, g.MemberIDs, p.RequiredSkills, profiles)
	if len(assignments) == 0 {
		return nil
	}
	if err := u.tasks.CreateBatch(ctx, assignments); err != nil {
		return nil
	}
	return assignments
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
