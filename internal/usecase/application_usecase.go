package usecase

import (
	"context"
	"errors"

	"crewmatch/internal/domain/application"
	"crewmatch/internal/domain/project"
	"crewmatch/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied")
	ErrProjectClosed       = errors.New("project closed")
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, freelancerID, projectID uuid.UUID) (application.Application, error)
	Withdraw(ctx context.Context, freelancerID, projectID uuid.UUID) error
	ListForProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]application.Application, error)
}

type ApplicationService struct {
	applications repository.ApplicationRepository
	projects     repository.ProjectRepository
	cache        MatchCache
}

func NewApplicationUsecase(applications repository.ApplicationRepository, projects repository.ProjectRepository, cache MatchCache) *ApplicationService {
	return &ApplicationService{applications: applications, projects: projects, cache: cache}
}

func (u *ApplicationService) Apply(ctx context.Context, freelancerID, projectID uuid.UUID) (application.Application, error) {
	if freelancerID == uuid.Nil {
		return application.Application{}, ErrUnauthorized
	}

	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return application.Application{}, ErrProjectNotFound
		}
		return application.Application{}, ErrInternal
	}
	if !p.IsOpen {
		return application.Application{}, ErrProjectClosed
	}

	existing, err := u.applications.GetByProjectAndFreelancer(ctx, projectID, freelancerID)
	if err == nil && existing.Status != application.StatusWithdrawn {
		return application.Application{}, ErrAlreadyApplied
	}
	if err != nil && !errors.Is(err, application.ErrNotFound) {
		return application.Application{}, ErrInternal
	}

	// A withdrawn application is revived instead of duplicated.
	if err == nil {
		if err := u.applications.UpdateStatus(ctx, existing.ID, application.StatusPending); err != nil {
			return application.Application{}, ErrInternal
		}
		existing.Status = application.StatusPending
		u.invalidate(ctx, projectID)
		return existing, nil
	}

	a := application.Application{
		ID:           uuid.New(),
		ProjectID:    projectID,
		FreelancerID: freelancerID,
		Status:       application.StatusPending,
	}
	if err := u.applications.Create(ctx, a); err != nil {
		return application.Application{}, ErrInternal
	}

	u.invalidate(ctx, projectID)
	return a, nil
}

func (u *ApplicationService) Withdraw(ctx context.Context, freelancerID, projectID uuid.UUID) error {
	if freelancerID == uuid.Nil {
		return ErrUnauthorized
	}

	a, err := u.applications.GetByProjectAndFreelancer(ctx, projectID, freelancerID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ErrApplicationNotFound
		}
		return ErrInternal
	}

	if err := u.applications.UpdateStatus(ctx, a.ID, application.StatusWithdrawn); err != nil {
		return ErrInternal
	}

	u.invalidate(ctx, projectID)
	return nil
}

func (u *ApplicationService) ListForProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]application.Application, error) {
	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, ErrInternal
	}
	if p.OwnerID != ownerID {
		return nil, ErrNotProjectOwner
	}

	out, err := u.applications.ListByProject(ctx, projectID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// invalidate drops cached rankings when the candidate pool changes. Cache
// failures never surface; the next ranking just recomputes.
func (u *ApplicationService) invalidate(ctx context.Context, projectID uuid.UUID) {
	if u.cache == nil {
		return
	}
	_ = u.cache.InvalidateProject(ctx, projectID.String())
}
