package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"strings"

	"crewmatch/internal/domain/project"
	"crewmatch/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidProject  = errors.New("invalid project")
	ErrNotProjectOwner = errors.New("not project owner")
)

type ProjectInput struct {
	Name           string
	Description    string
	RequiredSkills []string
	TeamSize       int
	Metadata       project.Metadata
}

type ProjectUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, in ProjectInput) (project.Project, error)
	Get(ctx context.Context, id uuid.UUID) (project.Project, error)
	GetByJoinCode(ctx context.Context, code string) (project.Project, error)
	ListOpen(ctx context.Context, limit, offset int) ([]project.Project, error)
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]project.Project, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, in ProjectInput) (project.Project, error)
}

type ProjectService struct {
	projects repository.ProjectRepository
}

func NewProjectUsecase(projects repository.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

func (u *ProjectService) Create(ctx context.Context, ownerID uuid.UUID, in ProjectInput) (project.Project, error) {
	if ownerID == uuid.Nil {
		return project.Project{}, ErrUnauthorized
	}
	if err := validateProjectInput(in); err != nil {
		return project.Project{}, err
	}

	p := project.Project{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Name:           strings.TrimSpace(in.Name),
		Description:    strings.TrimSpace(in.Description),
		RequiredSkills: normalizeSkillNames(in.RequiredSkills),
		TeamSize:       in.TeamSize,
		Metadata:       in.Metadata,
		JoinCode:       newJoinCode(),
		IsOpen:         true,
	}

	if err := u.projects.Create(ctx, p); err != nil {
		return project.Project{}, ErrInternal
	}
	return p, nil
}

func (u *ProjectService) Get(ctx context.Context, id uuid.UUID) (project.Project, error) {
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, ErrInternal
	}
	return p, nil
}

func (u *ProjectService) GetByJoinCode(ctx context.Context, code string) (project.Project, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return project.Project{}, ErrProjectNotFound
	}
	p, err := u.projects.GetByJoinCode(ctx, code)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, ErrInternal
	}
	return p, nil
}

func (u *ProjectService) ListOpen(ctx context.Context, limit, offset int) ([]project.Project, error) {
	out, err := u.projects.ListOpen(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *ProjectService) ListMine(ctx context.Context, ownerID uuid.UUID) ([]project.Project, error) {
	if ownerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.projects.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *ProjectService) Update(ctx context.Context, ownerID, id uuid.UUID, in ProjectInput) (project.Project, error) {
	if err := validateProjectInput(in); err != nil {
		return project.Project{}, err
	}

	p, err := u.Get(ctx, id)
	if err != nil {
		return project.Project{}, err
	}
	if p.OwnerID != ownerID {
		return project.Project{}, ErrNotProjectOwner
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Description = strings.TrimSpace(in.Description)
	p.RequiredSkills = normalizeSkillNames(in.RequiredSkills)
	p.TeamSize = in.TeamSize
	p.Metadata = in.Metadata

	if err := u.projects.Update(ctx, p); err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, ErrInternal
	}
	return p, nil
}

func validateProjectInput(in ProjectInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidProject
	}
	if in.TeamSize < 1 || in.TeamSize > 20 {
		return ErrInvalidProject
	}
	return nil
}

func normalizeSkillNames(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := map[string]bool{}
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

const joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func newJoinCode() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return strings.ToUpper(uuid.NewString()[:6])
	}
	for i := range b {
		b[i] = joinCodeAlphabet[int(b[i])%len(joinCodeAlphabet)]
	}
	return string(b)
}
