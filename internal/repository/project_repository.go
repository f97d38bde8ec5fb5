package repository

import (
	"context"
	"encoding/json"
	"errors"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/project"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProjectRepository interface {
	Create(ctx context.Context, p project.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (project.Project, error)
	GetByJoinCode(ctx context.Context, code string) (project.Project, error)
	ListOpen(ctx context.Context, limit, offset int) ([]project.Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]project.Project, error)
	Update(ctx context.Context, p project.Project) error
	SetOpen(ctx context.Context, id uuid.UUID, open bool) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, owner_id, name, description, required_skills, team_size, metadata, join_code, is_open, created_at, updated_at`

func (r *PostgresProjectRepository) Create(ctx context.Context, p project.Project) error {
	meta, err := json.Marshal(p.Metadata)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO projects
			(id, owner_id, name, description, required_skills, team_size, metadata, join_code, is_open)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.OwnerID, p.Name, p.Description, p.RequiredSkills,
		p.TeamSize, meta, p.JoinCode, p.IsOpen,
	)
	return err
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	return scanProject(row)
}

func (r *PostgresProjectRepository) GetByJoinCode(ctx context.Context, code string) (project.Project, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE join_code = $1`, code)
	return scanProject(row)
}

func (r *PostgresProjectRepository) ListOpen(ctx context.Context, limit, offset int) ([]project.Project, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+`
		 FROM projects
		 WHERE is_open = TRUE
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func (r *PostgresProjectRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]project.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+`
		 FROM projects
		 WHERE owner_id = $1
		 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func (r *PostgresProjectRepository) Update(ctx context.Context, p project.Project) error {
	meta, err := json.Marshal(p.Metadata)
	if err != nil {
		return err
	}

	n, err := r.db.Exec(ctx,
		`UPDATE projects
		 SET name = $2, description = $3, required_skills = $4, team_size = $5,
		     metadata = $6, is_open = $7, updated_at = now()
		 WHERE id = $1`,
		p.ID, p.Name, p.Description, p.RequiredSkills, p.TeamSize, meta, p.IsOpen,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return project.ErrNotFound
	}
	return nil
}

func (r *PostgresProjectRepository) SetOpen(ctx context.Context, id uuid.UUID, open bool) error {
	n, err := r.db.Exec(ctx,
		`UPDATE projects SET is_open = $2, updated_at = now() WHERE id = $1`,
		id, open,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return project.ErrNotFound
	}
	return nil
}

func collectProjects(rows database.Rows) ([]project.Project, error) {
	out := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanProject(row database.Row) (project.Project, error) {
	var (
		p    project.Project
		meta []byte
	)
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.RequiredSkills,
		&p.TeamSize, &meta, &p.JoinCode, &p.IsOpen, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrNotFound
		}
		return project.Project{}, err
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &p.Metadata); err != nil {
			return project.Project{}, err
		}
	}
	return p, nil
}
