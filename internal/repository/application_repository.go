package repository

import (
	"context"
	"errors"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) error
	GetByProjectAndFreelancer(ctx context.Context, projectID, freelancerID uuid.UUID) (application.Application, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]application.Application, error)
	ListPendingFreelancerIDs(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, project_id, freelancer_id, status)
		 VALUES ($1, $2, $3, $4)`,
		a.ID, a.ProjectID, a.FreelancerID, a.Status,
	)
	return err
}

func (r *PostgresApplicationRepository) GetByProjectAndFreelancer(ctx context.Context, projectID, freelancerID uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, project_id, freelancer_id, status, created_at, updated_at
		 FROM applications
		 WHERE project_id = $1 AND freelancer_id = $2`,
		projectID, freelancerID,
	)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, project_id, freelancer_id, status, created_at, updated_at
		 FROM applications
		 WHERE project_id = $1
		 ORDER BY created_at ASC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPendingFreelancerIDs returns the candidate pool a ranking runs over.
func (r *PostgresApplicationRepository) ListPendingFreelancerIDs(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT freelancer_id
		 FROM applications
		 WHERE project_id = $1 AND status = $2
		 ORDER BY created_at ASC`,
		projectID, application.StatusPending,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	err := row.Scan(&a.ID, &a.ProjectID, &a.FreelancerID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}
