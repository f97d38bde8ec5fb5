package repository

import (
	"context"
	"errors"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/group"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type GroupRepository interface {
	Create(ctx context.Context, g group.Group) error
	GetByID(ctx context.Context, id uuid.UUID) (group.Group, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) (group.Group, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]group.Group, error)
}

type PostgresGroupRepository struct {
	db database.DB
}

func NewPostgresGroupRepository(db database.DB) *PostgresGroupRepository {
	return &PostgresGroupRepository{db: db}
}

func (r *PostgresGroupRepository) Create(ctx context.Context, g group.Group) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO groups (id, project_id, name, member_ids)
		 VALUES ($1, $2, $3, $4::uuid[])`,
		g.ID, g.ProjectID, g.Name, uuidStrings(g.MemberIDs),
	)
	return err
}

func (r *PostgresGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (group.Group, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, project_id, name, member_ids, created_at
		 FROM groups
		 WHERE id = $1`,
		id,
	)
	return scanGroup(row)
}

func (r *PostgresGroupRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) (group.Group, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, project_id, name, member_ids, created_at
		 FROM groups
		 WHERE project_id = $1`,
		projectID,
	)
	return scanGroup(row)
}

func (r *PostgresGroupRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]group.Group, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, project_id, name, member_ids, created_at
		 FROM groups
		 WHERE $1 = ANY(member_ids)
		 ORDER BY created_at DESC`,
		memberID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]group.Group, 0)
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanGroup(row database.Row) (group.Group, error) {
	var (
		g       group.Group
		members []string
	)
	err := row.Scan(&g.ID, &g.ProjectID, &g.Name, &members, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return group.Group{}, group.ErrNotFound
		}
		return group.Group{}, err
	}

	g.MemberIDs = make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			return group.Group{}, err
		}
		g.MemberIDs = append(g.MemberIDs, id)
	}
	return g, nil
}
