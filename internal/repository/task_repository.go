package repository

import (
	"context"
	"errors"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/tasks"

	"github.com/google/uuid"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	CreateBatch(ctx context.Context, assignments []tasks.Assignment) error
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]tasks.Assignment, error)
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error
}

type PostgresTaskRepository struct {
	db database.DB
}

func NewPostgresTaskRepository(db database.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

func (r *PostgresTaskRepository) CreateBatch(ctx context.Context, assignments []tasks.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	for _, a := range assignments {
		_, err := tx.Exec(ctx,
			`INSERT INTO tasks (id, group_id, title, description, assigned_to)
			 VALUES ($1, $2, $3, $4, $5)`,
			a.ID, a.GroupID, a.Title, a.Description, a.AssignedTo,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresTaskRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]tasks.Assignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, group_id, title, description, assigned_to, completed
		 FROM tasks
		 WHERE group_id = $1
		 ORDER BY created_at ASC`,
		groupID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tasks.Assignment, 0)
	for rows.Next() {
		var a tasks.Assignment
		if err := rows.Scan(&a.ID, &a.GroupID, &a.Title, &a.Description, &a.AssignedTo, &a.Completed); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTaskRepository) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	n, err := r.db.Exec(ctx,
		`UPDATE tasks SET completed = $2 WHERE id = $1`,
		id, completed,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}
