package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = `id, title, COALESCE(details, ''), status, priority, due_date, created_at, org_id`

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.Title, &t.Details, &t.Status, &t.Priority, &t.DueDate, &t.CreatedAt, &t.OrgID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) FindAllByOrg(ctx context.Context, orgID int64) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE org_id = $1`,
		orgID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

// FindOne returns (nil, nil) when the task does not exist.
func (r *TaskRepository) FindOne(ctx context.Context, id int64) (*domain.Task, error) {
	t, err := scanTask(r.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

func (r *TaskRepository) Create(ctx context.Context, data domain.NewTask) (*domain.Task, error) {
	t, err := scanTask(r.db.QueryRow(ctx,
		`INSERT INTO tasks (title, details, status, priority, due_date, org_id)
		 VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6)
		 RETURNING `+taskColumns,
		data.Title, data.Details, data.Status, data.Priority, data.DueDate, data.OrgID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

// Update applies only the supplied patch fields. org_id and created_at are
// never part of the SET list. An empty patch falls back to a plain read so
// a no-op update still reports the current row.
func (r *TaskRepository) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	var sets []string
	var args []any

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Details != nil {
		// same write path as Create: empty details are stored as NULL
		args = append(args, *patch.Details)
		sets = append(sets, fmt.Sprintf("details = NULLIF($%d, '')", len(args)))
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Priority != nil {
		add("priority", *patch.Priority)
	}
	if patch.DueDate != nil {
		add("due_date", *patch.DueDate)
	}

	if len(sets) == 0 {
		return r.FindOne(ctx, id)
	}

	args = append(args, id)
	query := `UPDATE tasks SET ` + strings.Join(sets, ", ") +
		fmt.Sprintf(` WHERE id = $%d RETURNING `, len(args)) + taskColumns

	t, err := scanTask(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

// Delete removes the row and returns the affected-row count.
func (r *TaskRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
