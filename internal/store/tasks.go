package store

import (
	"context"
	"fmt"
	"time"
)

// TaskParams carries the writable task fields.
type TaskParams struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
	Category    string
	AssignedTo  *int64
	Completed   bool
}

// ListTasks returns all tasks, incomplete first, then by due date.
func (s *Store) ListTasks(ctx context.Context) ([]Task, error) {
	query := `
		SELECT id, title, description, due_date, priority, category,
			assigned_to, completed, completed_at, created_at::TEXT
		FROM tasks
		ORDER BY completed, due_date NULLS LAST, id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []Task{}
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate,
			&t.Priority, &t.Category, &t.AssignedTo, &t.Completed,
			&t.CompletedAt, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// CreateTask inserts a task and returns it.
func (s *Store) CreateTask(ctx context.Context, p TaskParams) (Task, error) {
	query := `
		INSERT INTO tasks (title, description, due_date, priority, category, assigned_to)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at::TEXT`

	priority := p.Priority
	if priority == "" {
		priority = "medium"
	}

	var (
		id        int64
		createdAt string
	)
	err := s.pool.QueryRow(ctx, query, p.Title, nullIfEmpty(p.Description),
		nullIfEmpty(p.DueDate), priority, nullIfEmpty(p.Category), p.AssignedTo).
		Scan(&id, &createdAt)
	if err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}
	return Task{
		ID:          id,
		Title:       p.Title,
		Description: nullIfEmpty(p.Description),
		DueDate:     nullIfEmpty(p.DueDate),
		Priority:    priority,
		Category:    nullIfEmpty(p.Category),
		AssignedTo:  p.AssignedTo,
		CreatedAt:   createdAt,
	}, nil
}

// UpdateTask updates a task. Marking a task complete stamps
// completed_at; clearing completion clears it.
func (s *Store) UpdateTask(ctx context.Context, id int64, p TaskParams) error {
	var completedAt *string
	if p.Completed {
		ts := time.Now().UTC().Format(time.RFC3339)
		completedAt = &ts
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3, priority = $4,
			category = $5, assigned_to = $6, completed = $7, completed_at = $8
		WHERE id = $9`

	tag, err := s.pool.Exec(ctx, query, p.Title, nullIfEmpty(p.Description),
		nullIfEmpty(p.DueDate), p.Priority, nullIfEmpty(p.Category),
		p.AssignedTo, p.Completed, completedAt, id)
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
